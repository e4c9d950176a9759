// Package warmer periodically rebuilds the cached players payload so the
// expensive fan-out runs in the background instead of on a cold request.
package warmer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"nhl-stats-service/internal/domain"
	"nhl-stats-service/internal/logging"
	"nhl-stats-service/internal/metrics"
)

const defaultInterval = 10 * time.Minute

// errEmptyAggregate marks a cycle whose pipeline produced nothing; the
// orchestrator maps the team-list failure to an empty list, so emptiness is
// the failure signal available here.
var errEmptyAggregate = errors.New("aggregate came back empty")

// PlayerSource builds the combined player list.
type PlayerSource interface {
	PlayerStats(ctx context.Context) []domain.PlayerRecord
}

// CacheWriter stores a computed payload under a key.
type CacheWriter interface {
	Set(ctx context.Context, key string, value any)
}

// Warmer refreshes the cached players payload on an interval and tracks the
// recent health of those refreshes.
type Warmer struct {
	source   PlayerSource
	cache    CacheWriter
	cacheKey string
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the warmer has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Warmer with sane defaults.
func New(source PlayerSource, cache CacheWriter, cacheKey string, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Warmer {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Warmer{
		source:   source,
		cache:    cache,
		cacheKey: cacheKey,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (w *Warmer) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		w.logInfo("cache warmer started", slog.Int64(logging.FieldDurationMS, w.interval.Milliseconds()))
		// Initial refresh to warm the cache on boot.
		w.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				w.stopTicker()
				w.logInfo("cache warmer stopped")
				return
			case <-w.done:
				w.stopTicker()
				w.logInfo("cache warmer stopped")
				return
			case <-w.ticker.C:
				w.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (w *Warmer) Stop(ctx context.Context) error {
	_ = ctx
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopTicker()
	})
	return nil
}

func (w *Warmer) refreshOnce(ctx context.Context) {
	start := w.now()
	w.recordAttempt(start)

	records := w.source.PlayerStats(ctx)
	payload, err := domain.EncodeRecords(records)
	if err == nil && len(records) == 0 {
		err = errEmptyAggregate
	}
	if w.metrics != nil {
		w.metrics.RecordRefreshCycle(time.Since(start), err)
	}
	if err != nil {
		w.logError("cache refresh failed", err)
		w.recordFailure(err, start)
		return
	}

	if w.cache != nil {
		w.cache.Set(ctx, w.cacheKey, payload)
	}
	w.recordSuccess(start)
	w.logInfo("cache refreshed",
		logging.FieldCount, len(records),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (w *Warmer) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *Warmer) logInfo(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Info(msg, args...)
	}
}

func (w *Warmer) logError(msg string, err error, attrs ...any) {
	if w.logger != nil {
		w.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (w *Warmer) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Warmer) recordSuccess(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

func (w *Warmer) recordFailure(err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	if err != nil {
		w.status.LastError = err.Error()
	}
	w.status.LastAttempt = at
}

// Status returns a snapshot of the warmer's recent health.
func (w *Warmer) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
