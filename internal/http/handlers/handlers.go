package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"nhl-stats-service/internal/cache"
	"nhl-stats-service/internal/domain"
	"nhl-stats-service/internal/logging"
	"nhl-stats-service/internal/warmer"
)

// playersCacheKey addresses the one cached payload this service produces. The
// season is resolved inside the pipeline, so the key does not vary per request.
const playersCacheKey = "players"

// PlayerSource builds the full aggregated player list.
type PlayerSource interface {
	PlayerStats(ctx context.Context) []domain.PlayerRecord
}

// Handler wires HTTP routes to the aggregation pipeline.
type Handler struct {
	source   PlayerSource
	cache    *cache.Store
	logger   *slog.Logger
	statusFn func() warmer.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no background
// warmer is running; readiness then reports ready unconditionally.
func NewHandler(source PlayerSource, store *cache.Store, logger *slog.Logger, statusFn func() warmer.Status) *Handler {
	return &Handler{
		source:   source,
		cache:    store,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Players serves the aggregated player list. Concurrent cold-cache requests
// share a single pipeline run, and everyone inside the TTL window gets the
// same serialized bytes.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	payload, err := h.loadPlayers(r.Context())
	if err != nil {
		logging.Error(logger, "failed to build players payload", err)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to build players payload", h.logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write(payload); err != nil {
		logging.Error(logger, "failed to write players payload", err)
	}
}

func (h *Handler) loadPlayers(ctx context.Context) ([]byte, error) {
	if h.cache == nil {
		return h.buildPayload(ctx)
	}

	value, err := h.cache.GetOrLoad(ctx, playersCacheKey, func(ctx context.Context) (any, error) {
		return h.buildPayload(ctx)
	})
	if err != nil {
		return nil, err
	}
	payload, ok := value.([]byte)
	if !ok {
		return h.buildPayload(ctx)
	}
	return payload, nil
}

func (h *Handler) buildPayload(ctx context.Context) ([]byte, error) {
	records := h.source.PlayerStats(ctx)
	return domain.EncodeRecords(records)
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

func loggerFromContext(r *nethttp.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return logging.FromContext(context.Background(), fallback)
	}
	return logging.FromContext(r.Context(), fallback)
}
