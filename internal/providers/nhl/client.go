// Package nhl implements the upstream statsapi.web.nhl.com client: current
// season lookup, the team list with rosters expanded, and per-player
// single-season statistics.
package nhl

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"nhl-stats-service/internal/domain"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches seasons, teams, and player stats from the NHL stats API.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs an NHL stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// CurrentSeason retrieves the current season id. An empty season with a nil
// error means the upstream answered 200 without a usable season id; the
// caller decides the fallback.
func (c *Client) CurrentSeason(ctx context.Context) (domain.Season, error) {
	var payload seasonsResponse
	if err := c.getJSON(ctx, currentSeasonPath, nil, &payload); err != nil {
		return "", err
	}
	if len(payload.Seasons) == 0 {
		return "", nil
	}
	return payload.Seasons[0].SeasonID, nil
}

// FetchTeams retrieves all teams with their rosters expanded.
func (c *Client) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	var payload teamsResponse
	query := map[string]string{"expand": teamsExpand}
	if err := c.getJSON(ctx, teamsPath, query, &payload); err != nil {
		return nil, err
	}
	return payload.Teams, nil
}

// FetchPlayerStats retrieves one player's stats for one season. ok is false
// when the upstream answered but the payload carried no usable stats.
func (c *Client) FetchPlayerStats(ctx context.Context, playerID int64, season domain.Season) (json.RawMessage, bool, error) {
	path := peoplePathPrefix + strconv.FormatInt(playerID, 10) + "/stats"
	query := map[string]string{
		"stats":  statsSingleSeason,
		"season": string(season),
	}

	var payload statsResponse
	if err := c.getJSON(ctx, path, query, &payload); err != nil {
		return nil, false, err
	}
	stat, ok := payload.statObject()
	return stat, ok, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query map[string]string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		q := req.URL.Query()
		for key, val := range query {
			q.Set(key, val)
		}
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return statusError(path, resp)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
