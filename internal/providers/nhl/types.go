package nhl

import (
	json "github.com/goccy/go-json"

	"nhl-stats-service/internal/domain"
)

const providerName = "nhl"

type seasonsResponse struct {
	Seasons []seasonEntry `json:"seasons"`
}

type seasonEntry struct {
	SeasonID domain.Season `json:"seasonId"`
}

type teamsResponse struct {
	Teams []domain.Team `json:"teams"`
}

type statsResponse struct {
	Stats []statsGroup `json:"stats"`
}

type statsGroup struct {
	Splits []statsSplit `json:"splits"`
}

type statsSplit struct {
	Stat json.RawMessage `json:"stat"`
}

// statObject returns the first split's stat object and whether the payload
// carried usable stats at all. No stats list, no splits, or an empty splits
// list all read as "no stats for this player-season pair".
func (r statsResponse) statObject() (json.RawMessage, bool) {
	if len(r.Stats) == 0 {
		return nil, false
	}
	splits := r.Stats[0].Splits
	if len(splits) == 0 {
		return nil, false
	}
	return splits[0].Stat, true
}
