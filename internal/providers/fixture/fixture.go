// Package fixture is a deterministic in-process provider for local runs and
// tests: no network, stable output.
package fixture

import (
	"context"

	json "github.com/goccy/go-json"

	"nhl-stats-service/internal/domain"
)

// Provider returns a static pair of teams with canned season stats.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// CurrentSeason always reports the same season.
func (p *Provider) CurrentSeason(ctx context.Context) (domain.Season, error) {
	_ = ctx
	return "20182019", nil
}

// FetchTeams returns two small teams. One roster entry deliberately has no
// stats so the filtering path is exercised end to end.
func (p *Provider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	_ = ctx

	payload := []byte(`[
		{"id":1,"name":"Fixture North","roster":{"roster":[
			{"person":{"id":101,"fullName":"Sig Hansen"},"position":{"code":"C","name":"Center","type":"Forward"}},
			{"person":{"id":102,"fullName":"Ole Berg"},"position":{"code":"G","name":"Goalie","type":"Goalie"}}
		]}},
		{"id":2,"name":"Fixture South","roster":{"roster":[
			{"person":{"id":201,"fullName":"Remy Dubois"},"position":{"code":"D","name":"Defenseman","type":"Defenseman"}}
		]}}
	]`)

	var teams []domain.Team
	if err := json.Unmarshal(payload, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

var fixtureStats = map[int64]json.RawMessage{
	101: json.RawMessage(`{"goals":12,"assists":30,"games":78}`),
	201: json.RawMessage(`{"goals":4,"assists":18,"games":80}`),
}

// FetchPlayerStats serves canned stats; players without an entry read as
// having no stats for the season.
func (p *Provider) FetchPlayerStats(ctx context.Context, playerID int64, season domain.Season) (json.RawMessage, bool, error) {
	_ = ctx
	_ = season

	stat, ok := fixtureStats[playerID]
	return stat, ok, nil
}
