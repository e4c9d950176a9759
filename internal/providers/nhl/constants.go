package nhl

import "time"

const (
	defaultBaseURL     = "https://statsapi.web.nhl.com"
	defaultHTTPTimeout = 10 * time.Second

	currentSeasonPath = "/api/v1/seasons/current"
	teamsPath         = "/api/v1/teams"
	peoplePathPrefix  = "/api/v1/people/"

	teamsExpand       = "team.roster"
	statsSingleSeason = "statsSingleSeason"
)
