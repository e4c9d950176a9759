package testutil

import (
	"strconv"
	"testing"

	json "github.com/goccy/go-json"

	"nhl-stats-service/internal/domain"
)

// Stub builds a roster entry with the given player id and position code.
// An id of zero produces an identity-less entry.
func Stub(t *testing.T, id int64, fullName, positionCode string) domain.PlayerStub {
	t.Helper()

	personJSON := `{"id":` + strconv.FormatInt(id, 10) + `,"fullName":` + quote(fullName) + `}`
	if id == 0 {
		personJSON = `{"fullName":` + quote(fullName) + `}`
	}

	var stub domain.PlayerStub
	raw := `{"person":` + personJSON + `,"position":{"code":` + quote(positionCode) + `}}`
	if err := json.Unmarshal([]byte(raw), &stub); err != nil {
		t.Fatalf("build stub: %v", err)
	}
	return stub
}

// Team builds a team from roster entries.
func Team(stubs ...domain.PlayerStub) domain.Team {
	return domain.NewTeam(stubs...)
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
