package domain

import (
	json "github.com/goccy/go-json"
)

// Season identifies an NHL season as an 8-digit year pair, e.g. "20182019".
type Season string

// DefaultSeason is substituted whenever a season cannot be resolved or
// fails validation.
const DefaultSeason Season = "20182019"

// Valid reports whether the season has the canonical 8-digit shape.
func (s Season) Valid() bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Person is the upstream identity object for a player. The raw upstream
// payload is preserved verbatim so fields we do not model survive the
// round trip unchanged; only id and fullName are lifted out for addressing.
type Person struct {
	ID       int64
	FullName string

	raw json.RawMessage
}

// UnmarshalJSON keeps the original bytes and probes the fields we need.
// A person of an unexpected shape reads as an identity-less person rather
// than failing the surrounding team decode.
func (p *Person) UnmarshalJSON(data []byte) error {
	p.raw = append(p.raw[:0], data...)

	var probe struct {
		ID       int64  `json:"id"`
		FullName string `json:"fullName"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		p.ID = 0
		p.FullName = ""
		return nil
	}
	p.ID = probe.ID
	p.FullName = probe.FullName
	return nil
}

// MarshalJSON emits the preserved upstream payload when present.
func (p Person) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	return json.Marshal(struct {
		ID       int64  `json:"id"`
		FullName string `json:"fullName"`
	}{p.ID, p.FullName})
}

// PlayerStub is a roster entry: identity and position, no stats.
type PlayerStub struct {
	Person   Person          `json:"person"`
	Position json.RawMessage `json:"position"`
}

// Team is the slice of an upstream team record this service consumes: the
// nested roster list. Everything else on the team object is ignored.
type Team struct {
	roster []PlayerStub
}

// UnmarshalJSON reads the nested roster.roster path. A team whose roster is
// missing or of the wrong shape reads as a team with no players, never as
// a decode failure.
func (t *Team) UnmarshalJSON(data []byte) error {
	var probe struct {
		Roster struct {
			Roster []PlayerStub `json:"roster"`
		} `json:"roster"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		t.roster = nil
		return nil
	}
	t.roster = probe.Roster.Roster
	return nil
}

// NewTeam constructs a team from a roster, used by fixture data and tests.
func NewTeam(roster ...PlayerStub) Team {
	return Team{roster: roster}
}

// Players extracts the team roster. Never nil.
func (t Team) Players() []PlayerStub {
	if t.roster == nil {
		return []PlayerStub{}
	}
	return t.roster
}

// PlayerRecord is one entry in the aggregate response: either a combined
// player+stats+position record or a soft-failure error marker.
type PlayerRecord struct {
	Player   Person
	Stats    json.RawMessage
	Position json.RawMessage
	Err      string
}

// ErrorRecord builds a soft-failure entry carrying only an error message.
func ErrorRecord(msg string) PlayerRecord {
	return PlayerRecord{Err: msg}
}

// MarshalJSON serializes the record in one of its two wire shapes.
func (r PlayerRecord) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Err})
	}
	return json.Marshal(struct {
		Player   Person          `json:"player"`
		Stats    json.RawMessage `json:"stats"`
		Position json.RawMessage `json:"position"`
	}{r.Player, r.Stats, r.Position})
}
