package store

import "database/sql"

// StatusActive is the roster status assigned to any starter record that
// does not carry an explicit status.
const StatusActive = "ACT"

// Starter is one canonical depth-chart slot assignment. Position is one of
// QB, RB1, RB2, TE1, TE2, WR1-WR5, SLOT or FB.
type Starter struct {
	Team     string `json:"team" db:"team"`
	Position string `json:"position" db:"position"`
	Player   string `json:"player" db:"player"`
	Status   string `json:"status" db:"status"`
}

// RosterEntry is one row of the rosters table in the analytical database.
type RosterEntry struct {
	Season       int            `json:"season" db:"season"`
	Team         string         `json:"team" db:"team"`
	Position     sql.NullString `json:"position,omitempty" db:"position"`
	FullName     string         `json:"full_name" db:"full_name"`
	Status       sql.NullString `json:"status,omitempty" db:"status"`
	JerseyNumber sql.NullString `json:"jersey_number,omitempty" db:"jersey_number"`
}
