package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

// RosterRepository handles roster data access against the nflverse mount.
type RosterRepository struct {
	db *store.Database
}

// NewRosterRepository creates a new roster repository.
func NewRosterRepository(db *store.Database) *RosterRepository {
	return &RosterRepository{db: db}
}

// GetTeamRoster returns all roster rows for a team in a season.
func (r *RosterRepository) GetTeamRoster(ctx context.Context, season int, team string) ([]*store.RosterEntry, error) {
	query := `
		SELECT season, team, position, full_name, status, jersey_number
		FROM rosters
		WHERE season = ? AND team = ?
		ORDER BY position, full_name
	`

	rows, err := r.db.DB().QueryContext(ctx, query, season, team)
	if err != nil {
		return nil, fmt.Errorf("querying roster: %w", err)
	}
	defer rows.Close()

	var entries []*store.RosterEntry
	for rows.Next() {
		entry := &store.RosterEntry{}
		err := rows.Scan(
			&entry.Season, &entry.Team, &entry.Position,
			&entry.FullName, &entry.Status, &entry.JerseyNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning roster row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetPlayerByName finds a roster row by exact full name within a season.
func (r *RosterRepository) GetPlayerByName(ctx context.Context, season int, fullName string) (*store.RosterEntry, error) {
	query := `
		SELECT season, team, position, full_name, status, jersey_number
		FROM rosters
		WHERE season = ? AND full_name = ?
	`

	entry := &store.RosterEntry{}
	err := r.db.DB().QueryRowContext(ctx, query, season, fullName).Scan(
		&entry.Season, &entry.Team, &entry.Position,
		&entry.FullName, &entry.Status, &entry.JerseyNumber,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found: %s", fullName)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return entry, nil
}
