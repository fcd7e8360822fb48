package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/store"
)

func seedRosterDatabase(t *testing.T) *store.Database {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nflverse.db")

	rw, err := store.Open(path, false)
	require.NoError(t, err)

	_, err = rw.DB().Exec(`
		CREATE TABLE rosters (
			season INTEGER NOT NULL,
			team TEXT NOT NULL,
			position TEXT,
			full_name TEXT NOT NULL,
			status TEXT,
			jersey_number TEXT
		);
		INSERT INTO rosters VALUES (2024, 'BUF', 'QB', 'Josh Allen', 'ACT', '17');
		INSERT INTO rosters VALUES (2024, 'BUF', 'RB', 'James Cook', 'ACT', '4');
		INSERT INTO rosters VALUES (2024, 'KC', 'QB', 'Patrick Mahomes', 'ACT', '15');
		INSERT INTO rosters VALUES (2023, 'BUF', 'WR', 'Stefon Diggs', 'ACT', '14');
	`)
	require.NoError(t, err)
	require.NoError(t, rw.Close())

	ro, err := store.Open(path, true)
	require.NoError(t, err)
	t.Cleanup(func() { ro.Close() })
	return ro
}

func TestGetTeamRoster(t *testing.T) {
	repo := NewRosterRepository(seedRosterDatabase(t))

	entries, err := repo.GetTeamRoster(context.Background(), 2024, "BUF")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Ordered by position, then name.
	require.Equal(t, "Josh Allen", entries[0].FullName)
	require.Equal(t, "QB", entries[0].Position.String)
	require.Equal(t, "James Cook", entries[1].FullName)

	entries, err = repo.GetTeamRoster(context.Background(), 2024, "MIA")
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestGetPlayerByName(t *testing.T) {
	repo := NewRosterRepository(seedRosterDatabase(t))

	entry, err := repo.GetPlayerByName(context.Background(), 2023, "Stefon Diggs")
	require.NoError(t, err)
	require.Equal(t, "BUF", entry.Team)
	require.Equal(t, "14", entry.JerseyNumber.String)

	_, err = repo.GetPlayerByName(context.Background(), 2024, "Nobody Here")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Nobody Here")
}
