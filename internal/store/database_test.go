package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDatabase creates a throwaway database file with a rosters table.
func newTestDatabase(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nflverse.db")

	db, err := Open(path, false)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.DB().Exec(`
		CREATE TABLE rosters (
			season INTEGER NOT NULL,
			team TEXT NOT NULL,
			position TEXT,
			full_name TEXT NOT NULL,
			status TEXT,
			jersey_number TEXT
		)
	`)
	require.NoError(t, err)

	_, err = db.DB().Exec(
		`INSERT INTO rosters VALUES (2024, 'BUF', 'QB', 'Josh Allen', 'ACT', '17')`,
	)
	require.NoError(t, err)

	return path
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("", true)
	require.Error(t, err)

	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	require.Contains(t, connErr.Error(), "must not be empty")
}

func TestOpenMissingReadOnlyTarget(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.db")

	_, err := Open(missing, true)
	require.Error(t, err)

	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	// The message must name the offending path.
	require.Contains(t, connErr.Error(), missing)
	require.Equal(t, missing, connErr.Path)
}

func TestOpenReadOnly(t *testing.T) {
	path := newTestDatabase(t)

	db, err := Open(path, true)
	require.NoError(t, err)
	defer db.Close()

	require.True(t, db.ReadOnly())
	require.NoError(t, db.HealthCheck())

	var count int
	require.NoError(t, db.DB().QueryRow(`SELECT COUNT(*) FROM rosters`).Scan(&count))
	require.Equal(t, 1, count)

	// The read-only guard rejects writes to the shared dataset.
	_, err = db.DB().Exec(`INSERT INTO rosters VALUES (2024, 'KC', 'QB', 'Patrick Mahomes', 'ACT', '15')`)
	require.Error(t, err)
}

func TestWithDatabase(t *testing.T) {
	path := newTestDatabase(t)

	var sum int
	err := WithDatabase(path, true, func(db *Database) error {
		return db.DB().QueryRow(`SELECT SUM(season) FROM rosters`).Scan(&sum)
	})
	require.NoError(t, err)
	require.Equal(t, 2024, sum)
}

func TestWithDatabasePropagatesErrors(t *testing.T) {
	path := newTestDatabase(t)

	wantErr := errors.New("caller failure")
	err := WithDatabase(path, true, func(db *Database) error {
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	// An open failure surfaces without invoking the callback.
	called := false
	err = WithDatabase(filepath.Join(t.TempDir(), "missing.db"), true, func(db *Database) error {
		called = true
		return nil
	})
	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	require.False(t, called)
}
