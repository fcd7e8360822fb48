package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// DefaultDatabasePath is the standard read-only nflverse mount provided in
// the execution environment.
const DefaultDatabasePath = "/nflverse"

// ConnectionError is returned for every failure to establish a connection
// to the analytical database: an empty path, a missing read-only target,
// or an underlying open failure.
type ConnectionError struct {
	Path string
	Msg  string
	Err  error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Database wraps a connection to the nflverse analytical database.
type Database struct {
	conn     *sql.DB
	path     string
	readOnly bool
}

// Open connects to the analytical database at path. In read-only mode
// (the default for the shared nflverse mount) the target must already
// exist on disk; this guards the dataset from being silently created
// empty. Relative paths are resolved against the working directory and
// "~" is expanded. ":memory:" is accepted as-is.
func Open(path string, readOnly bool) (*Database, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	if readOnly && resolved != ":memory:" {
		if _, statErr := os.Stat(resolved); statErr != nil {
			return nil, &ConnectionError{
				Path: resolved,
				Msg: fmt.Sprintf("the nflverse database was not found at '%s': "+
					"make sure the dataset is available and the path is correct", resolved),
				Err: statErr,
			}
		}
	}

	db, err := sql.Open("sqlite", dsn(resolved, readOnly))
	if err != nil {
		return nil, &ConnectionError{
			Path: resolved,
			Msg:  fmt.Sprintf("unable to open the nflverse database at '%s'", resolved),
			Err:  err,
		}
	}

	// Analytical read path: a small pool is plenty.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(10 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &ConnectionError{
			Path: resolved,
			Msg:  fmt.Sprintf("unable to connect to the nflverse database at '%s'", resolved),
			Err:  err,
		}
	}

	return &Database{conn: db, path: resolved, readOnly: readOnly}, nil
}

// WithDatabase opens the database, runs fn, and closes the connection on
// every exit path.
func WithDatabase(path string, readOnly bool, fn func(*Database) error) error {
	db, err := Open(path, readOnly)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

// Close closes the database connection.
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries.
func (db *Database) DB() *sql.DB {
	return db.conn
}

// Path returns the resolved database path.
func (db *Database) Path() string {
	return db.path
}

// ReadOnly reports whether the connection was opened read-only.
func (db *Database) ReadOnly() bool {
	return db.readOnly
}

// HealthCheck verifies the connection is still usable.
func (db *Database) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return db.conn.PingContext(ctx)
}

// resolvePath validates and normalizes the database path. An empty path is
// rejected to surface misconfigurations.
func resolvePath(path string) (string, error) {
	if path == "" {
		return "", &ConnectionError{
			Msg: "database path must not be empty: pass store.DefaultDatabasePath for the standard nflverse mount",
		}
	}

	if path == ":memory:" {
		return path, nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &ConnectionError{
			Path: path,
			Msg:  fmt.Sprintf("unable to resolve database path '%s'", path),
			Err:  err,
		}
	}
	return abs, nil
}

func dsn(path string, readOnly bool) string {
	if path == ":memory:" {
		return path
	}
	if readOnly {
		return fmt.Sprintf("file:%s?mode=ro", path)
	}
	return path
}
