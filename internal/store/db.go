package store

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite database holding the activation history.
type DB struct {
	*sql.DB
	path string
}

// Open connects to the history database in WAL mode, creating it if needed.
func Open(path string) (*DB, error) {
	return open(path, url.Values{
		"_journal_mode": {"WAL"},
		"_busy_timeout": {"5000"},
	})
}

// OpenReadOnly connects without write access, for reporting while the menu
// holds the database open.
func OpenReadOnly(path string) (*DB, error) {
	return open(path, url.Values{
		"mode":          {"ro"},
		"_busy_timeout": {"5000"},
	})
}

func open(path string, params url.Values) (*DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db %s: %w", path, err)
	}
	return &DB{DB: db, path: path}, nil
}

// Path returns the database file path.
func (db *DB) Path() string { return db.path }
