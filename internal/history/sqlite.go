package history

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver for database/sql
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite for cross-platform compatibility
)

const schema = `
CREATE TABLE IF NOT EXISTS commits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// Store is a SQLite-backed commit history. The composer.History methods do
// not return errors, so storage failures are logged and the affected
// operation degrades to a no-op.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (and if needed creates) the commit-history database at path.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history database: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Push appends a committed text segment.
func (s *Store) Push(text string) {
	if _, err := s.db.Exec(`INSERT INTO commits (text) VALUES (?)`, text); err != nil {
		s.log.Error().Err(err).Msg("history store: insert failed")
	}
}

// Clear empties the history.
func (s *Store) Clear() {
	if _, err := s.db.Exec(`DELETE FROM commits`); err != nil {
		s.log.Error().Err(err).Msg("history store: clear failed")
	}
}

// LatestText returns the most recent segment, or "".
func (s *Store) LatestText() string {
	var text string
	err := s.db.QueryRow(`SELECT text FROM commits ORDER BY id DESC LIMIT 1`).Scan(&text)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ""
	case err != nil:
		s.log.Error().Err(err).Msg("history store: latest query failed")
		return ""
	}
	return text
}
