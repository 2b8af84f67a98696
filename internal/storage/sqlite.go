// Package storage provides SQLite-based persistence for member seeds and
// render history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/seedart/internal/prng"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Member binds an account to the seed behind its member card.
type Member struct {
	Account   string
	Seed      prng.Seed
	CreatedAt time.Time
}

// RenderEntry is one recorded render.
type RenderEntry struct {
	ID        string
	Artwork   string
	Seed      prng.Seed
	Bytes     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite allows one writer; serialize through a single connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS members (
			account TEXT PRIMARY KEY,
			seed TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS renders (
			id TEXT PRIMARY KEY,
			artwork TEXT NOT NULL,
			seed TEXT NOT NULL,
			bytes INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_renders_artwork ON renders(artwork);
		CREATE INDEX IF NOT EXISTS idx_renders_created ON renders(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// MemberSeed returns the seed stored for account. An account seen for the
// first time gets a seed from gen, which is persisted before returning, so
// later calls and concurrent callers agree on one value.
func (s *Store) MemberSeed(account string, gen func() prng.Seed) (prng.Seed, error) {
	if account == "" {
		return prng.Seed{}, errors.New("storage: empty account")
	}

	if _, err := s.db.Exec(
		"INSERT OR IGNORE INTO members (account, seed) VALUES (?, ?)",
		account, gen().String(),
	); err != nil {
		return prng.Seed{}, fmt.Errorf("storage: cannot insert member: %w", err)
	}

	var raw string
	if err := s.db.QueryRow("SELECT seed FROM members WHERE account = ?", account).Scan(&raw); err != nil {
		return prng.Seed{}, fmt.Errorf("storage: cannot query member: %w", err)
	}

	seed, err := prng.ParseSeed(raw)
	if err != nil {
		return prng.Seed{}, fmt.Errorf("storage: corrupt seed for %s: %w", account, err)
	}
	return seed, nil
}

// SetMemberSeed stores seed for account, replacing any previous value.
func (s *Store) SetMemberSeed(account string, seed prng.Seed) error {
	if account == "" {
		return errors.New("storage: empty account")
	}
	_, err := s.db.Exec(
		`INSERT INTO members (account, seed) VALUES (?, ?)
		 ON CONFLICT(account) DO UPDATE SET seed = excluded.seed`,
		account, seed.String(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set member seed: %w", err)
	}
	return nil
}

// ListMembers returns all members ordered by account.
func (s *Store) ListMembers() ([]Member, error) {
	rows, err := s.db.Query(`SELECT account, seed, created_at FROM members ORDER BY account`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query members: %w", err)
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		var raw string
		var createdAt any
		if err := rows.Scan(&m.Account, &raw, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if m.Seed, err = prng.ParseSeed(raw); err != nil {
			return nil, fmt.Errorf("storage: corrupt seed for %s: %w", m.Account, err)
		}
		m.CreatedAt = parseTime(createdAt)
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return members, nil
}

// RecordRender logs a render and returns its generated ID.
func (s *Store) RecordRender(artwork string, seed prng.Seed, size int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO renders (id, artwork, seed, bytes) VALUES (?, ?, ?, ?)",
		id, artwork, seed.String(), size,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record render: %w", err)
	}
	return id, nil
}

// RecentRenders retrieves the most recent renders, newest first.
func (s *Store) RecentRenders(limit int) ([]RenderEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, artwork, seed, bytes, created_at
		 FROM renders
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query renders: %w", err)
	}
	defer rows.Close()

	var entries []RenderEntry
	for rows.Next() {
		var e RenderEntry
		var raw string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Artwork, &raw, &e.Bytes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if e.Seed, err = prng.ParseSeed(raw); err != nil {
			return nil, fmt.Errorf("storage: corrupt seed in render %s: %w", e.ID, err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RenderCounts returns how many renders were recorded per artwork.
func (s *Store) RenderCounts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT artwork, COUNT(*) FROM renders GROUP BY artwork`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count renders: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		counts[name] = n
	}
	return counts, rows.Err()
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
