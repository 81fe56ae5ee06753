package memory

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS user_memory (
	user_id TEXT PRIMARY KEY,
	record  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS learned_terms (
	user_id TEXT PRIMARY KEY,
	terms   TEXT NOT NULL
);
`

// SQLiteStore persists user memory and learned terms in a local SQLite
// database so remembered facts survive restarts. Records are stored as JSON
// blobs; the tables are key-value, not relational, because everything is
// read and written whole per user.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path. Use ":memory:"
// for an ephemeral database in tests.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, userID string) (*UserMemory, error) {
	if userID == "" {
		return nil, ErrNotFound
	}
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM user_memory WHERE user_id = ?`, userID).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load memory for %s: %w", userID, err)
	}
	var mem UserMemory
	if err := json.Unmarshal(blob, &mem); err != nil {
		return nil, fmt.Errorf("failed to decode memory for %s: %w", userID, err)
	}
	if mem.Facts == nil {
		mem.Facts = []string{}
	}
	if mem.Preferences == nil {
		mem.Preferences = map[string]string{}
	}
	return &mem, nil
}

func (s *SQLiteStore) Put(ctx context.Context, mem *UserMemory) error {
	if mem == nil || mem.UserID == "" {
		return fmt.Errorf("memory record with user id is required")
	}
	blob, err := json.Marshal(mem)
	if err != nil {
		return fmt.Errorf("failed to encode memory for %s: %w", mem.UserID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO user_memory (user_id, record) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET record = excluded.record`,
		mem.UserID, blob)
	if err != nil {
		return fmt.Errorf("failed to store memory for %s: %w", mem.UserID, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, userID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM user_memory WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete memory for %s: %w", userID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// LearnedTerms exposes the learned-terms side table of the same database.
func (s *SQLiteStore) LearnedTerms() LearnedTermsStore {
	return &sqliteLearnedTerms{db: s.db}
}

type sqliteLearnedTerms struct {
	db *sql.DB
}

func (s *sqliteLearnedTerms) Get(ctx context.Context, userID string) ([]string, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT terms FROM learned_terms WHERE user_id = ?`, userID).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load learned terms for %s: %w", userID, err)
	}
	var terms []string
	if err := json.Unmarshal(blob, &terms); err != nil {
		return nil, fmt.Errorf("failed to decode learned terms for %s: %w", userID, err)
	}
	return terms, nil
}

func (s *sqliteLearnedTerms) Put(ctx context.Context, userID string, terms []string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	blob, err := json.Marshal(terms)
	if err != nil {
		return fmt.Errorf("failed to encode learned terms for %s: %w", userID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO learned_terms (user_id, terms) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET terms = excluded.terms`,
		userID, blob)
	if err != nil {
		return fmt.Errorf("failed to store learned terms for %s: %w", userID, err)
	}
	return nil
}

func (s *sqliteLearnedTerms) Delete(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM learned_terms WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete learned terms for %s: %w", userID, err)
	}
	return nil
}
