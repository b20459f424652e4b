// Package store handles SQLite persistence of journal entries.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/moodlog/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when an entry does not exist.
var ErrNotFound = errors.New("entry not found")

// Store wraps SQLite access for journal entries.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			created_unix INTEGER NOT NULL,
			content TEXT NOT NULL,
			mood TEXT NOT NULL,
			confidence REAL NOT NULL,
			analysis TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_created_unix ON entries(created_unix);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_mood ON entries(mood);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertEntry stores a journal entry and returns its id. An empty ID is
// replaced with a new UUID and a zero CreatedAt with the current time.
func (s *Store) InsertEntry(ctx context.Context, entry model.JournalEntry) (string, error) {
	if !entry.Mood.Valid() {
		return "", fmt.Errorf("%w: unknown mood %q", model.ErrInvalidArgument, entry.Mood)
	}
	if strings.TrimSpace(entry.Content) == "" {
		return "", fmt.Errorf("%w: entry content is empty", model.ErrInvalidArgument)
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (id, created_at, created_unix, content, mood, confidence, analysis)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.CreatedAt.Format(time.RFC3339Nano),
		entry.CreatedAt.UnixNano(),
		entry.Content,
		string(entry.Mood),
		entry.Confidence,
		entry.Analysis,
	)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// GetEntry loads one entry by id.
func (s *Store) GetEntry(ctx context.Context, id string) (model.JournalEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, content, mood, confidence, analysis FROM entries WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.JournalEntry{}, ErrNotFound
	}
	return entry, err
}

// DeleteEntry removes an entry by id.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListEntries returns entries matching filter, oldest first. Last keeps only
// the most recent N matches.
func (s *Store) ListEntries(ctx context.Context, filter model.EntryFilter) ([]model.JournalEntry, error) {
	where, args := filterClauses(filter)
	query := fmt.Sprintf(`SELECT id, created_at, content, mood, confidence, analysis
		FROM entries
		WHERE %s
		ORDER BY created_unix DESC, id DESC`, where)
	if filter.Last > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Last)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// MoodCounts returns the number of entries per mood matching filter.
func (s *Store) MoodCounts(ctx context.Context, filter model.EntryFilter) (map[model.Mood]int, error) {
	where, args := filterClauses(filter)
	query := fmt.Sprintf(`SELECT mood, COUNT(*) FROM entries WHERE %s GROUP BY mood`, where)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := map[model.Mood]int{}
	for rows.Next() {
		var mood string
		var n int
		if err := rows.Scan(&mood, &n); err != nil {
			return nil, err
		}
		result[model.Mood(mood)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func filterClauses(filter model.EntryFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Mood != "" {
		clauses = append(clauses, "mood = ?")
		args = append(args, string(filter.Mood))
	}
	if filter.Since != nil {
		clauses = append(clauses, "created_unix >= ?")
		args = append(args, filter.Since.UnixNano())
	}
	return strings.Join(clauses, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (model.JournalEntry, error) {
	var entry model.JournalEntry
	var createdAt, mood string
	if err := sc.Scan(&entry.ID, &createdAt, &entry.Content, &mood, &entry.Confidence, &entry.Analysis); err != nil {
		return model.JournalEntry{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.JournalEntry{}, err
	}
	entry.CreatedAt = parsed
	entry.Mood = model.Mood(mood)
	return entry, nil
}
