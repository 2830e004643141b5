// Package storage provides SQLite-based persistence for generation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
	"github.com/vovakirdan/aztec-shuffle/internal/config"
)

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is a saved generation: summary columns plus the full event log.
type Run struct {
	ID        int64
	Seed      string
	Size      int
	Created   int // dominoes created over the whole run
	Destroyed int // dominoes destroyed over the whole run
	Record    *aztec.GenerationRecord
	CreatedAt time.Time
}

// Alive returns the number of dominoes on the final tiling.
func (r Run) Alive() int {
	return r.Created - r.Destroyed
}

// Stats contains aggregated statistics over all saved runs.
type Stats struct {
	Runs       int
	Seeds      int
	MaxSize    int
	TotalSteps int64
	LastSaved  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS generations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed TEXT NOT NULL,
			size INTEGER NOT NULL,
			created INTEGER NOT NULL DEFAULT 0,
			destroyed INTEGER NOT NULL DEFAULT 0,
			record TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_generations_seed ON generations(seed);
		CREATE INDEX IF NOT EXISTS idx_generations_created_at ON generations(created_at);
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

// SaveGeneration stores a finished record.
// Returns the ID of the inserted run.
func (s *Store) SaveGeneration(rec *aztec.GenerationRecord) (int64, error) {
	if rec == nil {
		return 0, errors.New("storage: nil record")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode record: %w", err)
	}

	result, err := s.db.Exec(
		"INSERT INTO generations (seed, size, created, destroyed, record) VALUES (?, ?, ?, ?, ?)",
		rec.Seed, rec.Size, rec.DominoesCreated(), rec.DominoesDestroyed(), string(data),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// GenerationByID retrieves a run including its full record.
// Returns ErrNotFound if the id does not exist.
func (s *Store) GenerationByID(id int64) (*Run, error) {
	var (
		r         Run
		data      string
		createdAt any
	)

	err := s.db.QueryRow(
		`SELECT id, seed, size, created, destroyed, record, created_at
		 FROM generations
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Seed, &r.Size, &r.Created, &r.Destroyed, &data, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	var rec aztec.GenerationRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("storage: run %d has a corrupt record: %w", id, err)
	}
	rec.Normalize()
	r.Record = &rec
	r.CreatedAt = parseTime(createdAt)

	return &r, nil
}

// RecentGenerations lists the most recent runs without their records.
func (s *Store) RecentGenerations(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, size, created, destroyed, created_at
		 FROM generations
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// GenerationsBySeed lists every run made from the given seed, oldest first.
func (s *Store) GenerationsBySeed(seed string) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, seed, size, created, destroyed, created_at
		 FROM generations
		 WHERE seed = ?
		 ORDER BY id ASC`,
		seed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// DeleteGeneration removes a run.
// Returns ErrNotFound if the id does not exist.
func (s *Store) DeleteGeneration(id int64) error {
	result, err := s.db.Exec("DELETE FROM generations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

// GetStats retrieves aggregated statistics over all saved runs.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT seed), COALESCE(MAX(size), 0), COALESCE(SUM(size), 0)
		 FROM generations`,
	).Scan(&stats.Runs, &stats.Seeds, &stats.MaxSize, &stats.TotalSteps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastSaved any
	err = s.db.QueryRow(
		`SELECT created_at FROM generations ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastSaved)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last saved: %w", err)
	}
	if err == nil {
		stats.LastSaved = parseTime(lastSaved)
	}

	return stats, nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Seed, &r.Size, &r.Created, &r.Destroyed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles the driver returning either time.Time or a string.
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
