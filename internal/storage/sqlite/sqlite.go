// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/voltlink/dashboard/internal/models"
	"github.com/voltlink/dashboard/internal/storage"
)

// Fixed keys for the three record collections. These match the key names
// the dashboard has always used in browser-local storage, so an exported
// browser snapshot can be imported without rewriting keys.
const (
	keyBikeData    = "voltlink-bike-data"
	keyMaintenance = "voltlink-maintenance"
	keyExpenses    = "voltlink-expenses"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	// now supplies the clock for the default profile's LastMaintenance
	// date. Tests override it; production uses time.Now.
	now func() time.Time
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadProfile returns the stored bike profile. If no profile exists yet,
// the default profile is persisted and returned; its LastMaintenance date
// is frozen to this first call, so later loads return the same value
// rather than a fresh default.
func (s *SQLiteStore) LoadProfile(ctx context.Context) (models.BikeProfile, error) {
	var profile models.BikeProfile
	found, err := s.load(ctx, keyBikeData, &profile)
	if err != nil {
		return models.BikeProfile{}, err
	}
	if found {
		return profile, nil
	}

	profile = models.DefaultBikeProfile(s.now())
	if err := s.save(ctx, keyBikeData, profile); err != nil {
		return models.BikeProfile{}, fmt.Errorf("failed to seed default profile: %w", err)
	}
	return profile, nil
}

// SaveProfile replaces the stored profile wholesale.
func (s *SQLiteStore) SaveProfile(ctx context.Context, profile models.BikeProfile) error {
	return s.save(ctx, keyBikeData, profile)
}

// LoadMaintenance returns the maintenance history, newest first.
func (s *SQLiteStore) LoadMaintenance(ctx context.Context) ([]models.MaintenanceRecord, error) {
	records := []models.MaintenanceRecord{}
	if _, err := s.load(ctx, keyMaintenance, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveMaintenance replaces the entire maintenance history.
func (s *SQLiteStore) SaveMaintenance(ctx context.Context, records []models.MaintenanceRecord) error {
	return s.save(ctx, keyMaintenance, records)
}

// LoadExpenses returns the expense log, newest first.
func (s *SQLiteStore) LoadExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses := []models.Expense{}
	if _, err := s.load(ctx, keyExpenses, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// SaveExpenses replaces the entire expense log.
func (s *SQLiteStore) SaveExpenses(ctx context.Context, expenses []models.Expense) error {
	return s.save(ctx, keyExpenses, expenses)
}

// load decodes the JSON document under key into dst. It reports whether a
// document was present. A document that is present but undecodable is an
// error: the caller gets no value and no recovery is attempted here.
func (s *SQLiteStore) load(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM records WHERE key = ?", key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// save encodes value as JSON and overwrites the document under key.
func (s *SQLiteStore) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
