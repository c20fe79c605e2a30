// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/voltlink/dashboard/internal/models"
)

// Store defines the interface for dashboard record storage.
// This abstraction allows swapping storage backends (SQLite, a flat file,
// browser-local storage behind a bridge) without changing the service layer,
// and lets tests substitute an in-memory implementation.
//
// Each collection lives under one fixed key and every save is a full
// overwrite of that key. There is no merge, no partial update, and no
// cross-key transactionality: the last writer wins.
type Store interface {
	// LoadProfile returns the bike profile. On first ever load it persists
	// and returns the default profile; after that the stored value comes
	// back verbatim.
	LoadProfile(ctx context.Context) (models.BikeProfile, error)

	// SaveProfile replaces the stored profile wholesale.
	SaveProfile(ctx context.Context, profile models.BikeProfile) error

	// LoadMaintenance returns the maintenance history, newest first.
	// An empty store yields an empty slice, not an error.
	LoadMaintenance(ctx context.Context) ([]models.MaintenanceRecord, error)

	// SaveMaintenance replaces the entire maintenance history.
	SaveMaintenance(ctx context.Context, records []models.MaintenanceRecord) error

	// LoadExpenses returns the expense log, newest first.
	// An empty store yields an empty slice, not an error.
	LoadExpenses(ctx context.Context) ([]models.Expense, error)

	// SaveExpenses replaces the entire expense log.
	SaveExpenses(ctx context.Context, expenses []models.Expense) error

	// Close releases any resources held by the store.
	Close() error
}
