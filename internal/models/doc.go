// Package models defines the core domain models for the VoltLink dashboard.
//
// # Models
//
//   - BikeProfile: the user's e-bike and its cumulative stats (singleton)
//   - MaintenanceRecord: one service event in the bike's history
//   - Expense: one ownership cost entry
//
// # Design Principles
//
// 1. **Single owner**: every record belongs to the one local rider; there are
// no user accounts and no cross-references between records.
//
// 2. **Append-only logs**: maintenance records and expenses are immutable once
// created and kept newest-first by insertion order. There is no update or
// delete operation on them.
//
// 3. **Wire-stable JSON**: field tags match the dashboard's persisted layout
// and API payloads exactly; renaming a tag is a breaking change for every
// browser that already holds saved data.
package models
