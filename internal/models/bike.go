package models

import "time"

// BikeProfile describes the rider's e-bike and its cumulative stats.
// There is exactly one profile per storage scope; saving replaces it
// wholesale and it is never deleted.
type BikeProfile struct {
	// ModelName is the display name of the bike (e.g., "VoltLink 350R").
	ModelName string `json:"modelName"`

	// TotalMiles is the odometer reading. Never negative.
	TotalMiles float64 `json:"totalMiles"`

	// AverageSpeed is the rider's average speed in mph. Never negative.
	AverageSpeed float64 `json:"averageSpeed"`

	// LastMaintenance is the date of the most recent service
	// in YYYY-MM-DD form.
	LastMaintenance string `json:"lastMaintenance"`
}

// DefaultBikeProfile returns the profile seeded on first ever load.
// LastMaintenance is frozen to the day the default is created; once
// persisted the same date comes back on every subsequent load.
func DefaultBikeProfile(now time.Time) BikeProfile {
	return BikeProfile{
		ModelName:       "VoltLink 350R",
		TotalMiles:      142,
		AverageSpeed:    18.5,
		LastMaintenance: now.Format(DateLayout),
	}
}

// DateLayout is the date form used across all records (ISO date only).
const DateLayout = "2006-01-02"
