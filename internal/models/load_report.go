package models

import "time"

// LoadReport summarizes one dataset load: what was accepted, what was
// cleaned, and what was quarantined. Quarantined rows never reach the
// fact table, so downstream joins are always resolvable.
type LoadReport struct {
	ID int64 `json:"id" db:"id"`

	LoadID   string    `json:"load_id" db:"load_id"` // UUID
	LoadedAt time.Time `json:"loaded_at" db:"loaded_at"`

	// Row counts
	TripsLoaded   int    `json:"trips_loaded" db:"trips_loaded"`
	Locations     int    `json:"locations" db:"locations"`
	CalendarDays  int    `json:"calendar_days" db:"calendar_days"`
	CalendarStart string `json:"calendar_start" db:"calendar_start"` // YYYY-MM-DD
	CalendarEnd   string `json:"calendar_end" db:"calendar_end"`     // YYYY-MM-DD

	// Cleaning counters
	NullsNormalized    int `json:"nulls_normalized" db:"nulls_normalized"`
	DuplicateLocations int `json:"duplicate_locations" db:"duplicate_locations"`

	// Quarantine counters
	ReferentialViolations int `json:"referential_violations" db:"referential_violations"`
	InvariantViolations   int `json:"invariant_violations" db:"invariant_violations"`
	UnparsableRows        int `json:"unparsable_rows" db:"unparsable_rows"`
}

// Quarantined returns the total number of rejected fact rows
func (r *LoadReport) Quarantined() int {
	return r.ReferentialViolations + r.InvariantViolations + r.UnparsableRows
}
