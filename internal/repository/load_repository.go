package repository

import (
	"database/sql"
	"fmt"

	"github.com/rideboard/trips-backend-go/internal/models"
)

// LoadRepository handles database operations for load reports
type LoadRepository struct {
	db *sql.DB
}

// NewLoadRepository creates a new load repository
func NewLoadRepository(db *sql.DB) *LoadRepository {
	return &LoadRepository{db: db}
}

// Insert records a load report within a refresh transaction
func (r *LoadRepository) Insert(tx *sql.Tx, report models.LoadReport) error {
	_, err := tx.Exec(`
		INSERT INTO dataset_loads (
			load_id, loaded_at, trips_loaded, locations, calendar_days,
			calendar_start, calendar_end, nulls_normalized, duplicate_locations,
			referential_violations, invariant_violations, unparsable_rows
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		report.LoadID, fmtTime(report.LoadedAt), report.TripsLoaded, report.Locations,
		report.CalendarDays, report.CalendarStart, report.CalendarEnd,
		report.NullsNormalized, report.DuplicateLocations,
		report.ReferentialViolations, report.InvariantViolations, report.UnparsableRows,
	)
	if err != nil {
		return fmt.Errorf("failed to insert load report: %w", err)
	}
	return nil
}

// GetRecent retrieves the most recent load reports, newest first
func (r *LoadRepository) GetRecent(limit int) ([]models.LoadReport, error) {
	if limit < 1 {
		limit = 10
	}

	rows, err := r.db.Query(`
		SELECT id, load_id, loaded_at, trips_loaded, locations, calendar_days,
			calendar_start, calendar_end, nulls_normalized, duplicate_locations,
			referential_violations, invariant_violations, unparsable_rows
		FROM dataset_loads
		ORDER BY loaded_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query load reports: %w", err)
	}
	defer rows.Close()

	var reports []models.LoadReport
	for rows.Next() {
		var rep models.LoadReport
		err := rows.Scan(
			&rep.ID, &rep.LoadID, &rep.LoadedAt, &rep.TripsLoaded, &rep.Locations,
			&rep.CalendarDays, &rep.CalendarStart, &rep.CalendarEnd,
			&rep.NullsNormalized, &rep.DuplicateLocations,
			&rep.ReferentialViolations, &rep.InvariantViolations, &rep.UnparsableRows,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan load report: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}
