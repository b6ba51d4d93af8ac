package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rideboard/trips-backend-go/internal/models"
)

// TripRepository handles database operations for the trip fact table
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

const tripColumns = `id, trip_id, pickup_time, dropoff_time,
	pickup_location_id, dropoff_location_id,
	trip_distance, fare_amount, surge_fee,
	passenger_count, vehicle_type, payment_type, day_night`

// GetTrips retrieves trips with filtering and pagination
func (r *TripRepository) GetTrips(filter models.TripFilter) ([]models.Trip, int64, error) {
	query := "SELECT " + tripColumns + " FROM trip_details"

	var conditions []string
	var args []interface{}

	if filter.StartDate != "" {
		conditions = append(conditions, "date(pickup_time) >= ?")
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		conditions = append(conditions, "date(pickup_time) <= ?")
		args = append(args, filter.EndDate)
	}
	if filter.PickupLocationID > 0 {
		conditions = append(conditions, "pickup_location_id = ?")
		args = append(args, filter.PickupLocationID)
	}
	if filter.DropoffLocationID > 0 {
		conditions = append(conditions, "dropoff_location_id = ?")
		args = append(args, filter.DropoffLocationID)
	}
	if filter.VehicleType != "" {
		conditions = append(conditions, "vehicle_type = ?")
		args = append(args, filter.VehicleType)
	}
	if filter.PaymentType != "" {
		conditions = append(conditions, "payment_type = ?")
		args = append(args, filter.PaymentType)
	}
	if filter.DayNight != "" {
		conditions = append(conditions, "day_night = ?")
		args = append(args, filter.DayNight)
	}
	if filter.MinDistance > 0 {
		conditions = append(conditions, "trip_distance >= ?")
		args = append(args, filter.MinDistance)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM trip_details"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	offset := (filter.Page - 1) * filter.PageSize
	query += " ORDER BY pickup_time DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, err
		}
		trips = append(trips, t)
	}

	return trips, total, rows.Err()
}

// GetTripByTripID retrieves a single trip by its business key
func (r *TripRepository) GetTripByTripID(tripID string) (*models.Trip, error) {
	query := "SELECT " + tripColumns + " FROM trip_details WHERE trip_id = ?"

	row := r.db.QueryRow(query, tripID)
	t, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &t, nil
}

// ReplaceAll replaces the fact table contents within a refresh transaction
func (r *TripRepository) ReplaceAll(tx *sql.Tx, trips []models.Trip) error {
	if _, err := tx.Exec("DELETE FROM trip_details"); err != nil {
		return fmt.Errorf("failed to clear trip_details: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trip_details (
			trip_id, pickup_time, dropoff_time,
			pickup_location_id, dropoff_location_id,
			trip_distance, fare_amount, surge_fee,
			passenger_count, vehicle_type, payment_type, day_night
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare trip insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trips {
		_, err := stmt.Exec(
			t.TripID, fmtTime(t.PickupTime), fmtTime(t.DropoffTime),
			t.PickupLocationID, t.DropoffLocationID,
			t.TripDistance, t.FareAmount, t.SurgeFee,
			t.PassengerCount, t.VehicleType, t.PaymentType, t.DayNight,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip %s: %w", t.TripID, err)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// fmtTime stores timestamps as sqlite-native text so date() and
// ORDER BY work on the column
func fmtTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

func scanTrip(row rowScanner) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(
		&t.ID, &t.TripID, &t.PickupTime, &t.DropoffTime,
		&t.PickupLocationID, &t.DropoffLocationID,
		&t.TripDistance, &t.FareAmount, &t.SurgeFee,
		&t.PassengerCount, &t.VehicleType, &t.PaymentType, &t.DayNight,
	)
	if err == sql.ErrNoRows {
		return t, err
	}
	if err != nil {
		return t, fmt.Errorf("failed to scan trip: %w", err)
	}
	return t, nil
}
