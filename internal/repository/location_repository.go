package repository

import (
	"database/sql"
	"fmt"

	"github.com/rideboard/trips-backend-go/internal/models"
)

// LocationRepository handles database operations for the location dimension
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// GetLocations retrieves the location dimension, optionally filtered by city
func (r *LocationRepository) GetLocations(city string) ([]models.Location, error) {
	query := "SELECT location_id, location_name, city FROM locations"
	var args []interface{}
	if city != "" {
		query += " WHERE city = ?"
		args = append(args, city)
	}
	query += " ORDER BY location_id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.LocationID, &loc.LocationName, &loc.City); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

// GetCities retrieves the distinct cities in the dimension
func (r *LocationRepository) GetCities() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT city FROM locations ORDER BY city")
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, city)
	}

	return cities, rows.Err()
}

// ReplaceAll replaces the dimension contents within a refresh transaction
func (r *LocationRepository) ReplaceAll(tx *sql.Tx, locations []models.Location) error {
	if _, err := tx.Exec("DELETE FROM locations"); err != nil {
		return fmt.Errorf("failed to clear locations: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO locations (location_id, location_name, city) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare location insert: %w", err)
	}
	defer stmt.Close()

	for _, loc := range locations {
		if _, err := stmt.Exec(loc.LocationID, loc.LocationName, loc.City); err != nil {
			return fmt.Errorf("failed to insert location %d: %w", loc.LocationID, err)
		}
	}

	return nil
}
