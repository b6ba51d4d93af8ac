package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rideboard/trips-backend-go/internal/analytics"
	"github.com/rideboard/trips-backend-go/internal/models"
)

// CleanStats counts what cleaning did to the fact rows
type CleanStats struct {
	NullsNormalized       int
	ReferentialViolations int
	InvariantViolations   int
	UnparsableRows        int
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// DedupLocations coerces and deduplicates the location dimension.
// Duplicate location_id rows keep the first occurrence; the collision
// count is reported, not silently dropped.
func DedupLocations(records []LocationRecord) ([]models.Location, int, error) {
	seen := make(map[int64]bool, len(records))
	locations := make([]models.Location, 0, len(records))
	duplicates := 0

	for i, rec := range records {
		id, err := strconv.ParseInt(strings.TrimSpace(rec.LocationID), 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("locations row %d: invalid location_id %q", i+1, rec.LocationID)
		}
		if seen[id] {
			duplicates++
			continue
		}
		seen[id] = true
		locations = append(locations, models.Location{
			LocationID:   id,
			LocationName: strings.TrimSpace(rec.LocationName),
			City:         strings.TrimSpace(rec.City),
		})
	}

	return locations, duplicates, nil
}

// CleanTrips coerces raw trip rows, normalizes null numerics to 0, and
// quarantines rows that violate referential integrity or the row
// invariants (dropoff >= pickup, non-negative measures). Quarantined
// rows never reach the fact table.
func CleanTrips(records []TripRecord, locations []models.Location) ([]models.Trip, CleanStats) {
	known := make(map[int64]bool, len(locations))
	for _, loc := range locations {
		known[loc.LocationID] = true
	}

	var stats CleanStats
	trips := make([]models.Trip, 0, len(records))

	for _, rec := range records {
		trip, ok := cleanTrip(rec, known, &stats)
		if !ok {
			continue
		}
		trips = append(trips, trip)
	}

	return trips, stats
}

func cleanTrip(rec TripRecord, known map[int64]bool, stats *CleanStats) (models.Trip, bool) {
	pickupID, err1 := strconv.ParseInt(strings.TrimSpace(rec.PickupLocationID), 10, 64)
	dropoffID, err2 := strconv.ParseInt(strings.TrimSpace(rec.DropoffLocationID), 10, 64)
	pickupTime, err3 := parseTime(rec.PickupTime)
	dropoffTime, err4 := parseTime(rec.DropoffTime)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || strings.TrimSpace(rec.TripID) == "" {
		stats.UnparsableRows++
		return models.Trip{}, false
	}

	if !known[pickupID] || !known[dropoffID] {
		stats.ReferentialViolations++
		return models.Trip{}, false
	}

	distance := normalizeNumeric(rec.TripDistance, stats)
	fare := normalizeNumeric(rec.FareAmount, stats)
	surge := normalizeNumeric(rec.SurgeFee, stats)

	if dropoffTime.Before(pickupTime) || distance < 0 || fare < 0 || surge < 0 {
		stats.InvariantViolations++
		return models.Trip{}, false
	}

	passengers, _ := strconv.Atoi(strings.TrimSpace(rec.PassengerCount))

	return models.Trip{
		TripID:            strings.TrimSpace(rec.TripID),
		PickupTime:        pickupTime,
		DropoffTime:       dropoffTime,
		PickupLocationID:  pickupID,
		DropoffLocationID: dropoffID,
		TripDistance:      distance,
		FareAmount:        fare,
		SurgeFee:          surge,
		PassengerCount:    passengers,
		VehicleType:       strings.TrimSpace(rec.VehicleType),
		PaymentType:       strings.TrimSpace(rec.PaymentType),
		DayNight:          analytics.DayNightFlag(pickupTime),
	}, true
}

// normalizeNumeric parses a numeric field, mapping null-ish values to 0
// and counting each normalization
func normalizeNumeric(s string, stats *CleanStats) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "na") {
		stats.NullsNormalized++
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		stats.NullsNormalized++
		return 0
	}
	return v
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
