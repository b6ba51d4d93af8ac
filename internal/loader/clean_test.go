package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rideboard/trips-backend-go/internal/models"
)

func testLocations() []models.Location {
	return []models.Location{
		{LocationID: 1, LocationName: "Midtown", City: "New York"},
		{LocationID: 2, LocationName: "Airport", City: "New York"},
	}
}

func record(tripID, pickup, dropoff, pickupLoc, dropoffLoc string) TripRecord {
	return TripRecord{
		TripID:            tripID,
		PickupTime:        pickup,
		DropoffTime:       dropoff,
		PickupLocationID:  pickupLoc,
		DropoffLocationID: dropoffLoc,
		TripDistance:      "1.5",
		FareAmount:        "10",
		SurgeFee:          "0",
		PassengerCount:    "1",
		VehicleType:       "Sedan",
		PaymentType:       "Card",
	}
}

func TestCleanTripsAccepts(t *testing.T) {
	records := []TripRecord{
		record("T1", "2024-06-01 06:00:00", "2024-06-01 06:15:00", "1", "2"),
	}

	trips, stats := CleanTrips(records, testLocations())
	require.Len(t, trips, 1)
	assert.Equal(t, CleanStats{}, stats)

	got := trips[0]
	assert.Equal(t, "T1", got.TripID)
	assert.Equal(t, int64(1), got.PickupLocationID)
	assert.Equal(t, models.DayNightDay, got.DayNight)
	assert.Equal(t, 1.5, got.TripDistance)
}

func TestCleanTripsNullNormalization(t *testing.T) {
	rec := record("T1", "2024-06-01 06:00:00", "2024-06-01 06:15:00", "1", "2")
	rec.FareAmount = ""
	rec.SurgeFee = "NULL"
	rec.TripDistance = "na"

	trips, stats := CleanTrips([]TripRecord{rec}, testLocations())
	require.Len(t, trips, 1)
	assert.Equal(t, 3, stats.NullsNormalized)
	assert.Equal(t, 0.0, trips[0].FareAmount)
	assert.Equal(t, 0.0, trips[0].SurgeFee)
	assert.Equal(t, 0.0, trips[0].TripDistance)
}

func TestCleanTripsReferentialQuarantine(t *testing.T) {
	records := []TripRecord{
		record("T1", "2024-06-01 06:00:00", "2024-06-01 06:15:00", "1", "99"),
		record("T2", "2024-06-01 07:00:00", "2024-06-01 07:15:00", "99", "2"),
		record("T3", "2024-06-01 08:00:00", "2024-06-01 08:15:00", "1", "2"),
	}

	trips, stats := CleanTrips(records, testLocations())
	assert.Len(t, trips, 1)
	assert.Equal(t, 2, stats.ReferentialViolations)
}

func TestCleanTripsInvariantQuarantine(t *testing.T) {
	// Dropoff before pickup
	bad := record("T1", "2024-06-01 06:15:00", "2024-06-01 06:00:00", "1", "2")
	// Negative distance
	neg := record("T2", "2024-06-01 06:00:00", "2024-06-01 06:15:00", "1", "2")
	neg.TripDistance = "-3"

	trips, stats := CleanTrips([]TripRecord{bad, neg}, testLocations())
	assert.Len(t, trips, 0)
	assert.Equal(t, 2, stats.InvariantViolations)
}

func TestCleanTripsUnparsableQuarantine(t *testing.T) {
	bad := record("T1", "yesterday", "2024-06-01 06:15:00", "1", "2")
	noID := record("", "2024-06-01 06:00:00", "2024-06-01 06:15:00", "1", "2")

	trips, stats := CleanTrips([]TripRecord{bad, noID}, testLocations())
	assert.Len(t, trips, 0)
	assert.Equal(t, 2, stats.UnparsableRows)
}

func TestDedupLocationsFirstWins(t *testing.T) {
	records := []LocationRecord{
		{LocationID: "1", LocationName: "Midtown", City: "New York"},
		{LocationID: "1", LocationName: "Midtown Copy", City: "New York"},
		{LocationID: "2", LocationName: "Airport", City: "New York"},
	}

	locations, duplicates, err := DedupLocations(records)
	require.NoError(t, err)
	assert.Equal(t, 1, duplicates)
	require.Len(t, locations, 2)
	assert.Equal(t, "Midtown", locations[0].LocationName)
}

func TestDedupLocationsBadID(t *testing.T) {
	records := []LocationRecord{
		{LocationID: "abc", LocationName: "Midtown", City: "New York"},
	}

	_, _, err := DedupLocations(records)
	assert.Error(t, err)
}
