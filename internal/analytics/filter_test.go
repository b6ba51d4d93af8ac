package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rideboard/trips-backend-go/internal/models"
)

func filterTrips(t *testing.T) []models.Trip {
	t.Helper()
	mk := func(day string, hour int, pickupLoc int64, vehicle, payment string) models.Trip {
		pickup := mustTime(t, day+" 00:00:00").Add(time.Duration(hour) * time.Hour)
		return models.Trip{
			PickupTime:        pickup,
			DropoffTime:       pickup.Add(20 * time.Minute),
			PickupLocationID:  pickupLoc,
			DropoffLocationID: 101,
			VehicleType:       vehicle,
			PaymentType:       payment,
			DayNight:          DayNightFlag(pickup),
		}
	}
	return []models.Trip{
		mk("2024-06-01", 8, 101, "Sedan", "Card"),
		mk("2024-06-02", 22, 102, "SUV", "Cash"),
		mk("2024-06-03", 9, 103, "Sedan", "Cash"),
	}
}

func TestFilterDateRange(t *testing.T) {
	trips := filterTrips(t)
	s := testSnapshot(trips)

	got := Filter(s, models.EvaluateFilter{StartDate: "2024-06-02", EndDate: "2024-06-02"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(102), got[0].PickupLocationID)

	// Bounds are inclusive
	got = Filter(s, models.EvaluateFilter{StartDate: "2024-06-01", EndDate: "2024-06-03"})
	assert.Len(t, got, 3)
}

func TestFilterCityUsesPickupRelationship(t *testing.T) {
	trips := filterTrips(t)
	s := testSnapshot(trips)

	// Trip 3 picks up in Chicago but drops off in New York; the city
	// filter traverses the active pickup join only
	got := Filter(s, models.EvaluateFilter{City: "Chicago"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(103), got[0].PickupLocationID)

	got = Filter(s, models.EvaluateFilter{City: "New York"})
	assert.Len(t, got, 2)
}

func TestFilterCategorical(t *testing.T) {
	trips := filterTrips(t)
	s := testSnapshot(trips)

	assert.Len(t, Filter(s, models.EvaluateFilter{VehicleType: "Sedan"}), 2)
	assert.Len(t, Filter(s, models.EvaluateFilter{PaymentType: "Cash"}), 2)
	assert.Len(t, Filter(s, models.EvaluateFilter{VehicleType: "Sedan", PaymentType: "Cash"}), 1)
	assert.Len(t, Filter(s, models.EvaluateFilter{DayNight: "Night"}), 1)
	assert.Len(t, Filter(s, models.EvaluateFilter{PickupLocationID: 101}), 1)
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	trips := filterTrips(t)
	s := testSnapshot(trips)

	got := Filter(s, models.EvaluateFilter{})
	assert.Len(t, got, len(trips))
}
