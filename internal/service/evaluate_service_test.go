package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rideboard/trips-backend-go/internal/metrics"
	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/snapshot"
)

func serviceFixture(t *testing.T) *EvaluateService {
	t.Helper()

	locations := []models.Location{
		{LocationID: 1, LocationName: "Midtown", City: "New York"},
		{LocationID: 2, LocationName: "Downtown", City: "Chicago"},
	}

	mk := func(id string, day string, pickupLoc int64, fare float64) models.Trip {
		pickup, err := time.Parse("2006-01-02 15:04:05", day+" 08:00:00")
		require.NoError(t, err)
		return models.Trip{
			TripID:     id,
			PickupTime: pickup, DropoffTime: pickup.Add(30 * time.Minute),
			PickupLocationID: pickupLoc, DropoffLocationID: 1,
			TripDistance: 2, FareAmount: fare,
			DayNight: models.DayNightDay,
		}
	}
	trips := []models.Trip{
		mk("T1", "2024-06-01", 1, 10),
		mk("T2", "2024-06-02", 2, 20),
		mk("T3", "2024-06-03", 1, 30),
	}

	store := snapshot.NewStore()
	store.Publish(snapshot.New("s1", time.Now(), trips, locations, nil, models.LoadReport{}))

	return NewEvaluateService(store, metrics.NewDefaultRegistry())
}

func TestEvaluateDefaultMetric(t *testing.T) {
	s := serviceFixture(t)

	// Empty metric name resolves the first entry of the measure table
	result, err := s.Evaluate("", models.EvaluateFilter{})
	require.NoError(t, err)
	assert.Equal(t, metrics.MetricTotalBookings, result.Metric)
	assert.Equal(t, "3", result.Formatted)
}

func TestEvaluateFilterContextStableAcrossSwitch(t *testing.T) {
	s := serviceFixture(t)
	filter := models.EvaluateFilter{City: "New York"}

	// Same filter context, three different metrics: the filter keeps
	// selecting the same two trips while only the series changes
	bookings, err := s.Evaluate(metrics.MetricTotalBookings, filter)
	require.NoError(t, err)
	assert.Equal(t, "2", bookings.Formatted)

	value, err := s.Evaluate(metrics.MetricTotalBookingValue, filter)
	require.NoError(t, err)
	assert.Equal(t, "$40.00", value.Formatted)

	avg, err := s.Evaluate(metrics.MetricAvgBookingValue, filter)
	require.NoError(t, err)
	assert.Equal(t, "$20.00", avg.Formatted)
}

func TestEvaluateUnknownMetric(t *testing.T) {
	s := serviceFixture(t)
	_, err := s.Evaluate("bogus", models.EvaluateFilter{})
	assert.ErrorIs(t, err, metrics.ErrUnknownMetric)
}

func TestEvaluateInvalidFilter(t *testing.T) {
	s := serviceFixture(t)

	_, err := s.Evaluate("", models.EvaluateFilter{StartDate: "June 1st"})
	assert.Error(t, err)

	_, err = s.Evaluate("", models.EvaluateFilter{StartDate: "2024-06-02", EndDate: "2024-06-01"})
	assert.Error(t, err)

	_, err = s.Evaluate("", models.EvaluateFilter{DayNight: "Dusk"})
	assert.Error(t, err)
}

func TestEvaluateNotLoaded(t *testing.T) {
	s := NewEvaluateService(snapshot.NewStore(), metrics.NewDefaultRegistry())
	_, err := s.Evaluate("", models.EvaluateFilter{})
	assert.ErrorIs(t, err, snapshot.ErrNotLoaded)
}

func TestEvaluateEmptyResultNoValue(t *testing.T) {
	s := serviceFixture(t)

	result, err := s.Evaluate(metrics.MetricAvgBookingValue, models.EvaluateFilter{City: "Nowhere"})
	require.NoError(t, err)
	assert.True(t, result.NoData)
}

func TestListMetrics(t *testing.T) {
	s := serviceFixture(t)
	list := s.ListMetrics()
	require.NotEmpty(t, list)
	assert.Equal(t, metrics.MetricTotalBookings, list[0].Name)
}
