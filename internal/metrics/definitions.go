package metrics

import (
	"errors"
	"fmt"

	"github.com/rideboard/trips-backend-go/internal/analytics"
	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/snapshot"
)

// Metric name constants
const (
	MetricTotalBookings            = "total_bookings"
	MetricTotalBookingValue        = "total_booking_value"
	MetricAvgBookingValue          = "avg_booking_value"
	MetricTotalTripDistance        = "total_trip_distance"
	MetricAvgTripDistance          = "avg_trip_distance"
	MetricAvgTripTime              = "avg_trip_time"
	MetricMostFrequentPickupPoint  = "most_frequent_pickup_point"
	MetricMostFrequentDropoffPoint = "most_frequent_dropoff_point"
	MetricFarthestTrip             = "farthest_trip"
)

// NewDefaultRegistry builds the built-in dynamic measure table
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	defs := []Definition{
		{
			MetricDefinition: models.MetricDefinition{Name: MetricTotalBookings, DisplayName: "Total Bookings", SortOrder: 1},
			Eval: func(s *snapshot.Snapshot, trips []models.Trip) (models.MetricResult, error) {
				n := analytics.TotalBookings(trips)
				return models.MetricResult{Metric: MetricTotalBookings, Value: n, Formatted: fmt.Sprintf("%d", n)}, nil
			},
		},
		{
			MetricDefinition: models.MetricDefinition{Name: MetricTotalBookingValue, DisplayName: "Total Booking Value", SortOrder: 2},
			Eval: func(s *snapshot.Snapshot, trips []models.Trip) (models.MetricResult, error) {
				v := analytics.TotalBookingValue(trips)
				return models.MetricResult{Metric: MetricTotalBookingValue, Value: v, Formatted: analytics.FormatMoney(v)}, nil
			},
		},
		{
			MetricDefinition: models.MetricDefinition{Name: MetricAvgBookingValue, DisplayName: "Avg Booking Value", SortOrder: 3},
			Eval: func(s *snapshot.Snapshot, trips []models.Trip) (models.MetricResult, error) {
				v, ok := analytics.AvgBookingValue(trips)
				if !ok {
					return noData(MetricAvgBookingValue), nil
				}
				return models.MetricResult{Metric: MetricAvgBookingValue, Value: v, Formatted: analytics.FormatMoney(v)}, nil
			},
		},
		{
			MetricDefinition: models.MetricDefinition{Name: MetricTotalTripDistance, DisplayName: "Total Trip Distance", SortOrder: 4},
			Eval: func(s *snapshot.Snapshot, trips []models.Trip) (models.MetricResult, error) {
				v := analytics.TotalTripDistance(trips)
				return models.MetricResult{Metric: MetricTotalTripDistance, Value: v, Formatted: analytics.FormatMiles(v)}, nil
			},
		},
		{
			MetricDefinition: models.MetricDefinition{Name: MetricAvgTripDistance, DisplayName: "Avg Trip Distance", SortOrder: 5},
			Eval: func(s *snapshot.Snapshot, trips []models.Trip) (models.MetricResult, error) {
				v, ok := analytics.AvgTripDistance(trips)
				if !ok {
					return noData(MetricAvgTripDistance), nil
				}
				return models.MetricResult{Metric: MetricAvgTripDistance, Value: v, Formatted: analytics.FormatMiles(v)}, nil
			},
		},
		{
			MetricDefinition: models.MetricDefinition{Name: MetricAvgTripTime, DisplayName: "Avg Trip Time", SortOrder: 6},
			Eval: func(s *snapshot.Snapshot, trips []models.Trip) (models.MetricResult, error) {
				v, ok := analytics.AvgTripTime(trips)
				if !ok {
					return noData(MetricAvgTripTime), nil
				}
				return models.MetricResult{Metric: MetricAvgTripTime, Value: v, Formatted: analytics.FormatMinutes(v)}, nil
			},
		},
		{
			MetricDefinition: models.MetricDefinition{Name: MetricMostFrequentPickupPoint, DisplayName: "Most Frequent Pickup Point", SortOrder: 7},
			Eval: func(s *snapshot.Snapshot, trips []models.Trip) (models.MetricResult, error) {
				name, count, ok := analytics.MostFrequentPickup(s, trips)
				if !ok {
					return noData(MetricMostFrequentPickupPoint), nil
				}
				return models.MetricResult{
					Metric:    MetricMostFrequentPickupPoint,
					Value:     count,
					Formatted: name,
				}, nil
			},
		},
		{
			MetricDefinition: models.MetricDefinition{Name: MetricMostFrequentDropoffPoint, DisplayName: "Most Frequent Dropoff Point", SortOrder: 8},
			Eval: func(s *snapshot.Snapshot, trips []models.Trip) (models.MetricResult, error) {
				names, count, ok := analytics.MostFrequentDropoff(s, trips)
				if !ok {
					return noData(MetricMostFrequentDropoffPoint), nil
				}
				return models.MetricResult{
					Metric:    MetricMostFrequentDropoffPoint,
					Value:     count,
					Formatted: names,
				}, nil
			},
		},
		{
			MetricDefinition: models.MetricDefinition{Name: MetricFarthestTrip, DisplayName: "Farthest Trip", SortOrder: 9},
			Eval: func(s *snapshot.Snapshot, trips []models.Trip) (models.MetricResult, error) {
				formatted, dist, err := analytics.FarthestTrip(s, trips)
				if errors.Is(err, analytics.ErrNoData) {
					return noData(MetricFarthestTrip), nil
				}
				if err != nil {
					return models.MetricResult{}, err
				}
				return models.MetricResult{Metric: MetricFarthestTrip, Value: dist, Formatted: formatted}, nil
			},
		},
	}

	for _, def := range defs {
		// Names are unique constants; Register cannot fail here
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}

	return r
}

func noData(metric string) models.MetricResult {
	return models.MetricResult{Metric: metric, NoData: true}
}
