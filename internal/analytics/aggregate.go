package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/rideboard/trips-backend-go/internal/models"
)

// TotalBookings counts the trips in the filter context
func TotalBookings(trips []models.Trip) int64 {
	return int64(len(trips))
}

// TotalBookingValue sums fare plus surge over the filter context.
// Missing fares and surges were normalized to 0 at load, so an empty
// set sums to exactly 0.
func TotalBookingValue(trips []models.Trip) float64 {
	var sum float64
	for _, t := range trips {
		sum += t.FareAmount + t.SurgeFee
	}
	return sum
}

// AvgBookingValue divides total booking value by total bookings.
// ok is false on an empty set: the result is "no value", not 0.
func AvgBookingValue(trips []models.Trip) (float64, bool) {
	n := len(trips)
	if n == 0 {
		return 0, false
	}
	return TotalBookingValue(trips) / float64(n), true
}

// TotalTripDistance sums trip distance in miles over the filter context
func TotalTripDistance(trips []models.Trip) float64 {
	var sum float64
	for _, t := range trips {
		sum += t.TripDistance
	}
	return sum
}

// AvgTripDistance returns the mean trip distance in miles.
// ok is false on an empty set.
func AvgTripDistance(trips []models.Trip) (float64, bool) {
	n := len(trips)
	if n == 0 {
		return 0, false
	}
	return TotalTripDistance(trips) / float64(n), true
}

// AvgTripTime returns the mean of per-row trip durations, each floored
// to whole minutes before averaging. The per-row difference comes first;
// averaging mean timestamps would be wrong for any skewed set.
// ok is false on an empty set.
func AvgTripTime(trips []models.Trip) (float64, bool) {
	n := len(trips)
	if n == 0 {
		return 0, false
	}

	var sum int64
	for _, t := range trips {
		sum += int64(t.DropoffTime.Sub(t.PickupTime) / time.Minute)
	}
	return float64(sum) / float64(n), true
}

// DayNightFlag classifies a pickup time. Hours 6 through 19 are Day,
// both boundaries inclusive.
func DayNightFlag(pickup time.Time) string {
	h := pickup.Hour()
	if h >= 6 && h <= 19 {
		return models.DayNightDay
	}
	return models.DayNightNight
}

// FormatMiles renders a distance rounded to whole miles for display
func FormatMiles(miles float64) string {
	return fmt.Sprintf("%d miles", int64(math.Round(miles)))
}

// FormatMinutes renders a duration in whole minutes for display.
// The mean is truncated, not rounded: 27.5 displays as "27 Min".
func FormatMinutes(minutes float64) string {
	return fmt.Sprintf("%d Min", int64(minutes))
}

// FormatMoney renders a monetary value for display
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
