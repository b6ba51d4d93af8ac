package models

import "time"

// Trip represents one row of the Trip Details fact table
type Trip struct {
	ID int64 `json:"id" db:"id"`

	TripID string `json:"trip_id" db:"trip_id"`

	// Temporal info
	PickupTime  time.Time `json:"pickup_time" db:"pickup_time"`
	DropoffTime time.Time `json:"dropoff_time" db:"dropoff_time"`

	// Location foreign keys; pickup is the active relationship,
	// dropoff is joined explicitly per query
	PickupLocationID  int64 `json:"pickup_location_id" db:"pickup_location_id"`
	DropoffLocationID int64 `json:"dropoff_location_id" db:"dropoff_location_id"`

	// Measures (nulls normalized to 0 at load)
	TripDistance float64 `json:"trip_distance" db:"trip_distance"` // Miles
	FareAmount   float64 `json:"fare_amount" db:"fare_amount"`
	SurgeFee     float64 `json:"surge_fee" db:"surge_fee"`

	// Categorical attributes
	PassengerCount int    `json:"passenger_count" db:"passenger_count"`
	VehicleType    string `json:"vehicle_type" db:"vehicle_type"`
	PaymentType    string `json:"payment_type" db:"payment_type"`

	// Derived from pickup hour at load time
	DayNight string `json:"day_night" db:"day_night"`
}

// DayNight constants; pickup hours 6 through 19 inclusive are Day
const (
	DayNightDay   = "Day"
	DayNightNight = "Night"
)

// Duration returns the trip duration
func (t *Trip) Duration() time.Duration {
	return t.DropoffTime.Sub(t.PickupTime)
}

// BookingValue returns fare plus surge for this trip
func (t *Trip) BookingValue() float64 {
	return t.FareAmount + t.SurgeFee
}

// TripsResponse represents a paginated response of trips
type TripsResponse struct {
	Data       []Trip `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}
