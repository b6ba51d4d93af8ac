package models

// EvaluateFilter represents the filter context of an evaluate request.
// City and PickupLocationID traverse the active pickup relationship;
// metrics that need the dropoff side invoke that join explicitly.
type EvaluateFilter struct {
	StartDate        string `form:"startDate"` // YYYY-MM-DD, inclusive
	EndDate          string `form:"endDate"`   // YYYY-MM-DD, inclusive
	City             string `form:"city"`
	PickupLocationID int64  `form:"pickupLocationId"`
	VehicleType      string `form:"vehicleType"`
	PaymentType      string `form:"paymentType"`
	DayNight         string `form:"dayNight"` // Day or Night
}

// TripFilter represents filter parameters for browsing persisted trips
type TripFilter struct {
	StartDate         string  `form:"startDate"` // YYYY-MM-DD
	EndDate           string  `form:"endDate"`   // YYYY-MM-DD
	PickupLocationID  int64   `form:"pickupLocationId"`
	DropoffLocationID int64   `form:"dropoffLocationId"`
	VehicleType       string  `form:"vehicleType"`
	PaymentType       string  `form:"paymentType"`
	DayNight          string  `form:"dayNight"`
	MinDistance       float64 `form:"minDistance"` // Miles
	Page              int     `form:"page"`
	PageSize          int     `form:"pageSize"`
}
