package models

// Location represents one row of the Location dimension table
type Location struct {
	LocationID   int64  `json:"location_id" db:"location_id"`
	LocationName string `json:"location_name" db:"location_name"`
	City         string `json:"city" db:"city"`
}
