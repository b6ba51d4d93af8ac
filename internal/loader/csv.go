package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// TripRecord is one raw, untyped row of the trip details source file.
// Cleaning and type coercion happen in CleanTrips.
type TripRecord struct {
	TripID            string
	PickupTime        string
	DropoffTime       string
	PickupLocationID  string
	DropoffLocationID string
	PassengerCount    string
	TripDistance      string
	FareAmount        string
	SurgeFee          string
	VehicleType       string
	PaymentType       string
}

// LocationRecord is one raw row of the location source file
type LocationRecord struct {
	LocationID   string
	LocationName string
	City         string
}

var tripColumns = []string{
	"trip_id", "pickup_time", "dropoff_time",
	"pickup_location_id", "dropoff_location_id",
	"passenger_count", "trip_distance", "fare_amount", "surge_fee",
	"vehicle_type", "payment_type",
}

var locationColumns = []string{"location_id", "location", "city"}

// ReadTripRecords parses the trip details CSV. Columns are matched by
// header name, so source column order does not matter.
func ReadTripRecords(r io.Reader) ([]TripRecord, error) {
	rows, idx, err := readCSV(r, tripColumns)
	if err != nil {
		return nil, fmt.Errorf("trip details: %w", err)
	}

	records := make([]TripRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, TripRecord{
			TripID:            row[idx["trip_id"]],
			PickupTime:        row[idx["pickup_time"]],
			DropoffTime:       row[idx["dropoff_time"]],
			PickupLocationID:  row[idx["pickup_location_id"]],
			DropoffLocationID: row[idx["dropoff_location_id"]],
			PassengerCount:    row[idx["passenger_count"]],
			TripDistance:      row[idx["trip_distance"]],
			FareAmount:        row[idx["fare_amount"]],
			SurgeFee:          row[idx["surge_fee"]],
			VehicleType:       row[idx["vehicle_type"]],
			PaymentType:       row[idx["payment_type"]],
		})
	}
	return records, nil
}

// ReadLocationRecords parses the location dimension CSV
func ReadLocationRecords(r io.Reader) ([]LocationRecord, error) {
	rows, idx, err := readCSV(r, locationColumns)
	if err != nil {
		return nil, fmt.Errorf("locations: %w", err)
	}

	records := make([]LocationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, LocationRecord{
			LocationID:   row[idx["location_id"]],
			LocationName: row[idx["location"]],
			City:         row[idx["city"]],
		})
	}
	return records, nil
}

func readCSV(r io.Reader, required []string) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", col)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, idx, nil
}
