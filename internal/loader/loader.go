package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/snapshot"
)

// Source file names expected inside the data directory
const (
	TripsFile     = "trip_details.csv"
	LocationsFile = "locations.csv"
)

// Load reads and cleans the dataset from dataDir and builds an immutable
// snapshot plus its load report. The snapshot is not published here;
// the dataset service persists it and swaps it in atomically.
func Load(dataDir string) (*snapshot.Snapshot, error) {
	locationRecords, err := readFile(filepath.Join(dataDir, LocationsFile), ReadLocationRecords)
	if err != nil {
		return nil, err
	}
	tripRecords, err := readFile(filepath.Join(dataDir, TripsFile), ReadTripRecords)
	if err != nil {
		return nil, err
	}

	locations, duplicates, err := DedupLocations(locationRecords)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("location dimension is empty")
	}

	trips, stats := CleanTrips(tripRecords, locations)

	var calendar []models.CalendarDay
	if len(trips) > 0 {
		start, end := tripDateRange(trips)
		calendar = BuildCalendar(start, end)
	}

	loadedAt := time.Now().UTC()
	report := models.LoadReport{
		LoadID:                uuid.NewString(),
		LoadedAt:              loadedAt,
		TripsLoaded:           len(trips),
		Locations:             len(locations),
		CalendarDays:          len(calendar),
		NullsNormalized:       stats.NullsNormalized,
		DuplicateLocations:    duplicates,
		ReferentialViolations: stats.ReferentialViolations,
		InvariantViolations:   stats.InvariantViolations,
		UnparsableRows:        stats.UnparsableRows,
	}
	if len(calendar) > 0 {
		report.CalendarStart = calendar[0].Date
		report.CalendarEnd = calendar[len(calendar)-1].Date
	}

	return snapshot.New(report.LoadID, loadedAt, trips, locations, calendar, report), nil
}

func readFile[T any](path string, read func(r io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}

func tripDateRange(trips []models.Trip) (time.Time, time.Time) {
	start, end := trips[0].PickupTime, trips[0].PickupTime
	for _, t := range trips[1:] {
		if t.PickupTime.Before(start) {
			start = t.PickupTime
		}
		if t.PickupTime.After(end) {
			end = t.PickupTime
		}
	}
	return start, end
}
