package repository

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/rideboard/trips-backend-go/internal/database"
	"github.com/rideboard/trips-backend-go/internal/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func seed(t *testing.T, db *sql.DB) {
	t.Helper()

	locations := []models.Location{
		{LocationID: 1, LocationName: "Midtown", City: "New York"},
		{LocationID: 2, LocationName: "Airport", City: "New York"},
		{LocationID: 3, LocationName: "Downtown", City: "Chicago"},
	}
	calendar := []models.CalendarDay{
		{Date: "2024-06-01", DayName: "Saturday", DayNumber: 6, Month: 6, MonthName: "June", Year: 2024, WeekOfYear: 22, IsWeekend: true},
		{Date: "2024-06-02", DayName: "Sunday", DayNumber: 7, Month: 6, MonthName: "June", Year: 2024, WeekOfYear: 22, IsWeekend: true},
	}

	mk := func(id string, day string, hour int, pickupLoc, dropLoc int64, dist float64, vehicle string) models.Trip {
		pickup, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)
		pickup = pickup.Add(time.Duration(hour) * time.Hour)
		dayNight := models.DayNightNight
		if hour >= 6 && hour <= 19 {
			dayNight = models.DayNightDay
		}
		return models.Trip{
			TripID:     id,
			PickupTime: pickup, DropoffTime: pickup.Add(20 * time.Minute),
			PickupLocationID: pickupLoc, DropoffLocationID: dropLoc,
			TripDistance: dist, FareAmount: 10,
			VehicleType: vehicle, PaymentType: "Card",
			DayNight: dayNight,
		}
	}
	trips := []models.Trip{
		mk("T1", "2024-06-01", 8, 1, 2, 1.5, "Sedan"),
		mk("T2", "2024-06-01", 22, 2, 3, 4.0, "SUV"),
		mk("T3", "2024-06-02", 9, 3, 1, 2.5, "Sedan"),
	}

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, NewLocationRepository(db).ReplaceAll(tx, locations))
	require.NoError(t, NewCalendarRepository(db).ReplaceAll(tx, calendar))
	require.NoError(t, NewTripRepository(db).ReplaceAll(tx, trips))
	require.NoError(t, tx.Commit())
}

func TestTripRepositoryFilters(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewTripRepository(db)

	for _, c := range []struct {
		name   string
		filter models.TripFilter
		want   int64
	}{
		{"all", models.TripFilter{}, 3},
		{"date range", models.TripFilter{StartDate: "2024-06-02"}, 1},
		{"pickup location", models.TripFilter{PickupLocationID: 1}, 1},
		{"dropoff location", models.TripFilter{DropoffLocationID: 3}, 1},
		{"vehicle", models.TripFilter{VehicleType: "Sedan"}, 2},
		{"day night", models.TripFilter{DayNight: "Night"}, 1},
		{"min distance", models.TripFilter{MinDistance: 2.0}, 2},
	} {
		trips, total, err := repo.GetTrips(c.filter)
		require.NoError(t, err, c.name)
		assert.Equal(t, c.want, total, c.name)
		assert.Len(t, trips, int(c.want), c.name)
	}
}

func TestTripRepositoryPagination(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewTripRepository(db)

	trips, total, err := repo.GetTrips(models.TripFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, trips, 2)

	trips, _, err = repo.GetTrips(models.TripFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestTripRepositoryGetByTripID(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewTripRepository(db)

	trip, err := repo.GetTripByTripID("T2")
	require.NoError(t, err)
	require.NotNil(t, trip)
	assert.Equal(t, int64(2), trip.PickupLocationID)
	assert.Equal(t, models.DayNightNight, trip.DayNight)

	trip, err = repo.GetTripByTripID("missing")
	require.NoError(t, err)
	assert.Nil(t, trip)
}

func TestTripRepositoryReplaceAllClears(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewTripRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceAll(tx, nil))
	require.NoError(t, tx.Commit())

	_, total, err := repo.GetTrips(models.TripFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestLocationRepository(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewLocationRepository(db)

	locations, err := repo.GetLocations("")
	require.NoError(t, err)
	assert.Len(t, locations, 3)

	locations, err = repo.GetLocations("Chicago")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Downtown", locations[0].LocationName)

	cities, err := repo.GetCities()
	require.NoError(t, err)
	assert.Equal(t, []string{"Chicago", "New York"}, cities)
}

func TestCalendarRepository(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewCalendarRepository(db)

	days, err := repo.GetDays("", "")
	require.NoError(t, err)
	assert.Len(t, days, 2)

	days, err = repo.GetDays("2024-06-02", "")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "Sunday", days[0].DayName)
	assert.True(t, days[0].IsWeekend)
}

func TestLoadRepository(t *testing.T) {
	db := testDB(t)
	repo := NewLoadRepository(db)

	report := models.LoadReport{
		LoadID:   "load-1",
		LoadedAt: time.Now().UTC(),

		TripsLoaded: 2, Locations: 3, CalendarDays: 2,
		CalendarStart: "2024-06-01", CalendarEnd: "2024-06-02",
		NullsNormalized: 1, DuplicateLocations: 1,
		ReferentialViolations: 1,
	}

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, repo.Insert(tx, report))
	require.NoError(t, tx.Commit())

	reports, err := repo.GetRecent(5)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "load-1", reports[0].LoadID)
	assert.Equal(t, 2, reports[0].TripsLoaded)
	assert.Equal(t, 1, reports[0].Quarantined())
}
