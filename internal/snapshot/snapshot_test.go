package snapshot

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rideboard/trips-backend-go/internal/models"
)

func buildSnapshot(id string) *Snapshot {
	locations := []models.Location{
		{LocationID: 1, LocationName: "Midtown", City: "New York"},
		{LocationID: 2, LocationName: "Airport", City: "New York"},
	}
	trips := []models.Trip{
		{TripID: "T1", PickupLocationID: 1, DropoffLocationID: 2},
	}
	calendar := []models.CalendarDay{
		{Date: "2024-06-01", DayName: "Saturday", DayNumber: 6, IsWeekend: true},
	}
	return New(id, time.Now(), trips, locations, calendar, models.LoadReport{LoadID: id})
}

func TestSnapshotJoins(t *testing.T) {
	s := buildSnapshot("a")
	trip := s.Trips[0]

	// Both relationships are queryable at the same time; neither
	// disables the other
	pickup, ok := s.Join(trip, ByPickup)
	require.True(t, ok)
	assert.Equal(t, "Midtown", pickup.LocationName)

	dropoff, ok := s.Join(trip, ByDropoff)
	require.True(t, ok)
	assert.Equal(t, "Airport", dropoff.LocationName)

	_, ok = s.Location(99)
	assert.False(t, ok)

	day, ok := s.CalendarDay("2024-06-01")
	require.True(t, ok)
	assert.True(t, day.IsWeekend)
}

func TestStoreUnpublished(t *testing.T) {
	st := NewStore()
	_, err := st.Current()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestStorePublishSwap(t *testing.T) {
	st := NewStore()
	st.Publish(buildSnapshot("a"))

	s, err := st.Current()
	require.NoError(t, err)
	assert.Equal(t, "a", s.ID)

	st.Publish(buildSnapshot("b"))
	s, err = st.Current()
	require.NoError(t, err)
	assert.Equal(t, "b", s.ID)
}

func TestStoreConcurrentReaders(t *testing.T) {
	st := NewStore()
	st.Publish(buildSnapshot("a"))

	// Readers always see a whole snapshot while a writer swaps versions
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				s, err := st.Current()
				if err != nil {
					t.Error(err)
					return
				}
				if s.ID != s.Report.LoadID {
					t.Errorf("torn snapshot: id %s, report %s", s.ID, s.Report.LoadID)
					return
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			st.Publish(buildSnapshot("a"))
		} else {
			st.Publish(buildSnapshot("b"))
		}
	}
	close(stop)
	wg.Wait()
}
