package snapshot

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/rideboard/trips-backend-go/internal/models"
)

// ErrNotLoaded is returned when no snapshot has been published yet
var ErrNotLoaded = errors.New("dataset snapshot not loaded")

// Relationship names one of the two Trip -> Location joins. Pickup is the
// active relationship that ordinary filters traverse; Dropoff must be
// invoked explicitly per query. Both are queryable at the same time.
type Relationship int

const (
	ByPickup Relationship = iota
	ByDropoff
)

// Snapshot is one immutable load of the star schema. Aggregations read it
// without locking; a refresh publishes a whole new snapshot instead of
// mutating this one.
type Snapshot struct {
	ID       string // Load UUID
	LoadedAt time.Time

	Trips     []models.Trip
	Locations []models.Location
	Calendar  []models.CalendarDay

	Report models.LoadReport

	locationByID  map[int64]models.Location
	calendarByDay map[string]models.CalendarDay
}

// New builds a snapshot and its dimension indexes. Callers must not
// mutate the slices afterwards.
func New(id string, loadedAt time.Time, trips []models.Trip, locations []models.Location, calendar []models.CalendarDay, report models.LoadReport) *Snapshot {
	s := &Snapshot{
		ID:            id,
		LoadedAt:      loadedAt,
		Trips:         trips,
		Locations:     locations,
		Calendar:      calendar,
		Report:        report,
		locationByID:  make(map[int64]models.Location, len(locations)),
		calendarByDay: make(map[string]models.CalendarDay, len(calendar)),
	}
	for _, loc := range locations {
		s.locationByID[loc.LocationID] = loc
	}
	for _, day := range calendar {
		s.calendarByDay[day.Date] = day
	}
	return s
}

// Location looks up a dimension row by key
func (s *Snapshot) Location(id int64) (models.Location, bool) {
	loc, ok := s.locationByID[id]
	return loc, ok
}

// CalendarDay looks up a calendar row by YYYY-MM-DD date
func (s *Snapshot) CalendarDay(date string) (models.CalendarDay, bool) {
	day, ok := s.calendarByDay[date]
	return day, ok
}

// Join resolves the Location for a trip through the named relationship.
// The load pipeline quarantines referential violations, so a miss here
// means the snapshot was constructed outside the loader.
func (s *Snapshot) Join(t models.Trip, rel Relationship) (models.Location, bool) {
	if rel == ByDropoff {
		return s.Location(t.DropoffLocationID)
	}
	return s.Location(t.PickupLocationID)
}

// Store holds the currently published snapshot. Swap is atomic so
// concurrent readers never observe a torn mix of old and new tables.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates an empty snapshot store
func NewStore() *Store {
	return &Store{}
}

// Current returns the published snapshot
func (st *Store) Current() (*Snapshot, error) {
	s := st.current.Load()
	if s == nil {
		return nil, ErrNotLoaded
	}
	return s, nil
}

// Publish atomically replaces the published snapshot
func (st *Store) Publish(s *Snapshot) {
	st.current.Store(s)
}
