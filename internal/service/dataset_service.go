package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rideboard/trips-backend-go/internal/database"
	"github.com/rideboard/trips-backend-go/internal/loader"
	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/repository"
	"github.com/rideboard/trips-backend-go/internal/snapshot"
)

// DatasetService owns the dataset lifecycle: the single scoped event is
// a full refresh that reloads all tables and swaps them in together.
type DatasetService struct {
	dataDir string
	store   *snapshot.Store

	tripRepo     *repository.TripRepository
	locationRepo *repository.LocationRepository
	calendarRepo *repository.CalendarRepository
	loadRepo     *repository.LoadRepository
}

// NewDatasetService creates a new dataset service
func NewDatasetService(
	dataDir string,
	store *snapshot.Store,
	tripRepo *repository.TripRepository,
	locationRepo *repository.LocationRepository,
	calendarRepo *repository.CalendarRepository,
	loadRepo *repository.LoadRepository,
) *DatasetService {
	return &DatasetService{
		dataDir:      dataDir,
		store:        store,
		tripRepo:     tripRepo,
		locationRepo: locationRepo,
		calendarRepo: calendarRepo,
		loadRepo:     loadRepo,
	}
}

// Refresh reloads the dataset from the data directory, persists all
// tables in one transaction, and publishes the new snapshot atomically.
// Queries in flight keep reading the previous snapshot; none observe a
// torn mix of old and new tables.
func (s *DatasetService) Refresh() (models.LoadReport, error) {
	snap, err := loader.Load(s.dataDir)
	if err != nil {
		return models.LoadReport{}, fmt.Errorf("dataset load failed: %w", err)
	}

	err = database.Transaction(func(tx *sql.Tx) error {
		if err := s.locationRepo.ReplaceAll(tx, snap.Locations); err != nil {
			return err
		}
		if err := s.calendarRepo.ReplaceAll(tx, snap.Calendar); err != nil {
			return err
		}
		if err := s.tripRepo.ReplaceAll(tx, snap.Trips); err != nil {
			return err
		}
		return s.loadRepo.Insert(tx, snap.Report)
	})
	if err != nil {
		return models.LoadReport{}, fmt.Errorf("dataset persist failed: %w", err)
	}

	s.store.Publish(snap)
	return snap.Report, nil
}

// DatasetStatus describes the currently published snapshot
type DatasetStatus struct {
	LoadID   string            `json:"load_id"`
	LoadedAt time.Time         `json:"loaded_at"`
	Report   models.LoadReport `json:"report"`
}

// Status returns the published snapshot's load metadata
func (s *DatasetService) Status() (DatasetStatus, error) {
	snap, err := s.store.Current()
	if err != nil {
		return DatasetStatus{}, err
	}
	return DatasetStatus{
		LoadID:   snap.ID,
		LoadedAt: snap.LoadedAt,
		Report:   snap.Report,
	}, nil
}

// History returns recent load reports, newest first
func (s *DatasetService) History(limit int) ([]models.LoadReport, error) {
	return s.loadRepo.GetRecent(limit)
}
