package service

import (
	"fmt"

	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/repository"
)

// TripService handles business logic for browsing persisted trips
type TripService struct {
	tripRepo *repository.TripRepository
}

// NewTripService creates a new trip service
func NewTripService(tripRepo *repository.TripRepository) *TripService {
	return &TripService{tripRepo: tripRepo}
}

// GetTrips retrieves trips with filtering and pagination
func (s *TripService) GetTrips(filter models.TripFilter) ([]models.Trip, int64, error) {
	if err := validateDate(filter.StartDate, "startDate"); err != nil {
		return nil, 0, err
	}
	if err := validateDate(filter.EndDate, "endDate"); err != nil {
		return nil, 0, err
	}
	if filter.StartDate != "" && filter.EndDate != "" && filter.StartDate > filter.EndDate {
		return nil, 0, fmt.Errorf("startDate must not be after endDate")
	}

	return s.tripRepo.GetTrips(filter)
}

// GetTripByTripID retrieves a single trip by its business key
func (s *TripService) GetTripByTripID(tripID string) (*models.Trip, error) {
	if tripID == "" {
		return nil, fmt.Errorf("trip id is required")
	}
	return s.tripRepo.GetTripByTripID(tripID)
}
