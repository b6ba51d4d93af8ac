package service

import (
	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/repository"
)

// LocationService handles business logic for the dimension tables
type LocationService struct {
	locationRepo *repository.LocationRepository
	calendarRepo *repository.CalendarRepository
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo *repository.LocationRepository, calendarRepo *repository.CalendarRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo, calendarRepo: calendarRepo}
}

// GetLocations retrieves the location dimension, optionally filtered by city
func (s *LocationService) GetLocations(city string) ([]models.Location, error) {
	return s.locationRepo.GetLocations(city)
}

// GetCities retrieves the distinct cities
func (s *LocationService) GetCities() ([]string, error) {
	return s.locationRepo.GetCities()
}

// GetCalendar retrieves calendar rows within an optional date range
func (s *LocationService) GetCalendar(startDate, endDate string) ([]models.CalendarDay, error) {
	if err := validateDate(startDate, "startDate"); err != nil {
		return nil, err
	}
	if err := validateDate(endDate, "endDate"); err != nil {
		return nil, err
	}
	return s.calendarRepo.GetDays(startDate, endDate)
}
