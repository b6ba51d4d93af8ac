package service

import (
	"fmt"
	"time"

	"github.com/rideboard/trips-backend-go/internal/analytics"
	"github.com/rideboard/trips-backend-go/internal/metrics"
	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/snapshot"
)

// EvaluateService resolves a metric from the dynamic measure table and
// applies it to the current snapshot under the request's filter context.
// The filter context lives entirely in the request, so switching the
// selected metric never disturbs it.
type EvaluateService struct {
	store    *snapshot.Store
	registry *metrics.Registry
}

// NewEvaluateService creates a new evaluate service
func NewEvaluateService(store *snapshot.Store, registry *metrics.Registry) *EvaluateService {
	return &EvaluateService{store: store, registry: registry}
}

// Evaluate runs one metric over the filtered trip set. An empty metric
// name selects the registry's default (first) metric.
func (s *EvaluateService) Evaluate(metricName string, filter models.EvaluateFilter) (models.MetricResult, error) {
	if err := validateFilter(filter); err != nil {
		return models.MetricResult{}, err
	}

	snap, err := s.store.Current()
	if err != nil {
		return models.MetricResult{}, err
	}

	var def *metrics.Definition
	if metricName == "" {
		def, err = s.registry.Default()
	} else {
		def, err = s.registry.Get(metricName)
	}
	if err != nil {
		return models.MetricResult{}, err
	}

	trips := analytics.Filter(snap, filter)
	return def.Eval(snap, trips)
}

// ListMetrics returns the dynamic measure table in display order
func (s *EvaluateService) ListMetrics() []models.MetricDefinition {
	return s.registry.List()
}

func validateFilter(f models.EvaluateFilter) error {
	if err := validateDate(f.StartDate, "startDate"); err != nil {
		return err
	}
	if err := validateDate(f.EndDate, "endDate"); err != nil {
		return err
	}
	if f.StartDate != "" && f.EndDate != "" && f.StartDate > f.EndDate {
		return fmt.Errorf("startDate must not be after endDate")
	}
	if f.DayNight != "" && f.DayNight != models.DayNightDay && f.DayNight != models.DayNightNight {
		return fmt.Errorf("dayNight must be %q or %q", models.DayNightDay, models.DayNightNight)
	}
	return nil
}

func validateDate(s, field string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("%s must be YYYY-MM-DD", field)
	}
	return nil
}
