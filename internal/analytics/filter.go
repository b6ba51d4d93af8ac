package analytics

import (
	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/snapshot"
)

const dateLayout = "2006-01-02"

// Filter applies the request's filter context to the snapshot's fact
// table. Location-based filters (city, pickup location) traverse the
// active pickup relationship; the dropoff relationship is never used
// implicitly here, only by aggregations that invoke it by name.
func Filter(s *snapshot.Snapshot, f models.EvaluateFilter) []models.Trip {
	out := make([]models.Trip, 0, len(s.Trips))
	for _, t := range s.Trips {
		if !matches(s, t, f) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matches(s *snapshot.Snapshot, t models.Trip, f models.EvaluateFilter) bool {
	if f.StartDate != "" || f.EndDate != "" {
		day := t.PickupTime.Format(dateLayout)
		if f.StartDate != "" && day < f.StartDate {
			return false
		}
		if f.EndDate != "" && day > f.EndDate {
			return false
		}
	}

	if f.City != "" {
		loc, ok := s.Join(t, snapshot.ByPickup)
		if !ok || loc.City != f.City {
			return false
		}
	}
	if f.PickupLocationID != 0 && t.PickupLocationID != f.PickupLocationID {
		return false
	}

	if f.VehicleType != "" && t.VehicleType != f.VehicleType {
		return false
	}
	if f.PaymentType != "" && t.PaymentType != f.PaymentType {
		return false
	}
	if f.DayNight != "" && t.DayNight != f.DayNight {
		return false
	}

	return true
}
