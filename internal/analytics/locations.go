package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/snapshot"
)

// MostFrequentPickup returns the name of the location with the highest
// pickup count in the filter context, through the active pickup
// relationship. Ties go to the lowest location_id. ok is false on an
// empty set.
func MostFrequentPickup(s *snapshot.Snapshot, trips []models.Trip) (string, int64, bool) {
	counts := countByLocation(trips, snapshot.ByPickup)
	if len(counts) == 0 {
		return "", 0, false
	}

	var bestID int64 = -1
	var bestCount int64
	for id, n := range counts {
		if n > bestCount || (n == bestCount && id < bestID) {
			bestID, bestCount = id, n
		}
	}

	return locationName(s, bestID), bestCount, true
}

// MostFrequentDropoff returns the dropoff location(s) holding dense rank 1
// by count, resolved through the secondary dropoff relationship. When
// several locations tie at rank 1 their names are comma-joined, sorted
// ascending. ok is false on an empty set.
func MostFrequentDropoff(s *snapshot.Snapshot, trips []models.Trip) (string, int64, bool) {
	counts := countByLocation(trips, snapshot.ByDropoff)
	if len(counts) == 0 {
		return "", 0, false
	}

	var top int64
	for _, n := range counts {
		if n > top {
			top = n
		}
	}

	var names []string
	for id, n := range counts {
		if n == top {
			names = append(names, locationName(s, id))
		}
	}
	sort.Strings(names)

	return strings.Join(names, ", "), top, true
}

// FarthestTrip resolves the maximum-distance trip's pickup and dropoff
// locations and formats the answer. If several trips share the maximum
// distance with different location pairs, the lookup cannot resolve to a
// single value and ErrAmbiguousResult is returned instead of an
// arbitrary winner. An empty filter context returns ErrNoData.
func FarthestTrip(s *snapshot.Snapshot, trips []models.Trip) (string, float64, error) {
	if len(trips) == 0 {
		return "", 0, ErrNoData
	}

	maxDist := trips[0].TripDistance
	for _, t := range trips[1:] {
		if t.TripDistance > maxDist {
			maxDist = t.TripDistance
		}
	}

	type pair struct{ pickup, dropoff int64 }
	pairs := make(map[pair]bool)
	var winner models.Trip
	for _, t := range trips {
		if t.TripDistance == maxDist {
			pairs[pair{t.PickupLocationID, t.DropoffLocationID}] = true
			winner = t
		}
	}
	if len(pairs) > 1 {
		return "", maxDist, fmt.Errorf("%d location pairs share max distance %s miles: %w",
			len(pairs), formatDistance(maxDist), ErrAmbiguousResult)
	}

	pickup, _ := s.Join(winner, snapshot.ByPickup)
	dropoff, _ := s.Join(winner, snapshot.ByDropoff)

	formatted := fmt.Sprintf("Pickup:%s -> Drop-off:%s (%s miles)",
		pickup.LocationName, dropoff.LocationName, formatDistance(maxDist))
	return formatted, maxDist, nil
}

func countByLocation(trips []models.Trip, rel snapshot.Relationship) map[int64]int64 {
	counts := make(map[int64]int64)
	for _, t := range trips {
		id := t.PickupLocationID
		if rel == snapshot.ByDropoff {
			id = t.DropoffLocationID
		}
		counts[id]++
	}
	return counts
}

func locationName(s *snapshot.Snapshot, id int64) string {
	if loc, ok := s.Location(id); ok {
		return loc.LocationName
	}
	// Loader quarantines referential violations, so this is unreachable
	// for loader-built snapshots
	return fmt.Sprintf("location %d", id)
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
