package metrics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rideboard/trips-backend-go/internal/models"
	"github.com/rideboard/trips-backend-go/internal/snapshot"
)

// ErrUnknownMetric is returned when a requested metric is not registered
var ErrUnknownMetric = errors.New("unknown metric")

// EvalFunc evaluates one metric over an already-filtered trip set.
// The filter context is applied before dispatch, so switching metrics
// cannot disturb it.
type EvalFunc func(s *snapshot.Snapshot, trips []models.Trip) (models.MetricResult, error)

// Definition binds a dynamic-measure row to its evaluator
type Definition struct {
	models.MetricDefinition
	Eval EvalFunc
}

// Registry is the dynamic measure table: an ordered set of named
// metrics resolved at query time. The entry order defines the switch
// control's display order; the first entry is the default metric.
type Registry struct {
	defs  map[string]*Definition
	order []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a metric definition
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return errors.New("metric name is required")
	}
	if def.Eval == nil {
		return fmt.Errorf("metric %s has no evaluator", def.Name)
	}
	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("metric %s already registered", def.Name)
	}

	d := def
	r.defs[def.Name] = &d
	r.order = append(r.order, def.Name)
	r.sortOrder()
	return nil
}

// Get resolves a metric by name
func (r *Registry) Get(name string) (*Definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, name)
	}
	return def, nil
}

// List returns the dynamic measure rows in display order
func (r *Registry) List() []models.MetricDefinition {
	out := make([]models.MetricDefinition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name].MetricDefinition)
	}
	return out
}

// Default returns the first metric in display order
func (r *Registry) Default() (*Definition, error) {
	if len(r.order) == 0 {
		return nil, errors.New("registry is empty")
	}
	return r.defs[r.order[0]], nil
}

// ApplyTable replaces the display names and ordering with the rows of an
// externally supplied dynamic measure table. Every row must reference a
// registered metric; metrics absent from the table are removed from the
// switch control.
func (r *Registry) ApplyTable(rows []models.MetricDefinition) error {
	if len(rows) == 0 {
		return errors.New("dynamic measure table is empty")
	}

	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		def, ok := r.defs[row.Name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownMetric, row.Name)
		}
		if seen[row.Name] {
			return fmt.Errorf("metric %s listed twice", row.Name)
		}
		seen[row.Name] = true

		if row.DisplayName != "" {
			def.DisplayName = row.DisplayName
		}
		def.SortOrder = row.SortOrder
	}

	order := make([]string, 0, len(rows))
	for _, row := range rows {
		order = append(order, row.Name)
	}
	r.order = order
	r.sortOrder()
	return nil
}

func (r *Registry) sortOrder() {
	sort.SliceStable(r.order, func(i, j int) bool {
		a, b := r.defs[r.order[i]], r.defs[r.order[j]]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.Name < b.Name
	})
}
