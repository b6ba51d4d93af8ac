package metrics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rideboard/trips-backend-go/internal/models"
)

// tableFile is the YAML shape of an external dynamic measure table:
//
//	measures:
//	  - metric: total_bookings
//	    display_name: Total Bookings
//	    sort_order: 1
type tableFile struct {
	Measures []models.MetricDefinition `yaml:"measures"`
}

// LoadTable reads a dynamic measure table from a YAML file
func LoadTable(path string) ([]models.MetricDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dynamic measure table: %w", err)
	}

	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse dynamic measure table: %w", err)
	}
	if len(f.Measures) == 0 {
		return nil, fmt.Errorf("dynamic measure table %s has no measures", path)
	}

	return f.Measures, nil
}
