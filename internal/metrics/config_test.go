package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measures.yaml")
	yaml := `measures:
  - metric: total_bookings
    display_name: Total Bookings
    sort_order: 1
  - metric: total_booking_value
    display_name: Total Booking Value
    sort_order: 2
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	rows, err := LoadTable(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "total_bookings", rows[0].Name)
	assert.Equal(t, 1, rows[0].SortOrder)

	r := NewDefaultRegistry()
	require.NoError(t, r.ApplyTable(rows))
	assert.Len(t, r.List(), 2)
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTableEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("measures: []\n"), 0644))
	_, err := LoadTable(path)
	assert.Error(t, err)
}
