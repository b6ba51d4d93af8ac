package database

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered schema history. SQL is embedded so the
// binary carries its own schema.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_locations",
		SQL: `
			CREATE TABLE IF NOT EXISTS locations (
				location_id INTEGER PRIMARY KEY,
				location_name TEXT NOT NULL,
				city TEXT NOT NULL
			);
		`,
	},
	{
		Version: 2,
		Name:    "create_calendar",
		SQL: `
			CREATE TABLE IF NOT EXISTS calendar (
				date TEXT PRIMARY KEY,
				day_name TEXT NOT NULL,
				day_number INTEGER NOT NULL,
				month INTEGER NOT NULL,
				month_name TEXT NOT NULL,
				year INTEGER NOT NULL,
				week_of_year INTEGER NOT NULL,
				is_weekend INTEGER NOT NULL DEFAULT 0
			);
		`,
	},
	{
		Version: 3,
		Name:    "create_trip_details",
		SQL: `
			CREATE TABLE IF NOT EXISTS trip_details (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				trip_id TEXT NOT NULL UNIQUE,
				pickup_time TIMESTAMP NOT NULL,
				dropoff_time TIMESTAMP NOT NULL,
				pickup_location_id INTEGER NOT NULL REFERENCES locations(location_id),
				dropoff_location_id INTEGER NOT NULL REFERENCES locations(location_id),
				trip_distance REAL NOT NULL DEFAULT 0,
				fare_amount REAL NOT NULL DEFAULT 0,
				surge_fee REAL NOT NULL DEFAULT 0,
				passenger_count INTEGER NOT NULL DEFAULT 0,
				vehicle_type TEXT NOT NULL DEFAULT '',
				payment_type TEXT NOT NULL DEFAULT '',
				day_night TEXT NOT NULL DEFAULT ''
			);
			CREATE INDEX IF NOT EXISTS idx_trip_details_pickup_time ON trip_details(pickup_time);
			CREATE INDEX IF NOT EXISTS idx_trip_details_pickup_location ON trip_details(pickup_location_id);
			CREATE INDEX IF NOT EXISTS idx_trip_details_dropoff_location ON trip_details(dropoff_location_id);
		`,
	},
	{
		Version: 4,
		Name:    "create_dataset_loads",
		SQL: `
			CREATE TABLE IF NOT EXISTS dataset_loads (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				load_id TEXT NOT NULL UNIQUE,
				loaded_at TIMESTAMP NOT NULL,
				trips_loaded INTEGER NOT NULL DEFAULT 0,
				locations INTEGER NOT NULL DEFAULT 0,
				calendar_days INTEGER NOT NULL DEFAULT 0,
				calendar_start TEXT NOT NULL DEFAULT '',
				calendar_end TEXT NOT NULL DEFAULT '',
				nulls_normalized INTEGER NOT NULL DEFAULT 0,
				duplicate_locations INTEGER NOT NULL DEFAULT 0,
				referential_violations INTEGER NOT NULL DEFAULT 0,
				invariant_violations INTEGER NOT NULL DEFAULT 0,
				unparsable_rows INTEGER NOT NULL DEFAULT 0
			);
		`,
	},
}

// Migrate applies all pending migrations in version order
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(migrations))
	for _, m := range migrations {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Version < pending[j].Version })

	for _, m := range pending {
		if err := applyMigration(db, m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
