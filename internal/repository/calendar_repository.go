package repository

import (
	"database/sql"
	"fmt"

	"github.com/rideboard/trips-backend-go/internal/models"
)

// CalendarRepository handles database operations for the calendar dimension
type CalendarRepository struct {
	db *sql.DB
}

// NewCalendarRepository creates a new calendar repository
func NewCalendarRepository(db *sql.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// GetDays retrieves calendar rows within [startDate, endDate]; empty
// bounds are open
func (r *CalendarRepository) GetDays(startDate, endDate string) ([]models.CalendarDay, error) {
	query := `SELECT date, day_name, day_number, month, month_name, year, week_of_year, is_weekend
		FROM calendar`

	var conditions []string
	var args []interface{}
	if startDate != "" {
		conditions = append(conditions, "date >= ?")
		args = append(args, startDate)
	}
	if endDate != "" {
		conditions = append(conditions, "date <= ?")
		args = append(args, endDate)
	}
	if len(conditions) == 2 {
		query += " WHERE " + conditions[0] + " AND " + conditions[1]
	} else if len(conditions) == 1 {
		query += " WHERE " + conditions[0]
	}
	query += " ORDER BY date"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar: %w", err)
	}
	defer rows.Close()

	var days []models.CalendarDay
	for rows.Next() {
		var d models.CalendarDay
		err := rows.Scan(&d.Date, &d.DayName, &d.DayNumber, &d.Month, &d.MonthName,
			&d.Year, &d.WeekOfYear, &d.IsWeekend)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calendar day: %w", err)
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// ReplaceAll replaces the dimension contents within a refresh transaction
func (r *CalendarRepository) ReplaceAll(tx *sql.Tx, days []models.CalendarDay) error {
	if _, err := tx.Exec("DELETE FROM calendar"); err != nil {
		return fmt.Errorf("failed to clear calendar: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO calendar (date, day_name, day_number, month, month_name, year, week_of_year, is_weekend)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare calendar insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range days {
		_, err := stmt.Exec(d.Date, d.DayName, d.DayNumber, d.Month, d.MonthName,
			d.Year, d.WeekOfYear, d.IsWeekend)
		if err != nil {
			return fmt.Errorf("failed to insert calendar day %s: %w", d.Date, err)
		}
	}

	return nil
}
