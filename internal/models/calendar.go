package models

// CalendarDay represents one row of the Calendar dimension table.
// It carries no measures; it exists for temporal grouping and labelling.
type CalendarDay struct {
	Date       string `json:"date" db:"date"` // YYYY-MM-DD
	DayName    string `json:"day_name" db:"day_name"`
	DayNumber  int    `json:"day_number" db:"day_number"` // 1=Monday .. 7=Sunday
	Month      int    `json:"month" db:"month"`
	MonthName  string `json:"month_name" db:"month_name"`
	Year       int    `json:"year" db:"year"`
	WeekOfYear int    `json:"week_of_year" db:"week_of_year"` // ISO week
	IsWeekend  bool   `json:"is_weekend" db:"is_weekend"`
}
