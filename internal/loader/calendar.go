package loader

import (
	"time"

	"github.com/rideboard/trips-backend-go/internal/models"
)

// BuildCalendar generates the calendar dimension covering [start, end]
// inclusive, one row per day. Day numbering is ISO-style: Monday=1,
// Sunday=7; weeks are ISO weeks.
func BuildCalendar(start, end time.Time) []models.CalendarDay {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return nil
	}

	days := make([]models.CalendarDay, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		_, week := d.ISOWeek()
		weekday := d.Weekday()
		days = append(days, models.CalendarDay{
			Date:       d.Format("2006-01-02"),
			DayName:    weekday.String(),
			DayNumber:  isoDayNumber(weekday),
			Month:      int(d.Month()),
			MonthName:  d.Month().String(),
			Year:       d.Year(),
			WeekOfYear: week,
			IsWeekend:  weekday == time.Saturday || weekday == time.Sunday,
		})
	}
	return days
}

func isoDayNumber(w time.Weekday) int {
	if w == time.Sunday {
		return 7
	}
	return int(w)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
