package service

import (
	"time"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

// BuildCalendarDays buckets slips by local calendar day within the given
// month. The result is a dense grid: one entry per day of the month
// (1..lengthOfMonth), days without slips reporting zero.
func BuildCalendarDays(slips []models.Event, year int, month time.Month) []models.CalendarDay {
	counts := make(map[int]int)
	for _, e := range slips {
		t := localTime(e.Timestamp)
		if t.Year() == year && t.Month() == month {
			counts[t.Day()]++
		}
	}

	// Day zero of the next month is the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]models.CalendarDay, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		days = append(days, models.CalendarDay{Day: day, Relapses: counts[day]})
	}
	return days
}
