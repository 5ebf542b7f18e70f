package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

// Timestamps below this magnitude are legacy rows stored in whole seconds.
const millisThreshold = int64(1_000_000_000_000)

func normalizeTimestamp(raw int64) int64 {
	if raw < millisThreshold {
		return raw * 1000
	}
	return raw
}

// localTime converts a raw event timestamp to the process-local time zone.
func localTime(raw int64) time.Time {
	return time.UnixMilli(normalizeTimestamp(raw)).Local()
}

// localDate returns the local calendar date of a raw event timestamp,
// anchored at UTC midnight so day arithmetic is exact across DST changes.
func localDate(raw int64) time.Time {
	return dateOf(localTime(raw))
}

func dateOf(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

// distinctSlipDates maps slips to their local calendar dates, deduplicated
// and sorted ascending. Multiple slips on one day count once for gap purposes.
func distinctSlipDates(slips []models.Event) []time.Time {
	seen := make(map[time.Time]struct{}, len(slips))
	dates := make([]time.Time, 0, len(slips))
	for _, e := range slips {
		d := localDate(e.Timestamp)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// CurrentStreak returns the number of whole calendar days since the most
// recent slip. The caller must pass slips only (isVictory filtered out).
// A slip today yields 0; the result is never negative.
func CurrentStreak(slips []models.Event) int {
	return currentStreakAt(slips, time.Now())
}

func currentStreakAt(slips []models.Event, now time.Time) int {
	if len(slips) == 0 {
		return 0
	}

	last := slips[0].Timestamp
	for _, e := range slips[1:] {
		if e.Timestamp > last {
			last = e.Timestamp
		}
	}

	days := daysBetween(localDate(last), dateOf(now))
	if days < 0 {
		return 0
	}
	return days
}

// LongestStreak returns the largest gap in days between any two consecutive
// distinct slip days in history. This is a historical maximum and does not
// include the still-open gap since the last slip. The caller must pass slips
// only.
func LongestStreak(slips []models.Event) int {
	if len(slips) < 2 {
		return 0
	}

	dates := distinctSlipDates(slips)
	longest := 0
	for i := 1; i < len(dates); i++ {
		if gap := daysBetween(dates[i-1], dates[i]); gap > longest {
			longest = gap
		}
	}
	return longest
}

// AverageStreak returns the mean day-gap between consecutive distinct slip
// dates, truncated to an integer. It accepts the full mixed event list and
// filters victories itself; fewer than two distinct slip days yields 0.
func AverageStreak(events []models.Event) int {
	slips := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !e.IsVictory {
			slips = append(slips, e)
		}
	}
	if len(slips) < 2 {
		return 0
	}

	dates := distinctSlipDates(slips)
	if len(dates) < 2 {
		return 0
	}

	total := 0
	for i := 1; i < len(dates); i++ {
		total += daysBetween(dates[i-1], dates[i])
	}
	return total / (len(dates) - 1)
}

// FormatElapsed renders a millisecond duration as the home screen shows it.
func FormatElapsed(ms int64) string {
	seconds := ms / 1000
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours%24)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
