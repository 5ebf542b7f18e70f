package service

import (
	"sort"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

// historyStreakPlaceholder fills the per-day longest streak column the app
// displays but the analytics core does not compute.
const historyStreakPlaceholder = "—"

// BuildDaySummaries groups slips by local calendar date and returns one
// summary per distinct day, most recent first. The caller must pass slips
// only.
func BuildDaySummaries(slips []models.Event) []models.DaySummary {
	if len(slips) == 0 {
		return []models.DaySummary{}
	}

	counts := make(map[string]int)
	for _, e := range slips {
		counts[localDate(e.Timestamp).Format("2006-01-02")]++
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	summaries := make([]models.DaySummary, 0, len(dates))
	for _, date := range dates {
		summaries = append(summaries, models.DaySummary{
			Date:          date,
			Relapses:      counts[date],
			LongestStreak: historyStreakPlaceholder,
		})
	}
	return summaries
}
