package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
	"github.com/chinnidiwakar/sliptrack/backend/internal/repository"
)

type insightsService struct {
	eventRepo repository.EventRepository
}

// NewInsightsService creates a new insights service.
func NewInsightsService(eventRepo repository.EventRepository) InsightsService {
	return &insightsService{eventRepo: eventRepo}
}

func (s *insightsService) GetInsights(ctx context.Context) (*models.InsightsResponse, error) {
	slips, err := s.eventRepo.GetSlips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get slips: %w", err)
	}

	insights := ComputeInsights(slips)
	resp := &models.InsightsResponse{
		Insights:       insights,
		DataSufficient: insights != nil,
	}
	if insights == nil {
		resp.MinEventsNeeded = MinSlipsForInsights
	}
	return resp, nil
}

// MinSlipsForInsights is the sample size below which no insights are derived.
const MinSlipsForInsights = 3

// unknownTrigger stands in when no slip carries a usable trigger label.
const unknownTrigger = "Unspecified"

// Canned coaching tips keyed by the well-known trigger labels the app
// suggests. Any other trigger text gets the generic pre-commit message.
var triggerTips = map[string]string{
	"Stress":       "High stress is a pattern. Try a 4-7-8 breathing reset when urges spike.",
	"Boredom":      "Boredom spikes detected. Keep a quick replacement list ready (pushups, walk, call).",
	"Loneliness":   "Loneliness is a key trigger. Schedule one social check-in daily this week.",
	"Social media": "Social media is a trigger. Add a night-time app limit and mute risky feeds.",
}

// ComputeInsights derives descriptive statistics from the slip log. The
// caller must pass slips only. Fewer than MinSlipsForInsights slips is an
// insufficient sample and yields nil.
//
// Tie-breaking is deterministic: the earliest hour of day wins, the earliest
// weekday in time.Weekday order (Sunday first) wins, and the first-seen
// trigger label wins.
func ComputeInsights(slips []models.Event) *models.Insights {
	return computeInsightsAt(slips, time.Now())
}

func computeInsightsAt(slips []models.Event, now time.Time) *models.Insights {
	if len(slips) < MinSlipsForInsights {
		return nil
	}

	times := make([]time.Time, len(slips))
	for i, e := range slips {
		times[i] = localTime(e.Timestamp)
	}

	mostCommonHour := formatHour(peakHour(times))
	mostCommonDay := peakWeekday(times).String()
	weekComparison := compareWeeks(times, now)

	var averageStreak *string
	if avg := AverageStreak(slips); avg > 0 {
		s := fmt.Sprintf("%d days", avg)
		averageStreak = &s
	}

	trigger := topTrigger(slips)
	suggested := buildSuggestion(trigger, mostCommonHour)

	return &models.Insights{
		MostCommonHour:  &mostCommonHour,
		MostCommonDay:   &mostCommonDay,
		WeekComparison:  weekComparison,
		AverageStreak:   averageStreak,
		TopTrigger:      &trigger,
		SuggestedAction: suggested,
	}
}

// peakHour returns the local hour of day (0-23) with the most slips,
// preferring the earliest hour on ties.
func peakHour(times []time.Time) int {
	var counts [24]int
	for _, t := range times {
		counts[t.Hour()]++
	}

	best, bestCount := 0, 0
	for h := 0; h < 24; h++ {
		if counts[h] > bestCount {
			best, bestCount = h, counts[h]
		}
	}
	return best
}

// peakWeekday returns the weekday with the most slips, preferring the
// earliest weekday (Sunday first) on ties.
func peakWeekday(times []time.Time) time.Weekday {
	var counts [7]int
	for _, t := range times {
		counts[t.Weekday()]++
	}

	best, bestCount := time.Sunday, 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if counts[d] > bestCount {
			best, bestCount = d, counts[d]
		}
	}
	return best
}

func formatHour(hour int) string {
	switch {
	case hour == 0:
		return "around midnight"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// mondayOf returns the Monday starting the local week containing t.
func mondayOf(t time.Time) time.Time {
	weekday := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return dateOf(t).AddDate(0, 0, -weekday)
}

// compareWeeks renders the week-over-week slip comparison, or nil when both
// weeks together hold fewer than two slips.
func compareWeeks(times []time.Time, now time.Time) *string {
	thisWeekStart := mondayOf(now)
	nextWeekStart := thisWeekStart.AddDate(0, 0, 7)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)

	thisCount, lastCount := 0, 0
	for _, t := range times {
		d := dateOf(t)
		switch {
		case !d.Before(thisWeekStart) && d.Before(nextWeekStart):
			thisCount++
		case !d.Before(lastWeekStart) && d.Before(thisWeekStart):
			lastCount++
		}
	}

	if thisCount+lastCount < 2 {
		return nil
	}

	var s string
	switch {
	case thisCount < lastCount:
		s = fmt.Sprintf("%d ↓ from %d", thisCount, lastCount)
	case thisCount > lastCount:
		s = fmt.Sprintf("%d ↑ from %d", thisCount, lastCount)
	default:
		s = fmt.Sprintf("%d same as last week", thisCount)
	}
	return &s
}

// topTrigger picks the most frequent trimmed trigger label, first-seen label
// winning ties. When every slip is unlabeled, the placeholder stands in.
func topTrigger(slips []models.Event) string {
	counts := make(map[string]int)
	var order []string
	for _, e := range slips {
		if e.Trigger == nil {
			continue
		}
		label := strings.TrimSpace(*e.Trigger)
		if label == "" {
			continue
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	if len(order) == 0 {
		return unknownTrigger
	}

	best, bestCount := "", 0
	for _, label := range order {
		if counts[label] > bestCount {
			best, bestCount = label, counts[label]
		}
	}
	return best
}

// buildSuggestion composes the free-text heuristic action from the top
// trigger and the peak hour. The two sentences are joined with a single
// space; with neither available there is no suggestion.
func buildSuggestion(topTrigger, mostCommonHour string) *string {
	var parts []string

	switch {
	case topTrigger == "":
	case topTrigger == unknownTrigger:
		parts = append(parts, "Add trigger tags when logging slips to unlock smarter insights.")
	default:
		if tip, ok := triggerTips[topTrigger]; ok {
			parts = append(parts, tip)
		} else {
			parts = append(parts, fmt.Sprintf("Top trigger: %s. Create a short pre-commit plan for that situation.", topTrigger))
		}
	}

	if mostCommonHour != "" {
		parts = append(parts, fmt.Sprintf("Set a 15-minute buffer routine before %s (walk, shower, journal).", mostCommonHour))
	}

	if len(parts) == 0 {
		return nil
	}
	s := strings.Join(parts, " ")
	return &s
}

// ComputeWeeklyReport counts this week's slips, victories and clean days from
// the full mixed event list. The week starts Monday; the clean-day count
// covers Monday through yesterday only, since today is still in progress.
func ComputeWeeklyReport(events []models.Event) models.WeeklyReport {
	return computeWeeklyReportAt(events, time.Now())
}

func computeWeeklyReportAt(events []models.Event, now time.Time) models.WeeklyReport {
	weekStart := mondayOf(now)
	nextWeekStart := weekStart.AddDate(0, 0, 7)
	weekdayIdx := (int(now.Weekday()) + 6) % 7 // Monday = 0

	slipDates := make(map[time.Time]bool)
	report := models.WeeklyReport{}
	for _, e := range events {
		d := localDate(e.Timestamp)
		if d.Before(weekStart) || !d.Before(nextWeekStart) {
			continue
		}
		if e.IsVictory {
			report.VictoriesThisWeek++
		} else {
			report.SlipsThisWeek++
			slipDates[d] = true
		}
	}

	for offset := 0; offset < weekdayIdx; offset++ {
		if !slipDates[weekStart.AddDate(0, 0, offset)] {
			report.CleanDaysThisWeek++
		}
	}
	return report
}
