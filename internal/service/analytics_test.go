package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

// eventDaysAgo anchors at the real clock for services that read time.Now.
func eventDaysAgo(days int, victory bool) models.Event {
	return models.Event{
		Timestamp: time.Now().AddDate(0, 0, -days).UnixMilli(),
		IsVictory: victory,
	}
}

func TestGetStreaks(t *testing.T) {
	repo := &mockEventRepository{events: []models.Event{
		eventDaysAgo(10, false),
		eventDaysAgo(4, false),
		eventDaysAgo(2, false),
		eventDaysAgo(1, true),
	}}
	svc := NewAnalyticsService(repo)

	stats, err := svc.GetStreaks(context.Background())
	if err != nil {
		t.Fatalf("GetStreaks() error = %v", err)
	}
	if stats.Current != 2 {
		t.Errorf("Current = %d, want 2", stats.Current)
	}
	if stats.Longest != 6 {
		t.Errorf("Longest = %d, want 6", stats.Longest)
	}
	if stats.Average != 4 {
		t.Errorf("Average = %d, want 4", stats.Average)
	}
}

func TestGetStreaksEmptyLog(t *testing.T) {
	svc := NewAnalyticsService(&mockEventRepository{})

	stats, err := svc.GetStreaks(context.Background())
	if err != nil {
		t.Fatalf("GetStreaks() error = %v", err)
	}
	if stats.Current != 0 || stats.Longest != 0 || stats.Average != 0 {
		t.Errorf("empty-log stats = %+v, want all zero", stats)
	}
}

func TestGetStreaksRepositoryError(t *testing.T) {
	repo := &mockEventRepository{getErr: errors.New("locked")}
	svc := NewAnalyticsService(repo)

	if _, err := svc.GetStreaks(context.Background()); err == nil {
		t.Fatal("GetStreaks() expected error, got nil")
	}
}

func TestGetSummarySlipBaseline(t *testing.T) {
	repo := &mockEventRepository{events: []models.Event{
		eventDaysAgo(5, false),
		eventDaysAgo(3, false),
		eventDaysAgo(1, true),
	}}
	svc := NewAnalyticsService(repo)

	summary, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if summary.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", summary.CurrentStreak)
	}
	// The only closed gap is 2 days, so the running streak is the longest.
	if summary.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", summary.LongestStreak)
	}
	if summary.Elapsed == "" {
		t.Error("Elapsed should be populated")
	}
	if summary.DailyQuote == "" {
		t.Error("DailyQuote should be populated")
	}
}

func TestGetSummaryVictoriesOnly(t *testing.T) {
	repo := &mockEventRepository{events: []models.Event{
		eventDaysAgo(4, true),
		eventDaysAgo(2, true),
	}}
	svc := NewAnalyticsService(repo)

	summary, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	// With no slips the clock runs from the first event ever recorded.
	if summary.CurrentStreak != 4 {
		t.Errorf("CurrentStreak = %d, want 4", summary.CurrentStreak)
	}
	if summary.LongestStreak != 4 {
		t.Errorf("LongestStreak = %d, want 4", summary.LongestStreak)
	}
}

func TestGetSummaryEmptyLog(t *testing.T) {
	svc := NewAnalyticsService(&mockEventRepository{})

	summary, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if summary.CurrentStreak != 0 || summary.LongestStreak != 0 {
		t.Errorf("empty-log summary = %+v, want zero streaks", summary)
	}
	if summary.Elapsed != "0m" {
		t.Errorf("Elapsed = %q, want 0m", summary.Elapsed)
	}
}

func TestGetCalendarDelegates(t *testing.T) {
	repo := &mockEventRepository{events: []models.Event{
		slipOn(2026, time.March, 5, 9),
		{Timestamp: time.Date(2026, time.March, 7, 9, 0, 0, 0, time.Local).UnixMilli(), IsVictory: true},
	}}
	svc := NewAnalyticsService(repo)

	days, err := svc.GetCalendar(context.Background(), 2026, time.March)
	if err != nil {
		t.Fatalf("GetCalendar() error = %v", err)
	}
	if len(days) != 31 {
		t.Fatalf("grid length = %d, want 31", len(days))
	}
	// Victories never show on the relapse calendar.
	if days[4].Relapses != 1 || days[6].Relapses != 0 {
		t.Errorf("day 5 = %d, day 7 = %d, want 1 and 0", days[4].Relapses, days[6].Relapses)
	}
}

func TestGetWeeklyReportEmptyLog(t *testing.T) {
	svc := NewAnalyticsService(&mockEventRepository{})

	report, err := svc.GetWeeklyReport(context.Background())
	if err != nil {
		t.Fatalf("GetWeeklyReport() error = %v", err)
	}
	if report.SlipsThisWeek != 0 || report.VictoriesThisWeek != 0 {
		t.Errorf("empty-log report = %+v", report)
	}
}
