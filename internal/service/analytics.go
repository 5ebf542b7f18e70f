package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
	"github.com/chinnidiwakar/sliptrack/backend/internal/quotes"
	"github.com/chinnidiwakar/sliptrack/backend/internal/repository"
)

type analyticsService struct {
	eventRepo repository.EventRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(eventRepo repository.EventRepository) AnalyticsService {
	return &analyticsService{eventRepo: eventRepo}
}

func (s *analyticsService) GetStreaks(ctx context.Context) (*models.StreakStats, error) {
	slips, err := s.eventRepo.GetSlips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get slips: %w", err)
	}

	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return &models.StreakStats{
		Current: CurrentStreak(slips),
		Longest: LongestStreak(slips),
		Average: AverageStreak(events),
	}, nil
}

func (s *analyticsService) GetCalendar(ctx context.Context, year int, month time.Month) ([]models.CalendarDay, error) {
	slips, err := s.eventRepo.GetSlips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get slips: %w", err)
	}
	return BuildCalendarDays(slips, year, month), nil
}

func (s *analyticsService) GetHistory(ctx context.Context) ([]models.DaySummary, error) {
	slips, err := s.eventRepo.GetSlips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get slips: %w", err)
	}
	return BuildDaySummaries(slips), nil
}

func (s *analyticsService) GetWeeklyReport(ctx context.Context) (*models.WeeklyReport, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	report := ComputeWeeklyReport(events)
	return &report, nil
}

func (s *analyticsService) GetSummary(ctx context.Context) (*models.HomeSummary, error) {
	events, err := s.eventRepo.GetAllOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	slips := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !e.IsVictory {
			slips = append(slips, e)
		}
	}

	now := time.Now()

	// Baseline for the elapsed clock: the most recent slip, or when the log
	// holds only victories, the first event ever recorded.
	baseline := now.UnixMilli()
	current := 0
	switch {
	case len(slips) > 0:
		baseline = slips[0].Timestamp
		for _, e := range slips[1:] {
			if e.Timestamp > baseline {
				baseline = e.Timestamp
			}
		}
		current = CurrentStreak(slips)
	case len(events) > 0:
		baseline = events[0].Timestamp
		for _, e := range events[1:] {
			if e.Timestamp < baseline {
				baseline = e.Timestamp
			}
		}
		current = daysBetween(localDate(baseline), dateOf(now))
	}

	longest := LongestStreak(slips)
	if current > longest {
		longest = current
	}

	elapsed := now.UnixMilli() - normalizeTimestamp(baseline)
	if elapsed < 0 {
		elapsed = 0
	}

	return &models.HomeSummary{
		CurrentStreak: current,
		LongestStreak: longest,
		Elapsed:       FormatElapsed(elapsed),
		DailyQuote:    quotes.QuoteOfTheDay(),
	}, nil
}
