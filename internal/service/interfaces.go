package service

import (
	"context"
	"time"

	"github.com/chinnidiwakar/sliptrack/backend/internal/backup"
	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

// EventService defines the interface for event log business logic.
type EventService interface {
	LogEvent(ctx context.Context, req *models.LogEventRequest) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
}

// AnalyticsService derives streaks, calendar grids, history summaries and the
// weekly report from the event log.
type AnalyticsService interface {
	GetStreaks(ctx context.Context) (*models.StreakStats, error)
	GetCalendar(ctx context.Context, year int, month time.Month) ([]models.CalendarDay, error)
	GetHistory(ctx context.Context) ([]models.DaySummary, error)
	GetWeeklyReport(ctx context.Context) (*models.WeeklyReport, error)
	GetSummary(ctx context.Context) (*models.HomeSummary, error)
}

// InsightsService derives the behavioral insights view.
type InsightsService interface {
	GetInsights(ctx context.Context) (*models.InsightsResponse, error)
}

// BackupService handles JSON export and destructive-replace import.
type BackupService interface {
	Export(ctx context.Context) (*backup.Document, error)
	Import(ctx context.Context, data []byte) (*models.ImportResult, error)
}

// MilestoneService checks whether the current clean streak sits exactly on a
// celebrated day count.
type MilestoneService interface {
	CheckMilestone(ctx context.Context) (*models.Milestone, error)
}
