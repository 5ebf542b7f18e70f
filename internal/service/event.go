package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
	"github.com/chinnidiwakar/sliptrack/backend/internal/repository"
)

var (
	// ErrNegativeTimestamp is returned when a request carries a timestamp
	// before the epoch.
	ErrNegativeTimestamp = errors.New("timestamp must not be negative")

	// ErrInvalidIntensity is returned when intensity falls outside 0-3.
	ErrInvalidIntensity = errors.New("intensity must be between 0 and 3")
)

type eventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new event service.
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) LogEvent(ctx context.Context, req *models.LogEventRequest) (*models.Event, error) {
	if req.Timestamp < 0 {
		return nil, ErrNegativeTimestamp
	}
	if req.Intensity < models.IntensityUnset || req.Intensity > models.IntensityNearMiss {
		return nil, ErrInvalidIntensity
	}

	event := &models.Event{
		Timestamp: req.Timestamp,
		IsVictory: req.IsVictory,
		Intensity: req.Intensity,
		Note:      cleanText(req.Note),
		Trigger:   cleanText(req.Trigger),
	}
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}
	// Intensity only describes resisted urges; slips always store 0.
	if !event.IsVictory {
		event.Intensity = models.IntensityUnset
	}

	created, err := s.eventRepo.Insert(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to log event: %w", err)
	}
	return created, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.GetAllOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func cleanText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
