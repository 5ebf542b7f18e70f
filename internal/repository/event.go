package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

type eventRepository struct {
	db       *gorm.DB
	notifier *notifier
}

// NewEventRepository creates an event repository backed by the given database.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{
		db:       db,
		notifier: newNotifier(),
	}
}

func (r *eventRepository) Insert(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}
	r.notifier.broadcast()
	return event, nil
}

func (r *eventRepository) InsertAll(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&events).Error
	if err != nil {
		return fmt.Errorf("failed to bulk insert events: %w", err)
	}
	r.notifier.broadcast()
	return nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) GetAllOrdered(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ordered events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) GetSlips(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("is_victory = ?", false).
		Order("timestamp DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get slips: %w", err)
	}
	return events, nil
}

func (r *eventRepository) GetVictories(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("is_victory = ?", true).
		Order("timestamp DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get victories: %w", err)
	}
	return events, nil
}

func (r *eventRepository) GetLastSlip(ctx context.Context) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Where("is_victory = ?", false).
		Order("timestamp DESC").
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last slip: %w", err)
	}
	return &event, nil
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

func (r *eventRepository) ClearAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Event{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}
	r.notifier.broadcast()
	return nil
}

func (r *eventRepository) Subscribe() <-chan struct{} {
	return r.notifier.subscribe()
}

func (r *eventRepository) Unsubscribe(ch <-chan struct{}) {
	r.notifier.unsubscribe(ch)
}
