package service

import (
	"context"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

// mockEventRepository is a hand-written in-memory fake for service tests.
// Behavior can be overridden per test via the err fields.
type mockEventRepository struct {
	events []models.Event

	insertErr error
	getErr    error
	clearErr  error

	cleared  bool
	inserted []models.Event
}

func (m *mockEventRepository) Insert(ctx context.Context, event *models.Event) (*models.Event, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	e := *event
	e.ID = int64(len(m.events) + 1)
	m.events = append(m.events, e)
	return &e, nil
}

func (m *mockEventRepository) InsertAll(ctx context.Context, events []models.Event) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, events...)
	m.events = append(m.events, events...)
	return nil
}

func (m *mockEventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.events, nil
}

func (m *mockEventRepository) GetAllOrdered(ctx context.Context) ([]models.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	sorted := make([]models.Event, len(m.events))
	copy(sorted, m.events)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Timestamp > sorted[i].Timestamp {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	return sorted, nil
}

func (m *mockEventRepository) GetSlips(ctx context.Context) ([]models.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var slips []models.Event
	for _, e := range m.events {
		if !e.IsVictory {
			slips = append(slips, e)
		}
	}
	return slips, nil
}

func (m *mockEventRepository) GetVictories(ctx context.Context) ([]models.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var victories []models.Event
	for _, e := range m.events {
		if e.IsVictory {
			victories = append(victories, e)
		}
	}
	return victories, nil
}

func (m *mockEventRepository) GetLastSlip(ctx context.Context) (*models.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var last *models.Event
	for i := range m.events {
		e := &m.events[i]
		if e.IsVictory {
			continue
		}
		if last == nil || e.Timestamp > last.Timestamp {
			last = e
		}
	}
	return last, nil
}

func (m *mockEventRepository) Count(ctx context.Context) (int64, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	return int64(len(m.events)), nil
}

func (m *mockEventRepository) ClearAll(ctx context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	m.events = nil
	return nil
}

func (m *mockEventRepository) Subscribe() <-chan struct{} {
	return make(chan struct{})
}

func (m *mockEventRepository) Unsubscribe(ch <-chan struct{}) {}
