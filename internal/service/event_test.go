package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestLogEventValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.LogEventRequest
		wantErr error
	}{
		{
			name:    "negative timestamp",
			req:     &models.LogEventRequest{Timestamp: -1},
			wantErr: ErrNegativeTimestamp,
		},
		{
			name:    "intensity too high",
			req:     &models.LogEventRequest{IsVictory: true, Intensity: 4},
			wantErr: ErrInvalidIntensity,
		},
		{
			name:    "intensity negative",
			req:     &models.LogEventRequest{IsVictory: true, Intensity: -1},
			wantErr: ErrInvalidIntensity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEventService(&mockEventRepository{})
			_, err := svc.LogEvent(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LogEvent() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogEventDefaultsTimestamp(t *testing.T) {
	repo := &mockEventRepository{}
	svc := NewEventService(repo)

	before := time.Now().UnixMilli()
	created, err := svc.LogEvent(context.Background(), &models.LogEventRequest{})
	if err != nil {
		t.Fatalf("LogEvent() error = %v", err)
	}
	after := time.Now().UnixMilli()

	if created.Timestamp < before || created.Timestamp > after {
		t.Errorf("Timestamp = %d, want between %d and %d", created.Timestamp, before, after)
	}
}

func TestLogEventForcesSlipIntensityToZero(t *testing.T) {
	repo := &mockEventRepository{}
	svc := NewEventService(repo)

	created, err := svc.LogEvent(context.Background(), &models.LogEventRequest{
		Timestamp: fixedNow.UnixMilli(),
		IsVictory: false,
		Intensity: models.IntensityNearMiss,
	})
	if err != nil {
		t.Fatalf("LogEvent() error = %v", err)
	}
	if created.Intensity != models.IntensityUnset {
		t.Errorf("slip Intensity = %d, want %d", created.Intensity, models.IntensityUnset)
	}
}

func TestLogEventKeepsVictoryIntensity(t *testing.T) {
	svc := NewEventService(&mockEventRepository{})

	created, err := svc.LogEvent(context.Background(), &models.LogEventRequest{
		Timestamp: fixedNow.UnixMilli(),
		IsVictory: true,
		Intensity: models.IntensityHeavyUrge,
	})
	if err != nil {
		t.Fatalf("LogEvent() error = %v", err)
	}
	if created.Intensity != models.IntensityHeavyUrge {
		t.Errorf("victory Intensity = %d, want %d", created.Intensity, models.IntensityHeavyUrge)
	}
}

func TestLogEventCleansText(t *testing.T) {
	svc := NewEventService(&mockEventRepository{})

	created, err := svc.LogEvent(context.Background(), &models.LogEventRequest{
		Timestamp: fixedNow.UnixMilli(),
		Note:      strPtr("   "),
		Trigger:   strPtr("  Stress  "),
	})
	if err != nil {
		t.Fatalf("LogEvent() error = %v", err)
	}
	if created.Note != nil {
		t.Errorf("blank Note = %q, want nil", *created.Note)
	}
	if created.Trigger == nil || *created.Trigger != "Stress" {
		t.Errorf("Trigger = %v, want Stress", strOrNil(created.Trigger))
	}
}

func TestListEventsOrdered(t *testing.T) {
	repo := &mockEventRepository{events: []models.Event{
		slipAt(5, 9),
		slipAt(1, 9),
		slipAt(3, 9),
	}}
	svc := NewEventService(repo)

	events, err := svc.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("ListEvents() length = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i-1].Timestamp < events[i].Timestamp {
			t.Errorf("events not sorted descending at index %d", i)
		}
	}
}

func TestLogEventRepositoryError(t *testing.T) {
	repo := &mockEventRepository{insertErr: errors.New("disk full")}
	svc := NewEventService(repo)

	_, err := svc.LogEvent(context.Background(), &models.LogEventRequest{Timestamp: fixedNow.UnixMilli()})
	if err == nil {
		t.Fatal("LogEvent() expected error, got nil")
	}
}
