package repository

import (
	"context"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

// EventRepository defines the interface for event log data access. The log is
// append-only: rows are never updated, and deletion only happens wholesale as
// part of a destructive backup import.
type EventRepository interface {
	Insert(ctx context.Context, event *models.Event) (*models.Event, error)
	// InsertAll bulk-inserts events, replacing rows on id conflict.
	InsertAll(ctx context.Context, events []models.Event) error
	// GetAll returns an unordered snapshot of every event.
	GetAll(ctx context.Context) ([]models.Event, error)
	// GetAllOrdered returns every event sorted by timestamp descending.
	GetAllOrdered(ctx context.Context) ([]models.Event, error)
	// GetSlips returns non-victory events sorted by timestamp descending.
	GetSlips(ctx context.Context) ([]models.Event, error)
	// GetVictories returns victory events sorted by timestamp descending.
	GetVictories(ctx context.Context) ([]models.Event, error)
	// GetLastSlip returns the most recent non-victory event, or nil when the
	// log holds no slips.
	GetLastSlip(ctx context.Context) (*models.Event, error)
	Count(ctx context.Context) (int64, error)
	ClearAll(ctx context.Context) error

	// Subscribe registers a change listener. The returned channel receives
	// after every mutation; Unsubscribe must be called when done.
	Subscribe() <-chan struct{}
	Unsubscribe(ch <-chan struct{})
}
