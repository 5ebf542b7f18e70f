package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chinnidiwakar/sliptrack/backend/internal/backup"
	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
	"github.com/chinnidiwakar/sliptrack/backend/internal/repository"
)

// ErrInvalidBackup is returned when an import document cannot be decoded at
// all. Individual bad records inside a decodable document are skipped, not
// fatal.
var ErrInvalidBackup = errors.New("invalid backup document")

type backupService struct {
	eventRepo repository.EventRepository
}

// NewBackupService creates a new backup service.
func NewBackupService(eventRepo repository.EventRepository) BackupService {
	return &backupService{eventRepo: eventRepo}
}

// Export reads the full unordered event snapshot and wraps it in a backup
// document. Export never mutates the log.
func (s *backupService) Export(ctx context.Context) (*backup.Document, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read events for export: %w", err)
	}
	return backup.Export(events, time.Now().UnixMilli()), nil
}

// Import is destructive-replace: every existing event is deleted before the
// parsed events are bulk-inserted.
func (s *backupService) Import(ctx context.Context, data []byte) (*models.ImportResult, error) {
	events, err := backup.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	if err := s.eventRepo.ClearAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear events before import: %w", err)
	}
	if err := s.eventRepo.InsertAll(ctx, events); err != nil {
		return nil, fmt.Errorf("failed to insert imported events: %w", err)
	}

	return &models.ImportResult{Imported: len(events)}, nil
}
