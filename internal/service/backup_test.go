package service

import (
	"context"
	"errors"
	"testing"

	"github.com/chinnidiwakar/sliptrack/backend/internal/backup"
	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

func TestImportReplacesLog(t *testing.T) {
	repo := &mockEventRepository{events: []models.Event{slipAt(5, 9), victoryAt(2, 10)}}
	svc := NewBackupService(repo)

	data := []byte(`{
		"version": 1,
		"exportedAt": 1700000000000,
		"events": [
			{"id": 1, "timestamp": 1699000000000, "isVictory": false, "intensity": 0},
			{"id": 2, "timestamp": 1699100000000, "isVictory": true, "intensity": 2, "trigger": "Stress"}
		]
	}`)

	result, err := svc.Import(context.Background(), data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("Imported = %d, want 2", result.Imported)
	}
	if !repo.cleared {
		t.Error("import did not clear the existing log")
	}
	if len(repo.inserted) != 2 {
		t.Fatalf("inserted %d events, want 2", len(repo.inserted))
	}
	if repo.inserted[1].Trigger == nil || *repo.inserted[1].Trigger != "Stress" {
		t.Error("imported trigger not preserved")
	}
}

func TestImportInvalidDocument(t *testing.T) {
	repo := &mockEventRepository{events: []models.Event{slipAt(5, 9)}}
	svc := NewBackupService(repo)

	_, err := svc.Import(context.Background(), []byte("not json"))
	if !errors.Is(err, ErrInvalidBackup) {
		t.Errorf("Import() error = %v, want ErrInvalidBackup", err)
	}
	if repo.cleared {
		t.Error("invalid import must not touch the existing log")
	}
}

func TestImportClearFailure(t *testing.T) {
	repo := &mockEventRepository{clearErr: errors.New("locked")}
	svc := NewBackupService(repo)

	_, err := svc.Import(context.Background(), []byte(`{"version":1,"exportedAt":0,"events":[]}`))
	if err == nil {
		t.Fatal("Import() expected error, got nil")
	}
}

func TestExport(t *testing.T) {
	repo := &mockEventRepository{events: []models.Event{slipAt(5, 9), victoryAt(2, 10)}}
	svc := NewBackupService(repo)

	doc, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if doc.Version != backup.Version {
		t.Errorf("Version = %d, want %d", doc.Version, backup.Version)
	}
	if doc.ExportedAt <= 0 {
		t.Errorf("ExportedAt = %d, want positive", doc.ExportedAt)
	}
	if len(doc.Events) != 2 {
		t.Errorf("Events length = %d, want 2", len(doc.Events))
	}
}

func TestExportEmptyLog(t *testing.T) {
	svc := NewBackupService(&mockEventRepository{})

	doc, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if doc.Events == nil {
		t.Error("Events should be an empty slice, not nil")
	}
	if len(doc.Events) != 0 {
		t.Errorf("Events length = %d, want 0", len(doc.Events))
	}
}
