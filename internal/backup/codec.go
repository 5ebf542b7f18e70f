// Package backup implements the JSON backup document format: the only format
// the app exports and the only one it accepts on import.
package backup

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

// Version is the current backup document version.
const Version = 1

// Document is the backup file layout.
type Document struct {
	Version    int            `json:"version"`
	ExportedAt int64          `json:"exportedAt"`
	Events     []models.Event `json:"events"`
}

// Export wraps an event snapshot in a backup document.
func Export(events []models.Event, exportedAt int64) *Document {
	if events == nil {
		events = []models.Event{}
	}
	return &Document{
		Version:    Version,
		ExportedAt: exportedAt,
		Events:     events,
	}
}

// Marshal renders a document as indented JSON.
func Marshal(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup document: %w", err)
	}
	return data, nil
}

// Parse decodes a backup document. Parsing is tolerant per record: entries
// that are not objects or carry wrong field types are skipped, and missing
// fields default (id 0, timestamp 0, isVictory false, intensity 0, text nil).
// Blank text fields normalize to nil. A document that cannot be decoded at
// all is an error.
func Parse(data []byte) ([]models.Event, error) {
	var raw struct {
		Version    int               `json:"version"`
		ExportedAt int64             `json:"exportedAt"`
		Events     []json.RawMessage `json:"events"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid backup document: %w", err)
	}

	events := make([]models.Event, 0, len(raw.Events))
	for _, item := range raw.Events {
		var e models.Event
		if err := json.Unmarshal(item, &e); err != nil {
			continue
		}
		e.Note = normalizeText(e.Note)
		e.Trigger = normalizeText(e.Trigger)
		events = append(events, e)
	}
	return events, nil
}

func normalizeText(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
