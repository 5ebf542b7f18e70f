package service

import (
	"testing"
	"time"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

// fixedNow is a Wednesday afternoon, giving the week-window tests a stable
// Monday anchor.
var fixedNow = time.Date(2026, time.March, 18, 15, 0, 0, 0, time.Local)

// slipAt builds a slip logged daysAgo days before fixedNow at the given hour.
func slipAt(daysAgo, hour int) models.Event {
	t := time.Date(fixedNow.Year(), fixedNow.Month(), fixedNow.Day(), hour, 0, 0, 0, time.Local).
		AddDate(0, 0, -daysAgo)
	return models.Event{Timestamp: t.UnixMilli()}
}

func slipWithTrigger(daysAgo, hour int, trigger string) models.Event {
	e := slipAt(daysAgo, hour)
	e.Trigger = &trigger
	return e
}

func victoryAt(daysAgo, hour int) models.Event {
	e := slipAt(daysAgo, hour)
	e.IsVictory = true
	return e
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name  string
		slips []models.Event
		want  int
	}{
		{
			name:  "empty list",
			slips: nil,
			want:  0,
		},
		{
			name:  "uses most recent slip",
			slips: []models.Event{slipAt(10, 0), slipAt(4, 0), slipAt(2, 0)},
			want:  2,
		},
		{
			name:  "slip today yields zero",
			slips: []models.Event{slipAt(0, 9)},
			want:  0,
		},
		{
			name: "legacy second-magnitude timestamp is normalized",
			slips: []models.Event{
				{Timestamp: slipAt(2, 0).Timestamp / 1000},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := currentStreakAt(tt.slips, fixedNow); got != tt.want {
				t.Errorf("currentStreakAt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name  string
		slips []models.Event
		want  int
	}{
		{
			name:  "fewer than two slips",
			slips: []models.Event{slipAt(5, 0)},
			want:  0,
		},
		{
			name:  "returns largest gap between slip days",
			slips: []models.Event{slipAt(20, 0), slipAt(15, 0), slipAt(4, 0), slipAt(1, 0)},
			want:  11,
		},
		{
			name:  "excludes the still-open gap since the last slip",
			slips: []models.Event{slipAt(10, 0), slipAt(4, 0), slipAt(2, 0)},
			want:  6,
		},
		{
			name:  "same-day slips count once",
			slips: []models.Event{slipAt(3, 8), slipAt(3, 20), slipAt(3, 22), slipAt(1, 9)},
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LongestStreak(tt.slips); got != tt.want {
				t.Errorf("LongestStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAverageStreak(t *testing.T) {
	tests := []struct {
		name   string
		events []models.Event
		want   int
	}{
		{
			name:   "fewer than two slips",
			events: []models.Event{slipAt(5, 0), victoryAt(2, 0)},
			want:   0,
		},
		{
			name:   "two slips on the same day is one distinct date",
			events: []models.Event{slipAt(4, 8), slipAt(4, 20)},
			want:   0,
		},
		{
			name: "ignores victory events",
			events: []models.Event{
				slipAt(12, 0), slipAt(8, 0), victoryAt(7, 0), slipAt(3, 0),
			},
			want: 4, // gaps 4 and 5, mean 4.5 truncated
		},
		{
			name:   "truncates instead of rounding",
			events: []models.Event{slipAt(10, 0), slipAt(4, 0), slipAt(2, 0)},
			want:   4, // gaps 6 and 2
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageStreak(tt.events); got != tt.want {
				t.Errorf("AverageStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0m"},
		{42 * 60 * 1000, "42m"},
		{2*60*60*1000 + 10*60*1000, "2h 10m"},
		{3*24*60*60*1000 + 4*60*60*1000, "3d 4h"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.ms); got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
