package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
	"github.com/chinnidiwakar/sliptrack/backend/internal/repository"
)

// milestoneDays are the clean-streak lengths worth celebrating.
var milestoneDays = map[int]bool{
	1: true, 3: true, 7: true, 14: true, 30: true, 60: true, 90: true,
}

type milestoneService struct {
	eventRepo repository.EventRepository
}

// NewMilestoneService creates a new milestone service.
func NewMilestoneService(eventRepo repository.EventRepository) MilestoneService {
	return &milestoneService{eventRepo: eventRepo}
}

// CheckMilestone returns a milestone when the days since the last slip equal
// one of the celebrated counts, and nil otherwise. A log without slips has no
// milestone to report.
func (s *milestoneService) CheckMilestone(ctx context.Context) (*models.Milestone, error) {
	lastSlip, err := s.eventRepo.GetLastSlip(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get last slip: %w", err)
	}
	if lastSlip == nil {
		return nil, nil
	}

	days := daysBetween(localDate(lastSlip.Timestamp), dateOf(time.Now()))
	return milestoneFor(days), nil
}

func milestoneFor(days int) *models.Milestone {
	if !milestoneDays[days] {
		return nil
	}

	var message string
	switch days {
	case 1:
		message = "Day 1 complete. Keep going 🌱"
	case 3:
		message = "3-day streak! Solid momentum ⚡"
	case 7:
		message = "One full week! Proud of you 🏆"
	default:
		message = fmt.Sprintf("%d-day streak. Keep building 💪", days)
	}

	return &models.Milestone{Days: days, Message: message}
}
