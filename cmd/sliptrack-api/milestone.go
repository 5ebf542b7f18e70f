package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinnidiwakar/sliptrack/backend/internal/config"
	"github.com/chinnidiwakar/sliptrack/backend/internal/repository"
	"github.com/chinnidiwakar/sliptrack/backend/internal/service"
)

var milestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Run a one-shot milestone check",
	Long:  `Check whether the current clean streak sits on a celebrated day count. Intended for cron-style scheduling.`,
	RunE:  runMilestone,
}

func runMilestone(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := repository.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open event store: %w", err)
	}

	svc := service.NewMilestoneService(repository.NewEventRepository(db))
	milestone, err := svc.CheckMilestone(context.Background())
	if err != nil {
		return err
	}

	if milestone == nil {
		fmt.Println("No milestone today.")
		return nil
	}

	fmt.Printf("Milestone unlocked: %s\n", milestone.Message)
	return nil
}
