package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinnidiwakar/sliptrack/backend/internal/backup"
	"github.com/chinnidiwakar/sliptrack/backend/internal/config"
	"github.com/chinnidiwakar/sliptrack/backend/internal/repository"
	"github.com/chinnidiwakar/sliptrack/backend/internal/service"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import the event log",
}

var backupExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write a JSON backup of the event log",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the event log with a JSON backup",
	Long:  `Import is destructive: every existing event is deleted before the backup's events are inserted.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupImport,
}

func init() {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
}

func newBackupService() (service.BackupService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := repository.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event store: %w", err)
	}

	return service.NewBackupService(repository.NewEventRepository(db)), nil
}

func runBackupExport(cmd *cobra.Command, args []string) error {
	svc, err := newBackupService()
	if err != nil {
		return err
	}

	doc, err := svc.Export(context.Background())
	if err != nil {
		return err
	}

	data, err := backup.Marshal(doc)
	if err != nil {
		return err
	}

	if err := backup.WriteFile(args[0], data); err != nil {
		return err
	}

	fmt.Printf("Exported %d events to %s\n", len(doc.Events), args[0])
	return nil
}

func runBackupImport(cmd *cobra.Command, args []string) error {
	svc, err := newBackupService()
	if err != nil {
		return err
	}

	data, err := backup.ReadFile(args[0])
	if err != nil {
		return err
	}

	result, err := svc.Import(context.Background(), data)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d events from %s\n", result.Imported, args[0])
	return nil
}
