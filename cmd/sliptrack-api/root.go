package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sliptrack-api",
	Short: "Sliptrack API server",
	Long:  `A REST API server for the sliptrack habit-tracking application.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(milestoneCmd)
	rootCmd.AddCommand(backupCmd)
}
