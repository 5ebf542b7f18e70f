package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/chinnidiwakar/sliptrack/backend/internal/config"
	"github.com/chinnidiwakar/sliptrack/backend/internal/handlers"
	"github.com/chinnidiwakar/sliptrack/backend/internal/logger"
	"github.com/chinnidiwakar/sliptrack/backend/internal/middleware"
	"github.com/chinnidiwakar/sliptrack/backend/internal/repository"
	"github.com/chinnidiwakar/sliptrack/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))

	logger.Info("starting sliptrack API server",
		logger.String("env", cfg.Server.Env),
		logger.String("database", cfg.Database.Path),
	)

	// Open the event store
	db, err := repository.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open event store: %w", err)
	}

	// Initialize repository
	eventRepo := repository.NewEventRepository(db)

	// Initialize services
	eventService := service.NewEventService(eventRepo)
	analyticsService := service.NewAnalyticsService(eventRepo)
	insightsService := service.NewInsightsService(eventRepo)
	backupService := service.NewBackupService(eventRepo)
	milestoneService := service.NewMilestoneService(eventRepo)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	insightsHandler := handlers.NewInsightsHandler(insightsService)
	backupHandler := handlers.NewBackupHandler(backupService)
	milestoneHandler := handlers.NewMilestoneHandler(milestoneService)

	// Periodic milestone check, re-run on every store mutation
	go runMilestoneWatcher(milestoneService, eventRepo, cfg.Milestone.CheckInterval)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.Logger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Event log
		v1.POST("/events", eventHandler.LogEvent)
		v1.GET("/events", eventHandler.GetEvents)

		// Derived analytics
		v1.GET("/summary", analyticsHandler.GetSummary)
		v1.GET("/streaks", analyticsHandler.GetStreaks)
		v1.GET("/calendar", analyticsHandler.GetCalendar)
		v1.GET("/history", analyticsHandler.GetHistory)
		v1.GET("/reports/weekly", analyticsHandler.GetWeeklyReport)
		v1.GET("/insights", insightsHandler.GetInsights)
		v1.GET("/milestone", milestoneHandler.GetMilestone)
		v1.GET("/quote", analyticsHandler.GetQuote)

		// Backup
		v1.GET("/backup/export", backupHandler.Export)
		v1.POST("/backup/import", backupHandler.Import)
	}

	logger.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// runMilestoneWatcher periodically checks whether the clean streak has landed
// on a celebrated day count, and re-checks whenever the event log changes.
// The engines stay pure; this loop owns the recomputation scheduling.
func runMilestoneWatcher(svc service.MilestoneService, repo repository.EventRepository, interval time.Duration) {
	changes := repo.Subscribe()
	defer repo.Unsubscribe(changes)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		milestone, err := svc.CheckMilestone(context.Background())
		if err != nil {
			logger.Error("milestone check failed", logger.Err(err))
			return
		}
		if milestone != nil {
			logger.Info("streak milestone reached",
				logger.Int("days", milestone.Days),
				logger.String("message", milestone.Message),
			)
		}
	}

	check()
	for {
		select {
		case <-ticker.C:
			check()
		case _, ok := <-changes:
			if !ok {
				return
			}
			check()
		}
	}
}
