package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"deckhub-backend/internal/config"
	"deckhub-backend/internal/jobs"
	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/repository/postgres"
	"deckhub-backend/internal/scheduler"
	"deckhub-backend/internal/service"
	"deckhub-backend/internal/session"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'purge-expired-sessions', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Deck Hub Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Session Cache
	sessionStore, err := session.NewFileStore(cfg.Session.StorePath)
	if err != nil {
		logger.Error("Failed to initialize session store", "error", err, "path", cfg.Session.StorePath)
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	sessions := session.NewManager(sessionStore, time.Duration(cfg.Session.TTLHours)*time.Hour)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	noteSvc := service.NewNotificationService(store.NotificationRepository, cfg.Notifications.FeedLimit)
	accessSvc := service.NewAccessService(
		store.GrantRepository,
		store.AccessRequestRepository,
		store.ProcedureRepository,
		store.LeadRepository,
		noteSvc,
		emailSvc,
		cfg.Email.AdminEmail,
	)

	jobServices := &jobs.Services{
		Email:        emailSvc,
		Notification: noteSvc,
		Access:       accessSvc,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store, sessions, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "purge-expired-sessions":
		jobRunner.PurgeExpiredSessions()
	case "expire-stale-requests":
		jobRunner.ExpireStaleRequests()
	case "send-admin-digest":
		jobRunner.SendAdminDigest()
	case "all":
		jobRunner.RunAllJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - purge-expired-sessions\n")
		fmt.Printf("  - expire-stale-requests\n")
		fmt.Printf("  - send-admin-digest\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
