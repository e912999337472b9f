package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "deckhub-backend/internal/api/http"
	"deckhub-backend/internal/config"
	"deckhub-backend/internal/feed"
	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/repository/postgres"
	"deckhub-backend/internal/security"
	"deckhub-backend/internal/service"
	"deckhub-backend/internal/session"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Deck Hub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
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

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

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
	authSvc := service.NewAuthService(
		store.LeadRepository,
		store.ProfileRepository,
		sessions,
		tokenManager,
		accessSvc,
	)
	leadSvc := service.NewLeadService(
		store.LeadRepository,
		store.ReadStatusRepository,
		noteSvc,
		emailSvc,
		cfg.Email.AdminEmail,
	)
	taskSvc := service.NewTaskService(store.TaskRepository)
	reviewSvc := service.NewReviewService(store.ReviewRepository)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial notification load; a missing notifications table reads as an
	// empty feed rather than a startup failure.
	if err := noteSvc.Load(ctx); err != nil {
		logger.Warn("Initial notification load failed", "error", err)
	}

	// Initialize Live Notification Feed
	events := feed.NewHub()
	source, err := feed.NewPQSource(ctx, cfg.GetDatabaseConnectionString(), cfg.Notifications.Channel)
	if err != nil {
		logger.Warn("Live notification feed unavailable", "channel", cfg.Notifications.Channel, "error", err)
	} else {
		defer source.Close()
		go events.Run(ctx, source.Events())
		feedEvents, cancelSub := events.Subscribe()
		defer cancelSub()
		go noteSvc.Run(ctx, feedEvents)
		logger.Info("Live notification feed started", "channel", cfg.Notifications.Channel)
	}

	// Set up HTTP server
	server := httpapi.NewServer(authSvc, accessSvc, noteSvc, leadSvc, taskSvc, reviewSvc, tokenManager, events)
	httpServer := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // the notification stream holds its response open
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
