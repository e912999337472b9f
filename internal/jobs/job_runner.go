package jobs

import (
	"deckhub-backend/internal/config"
	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/repository/postgres"
	"deckhub-backend/internal/service"
	"deckhub-backend/internal/session"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store    *postgres.Store
	sessions *session.Manager
	services *Services
	config   *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email        service.EmailService
	Notification service.NotificationService
	Access       service.AccessService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, sessions *session.Manager, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		sessions: sessions,
		services: services,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every maintenance job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.PurgeExpiredSessions()
	jr.ExpireStaleRequests()
	jr.SendAdminDigest()
}
