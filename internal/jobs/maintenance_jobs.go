package jobs

import (
	"context"
	"fmt"
	"time"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/logger"
)

const jobTimeout = 2 * time.Minute

// PurgeExpiredSessions sweeps the session store and removes expired or
// unreadable entries.
func (jr *JobRunner) PurgeExpiredSessions() {
	jr.runWithRecovery("PurgeExpiredSessions", func() {
		purged, err := jr.sessions.PurgeExpired()
		if err != nil {
			logger.Error("Session purge failed", "error", err)
			return
		}
		if purged > 0 {
			logger.Info("Purged expired sessions", "count", purged)
		}
	})
}

// ExpireStaleRequests denies pending deck-access requests older than the
// configured window and records a system notification for each.
func (jr *JobRunner) ExpireStaleRequests() {
	jr.runWithRecovery("ExpireStaleRequests", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		days := jr.config.Scheduler.StaleRequestDays
		stale, err := jr.store.AccessRequestRepository.ListPendingOlderThan(ctx, days)
		if err != nil {
			logger.Error("Failed to list stale access requests", "error", err)
			return
		}

		for _, req := range stale {
			if err := jr.store.AccessRequestRepository.UpdateStatus(ctx, req.ID, domain.AccessRequestStatusDenied); err != nil {
				logger.Error("Failed to expire access request", "requestID", req.ID, "error", err)
				continue
			}
			msg := fmt.Sprintf("Request %s for deck %s expired after %d days", req.ID, req.DeckID, days)
			if err := jr.services.Notification.NotifySystem(ctx, "Access request expired", msg); err != nil {
				logger.Warn("Failed to record expiry notification", "requestID", req.ID, "error", err)
			}
		}
		if len(stale) > 0 {
			logger.Info("Expired stale access requests", "count", len(stale))
		}
	})
}

// SendAdminDigest emails a summary of unread notifications to the
// configured admin address.
func (jr *JobRunner) SendAdminDigest() {
	jr.runWithRecovery("SendAdminDigest", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		adminEmail := jr.config.Email.AdminEmail
		if adminEmail == "" {
			logger.Debug("No admin email configured, skipping digest")
			return
		}

		unread, err := jr.store.NotificationRepository.ListUnread(ctx)
		if err != nil {
			logger.Error("Failed to list unread notifications for digest", "error", err)
			return
		}
		if len(unread) == 0 {
			return
		}

		if err := jr.services.Email.SendAdminDigest(ctx, adminEmail, unread); err != nil {
			logger.Error("Failed to send admin digest", "error", err)
		}
	})
}
