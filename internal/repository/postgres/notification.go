package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.AdminNotification) error {
	logger.EnterMethod("notificationRepository.Create", "type", n.Type, "title", n.Title)

	meta, err := json.Marshal(n.Metadata)
	if err != nil {
		logger.ExitMethodWithError("notificationRepository.Create", err, "reason", "failed to marshal metadata")
		return err
	}

	query := `INSERT INTO admin_notifications (type, title, message, user_id, user_email, metadata, is_read, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	logger.DatabaseCall("INSERT", "admin_notifications", "type", n.Type)

	err = r.db.QueryRowContext(ctx, query, n.Type, n.Title, n.Message, n.UserID, n.UserEmail, meta, n.IsRead, time.Now()).Scan(&n.ID)
	logger.DatabaseResult("INSERT", 1, err, "notificationID", n.ID)

	if err != nil {
		logger.ExitMethodWithError("notificationRepository.Create", err, "type", n.Type)
	} else {
		logger.ExitMethod("notificationRepository.Create", "notificationID", n.ID)
	}
	return err
}

func (r *notificationRepository) ListRecent(ctx context.Context, limit int32) ([]domain.AdminNotification, error) {
	query := `SELECT id, type, title, message, user_id, user_email, metadata, is_read, created_at
	          FROM admin_notifications ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		if IsNotProvisioned(err) {
			return nil, repository.ErrNotProvisioned
		}
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

func (r *notificationRepository) ListUnread(ctx context.Context) ([]domain.AdminNotification, error) {
	query := `SELECT id, type, title, message, user_id, user_email, metadata, is_read, created_at
	          FROM admin_notifications WHERE is_read = FALSE ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		if IsNotProvisioned(err) {
			return nil, repository.ErrNotProvisioned
		}
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id int32) error {
	query := `UPDATE admin_notifications SET is_read = TRUE WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context) error {
	query := `UPDATE admin_notifications SET is_read = TRUE WHERE is_read = FALSE`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

func scanNotifications(rows *sql.Rows) ([]domain.AdminNotification, error) {
	var notes []domain.AdminNotification
	for rows.Next() {
		var n domain.AdminNotification
		var meta []byte
		var userID sql.NullInt32
		var userEmail sql.NullString
		var createdAt time.Time
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &userID, &userEmail, &meta, &n.IsRead, &createdAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			id := userID.Int32
			n.UserID = &id
		}
		n.UserEmail = userEmail.String
		n.CreatedOn = createdAt.Format(time.RFC3339)
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &n.Metadata); err != nil {
				return nil, err
			}
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
