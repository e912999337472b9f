package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/repository"

	"github.com/google/uuid"
)

type accessRequestRepository struct {
	db *sql.DB
}

func NewAccessRequestRepository(db *sql.DB) repository.AccessRequestRepository {
	return &accessRequestRepository{db: db}
}

func (r *accessRequestRepository) Create(ctx context.Context, req *domain.DeckAccessRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	query := `INSERT INTO deck_access_requests (id, user_id, deck_id, status, requested_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, req.ID, req.UserID, req.DeckID, req.Status, time.Now())
	return err
}

func (r *accessRequestRepository) GetByID(ctx context.Context, id string) (*domain.DeckAccessRequest, error) {
	req := &domain.DeckAccessRequest{}
	var requestedAt time.Time
	query := `SELECT id, user_id, deck_id, status, requested_at FROM deck_access_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.UserID, &req.DeckID, &req.Status, &requestedAt)
	if err != nil {
		return nil, err
	}
	req.RequestedOn = requestedAt.Format("2006-01-02")
	return req, nil
}

func (r *accessRequestRepository) ListByUser(ctx context.Context, userID int32) ([]domain.DeckAccessRequest, error) {
	query := `SELECT id, user_id, deck_id, status, requested_at FROM deck_access_requests WHERE user_id = $1 ORDER BY requested_at DESC`
	return r.queryRequests(ctx, query, userID)
}

func (r *accessRequestRepository) ListPending(ctx context.Context) ([]domain.DeckAccessRequest, error) {
	query := `SELECT id, user_id, deck_id, status, requested_at FROM deck_access_requests WHERE status = 'pending' ORDER BY requested_at DESC`
	return r.queryRequests(ctx, query)
}

func (r *accessRequestRepository) ListPendingOlderThan(ctx context.Context, days int) ([]domain.DeckAccessRequest, error) {
	query := `SELECT id, user_id, deck_id, status, requested_at FROM deck_access_requests
	          WHERE status = 'pending' AND requested_at < $1 ORDER BY requested_at`
	cutoff := time.Now().AddDate(0, 0, -days)
	return r.queryRequests(ctx, query, cutoff)
}

func (r *accessRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.AccessRequestStatus) error {
	query := `UPDATE deck_access_requests SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("access request not found")
	}
	return nil
}

func (r *accessRequestRepository) queryRequests(ctx context.Context, query string, args ...any) ([]domain.DeckAccessRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.DeckAccessRequest
	for rows.Next() {
		var req domain.DeckAccessRequest
		var requestedAt time.Time
		if err := rows.Scan(&req.ID, &req.UserID, &req.DeckID, &req.Status, &requestedAt); err != nil {
			return nil, err
		}
		req.RequestedOn = requestedAt.Format("2006-01-02")
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
