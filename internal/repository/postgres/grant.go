package postgres

import (
	"context"
	"database/sql"
	"time"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/repository"
)

type grantRepository struct {
	db *sql.DB
}

func NewGrantRepository(db *sql.DB) repository.GrantRepository {
	return &grantRepository{db: db}
}

func (r *grantRepository) Create(ctx context.Context, grant *domain.DeckAccessGrant) error {
	query := `INSERT INTO user_deck_access (lead_id, deck_id, granted_by, granted_at)
	          VALUES ($1, $2, $3, $4)`
	logger.DatabaseCall("INSERT", "user_deck_access", "leadID", grant.LeadID, "deckID", grant.DeckID)
	result, err := r.db.ExecContext(ctx, query, grant.LeadID, grant.DeckID, grant.GrantedBy, time.Now())
	var rows int64
	if result != nil {
		rows, _ = result.RowsAffected()
	}
	logger.DatabaseResult("INSERT", rows, err, "leadID", grant.LeadID, "deckID", grant.DeckID)
	return err
}

func (r *grantRepository) ListByLead(ctx context.Context, leadID int32) ([]domain.DeckAccessGrant, error) {
	query := `SELECT lead_id, deck_id, granted_by, granted_at FROM user_deck_access WHERE lead_id = $1 ORDER BY granted_at`
	rows, err := r.db.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []domain.DeckAccessGrant
	for rows.Next() {
		var g domain.DeckAccessGrant
		var grantedAt time.Time
		if err := rows.Scan(&g.LeadID, &g.DeckID, &g.GrantedBy, &grantedAt); err != nil {
			return nil, err
		}
		g.GrantedOn = grantedAt.Format("2006-01-02")
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

func (r *grantRepository) Delete(ctx context.Context, leadID int32, deckID string) error {
	query := `DELETE FROM user_deck_access WHERE lead_id = $1 AND deck_id = $2`
	_, err := r.db.ExecContext(ctx, query, leadID, deckID)
	return err
}

func (r *grantRepository) DeleteAllForLead(ctx context.Context, leadID int32) error {
	query := `DELETE FROM user_deck_access WHERE lead_id = $1`
	logger.DatabaseCall("DELETE", "user_deck_access", "leadID", leadID)
	result, err := r.db.ExecContext(ctx, query, leadID)
	var rows int64
	if result != nil {
		rows, _ = result.RowsAffected()
	}
	logger.DatabaseResult("DELETE", rows, err, "leadID", leadID)
	return err
}
