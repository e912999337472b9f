package postgres

import (
	"context"
	"database/sql"
	"time"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) ListByDeck(ctx context.Context, deckID string) ([]domain.DeckReview, error) {
	query := `SELECT deck_id, reviewer_name, content_ok, design_ok, desktop_ok, mobile_ok, updated_at
	          FROM super_admin_deck_reviews WHERE deck_id = $1 ORDER BY reviewer_name`
	rows, err := r.db.QueryContext(ctx, query, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.DeckReview
	for rows.Next() {
		var rv domain.DeckReview
		var updatedAt time.Time
		if err := rows.Scan(&rv.DeckID, &rv.ReviewerName, &rv.ContentOK, &rv.DesignOK, &rv.DesktopOK, &rv.MobileOK, &updatedAt); err != nil {
			return nil, err
		}
		rv.UpdatedOn = updatedAt.Format("2006-01-02")
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) Upsert(ctx context.Context, review *domain.DeckReview) error {
	query := `INSERT INTO super_admin_deck_reviews (deck_id, reviewer_name, content_ok, design_ok, desktop_ok, mobile_ok, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (deck_id, reviewer_name) DO UPDATE SET
	              content_ok = EXCLUDED.content_ok,
	              design_ok = EXCLUDED.design_ok,
	              desktop_ok = EXCLUDED.desktop_ok,
	              mobile_ok = EXCLUDED.mobile_ok,
	              updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query, review.DeckID, review.ReviewerName, review.ContentOK, review.DesignOK, review.DesktopOK, review.MobileOK, time.Now())
	return err
}
