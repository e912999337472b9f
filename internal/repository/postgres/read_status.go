package postgres

import (
	"context"
	"database/sql"
	"time"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/repository"
)

type readStatusRepository struct {
	db *sql.DB
}

func NewReadStatusRepository(db *sql.DB) repository.ReadStatusRepository {
	return &readStatusRepository{db: db}
}

func (r *readStatusRepository) UpsertOpened(ctx context.Context, userID int32, deckID string) error {
	query := `INSERT INTO user_deck_read_status (user_id, deck_id, opened_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id, deck_id) DO UPDATE SET opened_at = EXCLUDED.opened_at`
	_, err := r.db.ExecContext(ctx, query, userID, deckID, time.Now())
	return err
}

func (r *readStatusRepository) MarkRead(ctx context.Context, userID int32, deckID string) error {
	query := `UPDATE user_deck_read_status SET marked_read_at = $1 WHERE user_id = $2 AND deck_id = $3`
	_, err := r.db.ExecContext(ctx, query, time.Now(), userID, deckID)
	return err
}

func (r *readStatusRepository) ListByLead(ctx context.Context, userID int32) ([]domain.DeckReadStatus, error) {
	query := `SELECT user_id, deck_id, opened_at, marked_read_at FROM user_deck_read_status WHERE user_id = $1 ORDER BY opened_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []domain.DeckReadStatus
	for rows.Next() {
		var s domain.DeckReadStatus
		var openedAt time.Time
		var markedReadAt sql.NullTime
		if err := rows.Scan(&s.UserID, &s.DeckID, &openedAt, &markedReadAt); err != nil {
			return nil, err
		}
		s.OpenedOn = openedAt.Format(time.RFC3339)
		if markedReadAt.Valid {
			read := markedReadAt.Time.Format(time.RFC3339)
			s.MarkedReadOn = &read
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
