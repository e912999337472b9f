package postgres

import (
	"context"
	"database/sql"
	"time"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	p := &domain.Profile{}
	var createdAt time.Time
	query := `SELECT user_id, email, name, role, password_hash, created_at FROM profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.Email, &p.Name, &p.Role, &p.PasswordHash, &createdAt)
	if err != nil {
		return nil, err
	}
	p.CreatedOn = createdAt.Format("2006-01-02")
	return p, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	p := &domain.Profile{}
	var createdAt time.Time
	query := `SELECT user_id, email, name, role, password_hash, created_at FROM profiles WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, domain.NormalizeEmail(email)).Scan(&p.UserID, &p.Email, &p.Name, &p.Role, &p.PasswordHash, &createdAt)
	if err != nil {
		return nil, err
	}
	p.CreatedOn = createdAt.Format("2006-01-02")
	return p, nil
}
