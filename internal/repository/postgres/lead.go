package postgres

import (
	"context"
	"database/sql"
	"time"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/repository"
)

type leadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) repository.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	query := `INSERT INTO leads (name, email, company, password_hash, source, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, lead.Name, lead.Email, lead.Company, lead.PasswordHash, lead.Source, time.Now()).Scan(&lead.ID)
}

func (r *leadRepository) GetByID(ctx context.Context, id int32) (*domain.Lead, error) {
	lead := &domain.Lead{}
	var createdAt time.Time
	query := `SELECT id, name, email, company, password_hash, source, created_at FROM leads WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Company, &lead.PasswordHash, &lead.Source, &createdAt)
	if err != nil {
		return nil, err
	}
	lead.CreatedOn = createdAt.Format("2006-01-02")
	return lead, nil
}

func (r *leadRepository) GetByEmail(ctx context.Context, email string) (*domain.Lead, error) {
	lead := &domain.Lead{}
	var createdAt time.Time
	query := `SELECT id, name, email, company, password_hash, source, created_at FROM leads WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, domain.NormalizeEmail(email)).Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Company, &lead.PasswordHash, &lead.Source, &createdAt)
	if err != nil {
		return nil, err
	}
	lead.CreatedOn = createdAt.Format("2006-01-02")
	return lead, nil
}

func (r *leadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	query := `SELECT id, name, email, company, password_hash, source, created_at FROM leads ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		var lead domain.Lead
		var createdAt time.Time
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Company, &lead.PasswordHash, &lead.Source, &createdAt); err != nil {
			return nil, err
		}
		lead.CreatedOn = createdAt.Format("2006-01-02")
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *leadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	query := `UPDATE leads SET name = $1, email = $2, company = $3, source = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, lead.Name, lead.Email, lead.Company, lead.Source, lead.ID)
	return err
}

func (r *leadRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM leads WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
