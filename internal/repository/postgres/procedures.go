package postgres

import (
	"context"
	"database/sql"

	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/repository"
)

type procedureRepository struct {
	db *sql.DB
}

func NewProcedureRepository(db *sql.DB) repository.ProcedureRepository {
	return &procedureRepository{db: db}
}

// Each procedure returns the literal string "success" or an error string.
// The caller branches on that literal; this layer only transports it.

func (r *procedureRepository) ApproveDeckAccess(ctx context.Context, requestID string) (string, error) {
	return r.call(ctx, `SELECT approve_deck_access($1)`, "approve_deck_access", requestID)
}

func (r *procedureRepository) DenyDeckAccess(ctx context.Context, requestID string) (string, error) {
	return r.call(ctx, `SELECT deny_deck_access($1)`, "deny_deck_access", requestID)
}

func (r *procedureRepository) GrantAllDecksToUser(ctx context.Context, userID int32) (string, error) {
	return r.call(ctx, `SELECT grant_all_decks_to_user($1)`, "grant_all_decks_to_user", userID)
}

func (r *procedureRepository) call(ctx context.Context, query, name string, arg any) (string, error) {
	logger.DatabaseCall("SELECT", name, "arg", arg)
	var result string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&result)
	logger.DatabaseResult("SELECT", 1, err, "procedure", name, "result", result)
	if err != nil {
		if IsNotProvisioned(err) {
			return "", repository.ErrNotProvisioned
		}
		return "", err
	}
	return result, nil
}
