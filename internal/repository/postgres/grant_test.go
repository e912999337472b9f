package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/repository/postgres"
)

func TestGrantRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewGrantRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		grant := &domain.DeckAccessGrant{
			LeadID:    7,
			DeckID:    "investor-deck",
			GrantedBy: "uid-admin",
		}

		mock.ExpectExec("INSERT INTO user_deck_access").
			WithArgs(grant.LeadID, grant.DeckID, grant.GrantedBy, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, grant))
	})
}

func TestGrantRepository_ListByLead(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewGrantRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"lead_id", "deck_id", "granted_by", "granted_at"}).
			AddRow(7, "investor-deck", "uid-admin", time.Now()).
			AddRow(7, "financial-model", "uid-admin", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM user_deck_access WHERE lead_id = \\$1").
			WithArgs(int32(7)).
			WillReturnRows(rows)

		grants, err := repo.ListByLead(ctx, 7)
		assert.NoError(t, err)
		assert.Len(t, grants, 2)
		assert.Equal(t, "investor-deck", grants[0].DeckID)
		assert.NotEmpty(t, grants[0].GrantedOn)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_deck_access WHERE lead_id = \\$1").
			WithArgs(int32(8)).
			WillReturnRows(sqlmock.NewRows([]string{"lead_id", "deck_id", "granted_by", "granted_at"}))

		grants, err := repo.ListByLead(ctx, 8)
		assert.NoError(t, err)
		assert.Empty(t, grants)
	})
}

func TestGrantRepository_DeleteAllForLead(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewGrantRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM user_deck_access WHERE lead_id = \\$1").
		WithArgs(int32(7)).
		WillReturnResult(sqlmock.NewResult(0, 5))

	assert.NoError(t, repo.DeleteAllForLead(ctx, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
