package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/repository"
	"deckhub-backend/internal/repository/postgres"
)

func TestNotificationRepository_ListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "type", "title", "message", "user_id", "user_email", "metadata", "is_read", "created_at"}).
			AddRow(2, "deck_access_request", "Deck access requested", "lead@example.com requested access", 7, "lead@example.com", []byte(`{"request_id":"req-1","user_id":"7"}`), false, time.Now()).
			AddRow(1, "new_signup", "New lead signup", "someone signed up", nil, nil, []byte(`{}`), true, time.Now().Add(-time.Hour))

		mock.ExpectQuery("FROM admin_notifications ORDER BY created_at DESC LIMIT \\$1").
			WithArgs(int32(50)).
			WillReturnRows(rows)

		notes, err := repo.ListRecent(ctx, 50)
		assert.NoError(t, err)
		assert.Len(t, notes, 2)
		assert.Equal(t, int32(2), notes[0].ID)
		assert.Equal(t, "req-1", notes[0].Metadata[domain.NotificationMetaRequestID])
		assert.Nil(t, notes[1].UserID)
	})

	t.Run("MissingTableReadsAsNotProvisioned", func(t *testing.T) {
		mock.ExpectQuery("FROM admin_notifications ORDER BY created_at DESC LIMIT \\$1").
			WithArgs(int32(50)).
			WillReturnError(&pq.Error{Code: "42P01"})

		_, err := repo.ListRecent(ctx, 50)
		assert.ErrorIs(t, err, repository.ErrNotProvisioned)
	})

	t.Run("PermissionDeniedReadsAsNotProvisioned", func(t *testing.T) {
		mock.ExpectQuery("FROM admin_notifications ORDER BY created_at DESC LIMIT \\$1").
			WithArgs(int32(50)).
			WillReturnError(&pq.Error{Code: "42501"})

		_, err := repo.ListRecent(ctx, 50)
		assert.ErrorIs(t, err, repository.ErrNotProvisioned)
	})

	t.Run("OtherErrorsPassThrough", func(t *testing.T) {
		mock.ExpectQuery("FROM admin_notifications ORDER BY created_at DESC LIMIT \\$1").
			WithArgs(int32(50)).
			WillReturnError(&pq.Error{Code: "53300"})

		_, err := repo.ListRecent(ctx, 50)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNotProvisioned)
	})
}

func TestNotificationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)
	ctx := context.Background()

	userID := int32(7)
	note := &domain.AdminNotification{
		Type:      domain.NotificationTypeDeckAccessRequest,
		Title:     "Deck access requested",
		Message:   "lead@example.com requested access",
		UserID:    &userID,
		UserEmail: "lead@example.com",
		Metadata:  map[string]string{domain.NotificationMetaRequestID: "req-1"},
	}

	mock.ExpectQuery("INSERT INTO admin_notifications").
		WithArgs(note.Type, note.Title, note.Message, note.UserID, note.UserEmail, sqlmock.AnyArg(), false, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	assert.NoError(t, repo.Create(ctx, note))
	assert.Equal(t, int32(42), note.ID)
}

func TestNotificationRepository_MarkAsRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE admin_notifications SET is_read = TRUE WHERE id = \\$1").
			WithArgs(int32(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.MarkAsRead(ctx, 42))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE admin_notifications SET is_read = TRUE WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		assert.Error(t, repo.MarkAsRead(ctx, 99))
	})
}
