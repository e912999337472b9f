package repository

import (
	"context"

	"deckhub-backend/internal/domain"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id int32) (*domain.Lead, error)
	GetByEmail(ctx context.Context, email string) (*domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id int32) error
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
}

type GrantRepository interface {
	Create(ctx context.Context, grant *domain.DeckAccessGrant) error
	ListByLead(ctx context.Context, leadID int32) ([]domain.DeckAccessGrant, error)
	Delete(ctx context.Context, leadID int32, deckID string) error
	DeleteAllForLead(ctx context.Context, leadID int32) error
}

type AccessRequestRepository interface {
	Create(ctx context.Context, req *domain.DeckAccessRequest) error
	GetByID(ctx context.Context, id string) (*domain.DeckAccessRequest, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.DeckAccessRequest, error)
	ListPending(ctx context.Context) ([]domain.DeckAccessRequest, error)
	ListPendingOlderThan(ctx context.Context, days int) ([]domain.DeckAccessRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.AccessRequestStatus) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.AdminNotification) error
	ListRecent(ctx context.Context, limit int32) ([]domain.AdminNotification, error)
	ListUnread(ctx context.Context) ([]domain.AdminNotification, error)
	MarkAsRead(ctx context.Context, id int32) error
	MarkAllAsRead(ctx context.Context) error
}

type ReadStatusRepository interface {
	UpsertOpened(ctx context.Context, userID int32, deckID string) error
	MarkRead(ctx context.Context, userID int32, deckID string) error
	ListByLead(ctx context.Context, userID int32) ([]domain.DeckReadStatus, error)
}

type ReviewRepository interface {
	ListByDeck(ctx context.Context, deckID string) ([]domain.DeckReview, error)
	Upsert(ctx context.Context, review *domain.DeckReview) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int32) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error
	Delete(ctx context.Context, id int32) error
	ListTimeline(ctx context.Context) ([]domain.Task, error)
	ListAdHoc(ctx context.Context) ([]domain.Task, error)
}

// ProcedureRepository invokes the named server-side procedures. Each
// returns the literal string "success" or an error string; callers branch
// on that literal.
type ProcedureRepository interface {
	ApproveDeckAccess(ctx context.Context, requestID string) (string, error)
	DenyDeckAccess(ctx context.Context, requestID string) (string, error)
	GrantAllDecksToUser(ctx context.Context, userID int32) (string, error)
}
