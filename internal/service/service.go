package service

import (
	"context"

	"deckhub-backend/internal/deck"
	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/feed"
	"deckhub-backend/internal/session"
)

type AuthService interface {
	// AuthorizeAdmin decides whether the identity may use the admin
	// surface. Any query error or role mismatch fails closed.
	AuthorizeAdmin(ctx context.Context, userID string) (*domain.Profile, error)
	LoginAdmin(ctx context.Context, email, password string) (*domain.Profile, string, error)
	LoginLead(ctx context.Context, email, password string) (string, *session.Session, error)
	RestoreLead(sessionID string) (*session.Session, error)
	LogoutLead(sessionID string) error
}

type AccessService interface {
	// RefreshAccess re-reads grants and requests for the lead into the
	// local cache.
	RefreshAccess(ctx context.Context, leadID int32) error
	// CheckAccess is a pure membership test against the last-fetched
	// grant set; false before the first successful fetch.
	CheckAccess(leadID int32, deckID string) bool
	AccessibleDecks(leadID int32) []deck.Deck
	RequestAccess(ctx context.Context, leadID int32, deckID string) (*domain.DeckAccessRequest, error)
	ApproveRequest(ctx context.Context, requestID string) error
	DenyRequest(ctx context.Context, requestID string) error
	GrantAll(ctx context.Context, grantedBy string, leadID int32) error
	RevokeAll(ctx context.Context, leadID int32) error
	ListPendingRequests(ctx context.Context) ([]domain.DeckAccessRequest, error)
	ListGrants(ctx context.Context, leadID int32) ([]domain.DeckAccessGrant, error)
}

type NotificationService interface {
	Load(ctx context.Context) error
	Run(ctx context.Context, events <-chan feed.Event)
	Notifications() []domain.AdminNotification
	Unread() []domain.AdminNotification
	UnreadCount() int
	MarkAsRead(ctx context.Context, id int32) error
	MarkAllAsRead(ctx context.Context) error
	NotifySignup(ctx context.Context, lead *domain.Lead) error
	NotifyAccessRequest(ctx context.Context, lead *domain.Lead, req *domain.DeckAccessRequest) error
	NotifySystem(ctx context.Context, title, message string) error
}

type LeadService interface {
	CreateLead(ctx context.Context, name, email, company, password, source string) (*domain.Lead, error)
	ListLeads(ctx context.Context) ([]domain.Lead, error)
	UpdateLead(ctx context.Context, lead *domain.Lead) error
	DeleteLead(ctx context.Context, id int32) error
	MarkDeckOpened(ctx context.Context, leadID int32, deckID string) error
	MarkDeckRead(ctx context.Context, leadID int32, deckID string) error
	ListReadStatus(ctx context.Context, leadID int32) ([]domain.DeckReadStatus, error)
}

// TaskView pairs a task with its parsed metadata for board rendering.
type TaskView struct {
	domain.Task
	Metadata domain.TaskMetadata `json:"metadata"`
}

type TaskService interface {
	CreateTask(ctx context.Context, task *domain.Task) error
	UpdateTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, id int32) error
	ListTimeline(ctx context.Context) ([]TaskView, error)
	ListAdHoc(ctx context.Context) ([]TaskView, error)
	// AdvanceStatus cycles a timeline task pending -> in_progress ->
	// completed -> pending.
	AdvanceStatus(ctx context.Context, id int32) (domain.TaskStatus, error)
	// ToggleStatus flips an ad-hoc task completed <-> pending.
	ToggleStatus(ctx context.Context, id int32) (domain.TaskStatus, error)
	Refresh(ctx context.Context) error
}

type ReviewService interface {
	GetReviews(ctx context.Context, reviewer *domain.Profile, deckID string) ([]domain.DeckReview, error)
	UpsertReview(ctx context.Context, reviewer *domain.Profile, review *domain.DeckReview) error
}

type EmailService interface {
	SendSignupAlert(ctx context.Context, adminEmail string, lead *domain.Lead) error
	SendAccessRequestAlert(ctx context.Context, adminEmail string, lead *domain.Lead, deckTitle string) error
	SendAdminDigest(ctx context.Context, adminEmail string, unread []domain.AdminNotification) error
}
