package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"deckhub-backend/internal/deck"
	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/feed"
	"deckhub-backend/internal/service"
	"deckhub-backend/internal/session"
)

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) AuthorizeAdmin(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockAuthService) LoginAdmin(ctx context.Context, email, password string) (*domain.Profile, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Profile), args.String(1), args.Error(2)
}

func (m *MockAuthService) LoginLead(ctx context.Context, email, password string) (string, *session.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*session.Session), args.Error(2)
}

func (m *MockAuthService) RestoreLead(sessionID string) (*session.Session, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockAuthService) LogoutLead(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

type MockAccessService struct{ mock.Mock }

func (m *MockAccessService) RefreshAccess(ctx context.Context, leadID int32) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

func (m *MockAccessService) CheckAccess(leadID int32, deckID string) bool {
	args := m.Called(leadID, deckID)
	return args.Bool(0)
}

func (m *MockAccessService) AccessibleDecks(leadID int32) []deck.Deck {
	args := m.Called(leadID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]deck.Deck)
}

func (m *MockAccessService) RequestAccess(ctx context.Context, leadID int32, deckID string) (*domain.DeckAccessRequest, error) {
	args := m.Called(ctx, leadID, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeckAccessRequest), args.Error(1)
}

func (m *MockAccessService) ApproveRequest(ctx context.Context, requestID string) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

func (m *MockAccessService) DenyRequest(ctx context.Context, requestID string) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

func (m *MockAccessService) GrantAll(ctx context.Context, grantedBy string, leadID int32) error {
	args := m.Called(ctx, grantedBy, leadID)
	return args.Error(0)
}

func (m *MockAccessService) RevokeAll(ctx context.Context, leadID int32) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

func (m *MockAccessService) ListPendingRequests(ctx context.Context) ([]domain.DeckAccessRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeckAccessRequest), args.Error(1)
}

func (m *MockAccessService) ListGrants(ctx context.Context, leadID int32) ([]domain.DeckAccessGrant, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeckAccessGrant), args.Error(1)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationService) Run(ctx context.Context, events <-chan feed.Event) {
	m.Called(ctx, events)
}

func (m *MockNotificationService) Notifications() []domain.AdminNotification {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.AdminNotification)
}

func (m *MockNotificationService) Unread() []domain.AdminNotification {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.AdminNotification)
}

func (m *MockNotificationService) UnreadCount() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllAsRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationService) NotifySignup(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyAccessRequest(ctx context.Context, lead *domain.Lead, req *domain.DeckAccessRequest) error {
	args := m.Called(ctx, lead, req)
	return args.Error(0)
}

func (m *MockNotificationService) NotifySystem(ctx context.Context, title, message string) error {
	args := m.Called(ctx, title, message)
	return args.Error(0)
}

type MockTaskService struct{ mock.Mock }

func (m *MockTaskService) CreateTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskService) UpdateTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskService) ListTimeline(ctx context.Context) ([]service.TaskView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.TaskView), args.Error(1)
}

func (m *MockTaskService) ListAdHoc(ctx context.Context) ([]service.TaskView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.TaskView), args.Error(1)
}

func (m *MockTaskService) AdvanceStatus(ctx context.Context, id int32) (domain.TaskStatus, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TaskStatus), args.Error(1)
}

func (m *MockTaskService) ToggleStatus(ctx context.Context, id int32) (domain.TaskStatus, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TaskStatus), args.Error(1)
}

func (m *MockTaskService) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
