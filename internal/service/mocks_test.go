package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"deckhub-backend/internal/deck"
	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/feed"
)

type MockLeadRepo struct{ mock.Mock }

func (m *MockLeadRepo) Create(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepo) GetByID(ctx context.Context, id int32) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepo) GetByEmail(ctx context.Context, email string) (*domain.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepo) List(ctx context.Context) ([]domain.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *MockLeadRepo) Update(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProfileRepo struct{ mock.Mock }

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockGrantRepo struct{ mock.Mock }

func (m *MockGrantRepo) Create(ctx context.Context, grant *domain.DeckAccessGrant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockGrantRepo) ListByLead(ctx context.Context, leadID int32) ([]domain.DeckAccessGrant, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeckAccessGrant), args.Error(1)
}

func (m *MockGrantRepo) Delete(ctx context.Context, leadID int32, deckID string) error {
	args := m.Called(ctx, leadID, deckID)
	return args.Error(0)
}

func (m *MockGrantRepo) DeleteAllForLead(ctx context.Context, leadID int32) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

type MockAccessRequestRepo struct{ mock.Mock }

func (m *MockAccessRequestRepo) Create(ctx context.Context, req *domain.DeckAccessRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAccessRequestRepo) GetByID(ctx context.Context, id string) (*domain.DeckAccessRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeckAccessRequest), args.Error(1)
}

func (m *MockAccessRequestRepo) ListByUser(ctx context.Context, userID int32) ([]domain.DeckAccessRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeckAccessRequest), args.Error(1)
}

func (m *MockAccessRequestRepo) ListPending(ctx context.Context) ([]domain.DeckAccessRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeckAccessRequest), args.Error(1)
}

func (m *MockAccessRequestRepo) ListPendingOlderThan(ctx context.Context, days int) ([]domain.DeckAccessRequest, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeckAccessRequest), args.Error(1)
}

func (m *MockAccessRequestRepo) UpdateStatus(ctx context.Context, id string, status domain.AccessRequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockNotificationRepo struct{ mock.Mock }

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.AdminNotification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNotificationRepo) ListRecent(ctx context.Context, limit int32) ([]domain.AdminNotification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminNotification), args.Error(1)
}

func (m *MockNotificationRepo) ListUnread(ctx context.Context) ([]domain.AdminNotification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminNotification), args.Error(1)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepo) MarkAllAsRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockReadStatusRepo struct{ mock.Mock }

func (m *MockReadStatusRepo) UpsertOpened(ctx context.Context, userID int32, deckID string) error {
	args := m.Called(ctx, userID, deckID)
	return args.Error(0)
}

func (m *MockReadStatusRepo) MarkRead(ctx context.Context, userID int32, deckID string) error {
	args := m.Called(ctx, userID, deckID)
	return args.Error(0)
}

func (m *MockReadStatusRepo) ListByLead(ctx context.Context, userID int32) ([]domain.DeckReadStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeckReadStatus), args.Error(1)
}

type MockReviewRepo struct{ mock.Mock }

func (m *MockReviewRepo) ListByDeck(ctx context.Context, deckID string) ([]domain.DeckReview, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeckReview), args.Error(1)
}

func (m *MockReviewRepo) Upsert(ctx context.Context, review *domain.DeckReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

type MockTaskRepo struct{ mock.Mock }

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTaskRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepo) ListTimeline(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepo) ListAdHoc(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

type MockProcedureRepo struct{ mock.Mock }

func (m *MockProcedureRepo) ApproveDeckAccess(ctx context.Context, requestID string) (string, error) {
	args := m.Called(ctx, requestID)
	return args.String(0), args.Error(1)
}

func (m *MockProcedureRepo) DenyDeckAccess(ctx context.Context, requestID string) (string, error) {
	args := m.Called(ctx, requestID)
	return args.String(0), args.Error(1)
}

func (m *MockProcedureRepo) GrantAllDecksToUser(ctx context.Context, userID int32) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendSignupAlert(ctx context.Context, adminEmail string, lead *domain.Lead) error {
	args := m.Called(ctx, adminEmail, lead)
	return args.Error(0)
}

func (m *MockEmailService) SendAccessRequestAlert(ctx context.Context, adminEmail string, lead *domain.Lead, deckTitle string) error {
	args := m.Called(ctx, adminEmail, lead, deckTitle)
	return args.Error(0)
}

func (m *MockEmailService) SendAdminDigest(ctx context.Context, adminEmail string, unread []domain.AdminNotification) error {
	args := m.Called(ctx, adminEmail, unread)
	return args.Error(0)
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
