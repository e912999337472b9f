package service

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"deckhub-backend/internal/deck"
	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/feed"
	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/repository"
)

type notificationService struct {
	repo  repository.NotificationRepository
	limit int

	mu   sync.RWMutex
	list []domain.AdminNotification
}

func NewNotificationService(repo repository.NotificationRepository, limit int) NotificationService {
	if limit <= 0 {
		limit = 50
	}
	return &notificationService{repo: repo, limit: limit}
}

// Load fetches the most recent notifications, newest first. A
// not-provisioned error falls back silently to an empty list; any other
// error is logged and prior state is left untouched.
func (s *notificationService) Load(ctx context.Context) error {
	notes, err := s.repo.ListRecent(ctx, int32(s.limit))
	if err != nil {
		if errors.Is(err, repository.ErrNotProvisioned) {
			s.mu.Lock()
			s.list = nil
			s.mu.Unlock()
			return nil
		}
		logger.Error("Failed to load notifications", "error", err)
		return err
	}

	s.mu.Lock()
	s.list = notes
	s.mu.Unlock()
	return nil
}

// Run applies live events until the channel is closed or ctx is cancelled.
// A resync event reloads the list from the store, since events emitted
// while the source was disconnected never arrive.
func (s *notificationService) Run(ctx context.Context, events <-chan feed.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Op == feed.OpResync {
				if err := s.Load(ctx); err != nil {
					logger.Warn("Notification reload after reconnect failed", "error", err)
				}
				continue
			}
			s.mu.Lock()
			s.list = feed.Reduce(s.list, ev, s.limit)
			s.mu.Unlock()
		}
	}
}

func (s *notificationService) Notifications() []domain.AdminNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AdminNotification, len(s.list))
	copy(out, s.list)
	return out
}

func (s *notificationService) Unread() []domain.AdminNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var unread []domain.AdminNotification
	for _, n := range s.list {
		if !n.IsRead {
			unread = append(unread, n)
		}
	}
	return unread
}

func (s *notificationService) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.list {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// MarkAsRead flips local state optimistically, then issues the remote
// update. A remote failure is logged but the optimistic mutation is kept;
// the subscription or the next load reconciles.
func (s *notificationService) MarkAsRead(ctx context.Context, id int32) error {
	s.mu.Lock()
	for i := range s.list {
		if s.list[i].ID == id {
			s.list[i].IsRead = true
			break
		}
	}
	s.mu.Unlock()

	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		logger.Error("Remote mark-as-read failed", "notificationID", id, "error", err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context) error {
	s.mu.Lock()
	for i := range s.list {
		s.list[i].IsRead = true
	}
	s.mu.Unlock()

	if err := s.repo.MarkAllAsRead(ctx); err != nil {
		logger.Error("Remote mark-all-as-read failed", "error", err)
	}
	return nil
}

func (s *notificationService) NotifySignup(ctx context.Context, lead *domain.Lead) error {
	note := &domain.AdminNotification{
		Type:      domain.NotificationTypeNewSignup,
		Title:     "New lead signup",
		Message:   lead.Name + " (" + lead.Email + ") submitted the contact form",
		UserID:    &lead.ID,
		UserEmail: lead.Email,
		Metadata: map[string]string{
			domain.NotificationMetaUserID: strconv.Itoa(int(lead.ID)),
		},
	}
	return s.repo.Create(ctx, note)
}

func (s *notificationService) NotifyAccessRequest(ctx context.Context, lead *domain.Lead, req *domain.DeckAccessRequest) error {
	title := "Deck access requested"
	message := lead.Email + " requested access to " + req.DeckID
	if d, ok := deck.ByID(req.DeckID); ok {
		message = lead.Email + " requested access to " + d.Title
	}
	note := &domain.AdminNotification{
		Type:      domain.NotificationTypeDeckAccessRequest,
		Title:     title,
		Message:   message,
		UserID:    &lead.ID,
		UserEmail: lead.Email,
		Metadata: map[string]string{
			domain.NotificationMetaRequestID: req.ID,
			domain.NotificationMetaUserID:    strconv.Itoa(int(lead.ID)),
		},
	}
	return s.repo.Create(ctx, note)
}

func (s *notificationService) NotifySystem(ctx context.Context, title, message string) error {
	note := &domain.AdminNotification{
		Type:    domain.NotificationTypeSystem,
		Title:   title,
		Message: message,
	}
	return s.repo.Create(ctx, note)
}
