package service

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"deckhub-backend/internal/deck"
	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/repository"
)

// ErrDuplicateRequest is returned when a request for the same (lead, deck)
// pair already exists in local state; no row is written. The message is
// part of the hub API contract.
var ErrDuplicateRequest = errors.New("Request already exists")

var ErrUnknownDeck = errors.New("unknown deck")

const procedureSuccess = "success"

// leadAccessState is the last-fetched view of one lead's grants and
// requests. It is a cache of the remote store, never authoritative.
type leadAccessState struct {
	fetched  bool
	grants   map[string]bool
	requests []domain.DeckAccessRequest
}

type accessService struct {
	grantRepo  repository.GrantRepository
	reqRepo    repository.AccessRequestRepository
	procs      repository.ProcedureRepository
	noteSvc    NotificationService
	leadRepo   repository.LeadRepository
	emailSvc   EmailService
	adminEmail string

	mu    sync.RWMutex
	state map[int32]*leadAccessState
}

func NewAccessService(
	grantRepo repository.GrantRepository,
	reqRepo repository.AccessRequestRepository,
	procs repository.ProcedureRepository,
	leadRepo repository.LeadRepository,
	noteSvc NotificationService,
	emailSvc EmailService,
	adminEmail string,
) AccessService {
	return &accessService{
		grantRepo:  grantRepo,
		reqRepo:    reqRepo,
		procs:      procs,
		leadRepo:   leadRepo,
		noteSvc:    noteSvc,
		emailSvc:   emailSvc,
		adminEmail: adminEmail,
		state:      make(map[int32]*leadAccessState),
	}
}

func (s *accessService) RefreshAccess(ctx context.Context, leadID int32) error {
	grants, err := s.grantRepo.ListByLead(ctx, leadID)
	if err != nil {
		return err
	}
	requests, err := s.reqRepo.ListByUser(ctx, leadID)
	if err != nil {
		return err
	}

	grantSet := make(map[string]bool, len(grants))
	for _, g := range grants {
		grantSet[g.DeckID] = true
	}

	s.mu.Lock()
	s.state[leadID] = &leadAccessState{fetched: true, grants: grantSet, requests: requests}
	s.mu.Unlock()
	return nil
}

func (s *accessService) CheckAccess(leadID int32, deckID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.state[leadID]
	if !ok || !st.fetched {
		return false
	}
	return st.grants[deckID]
}

func (s *accessService) AccessibleDecks(leadID int32) []deck.Deck {
	var decks []deck.Deck
	for _, d := range deck.All() {
		if s.CheckAccess(leadID, d.ID) {
			decks = append(decks, d)
		}
	}
	return decks
}

// RequestAccess rejects a duplicate (lead, deck) request from local state
// without a server round trip; otherwise it inserts a pending row and
// appends it to local state optimistically.
func (s *accessService) RequestAccess(ctx context.Context, leadID int32, deckID string) (*domain.DeckAccessRequest, error) {
	if _, ok := deck.ByID(deckID); !ok {
		return nil, ErrUnknownDeck
	}

	s.mu.RLock()
	st := s.state[leadID]
	if st != nil {
		for _, req := range st.requests {
			if req.DeckID == deckID && req.Status == domain.AccessRequestStatusPending {
				s.mu.RUnlock()
				return nil, ErrDuplicateRequest
			}
		}
	}
	s.mu.RUnlock()

	req := &domain.DeckAccessRequest{
		UserID: leadID,
		DeckID: deckID,
		Status: domain.AccessRequestStatusPending,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if st = s.state[leadID]; st == nil {
		st = &leadAccessState{grants: make(map[string]bool)}
		s.state[leadID] = st
	}
	st.requests = append(st.requests, *req)
	s.mu.Unlock()

	if lead, err := s.leadRepo.GetByID(ctx, leadID); err == nil {
		if err := s.noteSvc.NotifyAccessRequest(ctx, lead, req); err != nil {
			logger.Warn("Failed to record access request notification", "requestID", req.ID, "error", err)
		}
		if s.adminEmail != "" {
			title := deckID
			if d, ok := deck.ByID(deckID); ok {
				title = d.Title
			}
			if err := s.emailSvc.SendAccessRequestAlert(ctx, s.adminEmail, lead, title); err != nil {
				logger.Warn("Failed to send access request alert", "requestID", req.ID, "error", err)
			}
		}
	}

	return req, nil
}

// ApproveRequest invokes the server-side procedure, which atomically
// updates the request and inserts the grant. A non-"success" return is
// surfaced verbatim; the client does not retry.
func (s *accessService) ApproveRequest(ctx context.Context, requestID string) error {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	result, err := s.procs.ApproveDeckAccess(ctx, requestID)
	if err != nil {
		return err
	}
	if result != procedureSuccess {
		return errors.New(result)
	}

	s.markRequestNotificationRead(ctx, requestID)
	s.invalidate(req.UserID)

	if err := s.RefreshAccess(ctx, req.UserID); err != nil {
		logger.Warn("Access resync after approval failed", "leadID", req.UserID, "error", err)
	}
	return nil
}

func (s *accessService) DenyRequest(ctx context.Context, requestID string) error {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	result, err := s.procs.DenyDeckAccess(ctx, requestID)
	if err != nil {
		return err
	}
	if result != procedureSuccess {
		return errors.New(result)
	}

	s.markRequestNotificationRead(ctx, requestID)
	s.invalidate(req.UserID)
	return nil
}

// GrantAll invokes the grant_all_decks_to_user procedure and refetches
// afterward to resync local state. A non-"success" return is surfaced
// verbatim, like the other procedures. When the procedure itself is not
// provisioned the grants are written client-side instead, one insert per
// missing deck.
func (s *accessService) GrantAll(ctx context.Context, grantedBy string, leadID int32) error {
	result, err := s.procs.GrantAllDecksToUser(ctx, leadID)
	switch {
	case err == nil:
		if result != procedureSuccess {
			return errors.New(result)
		}
	case errors.Is(err, repository.ErrNotProvisioned):
		if err := s.grantMissing(ctx, grantedBy, leadID); err != nil {
			return err
		}
	default:
		return err
	}

	s.markUserNotificationsRead(ctx, leadID)
	return s.RefreshAccess(ctx, leadID)
}

// grantMissing issues one insert per missing deck sequentially. Repeated
// grants are prevented here at the call site because the registry enforces
// no uniqueness constraint.
func (s *accessService) grantMissing(ctx context.Context, grantedBy string, leadID int32) error {
	grants, err := s.grantRepo.ListByLead(ctx, leadID)
	if err != nil {
		return err
	}
	existing := make(map[string]bool, len(grants))
	for _, g := range grants {
		existing[g.DeckID] = true
	}

	for _, deckID := range deck.IDs() {
		if existing[deckID] {
			continue
		}
		grant := &domain.DeckAccessGrant{
			LeadID:    leadID,
			DeckID:    deckID,
			GrantedBy: grantedBy,
		}
		if err := s.grantRepo.Create(ctx, grant); err != nil {
			// Earlier grants stay in place; the caller recovers by
			// re-running the operation.
			return err
		}
	}
	return nil
}

// RevokeAll issues a single delete filtered by lead id and clears local
// state immediately.
func (s *accessService) RevokeAll(ctx context.Context, leadID int32) error {
	if err := s.grantRepo.DeleteAllForLead(ctx, leadID); err != nil {
		return err
	}

	s.mu.Lock()
	if st := s.state[leadID]; st != nil {
		st.grants = make(map[string]bool)
	}
	s.mu.Unlock()
	return nil
}

func (s *accessService) ListPendingRequests(ctx context.Context) ([]domain.DeckAccessRequest, error) {
	return s.reqRepo.ListPending(ctx)
}

func (s *accessService) ListGrants(ctx context.Context, leadID int32) ([]domain.DeckAccessGrant, error) {
	return s.grantRepo.ListByLead(ctx, leadID)
}

func (s *accessService) invalidate(leadID int32) {
	s.mu.Lock()
	delete(s.state, leadID)
	s.mu.Unlock()
}

// markRequestNotificationRead locates the notification that originated the
// action by its request_id metadata and marks it read. The match is
// best-effort string equality; failures are logged, not surfaced.
func (s *accessService) markRequestNotificationRead(ctx context.Context, requestID string) {
	for _, n := range s.noteSvc.Unread() {
		if n.Metadata[domain.NotificationMetaRequestID] == requestID {
			if err := s.noteSvc.MarkAsRead(ctx, n.ID); err != nil {
				logger.Warn("Failed to mark request notification read", "notificationID", n.ID, "error", err)
			}
		}
	}
}

func (s *accessService) markUserNotificationsRead(ctx context.Context, leadID int32) {
	subject := strconv.Itoa(int(leadID))
	for _, n := range s.noteSvc.Unread() {
		matched := n.Metadata[domain.NotificationMetaUserID] == subject
		if n.UserID != nil && *n.UserID == leadID {
			matched = true
		}
		if matched {
			if err := s.noteSvc.MarkAsRead(ctx, n.ID); err != nil {
				logger.Warn("Failed to mark subject notification read", "notificationID", n.ID, "error", err)
			}
		}
	}
}
