package service

import (
	"context"
	"errors"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/repository"
	"deckhub-backend/internal/security"
	"deckhub-backend/internal/session"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for both a missing account and a
	// failed password check so callers cannot enumerate emails.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthorized      = errors.New("not authorized")
)

type authService struct {
	leadRepo    repository.LeadRepository
	profileRepo repository.ProfileRepository
	sessions    *session.Manager
	tokens      security.TokenManager
	accessSvc   AccessService
}

func NewAuthService(
	leadRepo repository.LeadRepository,
	profileRepo repository.ProfileRepository,
	sessions *session.Manager,
	tokens security.TokenManager,
	accessSvc AccessService,
) AuthService {
	return &authService{
		leadRepo:    leadRepo,
		profileRepo: profileRepo,
		sessions:    sessions,
		tokens:      tokens,
		accessSvc:   accessSvc,
	}
}

// AuthorizeAdmin reads the profiles row for the identity and requires the
// super_admin role. Query errors and role mismatches are both treated as
// unauthorized; this path never fails open.
func (s *authService) AuthorizeAdmin(ctx context.Context, userID string) (*domain.Profile, error) {
	if userID == "" {
		return nil, ErrNotAuthorized
	}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Warn("Admin authorization lookup failed", "userID", userID, "error", err)
		return nil, ErrNotAuthorized
	}
	if profile.Role != domain.ProfileRoleSuperAdmin {
		return nil, ErrNotAuthorized
	}
	return profile, nil
}

func (s *authService) LoginAdmin(ctx context.Context, email, password string) (*domain.Profile, string, error) {
	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(profile.UserID, profile.Email, string(profile.Role))
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

// LoginLead authenticates a lead for the deck hub. Email is normalized
// before lookup; a missing lead and a wrong password return the identical
// error. On success the accessible-decks cache is refreshed asynchronously.
func (s *authService) LoginLead(ctx context.Context, email, password string) (string, *session.Session, error) {
	lead, err := s.leadRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(lead.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	id, sess, err := s.sessions.Login(*lead)
	if err != nil {
		return "", nil, err
	}

	go func() {
		if err := s.accessSvc.RefreshAccess(context.Background(), lead.ID); err != nil {
			logger.Warn("Deck access refresh after login failed", "leadID", lead.ID, "error", err)
		}
	}()

	return id, sess, nil
}

func (s *authService) RestoreLead(sessionID string) (*session.Session, error) {
	return s.sessions.Restore(sessionID)
}

func (s *authService) LogoutLead(sessionID string) error {
	return s.sessions.Logout(sessionID)
}
