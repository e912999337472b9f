package service

import (
	"context"
	"errors"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var ErrLeadExists = errors.New("a lead with this email already exists")

type leadService struct {
	leadRepo   repository.LeadRepository
	readRepo   repository.ReadStatusRepository
	noteSvc    NotificationService
	emailSvc   EmailService
	adminEmail string
}

func NewLeadService(
	leadRepo repository.LeadRepository,
	readRepo repository.ReadStatusRepository,
	noteSvc NotificationService,
	emailSvc EmailService,
	adminEmail string,
) LeadService {
	return &leadService{
		leadRepo:   leadRepo,
		readRepo:   readRepo,
		noteSvc:    noteSvc,
		emailSvc:   emailSvc,
		adminEmail: adminEmail,
	}
}

// CreateLead handles a marketing form submission: insert the lead, record
// a new_signup notification, and alert the admin inbox. The email is
// best-effort; the signup itself is what must not fail.
func (s *leadService) CreateLead(ctx context.Context, name, email, company, password, source string) (*domain.Lead, error) {
	normalized := domain.NormalizeEmail(email)
	if normalized == "" {
		return nil, errors.New("email is required")
	}

	if existing, err := s.leadRepo.GetByEmail(ctx, normalized); err == nil && existing != nil {
		return nil, ErrLeadExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	lead := &domain.Lead{
		Name:         name,
		Email:        normalized,
		Company:      company,
		PasswordHash: string(hash),
		Source:       source,
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	if err := s.noteSvc.NotifySignup(ctx, lead); err != nil {
		logger.Warn("Failed to record signup notification", "leadID", lead.ID, "error", err)
	}
	if s.adminEmail != "" {
		if err := s.emailSvc.SendSignupAlert(ctx, s.adminEmail, lead); err != nil {
			logger.Warn("Failed to send signup alert", "leadID", lead.ID, "error", err)
		}
	}

	return lead, nil
}

func (s *leadService) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	return s.leadRepo.List(ctx)
}

func (s *leadService) UpdateLead(ctx context.Context, lead *domain.Lead) error {
	lead.Email = domain.NormalizeEmail(lead.Email)
	return s.leadRepo.Update(ctx, lead)
}

func (s *leadService) DeleteLead(ctx context.Context, id int32) error {
	return s.leadRepo.Delete(ctx, id)
}

func (s *leadService) MarkDeckOpened(ctx context.Context, leadID int32, deckID string) error {
	return s.readRepo.UpsertOpened(ctx, leadID, deckID)
}

func (s *leadService) MarkDeckRead(ctx context.Context, leadID int32, deckID string) error {
	return s.readRepo.MarkRead(ctx, leadID, deckID)
}

func (s *leadService) ListReadStatus(ctx context.Context, leadID int32) ([]domain.DeckReadStatus, error) {
	return s.readRepo.ListByLead(ctx, leadID)
}
