package service

import (
	"context"

	"deckhub-backend/internal/deck"
	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/repository"
)

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

// The review checklist is only visible to super-admin reviewers; every
// other identity is denied regardless of query outcome.
func (s *reviewService) GetReviews(ctx context.Context, reviewer *domain.Profile, deckID string) ([]domain.DeckReview, error) {
	if reviewer == nil || reviewer.Role != domain.ProfileRoleSuperAdmin {
		return nil, ErrNotAuthorized
	}
	return s.repo.ListByDeck(ctx, deckID)
}

func (s *reviewService) UpsertReview(ctx context.Context, reviewer *domain.Profile, review *domain.DeckReview) error {
	if reviewer == nil || reviewer.Role != domain.ProfileRoleSuperAdmin {
		return ErrNotAuthorized
	}
	if _, ok := deck.ByID(review.DeckID); !ok {
		return ErrUnknownDeck
	}
	if review.ReviewerName == "" {
		review.ReviewerName = reviewer.Name
	}
	return s.repo.Upsert(ctx, review)
}
