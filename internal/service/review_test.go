package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"deckhub-backend/internal/domain"
)

func TestReviewService_RoleGate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReviewRepo)
	svc := NewReviewService(repo)

	viewer := &domain.Profile{UserID: "uid-v", Role: domain.ProfileRoleViewer}
	admin := &domain.Profile{UserID: "uid-a", Role: domain.ProfileRoleAdmin}

	_, err := svc.GetReviews(ctx, viewer, "investor-deck")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	_, err = svc.GetReviews(ctx, admin, "investor-deck")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	_, err = svc.GetReviews(ctx, nil, "investor-deck")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	repo.AssertNotCalled(t, "ListByDeck", mock.Anything, mock.Anything)

	err = svc.UpsertReview(ctx, viewer, &domain.DeckReview{DeckID: "investor-deck"})
	assert.ErrorIs(t, err, ErrNotAuthorized)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestReviewService_Upsert(t *testing.T) {
	ctx := context.Background()
	reviewer := &domain.Profile{UserID: "uid-s", Name: "Sam", Role: domain.ProfileRoleSuperAdmin}

	t.Run("DefaultsReviewerName", func(t *testing.T) {
		repo := new(MockReviewRepo)
		svc := NewReviewService(repo)
		repo.On("Upsert", ctx, mock.AnythingOfType("*domain.DeckReview")).Return(nil)

		review := &domain.DeckReview{DeckID: "investor-deck", ContentOK: true}
		assert.NoError(t, svc.UpsertReview(ctx, reviewer, review))
		assert.Equal(t, "Sam", review.ReviewerName)
	})

	t.Run("UnknownDeck", func(t *testing.T) {
		repo := new(MockReviewRepo)
		svc := NewReviewService(repo)

		err := svc.UpsertReview(ctx, reviewer, &domain.DeckReview{DeckID: "nope"})
		assert.ErrorIs(t, err, ErrUnknownDeck)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
