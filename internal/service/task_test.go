package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"deckhub-backend/internal/domain"
)

func newTaskFixture(timeline, adHoc []domain.Task) (*MockTaskRepo, TaskService) {
	repo := new(MockTaskRepo)
	repo.On("ListTimeline", mock.Anything).Return(timeline, nil)
	repo.On("ListAdHoc", mock.Anything).Return(adHoc, nil)
	return repo, NewTaskService(repo)
}

func TestTaskService_AdvanceStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("ThreeAdvancesCompleteAFourthWraps", func(t *testing.T) {
		repo, svc := newTaskFixture([]domain.Task{
			{ID: 1, Title: "Ship deck", Status: domain.TaskStatusPending, Phase: "Phase 1"},
		}, nil)
		repo.On("UpdateStatus", ctx, int32(1), mock.Anything).Return(nil)

		status, err := svc.AdvanceStatus(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusInProgress, status)

		status, err = svc.AdvanceStatus(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, status)

		status, err = svc.AdvanceStatus(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusPending, status)
	})

	t.Run("AdHocTaskRejected", func(t *testing.T) {
		_, svc := newTaskFixture(nil, []domain.Task{
			{ID: 2, Title: "One-off", Status: domain.TaskStatusPending, Phase: domain.PhaseAdHoc},
		})
		_, err := svc.AdvanceStatus(ctx, 2)
		assert.ErrorIs(t, err, ErrWrongBoard)
	})

	t.Run("RemoteFailureReconcilesFromStore", func(t *testing.T) {
		repo := new(MockTaskRepo)
		repo.On("ListTimeline", mock.Anything).Return([]domain.Task{
			{ID: 1, Status: domain.TaskStatusPending, Phase: "Phase 1"},
		}, nil)
		repo.On("ListAdHoc", mock.Anything).Return([]domain.Task{}, nil)
		svc := NewTaskService(repo)

		repo.On("UpdateStatus", ctx, int32(1), domain.TaskStatusInProgress).Return(assert.AnError)

		_, err := svc.AdvanceStatus(ctx, 1)
		assert.Error(t, err)
		// The failed write triggers a refetch, so the board shows the
		// store's status again.
		views, err := svc.ListTimeline(ctx)
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusPending, views[0].Status)
		repo.AssertNumberOfCalls(t, "ListTimeline", 2)
	})
}

func TestTaskService_ToggleStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("CompletedAndPendingFlip", func(t *testing.T) {
		repo, svc := newTaskFixture(nil, []domain.Task{
			{ID: 3, Title: "Fix typo", Status: domain.TaskStatusPending, Phase: domain.PhaseAdHoc},
		})
		repo.On("UpdateStatus", ctx, int32(3), mock.Anything).Return(nil)

		status, err := svc.ToggleStatus(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, status)

		status, err = svc.ToggleStatus(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusPending, status)
	})

	t.Run("InProgressTogglesToCompleted", func(t *testing.T) {
		repo, svc := newTaskFixture(nil, []domain.Task{
			{ID: 4, Status: domain.TaskStatusInProgress, Phase: domain.PhaseAdHoc},
		})
		repo.On("UpdateStatus", ctx, int32(4), domain.TaskStatusCompleted).Return(nil)

		status, err := svc.ToggleStatus(ctx, 4)
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, status)
	})

	t.Run("TimelineTaskRejected", func(t *testing.T) {
		_, svc := newTaskFixture([]domain.Task{
			{ID: 5, Status: domain.TaskStatusPending, Phase: "Phase 2"},
		}, nil)
		_, err := svc.ToggleStatus(ctx, 5)
		assert.ErrorIs(t, err, ErrWrongBoard)
	})
}

func TestTaskService_ListViews(t *testing.T) {
	ctx := context.Background()
	_, svc := newTaskFixture(
		[]domain.Task{
			{ID: 1, Phase: "Phase 1", TechnicalDetails: `{"category":"infra","priority":"high","assignee":"dana"}`},
			{ID: 2, Phase: "Phase 1", TechnicalDetails: `{broken json`},
		},
		[]domain.Task{
			{ID: 3, Phase: domain.PhaseAdHoc},
		},
	)

	timeline, err := svc.ListTimeline(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "infra", timeline[0].Metadata.Category)
	assert.Equal(t, "high", timeline[0].Metadata.Priority)
	assert.Equal(t, "dana", timeline[0].Metadata.Assignee)

	// Malformed metadata falls back to board defaults.
	assert.Equal(t, "technical", timeline[1].Metadata.Category)
	assert.Equal(t, "medium", timeline[1].Metadata.Priority)
	assert.Equal(t, "me", timeline[1].Metadata.Assignee)

	adHoc, err := svc.ListAdHoc(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "general", adHoc[0].Metadata.Category)
}

func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()
	repo, svc := newTaskFixture(nil, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)

	task := &domain.Task{Title: "New task", Phase: "Phase 1"}
	assert.NoError(t, svc.CreateTask(ctx, task))
	assert.Equal(t, domain.TaskStatusPending, task.Status)
}
