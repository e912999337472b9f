package service

import (
	"context"
	"errors"
	"sync"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/repository"
)

var ErrWrongBoard = errors.New("task does not belong to this board")

type taskService struct {
	repo repository.TaskRepository

	mu       sync.RWMutex
	timeline []domain.Task
	adHoc    []domain.Task
	loaded   bool
}

func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) CreateTask(ctx context.Context, task *domain.Task) error {
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *taskService) UpdateTask(ctx context.Context, task *domain.Task) error {
	if err := s.repo.Update(ctx, task); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *taskService) DeleteTask(ctx context.Context, id int32) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *taskService) ListTimeline(ctx context.Context) ([]TaskView, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return views(s.timeline), nil
}

func (s *taskService) ListAdHoc(ctx context.Context) ([]TaskView, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return views(s.adHoc), nil
}

// AdvanceStatus cycles a timeline task's status. The local mutation is
// applied before the remote write; a remote failure triggers a refetch so
// both boards reconcile with the store.
func (s *taskService) AdvanceStatus(ctx context.Context, id int32) (domain.TaskStatus, error) {
	task, err := s.findLocal(ctx, id)
	if err != nil {
		return "", err
	}
	if task.IsAdHoc() {
		return "", ErrWrongBoard
	}
	next := task.Status.NextStatus()
	return next, s.applyStatus(ctx, id, next)
}

// ToggleStatus flips an ad-hoc task between completed and pending, with
// the same optimistic-then-reconcile behavior.
func (s *taskService) ToggleStatus(ctx context.Context, id int32) (domain.TaskStatus, error) {
	task, err := s.findLocal(ctx, id)
	if err != nil {
		return "", err
	}
	if !task.IsAdHoc() {
		return "", ErrWrongBoard
	}
	next := task.Status.ToggleStatus()
	return next, s.applyStatus(ctx, id, next)
}

func (s *taskService) Refresh(ctx context.Context) error {
	timeline, err := s.repo.ListTimeline(ctx)
	if err != nil {
		return err
	}
	adHoc, err := s.repo.ListAdHoc(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.timeline = timeline
	s.adHoc = adHoc
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// applyStatus is the shared optimistic-update helper: mutate local state,
// write remote, and on remote error refetch to reconcile rather than
// letting the boards drift.
func (s *taskService) applyStatus(ctx context.Context, id int32, status domain.TaskStatus) error {
	s.mu.Lock()
	setStatus(s.timeline, id, status)
	setStatus(s.adHoc, id, status)
	s.mu.Unlock()

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("Remote status update failed, reconciling", "taskID", id, "error", err)
		if refreshErr := s.Refresh(ctx); refreshErr != nil {
			logger.Error("Board reconciliation failed", "error", refreshErr)
		}
		return err
	}
	return nil
}

func (s *taskService) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

func (s *taskService) findLocal(ctx context.Context, id int32) (*domain.Task, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.timeline {
		if s.timeline[i].ID == id {
			task := s.timeline[i]
			return &task, nil
		}
	}
	for i := range s.adHoc {
		if s.adHoc[i].ID == id {
			task := s.adHoc[i]
			return &task, nil
		}
	}
	return nil, errors.New("task not found")
}

func setStatus(tasks []domain.Task, id int32, status domain.TaskStatus) {
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Status = status
			return
		}
	}
}

func views(tasks []domain.Task) []TaskView {
	out := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskView{Task: t, Metadata: t.Metadata()})
	}
	return out
}
