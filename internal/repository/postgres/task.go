package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/repository"
)

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `INSERT INTO project_tasks (title, description, status, phase, order_index, technical_details)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, task.Title, task.Description, task.Status, task.Phase, task.OrderIndex, task.TechnicalDetails).Scan(&task.ID)
}

func (r *taskRepository) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	task := &domain.Task{}
	var details sql.NullString
	query := `SELECT id, title, description, status, phase, order_index, technical_details FROM project_tasks WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&task.ID, &task.Title, &task.Description, &task.Status, &task.Phase, &task.OrderIndex, &details)
	if err != nil {
		return nil, err
	}
	task.TechnicalDetails = details.String
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `UPDATE project_tasks SET title = $1, description = $2, status = $3, phase = $4, order_index = $5, technical_details = $6 WHERE id = $7`
	_, err := r.db.ExecContext(ctx, query, task.Title, task.Description, task.Status, task.Phase, task.OrderIndex, task.TechnicalDetails, task.ID)
	return err
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error {
	query := `UPDATE project_tasks SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM project_tasks WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *taskRepository) ListTimeline(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT id, title, description, status, phase, order_index, technical_details
	          FROM project_tasks WHERE phase <> $1 ORDER BY order_index`
	return r.queryTasks(ctx, query, domain.PhaseAdHoc)
}

func (r *taskRepository) ListAdHoc(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT id, title, description, status, phase, order_index, technical_details
	          FROM project_tasks WHERE phase = $1 ORDER BY order_index`
	return r.queryTasks(ctx, query, domain.PhaseAdHoc)
}

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		var details sql.NullString
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Status, &task.Phase, &task.OrderIndex, &details); err != nil {
			return nil, err
		}
		task.TechnicalDetails = details.String
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
