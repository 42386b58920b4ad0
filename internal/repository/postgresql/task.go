package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/emptrack/tracker-backend-go/internal/domain/task"
	"github.com/emptrack/tracker-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskSelect = `
	SELECT t.id, t.title, t.description, t.assigned_to, t.assigned_by, t.due_date,
		   t.status, t.created_at, t.updated_at,
		   e.first_name || ' ' || e.last_name AS assigned_to_name,
		   u.email AS assigned_by_email
	FROM tasks t
	LEFT JOIN employees e ON e.id = t.assigned_to
	LEFT JOIN users u ON u.id = t.assigned_by
`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.AssignedTo,
		&t.AssignedBy,
		&t.DueDate,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.AssignedToName,
		&t.AssignedByEmail,
	)
	return t, err
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context, assignedTo *string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := taskSelect
	args := []interface{}{}
	if assignedTo != nil {
		query += ` WHERE t.assigned_to = $1`
		args = append(args, *assignedTo)
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTask(q.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}
	return t, nil
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (title, description, assigned_to, assigned_by, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newTask.Title,
		newTask.Description,
		newTask.AssignedTo,
		newTask.AssignedBy,
		newTask.DueDate,
		newTask.Status,
	).Scan(&newTask.ID, &newTask.CreatedAt, &newTask.UpdatedAt)

	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return newTask, nil
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, updated task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		updated.Title,
		updated.Description,
		updated.DueDate,
		updated.Status,
		updated.ID,
	).Scan(&updated.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}
