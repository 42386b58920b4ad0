package task

import "context"

type TaskRepository interface {
	// List returns all tasks, optionally filtered by assignee.
	List(ctx context.Context, assignedTo *string) ([]Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	Create(ctx context.Context, newTask Task) (Task, error)
	Update(ctx context.Context, updated Task) (Task, error)
}
