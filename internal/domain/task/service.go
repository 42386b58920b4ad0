package task

import (
	"context"

	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
)

type TaskService interface {
	// List returns all tasks, optionally filtered by assignee. An assignee
	// filter that is not a valid identifier yields an empty list.
	List(ctx context.Context, assignedTo *string) ([]TaskResponse, error)
	GetByID(ctx context.Context, id string) (TaskResponse, error)
	Create(ctx context.Context, req CreateTaskRequest, assignedBy string) (TaskResponse, error)
	// Update mutates a task on behalf of its assignee or an admin; any
	// other caller is rejected.
	Update(ctx context.Context, id string, req UpdateTaskRequest, actor employee.Actor) (TaskResponse, error)
}
