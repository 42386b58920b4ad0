package project

import (
	"context"

	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
)

type ProjectService interface {
	// List returns every project for admins and only the caller's own
	// projects for employees.
	List(ctx context.Context, actor employee.Actor) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id string, actor employee.Actor) (ProjectResponse, error)
	Create(ctx context.Context, req CreateProjectRequest, createdBy string) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}
