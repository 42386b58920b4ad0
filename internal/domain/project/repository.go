package project

import "context"

type ProjectRepository interface {
	// List returns all projects, optionally scoped to one assignee.
	List(ctx context.Context, assignedTo *string) ([]Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Create(ctx context.Context, newProject Project) (Project, error)
	Update(ctx context.Context, updated Project) (Project, error)
	Delete(ctx context.Context, id string) error
}
