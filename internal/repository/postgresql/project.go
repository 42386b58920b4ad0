package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/emptrack/tracker-backend-go/internal/domain/project"
	"github.com/emptrack/tracker-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectSelect = `
	SELECT p.id, p.name, p.description, p.due_date, p.status, p.assigned_to, p.created_by,
		   p.created_at, p.updated_at,
		   e.first_name || ' ' || e.last_name AS assigned_to_name
	FROM projects p
	LEFT JOIN employees e ON e.id = p.assigned_to
`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.DueDate,
		&p.Status,
		&p.AssignedTo,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.AssignedToName,
	)
	return p, err
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context, assignedTo *string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := projectSelect
	args := []interface{}{}
	if assignedTo != nil {
		query += ` WHERE p.assigned_to = $1`
		args = append(args, *assignedTo)
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProject(q.QueryRow(ctx, projectSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}
	return p, nil
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (name, description, due_date, status, assigned_to, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newProject.Name,
		newProject.Description,
		newProject.DueDate,
		newProject.Status,
		newProject.AssignedTo,
		newProject.CreatedBy,
	).Scan(&newProject.ID, &newProject.CreatedAt, &newProject.UpdatedAt)

	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return newProject, nil
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, updated project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $1, description = $2, due_date = $3, status = $4, assigned_to = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		updated.Name,
		updated.Description,
		updated.DueDate,
		updated.Status,
		updated.AssignedTo,
		updated.ID,
	).Scan(&updated.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}
