package project

import (
	"context"
	"errors"

	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
	"github.com/emptrack/tracker-backend-go/internal/domain/project"
	"github.com/emptrack/tracker-backend-go/internal/domain/user"
	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
)

type ProjectServiceImpl struct {
	project.ProjectRepository
	employee.EmployeeRepository
}

func NewProjectService(
	projectRepository project.ProjectRepository,
	employeeRepository employee.EmployeeRepository,
) project.ProjectService {
	return &ProjectServiceImpl{
		ProjectRepository:  projectRepository,
		EmployeeRepository: employeeRepository,
	}
}

// ownEmployeeID resolves the actor's employee record. Users without one
// simply have no projects to see.
func (s *ProjectServiceImpl) ownEmployeeID(ctx context.Context, actor employee.Actor) (*string, error) {
	e, err := s.EmployeeRepository.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e.ID, nil
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context, actor employee.Actor) ([]project.ProjectResponse, error) {
	var assignedTo *string
	if actor.Role != user.RoleAdmin {
		id, err := s.ownEmployeeID(ctx, actor)
		if err != nil {
			return nil, err
		}
		if id == nil {
			return []project.ProjectResponse{}, nil
		}
		assignedTo = id
	}

	projects, err := s.ProjectRepository.List(ctx, assignedTo)
	if err != nil {
		return nil, err
	}
	return project.NewProjectResponses(projects), nil
}

// GetByID implements project.ProjectService.
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string, actor employee.Actor) (project.ProjectResponse, error) {
	if !validator.IsValidUUID(id) {
		return project.ProjectResponse{}, project.ErrProjectNotFound
	}

	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if actor.Role != user.RoleAdmin {
		ownID, err := s.ownEmployeeID(ctx, actor)
		if err != nil {
			return project.ProjectResponse{}, err
		}
		if ownID == nil || p.AssignedTo != *ownID {
			return project.ProjectResponse{}, project.ErrNotProjectAssignee
		}
	}

	return project.NewProjectResponse(p), nil
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest, createdBy string) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.AssignedTo); err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.ProjectRepository.Create(ctx, req.ToEntity(createdBy))
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.NewProjectResponse(created), nil
}

// Update implements project.ProjectService.
func (s *ProjectServiceImpl) Update(ctx context.Context, id string, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if !validator.IsValidUUID(id) {
		return project.ProjectResponse{}, project.ErrProjectNotFound
	}
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	current, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if req.AssignedTo != nil && *req.AssignedTo != "" && *req.AssignedTo != current.AssignedTo {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.AssignedTo); err != nil {
			return project.ProjectResponse{}, err
		}
	}

	req.Apply(&current)

	updated, err := s.ProjectRepository.Update(ctx, current)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.NewProjectResponse(updated), nil
}

// Delete implements project.ProjectService.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return project.ErrProjectNotFound
	}
	return s.ProjectRepository.Delete(ctx, id)
}
