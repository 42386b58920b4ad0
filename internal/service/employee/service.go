package employee

import (
	"context"
	"fmt"

	"github.com/emptrack/tracker-backend-go/internal/domain/activity"
	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
	"github.com/emptrack/tracker-backend-go/internal/domain/user"
	"github.com/emptrack/tracker-backend-go/internal/pkg/database"
	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
	"github.com/emptrack/tracker-backend-go/internal/repository/postgresql"
	"github.com/emptrack/tracker-backend-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	fileService file.FileService
	recorder    activity.Recorder
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	fileService file.FileService,
	recorder activity.Recorder,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
		fileService:        fileService,
		recorder:           recorder,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return employee.NewEmployeeResponses(employees), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// GetByUser implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByUser(ctx context.Context, userID string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.EmployeeRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	newEmployee := req.ToEntity()

	if req.File != nil && req.FileHeader != nil {
		imagePath, err := s.fileService.UploadEmployeeImage(ctx, req.File, req.FileHeader.Filename)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		newEmployee.ImageURL = &imagePath
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.EmployeeRepository.Create(txCtx, newEmployee)
		if err != nil {
			return err
		}
		if created.UserID != nil {
			if err := s.UserRepository.LinkEmployee(txCtx, *created.UserID, created.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest, actor employee.Actor) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Admins can update any employee; employees only their own profile.
	if actor.Role != user.RoleAdmin {
		if current.UserID == nil || *current.UserID != actor.UserID {
			return employee.EmployeeResponse{}, employee.ErrNotProfileOwner
		}
	}

	if req.Email != nil && *req.Email != "" && *req.Email != current.Email {
		exists, err := s.EmployeeRepository.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee email: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	req.Apply(&current)

	if req.File != nil && req.FileHeader != nil {
		imagePath, err := s.fileService.UploadEmployeeImage(ctx, req.File, req.FileHeader.Filename)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if current.ImageURL != nil {
			// Best effort: a stale file on disk must not fail the update.
			_ = s.fileService.DeleteFile(ctx, *current.ImageURL)
		}
		current.ImageURL = &imagePath
	}

	updated, err := s.EmployeeRepository.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.recorder.Record(ctx, updated.ID, activity.TypeProfileUpdate,
		fmt.Sprintf("Profile of %s %s updated", updated.FirstName, updated.LastName))

	return employee.NewEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService. Linked users are detached
// before the row goes away so their accounts survive the deletion.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return employee.ErrEmployeeNotFound
	}

	current, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.UserRepository.UnlinkEmployee(txCtx, current.ID); err != nil {
			return err
		}
		return s.EmployeeRepository.Delete(txCtx, current.ID)
	})
	if err != nil {
		return err
	}

	if current.ImageURL != nil {
		_ = s.fileService.DeleteFile(ctx, *current.ImageURL)
	}
	return nil
}
