package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/emptrack/tracker-backend-go/internal/domain/activity"
	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
	"github.com/emptrack/tracker-backend-go/internal/domain/task"
	"github.com/emptrack/tracker-backend-go/internal/domain/user"
	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
)

type TaskServiceImpl struct {
	task.TaskRepository
	employee.EmployeeRepository
	recorder activity.Recorder
}

func NewTaskService(
	taskRepository task.TaskRepository,
	employeeRepository employee.EmployeeRepository,
	recorder activity.Recorder,
) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository:     taskRepository,
		EmployeeRepository: employeeRepository,
		recorder:           recorder,
	}
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, assignedTo *string) ([]task.TaskResponse, error) {
	if assignedTo != nil && *assignedTo != "" && !validator.IsValidUUID(*assignedTo) {
		// A malformed filter matches nothing rather than erroring out.
		return []task.TaskResponse{}, nil
	}

	tasks, err := s.TaskRepository.List(ctx, assignedTo)
	if err != nil {
		return nil, err
	}
	return task.NewTaskResponses(tasks), nil
}

// GetByID implements task.TaskService.
func (s *TaskServiceImpl) GetByID(ctx context.Context, id string) (task.TaskResponse, error) {
	if !validator.IsValidUUID(id) {
		return task.TaskResponse{}, task.ErrTaskNotFound
	}

	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.NewTaskResponse(t), nil
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest, assignedBy string) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	// The assignee has to exist before anything is written.
	if _, err := s.EmployeeRepository.GetByID(ctx, req.AssignedTo); err != nil {
		return task.TaskResponse{}, err
	}

	newTask := task.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		AssignedBy:  assignedBy,
		Status:      task.StatusPending,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		if date, ok := validator.IsValidDate(*req.DueDate); ok {
			newTask.DueDate = &date
		}
	}

	created, err := s.TaskRepository.Create(ctx, newTask)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.NewTaskResponse(created), nil
}

// Update implements task.TaskService. Non-admin callers must own the
// employee record the task is assigned to.
func (s *TaskServiceImpl) Update(ctx context.Context, id string, req task.UpdateTaskRequest, actor employee.Actor) (task.TaskResponse, error) {
	if !validator.IsValidUUID(id) {
		return task.TaskResponse{}, task.ErrTaskNotFound
	}
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	current, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if actor.Role != user.RoleAdmin {
		e, err := s.EmployeeRepository.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return task.TaskResponse{}, task.ErrNotTaskAssignee
			}
			return task.TaskResponse{}, err
		}
		if e.ID != current.AssignedTo {
			return task.TaskResponse{}, task.ErrNotTaskAssignee
		}
	}

	wasCompleted := current.Status == task.StatusCompleted
	req.Apply(&current)

	updated, err := s.TaskRepository.Update(ctx, current)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if !wasCompleted && updated.Status == task.StatusCompleted {
		s.recorder.Record(ctx, updated.AssignedTo, activity.TypeTaskCompleted,
			fmt.Sprintf("Task %q completed", updated.Title))
	}

	return task.NewTaskResponse(updated), nil
}
