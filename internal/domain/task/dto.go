package task

import (
	"time"

	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	AssignedTo  string  `json:"assigned_to"`
	DueDate     *string `json:"due_date"` // YYYY-MM-DD
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to", Message: "assigned_to is required"})
	} else if !validator.IsValidUUID(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to", Message: "assigned_to must be a valid identifier"})
	}
	if r.DueDate != nil && *r.DueDate != "" {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && *r.Status != "" {
		if _, ok := ParseStatus(*r.Status); !ok {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be pending, in-progress or completed"})
		}
	}
	if r.DueDate != nil && *r.DueDate != "" {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges the request into an existing task.
func (r *UpdateTaskRequest) Apply(t *Task) {
	if r.Title != nil && *r.Title != "" {
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = r.Description
	}
	if r.DueDate != nil && *r.DueDate != "" {
		if date, ok := validator.IsValidDate(*r.DueDate); ok {
			t.DueDate = &date
		}
	}
	if r.Status != nil && *r.Status != "" {
		if status, ok := ParseStatus(*r.Status); ok {
			t.Status = status
		}
	}
}

type TaskResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	AssignedTo      string    `json:"assigned_to"`
	AssignedToName  *string   `json:"assigned_to_name,omitempty"`
	AssignedBy      string    `json:"assigned_by"`
	AssignedByEmail *string   `json:"assigned_by_email,omitempty"`
	DueDate         *string   `json:"due_date,omitempty"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewTaskResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		AssignedTo:      t.AssignedTo,
		AssignedToName:  t.AssignedToName,
		AssignedBy:      t.AssignedBy,
		AssignedByEmail: t.AssignedByEmail,
		Status:          t.Status,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if t.DueDate != nil {
		formatted := t.DueDate.Format("2006-01-02")
		resp.DueDate = &formatted
	}
	return resp
}

func NewTaskResponses(tasks []Task) []TaskResponse {
	resps := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resps = append(resps, NewTaskResponse(t))
	}
	return resps
}
