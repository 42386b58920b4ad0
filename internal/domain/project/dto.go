package project

import (
	"time"

	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	DueDate     string  `json:"due_date"` // YYYY-MM-DD
	Status      string  `json:"status"`
	AssignedTo  string  `json:"assigned_to"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.DueDate) {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date is required"})
	} else if _, ok := validator.IsValidDate(r.DueDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to", Message: "assigned_to is required"})
	} else if !validator.IsValidUUID(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to", Message: "assigned_to must be a valid identifier"})
	}
	if r.Status != "" {
		if _, ok := ParseStatus(r.Status); !ok {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be not-started, in-progress or completed"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateProjectRequest) ToEntity(createdBy string) Project {
	p := Project{
		Name:        r.Name,
		Description: r.Description,
		Status:      StatusNotStarted,
		AssignedTo:  r.AssignedTo,
		CreatedBy:   &createdBy,
	}
	if date, ok := validator.IsValidDate(r.DueDate); ok {
		p.DueDate = date
	}
	if r.Status != "" {
		if status, ok := ParseStatus(r.Status); ok {
			p.Status = status
		}
	}
	return p
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
	AssignedTo  *string `json:"assigned_to"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DueDate != nil && *r.DueDate != "" {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date must be YYYY-MM-DD"})
		}
	}
	if r.Status != nil && *r.Status != "" {
		if _, ok := ParseStatus(*r.Status); !ok {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be not-started, in-progress or completed"})
		}
	}
	if r.AssignedTo != nil && *r.AssignedTo != "" && !validator.IsValidUUID(*r.AssignedTo) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to", Message: "assigned_to must be a valid identifier"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateProjectRequest) Apply(p *Project) {
	if r.Name != nil && *r.Name != "" {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.DueDate != nil && *r.DueDate != "" {
		if date, ok := validator.IsValidDate(*r.DueDate); ok {
			p.DueDate = date
		}
	}
	if r.Status != nil && *r.Status != "" {
		if status, ok := ParseStatus(*r.Status); ok {
			p.Status = status
		}
	}
	if r.AssignedTo != nil && *r.AssignedTo != "" {
		p.AssignedTo = *r.AssignedTo
	}
}

type ProjectResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	DueDate        string    `json:"due_date"`
	Status         Status    `json:"status"`
	AssignedTo     string    `json:"assigned_to"`
	AssignedToName *string   `json:"assigned_to_name,omitempty"`
	CreatedBy      *string   `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		DueDate:        p.DueDate.Format("2006-01-02"),
		Status:         p.Status,
		AssignedTo:     p.AssignedTo,
		AssignedToName: p.AssignedToName,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func NewProjectResponses(projects []Project) []ProjectResponse {
	resps := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resps = append(resps, NewProjectResponse(p))
	}
	return resps
}
