package announcement

import (
	"time"

	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "body is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAnnouncementRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

func (r *UpdateAnnouncementRequest) Apply(a *Announcement) {
	if r.Title != nil && *r.Title != "" {
		a.Title = *r.Title
	}
	if r.Body != nil && *r.Body != "" {
		a.Body = *r.Body
	}
}

type AnnouncementResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	CreatedBy      *string   `json:"created_by,omitempty"`
	CreatedByEmail *string   `json:"created_by_email,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewAnnouncementResponse(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:             a.ID,
		Title:          a.Title,
		Body:           a.Body,
		CreatedBy:      a.CreatedBy,
		CreatedByEmail: a.CreatedByEmail,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
}

func NewAnnouncementResponses(items []Announcement) []AnnouncementResponse {
	resps := make([]AnnouncementResponse, 0, len(items))
	for _, a := range items {
		resps = append(resps, NewAnnouncementResponse(a))
	}
	return resps
}
