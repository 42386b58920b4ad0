package activity

import (
	"context"
	"time"
)

type ActivityRepository interface {
	Create(ctx context.Context, entry Activity) (Activity, error)
	// ListRecent returns the newest entries for an employee, capped at limit.
	ListRecent(ctx context.Context, employeeID string, limit int) ([]Activity, error)
}

// Recorder is the best-effort audit side-channel: callers fire and forget,
// failures must never fail the parent request.
type Recorder interface {
	Record(ctx context.Context, employeeID string, activityType Type, message string)
}

type ActivityResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Type       Type      `json:"type"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
}

func NewActivityResponses(entries []Activity) []ActivityResponse {
	resps := make([]ActivityResponse, 0, len(entries))
	for _, a := range entries {
		resps = append(resps, ActivityResponse{
			ID:         a.ID,
			EmployeeID: a.EmployeeID,
			Type:       a.Type,
			Message:    a.Message,
			Date:       a.Date,
		})
	}
	return resps
}
