package project

import "time"

type Project struct {
	ID          string
	Name        string
	Description *string
	DueDate     time.Time
	Status      Status
	AssignedTo  string // employee id
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields
	AssignedToName *string
}

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return Status(s), true
	}
	return "", false
}
