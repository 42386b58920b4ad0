package task

import "time"

type Task struct {
	ID          string
	Title       string
	Description *string
	AssignedTo  string // employee id
	AssignedBy  string // user id of the admin who created it
	DueDate     *time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields for list/detail views
	AssignedToName  *string
	AssignedByEmail *string
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(s), true
	}
	return "", false
}
