package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("status must be pending, in-progress or completed")
	ErrNotTaskAssignee = errors.New("only the assignee or an admin can update a task")
)
