package project

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidStatus      = errors.New("status must be not-started, in-progress or completed")
	ErrNotProjectAssignee = errors.New("not authorized to view this project")
)
