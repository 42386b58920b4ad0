package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrInvalidRole            = errors.New("role must be admin or employee")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrRoleAccessRequired     = errors.New("insufficient role for this resource")
)
