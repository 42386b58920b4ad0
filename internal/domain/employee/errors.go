package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered to another employee")
	ErrInvalidStatus    = errors.New("status must be active, inactive or on-leave")
	ErrNotProfileOwner  = errors.New("not authorized to update this employee profile")
)
