package activity

import "time"

// Activity is an append-only audit entry; rows are never updated or deleted.
type Activity struct {
	ID         string
	EmployeeID string
	Type       Type
	Message    string
	Date       time.Time
}

type Type string

const (
	TypeLogin          Type = "login"
	TypeProfileUpdate  Type = "profile_update"
	TypeTaskCompleted  Type = "task_completed"
	TypeCheckIn        Type = "attendance_checkin"
	TypeCheckOut       Type = "attendance_checkout"
	TypePasswordChange Type = "password_change"
	TypeAdminAction    Type = "admin_action"
)

func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeLogin, TypeProfileUpdate, TypeTaskCompleted, TypeCheckIn,
		TypeCheckOut, TypePasswordChange, TypeAdminAction:
		return Type(s), true
	}
	return "", false
}
