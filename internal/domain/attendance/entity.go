package attendance

import "time"

// Attendance is one row per employee per calendar day. Date is kept as the
// YYYY-MM-DD string key so the per-day identity never drifts with timezones,
// and the (employee_id, date) unique index stays storage-enforceable.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       string
	CheckIn    *string
	CheckOut   *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)
