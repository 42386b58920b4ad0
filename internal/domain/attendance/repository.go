package attendance

import "context"

type AttendanceRepository interface {
	// ListByEmployee returns all records for an employee, newest day first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// UpsertCheckIn writes the check-in time for (employee, date) and marks
	// the day present, creating the row when absent. The unique index on
	// (employee_id, date) collapses concurrent calls to a single row.
	UpsertCheckIn(ctx context.Context, employeeID string, date string, clock string) (Attendance, error)

	// UpsertCheckOut is symmetric to UpsertCheckIn and leaves any existing
	// check-in untouched.
	UpsertCheckOut(ctx context.Context, employeeID string, date string, clock string) (Attendance, error)
}

type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	// GetToday returns the employee's record for the current day, or
	// ErrAttendanceNotFound when no check-in or check-out happened yet.
	GetToday(ctx context.Context, employeeID string) (AttendanceResponse, error)
}
