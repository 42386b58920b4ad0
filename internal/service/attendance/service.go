package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/emptrack/tracker-backend-go/internal/domain/activity"
	"github.com/emptrack/tracker-backend-go/internal/domain/attendance"
	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	recorder activity.Recorder
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, recorder activity.Recorder) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		recorder:             recorder,
	}
}

// CheckIn implements attendance.AttendanceService. The write is a single
// keyed upsert: re-checking in the same day overwrites check_in and leaves
// check_out alone, and the unique (employee_id, date) index keeps
// simultaneous calls from ever producing a second row.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !validator.IsValidUUID(req.EmployeeID) {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	now := time.Now()
	date := req.ResolvedDate(now)
	clock := req.ResolvedTime(now)

	record, err := a.AttendanceRepository.UpsertCheckIn(ctx, req.EmployeeID, date, clock)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a.recorder.Record(ctx, req.EmployeeID, activity.TypeCheckIn, fmt.Sprintf("Checked in at %s on %s", clock, date))

	return attendance.NewAttendanceResponse(record), nil
}

// CheckOut implements attendance.AttendanceService. Checking out without a
// prior check-in is legal and leaves check_in empty for the day.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !validator.IsValidUUID(req.EmployeeID) {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	now := time.Now()
	date := req.ResolvedDate(now)
	clock := req.ResolvedTime(now)

	record, err := a.AttendanceRepository.UpsertCheckOut(ctx, req.EmployeeID, date, clock)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a.recorder.Record(ctx, req.EmployeeID, activity.TypeCheckOut, fmt.Sprintf("Checked out at %s on %s", clock, date))

	return attendance.NewAttendanceResponse(record), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	today := time.Now().Format("2006-01-02")
	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}
	return attendance.NewAttendanceResponse(*record), nil
}

// ListByEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return nil, employee.ErrEmployeeNotFound
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return attendance.NewAttendanceResponses(records), nil
}
