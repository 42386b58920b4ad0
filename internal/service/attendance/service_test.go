package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/emptrack/tracker-backend-go/internal/domain/activity"
	"github.com/emptrack/tracker-backend-go/internal/domain/attendance"
	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	records map[string]attendance.Attendance // keyed by employeeID + "|" + date
}

func (r *stubAttendanceRepo) key(employeeID, date string) string { return employeeID + "|" + date }

func (r *stubAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range r.records {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	a, ok := r.records[r.key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *stubAttendanceRepo) UpsertCheckIn(ctx context.Context, employeeID string, date string, clock string) (attendance.Attendance, error) {
	a := r.records[r.key(employeeID, date)]
	a.EmployeeID, a.Date, a.CheckIn, a.Status = employeeID, date, &clock, attendance.StatusPresent
	r.records[r.key(employeeID, date)] = a
	return a, nil
}

func (r *stubAttendanceRepo) UpsertCheckOut(ctx context.Context, employeeID string, date string, clock string) (attendance.Attendance, error) {
	a := r.records[r.key(employeeID, date)]
	a.EmployeeID, a.Date, a.CheckOut, a.Status = employeeID, date, &clock, attendance.StatusPresent
	r.records[r.key(employeeID, date)] = a
	return a, nil
}

type noopRecorder struct{}

func (noopRecorder) Record(ctx context.Context, employeeID string, activityType activity.Type, message string) {
}

const testEmployeeID = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"

func TestGetToday_MalformedEmployeeID(t *testing.T) {
	svc := NewAttendanceService(nil, noopRecorder{})

	_, err := svc.GetToday(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetToday_NoRecordYet(t *testing.T) {
	repo := &stubAttendanceRepo{records: map[string]attendance.Attendance{}}
	svc := NewAttendanceService(repo, noopRecorder{})

	_, err := svc.GetToday(context.Background(), testEmployeeID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestGetToday_ReturnsCurrentDay(t *testing.T) {
	repo := &stubAttendanceRepo{records: map[string]attendance.Attendance{}}
	svc := NewAttendanceService(repo, noopRecorder{})

	checkIn, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	today, err := svc.GetToday(context.Background(), testEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), today.Date)
	assert.Equal(t, checkIn.CheckIn, today.CheckIn)
	assert.Equal(t, attendance.StatusPresent, today.Status)
}
