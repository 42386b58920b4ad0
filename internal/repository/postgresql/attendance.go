package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/emptrack/tracker-backend-go/internal/domain/attendance"
	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
	"github.com/emptrack/tracker-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// date is cast to text so it scans straight into the entity's string key.
const attendanceColumns = `id, employee_id, date::text, check_in, check_out, status, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.CheckIn,
		&a.CheckOut,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendances
		WHERE employee_id = $1
		ORDER BY date DESC
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendances
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`, attendanceColumns)

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for the day yet
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}
	return &a, nil
}

// UpsertCheckIn implements attendance.AttendanceRepository.
//
// A single INSERT ... ON CONFLICT statement makes the per-day idempotence
// atomic: concurrent check-ins race on the attendances_employee_id_date_key
// index and both land on the same row. An existing check_out is preserved.
func (r *attendanceRepositoryImpl) UpsertCheckIn(ctx context.Context, employeeID string, date string, clock string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO attendances (employee_id, date, check_in, status)
		VALUES ($1, $2, $3, 'present')
		ON CONFLICT (employee_id, date)
		DO UPDATE SET check_in = EXCLUDED.check_in, status = 'present', updated_at = NOW()
		RETURNING %s
	`, attendanceColumns)

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, clock))
	if err != nil {
		if IsForeignKeyViolation(err, "attendances_employee_id_fkey") {
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to upsert check-in: %w", err)
	}
	return a, nil
}

// UpsertCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpsertCheckOut(ctx context.Context, employeeID string, date string, clock string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO attendances (employee_id, date, check_out, status)
		VALUES ($1, $2, $3, 'present')
		ON CONFLICT (employee_id, date)
		DO UPDATE SET check_out = EXCLUDED.check_out, status = 'present', updated_at = NOW()
		RETURNING %s
	`, attendanceColumns)

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, clock))
	if err != nil {
		if IsForeignKeyViolation(err, "attendances_employee_id_fkey") {
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to upsert check-out: %w", err)
	}
	return a, nil
}
