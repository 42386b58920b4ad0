package attendance

import (
	"time"

	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "03:04 PM"
)

// CheckInRequest records a check-in. Date and CheckIn are optional
// overrides; when absent the server's local day and wall clock apply.
// The override is kept deliberately open: the original system used it to
// backfill missed punches.
type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       *string `json:"date"`
	CheckIn    *string `json:"check_in"`
}

func (r *CheckInRequest) Validate() error {
	return validateClockRequest(r.EmployeeID, r.Date, r.CheckIn, "check_in")
}

// ResolvedDate returns the override date or today's local calendar day.
func (r *CheckInRequest) ResolvedDate(now time.Time) string {
	return resolveDate(r.Date, now)
}

// ResolvedTime returns the override time or the current wall clock.
func (r *CheckInRequest) ResolvedTime(now time.Time) string {
	return resolveClock(r.CheckIn, now)
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       *string `json:"date"`
	CheckOut   *string `json:"check_out"`
}

func (r *CheckOutRequest) Validate() error {
	return validateClockRequest(r.EmployeeID, r.Date, r.CheckOut, "check_out")
}

func (r *CheckOutRequest) ResolvedDate(now time.Time) string {
	return resolveDate(r.Date, now)
}

func (r *CheckOutRequest) ResolvedTime(now time.Time) string {
	return resolveClock(r.CheckOut, now)
}

func validateClockRequest(employeeID string, date, clock *string, clockField string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if date != nil && *date != "" {
		if _, ok := validator.IsValidDate(*date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}
	if clock != nil && *clock != "" && !validator.IsValidClockTime(*clock) {
		errs = append(errs, validator.ValidationError{Field: clockField, Message: "time must look like 09:05 AM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func resolveDate(override *string, now time.Time) string {
	if override != nil && *override != "" {
		return *override
	}
	return now.Format(dateLayout)
}

func resolveClock(override *string, now time.Time) string {
	if override != nil && *override != "" {
		return *override
	}
	return now.Format(clockLayout)
}

type AttendanceResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	CheckIn    *string   `json:"check_in,omitempty"`
	CheckOut   *string   `json:"check_out,omitempty"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func NewAttendanceResponses(records []Attendance) []AttendanceResponse {
	resps := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		resps = append(resps, NewAttendanceResponse(a))
	}
	return resps
}
