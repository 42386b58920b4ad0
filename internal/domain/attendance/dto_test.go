package attendance

import (
	"testing"
	"time"

	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCheckInRequest_Validate(t *testing.T) {
	t.Run("valid with defaults", func(t *testing.T) {
		req := CheckInRequest{EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"}
		assert.NoError(t, req.Validate())
	})

	t.Run("valid with overrides", func(t *testing.T) {
		req := CheckInRequest{
			EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
			Date:       strPtr("2026-08-31"),
			CheckIn:    strPtr("09:00 AM"),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing employee", func(t *testing.T) {
		req := CheckInRequest{}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "employee_id")
	})

	t.Run("bad date", func(t *testing.T) {
		req := CheckInRequest{
			EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
			Date:       strPtr("31/08/2026"),
		}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "date")
	})

	t.Run("bad clock time", func(t *testing.T) {
		req := CheckInRequest{
			EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
			CheckIn:    strPtr("9am sharp"),
		}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "check_in")
	})
}

func TestCheckOutRequest_Validate(t *testing.T) {
	req := CheckOutRequest{
		EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		CheckOut:   strPtr("not a time"),
	}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "check_out")
}

func TestResolvedDateAndTime(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	t.Run("defaults to now", func(t *testing.T) {
		req := CheckInRequest{EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"}
		assert.Equal(t, "2026-08-31", req.ResolvedDate(now))
		assert.Equal(t, "02:30 PM", req.ResolvedTime(now))
	})

	t.Run("override wins", func(t *testing.T) {
		req := CheckInRequest{
			EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
			Date:       strPtr("2026-01-15"),
			CheckIn:    strPtr("08:45 AM"),
		}
		assert.Equal(t, "2026-01-15", req.ResolvedDate(now))
		assert.Equal(t, "08:45 AM", req.ResolvedTime(now))
	})

	t.Run("empty override falls back", func(t *testing.T) {
		req := CheckOutRequest{
			EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
			Date:       strPtr(""),
			CheckOut:   strPtr(""),
		}
		assert.Equal(t, "2026-08-31", req.ResolvedDate(now))
		assert.Equal(t, "02:30 PM", req.ResolvedTime(now))
	})
}
