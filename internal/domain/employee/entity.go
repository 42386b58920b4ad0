package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	UserID     *string
	FirstName  string
	LastName   string
	Email      string
	Phone      *string
	Department string
	Position   *string
	HireDate   *time.Time
	Salary     decimal.Decimal
	Status     Status
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on-leave"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusOnLeave:
		return Status(s), true
	}
	return "", false
}
