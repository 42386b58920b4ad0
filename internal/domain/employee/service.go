package employee

import (
	"context"

	"github.com/emptrack/tracker-backend-go/internal/domain/user"
)

// Actor is the authenticated caller, taken from verified token claims.
type Actor struct {
	UserID string
	Role   user.Role
}

type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByUser(ctx context.Context, userID string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	// Update allows admins to edit anyone and employees to edit only the
	// record linked to their own user.
	Update(ctx context.Context, id string, req UpdateEmployeeRequest, actor Actor) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
