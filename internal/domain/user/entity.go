package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access to every resource
	RoleEmployee Role = "employee" // Regular employee
)

// ParseRole maps a raw string onto the closed role set. Anything outside
// {admin, employee} is rejected at the boundary.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         Role
	// Weak reference to the employee record, set when an admin links one.
	EmployeeID      *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
