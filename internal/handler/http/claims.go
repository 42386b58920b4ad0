package http

import (
	"net/http"

	"github.com/emptrack/tracker-backend-go/internal/domain/auth"
	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
	"github.com/emptrack/tracker-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// actorFromRequest pulls the caller's identity out of the verified token.
func actorFromRequest(r *http.Request) (employee.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return employee.Actor{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return employee.Actor{}, auth.ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return employee.Actor{}, auth.ErrInvalidToken
	}
	role, ok := user.ParseRole(roleStr)
	if !ok {
		return employee.Actor{}, auth.ErrInvalidToken
	}

	return employee.Actor{UserID: userID, Role: role}, nil
}
