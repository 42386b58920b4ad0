package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenMissing       = errors.New("no bearer token supplied")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailUnverified    = errors.New("google account email is not verified")
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")
)
