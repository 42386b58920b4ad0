package auth

import "context"

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// LoginWithGoogle signs in (or provisions) the account behind a
	// verified Google identity; unverified emails are rejected.
	LoginWithGoogle(ctx context.Context, googleEmail string, googleID string, emailVerified bool) (TokenResponse, error)
	Me(ctx context.Context, userID string) (UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	Logout(ctx context.Context, token string) error
}
