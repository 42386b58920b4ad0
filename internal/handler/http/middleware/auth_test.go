package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emptrack/tracker-backend-go/internal/domain/user"
	"github.com/emptrack/tracker-backend-go/internal/handler/http/response"
	"github.com/emptrack/tracker-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestJWTService() jwt.Service {
	return jwt.NewJWTService(testSecret, "1h", "24h")
}

func protectedEndpoint(svc jwt.Service) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return jwtauth.Verifier(svc.JWTAuth())(AuthRequired(svc)(ok))
}

func doRequest(t *testing.T, handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	var body response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAuthRequired_NoToken(t *testing.T) {
	svc := newTestJWTService()
	rec := doRequest(t, protectedEndpoint(svc), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Authentication required", body.Error.Message)
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	svc := newTestJWTService()

	_, tokenString, err := svc.JWTAuth().Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    "admin",
		"type":    "access",
		"exp":     time.Now().Add(-1 * time.Hour).Unix(),
	})
	require.NoError(t, err)

	rec := doRequest(t, protectedEndpoint(svc), tokenString)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Token expired", body.Error.Message)
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	svc := newTestJWTService()

	// A refresh token must not pass the access gate.
	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	rec := doRequest(t, protectedEndpoint(svc), tokenString)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Invalid token", body.Error.Message)
}

func TestAuthRequired_GarbageToken(t *testing.T) {
	svc := newTestJWTService()
	rec := doRequest(t, protectedEndpoint(svc), "not.a.jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RevokedToken(t *testing.T) {
	svc := newTestJWTService()

	tokenString, _, err := svc.GenerateAccessToken("user-1", "a@b.cd", user.RoleEmployee)
	require.NoError(t, err)

	handler := protectedEndpoint(svc)
	rec := doRequest(t, handler, tokenString)
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.RevokeToken(tokenString)
	rec = doRequest(t, handler, tokenString)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Token has been revoked", body.Error.Message)
}

func TestAuthRequired_ValidToken(t *testing.T) {
	svc := newTestJWTService()

	tokenString, _, err := svc.GenerateAccessToken("user-1", "a@b.cd", user.RoleAdmin)
	require.NoError(t, err)

	rec := doRequest(t, protectedEndpoint(svc), tokenString)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func adminEndpoint(svc jwt.Service) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return jwtauth.Verifier(svc.JWTAuth())(AuthRequired(svc)(RequireAdmin(ok)))
}

func TestRequireAdmin(t *testing.T) {
	svc := newTestJWTService()
	handler := adminEndpoint(svc)

	adminToken, _, err := svc.GenerateAccessToken("user-1", "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)
	employeeToken, _, err := svc.GenerateAccessToken("user-2", "emp@example.com", user.RoleEmployee)
	require.NoError(t, err)

	rec := doRequest(t, handler, adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, employeeToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeErrorBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Admin privilege required", body.Error.Message)
}

func TestRequireRole(t *testing.T) {
	svc := newTestJWTService()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := jwtauth.Verifier(svc.JWTAuth())(
		AuthRequired(svc)(RequireRole(user.RoleAdmin, user.RoleEmployee)(ok)))

	employeeToken, _, err := svc.GenerateAccessToken("user-2", "emp@example.com", user.RoleEmployee)
	require.NoError(t, err)

	rec := doRequest(t, handler, employeeToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}
