package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wednest/internal/auth"
	"wednest/internal/models"
)

func authProtectedServer(t *testing.T, verifier TokenVerifier) http.Handler {
	t.Helper()
	var next http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		require.NotNil(t, claims)
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(verifier)(next)
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	token, err := tokens.Issue("user-123", models.UserTypeVendor)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/request", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	authProtectedServer(t, tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	req := httptest.NewRequest("POST", "/api/request", nil)
	rec := httptest.NewRecorder()

	authProtectedServer(t, tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	req := httptest.NewRequest("POST", "/api/request", nil)
	req.Header.Set("Authorization", "Bearer garbage.token.here")
	rec := httptest.NewRecorder()

	authProtectedServer(t, tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestRequireAuthRejectsForeignSecret(t *testing.T) {
	other := auth.NewTokenService("other-secret")
	token, err := other.Issue("user-123", models.UserTypeCouple)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/request", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	authProtectedServer(t, auth.NewTokenService("test-secret")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClaimsFromContextWithoutAuth(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	assert.Nil(t, ClaimsFromContext(req.Context()))
}
