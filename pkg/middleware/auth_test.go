package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"promoservice/internal/data/entity"
	"promoservice/pkg/auth"
	"promoservice/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newVerifier(t *testing.T) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager("test-secret", "HS256", time.Hour)
	require.NoError(t, err)
	return tm
}

type managerVerifier struct {
	tm *auth.TokenManager
}

func (v managerVerifier) VerifyToken(token string) *auth.Claims {
	return v.tm.Decode(token)
}

func authedHandler(t *testing.T, captured **auth.Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := utils.GetIdentityFromContext(r.Context())
		if ok {
			*captured = ident
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthAcceptsValidToken(t *testing.T) {
	tm := newVerifier(t)
	token, err := tm.Issue(7, "alice", entity.RoleManager)
	require.NoError(t, err)

	var captured *auth.Identity
	handler := Auth(managerVerifier{tm}, zap.NewNop())(authedHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, int64(7), captured.ID)
	assert.Equal(t, "alice", captured.Username)
	assert.Equal(t, entity.RoleManager, captured.Role)
}

func TestAuthMissingHeader(t *testing.T) {
	tm := newVerifier(t)

	var captured *auth.Identity
	handler := Auth(managerVerifier{tm}, zap.NewNop())(authedHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestAuthBadScheme(t *testing.T) {
	tm := newVerifier(t)
	token, err := tm.Issue(7, "alice", entity.RoleManager)
	require.NoError(t, err)

	var captured *auth.Identity
	handler := Auth(managerVerifier{tm}, zap.NewNop())(authedHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Basic "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	tm := newVerifier(t)

	var captured *auth.Identity
	handler := Auth(managerVerifier{tm}, zap.NewNop())(authedHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestAuthLegacyAdminRole(t *testing.T) {
	tm := newVerifier(t)
	// tokens minted before the role rename carry "admin"
	token, err := tm.Issue(1, "root", entity.Role("admin"))
	require.NoError(t, err)

	var captured *auth.Identity
	handler := Auth(managerVerifier{tm}, zap.NewNop())(authedHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, entity.RoleDirector, captured.Role)
}
