package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"promoservice/internal/data/entity"
	"promoservice/pkg/auth"
	"promoservice/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func requestWithIdentity(role entity.Role) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/clients/1", nil)
	ident := &auth.Identity{ID: 1, Username: "someone", Role: role}
	return req.WithContext(utils.SetIdentityContext(req.Context(), ident))
}

func TestRequireRole(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name string
		min  entity.Role
		role entity.Role
		want int
	}{
		{"exact role passes", entity.RoleManager, entity.RoleManager, http.StatusOK},
		{"higher role passes", entity.RoleManager, entity.RoleDirector, http.StatusOK},
		{"lower role denied", entity.RoleManager, entity.RoleEmployee, http.StatusForbidden},
		{"warehouse denied manager routes", entity.RoleManager, entity.RoleWarehouse, http.StatusForbidden},
		{"unknown role denied everywhere", entity.RoleWarehouse, entity.Role("intern"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(tt.min, zap.NewNop())(okHandler)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestWithIdentity(tt.role))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	handler := RequireRole(entity.RoleEmployee, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
