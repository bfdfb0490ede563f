package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"promoservice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", fmt.Errorf("%w: username is required", usecase.ErrValidation), http.StatusBadRequest},
		{"invalid credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not found", fmt.Errorf("user %w", usecase.ErrNotFound), http.StatusNotFound},
		{"duplicate", fmt.Errorf("user with this username %w", usecase.ErrDuplicate), http.StatusConflict},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		// deleting one's own account is a bad request, not a
		// privilege failure
		{"self delete", usecase.ErrSelfDelete, http.StatusBadRequest},
		{"unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tc.err, "test")
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
