package middleware

import (
	"net/http"

	"promoservice/internal/data/entity"
	"promoservice/pkg/utils"

	"go.uber.org/zap"
)

// RequireRole guards a route with a minimum role from the hierarchy
// director > manager > employee > warehouse. It must run after Auth.
func RequireRole(min entity.Role, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if ident.Role.Level() < min.Level() {
				logger.Warn("Access denied",
					zap.Int64("user_id", ident.ID),
					zap.String("role", string(ident.Role)),
					zap.String("required_role", string(min)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
