package middleware

import (
	"net/http"
	"strings"

	"promoservice/internal/data/entity"
	"promoservice/pkg/auth"
	"promoservice/pkg/utils"

	"go.uber.org/zap"
)

// TokenVerifier decodes a bearer token, returning nil claims when the
// token is invalid for any reason. Satisfied by usecase.AuthService.
type TokenVerifier interface {
	VerifyToken(token string) *auth.Claims
}

// Auth validates the Authorization header and stores the authenticated
// identity in the request context.
func Auth(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims := verifier.VerifyToken(parts[1])
			if claims == nil {
				logger.Warn("Invalid or expired token",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr),
				)
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ident := &auth.Identity{
				ID:       claims.UserID,
				Username: claims.Username,
				Role:     entity.ParseRole(claims.Role),
			}

			ctx := utils.SetIdentityContext(r.Context(), ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
