package wire

import (
	"net/http"

	"promoservice/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, h *adaptor.AuthHandler, authn func(http.Handler) http.Handler) {
	// Public routes
	r.Post("/api/auth/register", h.Register)
	r.Post("/api/auth/login", h.Login)

	// Protected routes
	r.With(authn).Post("/api/auth/change-password", h.ChangePassword)
	r.With(authn).Get("/api/auth/me", h.Me)
}
