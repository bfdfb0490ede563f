package wire

import (
	"net/http"

	"promoservice/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, h *adaptor.UserHandler, authn, managerOnly func(http.Handler) http.Handler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(authn)

		// Browsing and creating accounts needs manager privileges;
		// updates and deletes are checked in the usecase (self-edit
		// is allowed).
		r.With(managerOnly).Post("/", h.Create)
		r.With(managerOnly).Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
