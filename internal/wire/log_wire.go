package wire

import (
	"net/http"

	"promoservice/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireLogs(r chi.Router, h *adaptor.OperationLogHandler, authn, managerOnly func(http.Handler) http.Handler) {
	// The audit trail is manager territory
	r.Route("/api/logs", func(r chi.Router) {
		r.Use(authn)
		r.Use(managerOnly)

		r.Get("/", h.List)
		r.Get("/stats", h.Stats)
		r.Get("/user/{id}", h.ListByUser)
		r.Get("/table/{name}", h.ListByTable)
	})
}
