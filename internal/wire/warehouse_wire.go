package wire

import (
	"net/http"

	"promoservice/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireWarehouse(r chi.Router, h *adaptor.WarehouseHandler, authn, managerOnly func(http.Handler) http.Handler) {
	r.Route("/api/warehouse", func(r chi.Router) {
		r.Use(authn)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.With(managerOnly).Delete("/{id}", h.Delete)
	})
}
