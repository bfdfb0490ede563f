package adaptor

import (
	"encoding/json"
	"net/http"

	"promoservice/internal/data/repository"
	"promoservice/internal/dto/request"
	"promoservice/internal/usecase"
	"promoservice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ServicesHandler struct {
	service usecase.ServicesService
	log     *zap.Logger
}

func NewServicesHandler(service usecase.ServicesService, log *zap.Logger) *ServicesHandler {
	return &ServicesHandler{
		service: service,
		log:     log.With(zap.String("handler", "services")),
	}
}

// Create handles POST /api/services
func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	var req request.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create service")
		return
	}

	utils.ResponseCreated(w, "service created", resp)
}

// List handles GET /api/services
func (h *ServicesHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, offset := utils.ParseLimitOffset(query.Get("limit"), query.Get("offset"))

	filter := repository.ServiceFilter{
		Search:   query.Get("search"),
		Category: query.Get("category"),
	}

	resp, err := h.service.List(r.Context(), filter, limit, offset)
	if err != nil {
		handleServiceError(w, h.log, err, "list services")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Get handles GET /api/services/{id}
func (h *ServicesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid service ID", nil)
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get service")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/services/{id}
func (h *ServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid service ID", nil)
		return
	}

	var req request.ServiceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update service")
		return
	}

	utils.ResponseSuccess(w, "service updated", resp)
}

// Delete handles DELETE /api/services/{id}
func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid service ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		handleServiceError(w, h.log, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, "service deleted", nil)
}
