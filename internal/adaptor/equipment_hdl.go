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

type EquipmentHandler struct {
	service usecase.EquipmentService
	log     *zap.Logger
}

func NewEquipmentHandler(service usecase.EquipmentService, log *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "equipment")),
	}
}

// Create handles POST /api/equipment
func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	var req request.EquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create equipment")
		return
	}

	utils.ResponseCreated(w, "equipment created", resp)
}

// List handles GET /api/equipment
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, offset := utils.ParseLimitOffset(query.Get("limit"), query.Get("offset"))

	filter := repository.EquipmentFilter{
		Search: query.Get("search"),
		Type:   query.Get("type"),
		Status: query.Get("status"),
	}

	resp, err := h.service.List(r.Context(), filter, limit, offset)
	if err != nil {
		handleServiceError(w, h.log, err, "list equipment")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Get handles GET /api/equipment/{id}
func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid equipment ID", nil)
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get equipment")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/equipment/{id}
func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid equipment ID", nil)
		return
	}

	var req request.EquipmentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update equipment")
		return
	}

	utils.ResponseSuccess(w, "equipment updated", resp)
}

// Delete handles DELETE /api/equipment/{id}
func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid equipment ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		handleServiceError(w, h.log, err, "delete equipment")
		return
	}

	utils.ResponseSuccess(w, "equipment deleted", nil)
}
