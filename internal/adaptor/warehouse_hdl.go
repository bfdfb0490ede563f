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

type WarehouseHandler struct {
	service usecase.WarehouseService
	log     *zap.Logger
}

func NewWarehouseHandler(service usecase.WarehouseService, log *zap.Logger) *WarehouseHandler {
	return &WarehouseHandler{
		service: service,
		log:     log.With(zap.String("handler", "warehouse")),
	}
}

// Create handles POST /api/warehouse
func (h *WarehouseHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	var req request.WarehouseItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create warehouse item")
		return
	}

	utils.ResponseCreated(w, "item created", resp)
}

// List handles GET /api/warehouse
func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, offset := utils.ParseLimitOffset(query.Get("limit"), query.Get("offset"))

	filter := repository.WarehouseFilter{
		Search:      query.Get("search"),
		Category:    query.Get("category"),
		MinQuantity: utils.ParseInt(query.Get("min_quantity"), 0),
	}

	resp, err := h.service.List(r.Context(), filter, limit, offset)
	if err != nil {
		handleServiceError(w, h.log, err, "list warehouse items")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Get handles GET /api/warehouse/{id}
func (h *WarehouseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid item ID", nil)
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get warehouse item")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/warehouse/{id}
func (h *WarehouseHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid item ID", nil)
		return
	}

	var req request.WarehouseItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update warehouse item")
		return
	}

	utils.ResponseSuccess(w, "item updated", resp)
}

// Delete handles DELETE /api/warehouse/{id}
func (h *WarehouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid item ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		handleServiceError(w, h.log, err, "delete warehouse item")
		return
	}

	utils.ResponseSuccess(w, "item deleted", nil)
}
