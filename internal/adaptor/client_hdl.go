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

type ClientHandler struct {
	service usecase.ClientService
	log     *zap.Logger
}

func NewClientHandler(service usecase.ClientService, log *zap.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		log:     log.With(zap.String("handler", "client")),
	}
}

// Create handles POST /api/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	var req request.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create client")
		return
	}

	utils.ResponseCreated(w, "client created", resp)
}

// List handles GET /api/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, offset := utils.ParseLimitOffset(query.Get("limit"), query.Get("offset"))

	filter := repository.ClientFilter{
		Search: query.Get("search"),
		Phone:  query.Get("phone"),
	}

	resp, err := h.service.List(r.Context(), filter, limit, offset)
	if err != nil {
		handleServiceError(w, h.log, err, "list clients")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Get handles GET /api/clients/{id}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid client ID", nil)
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get client")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/clients/{id}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid client ID", nil)
		return
	}

	var req request.ClientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update client")
		return
	}

	utils.ResponseSuccess(w, "client updated", resp)
}

// Delete handles DELETE /api/clients/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid client ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		handleServiceError(w, h.log, err, "delete client")
		return
	}

	utils.ResponseSuccess(w, "client deleted", nil)
}
