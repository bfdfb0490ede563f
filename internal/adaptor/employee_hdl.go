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

type EmployeeHandler struct {
	service usecase.EmployeeService
	log     *zap.Logger
}

func NewEmployeeHandler(service usecase.EmployeeService, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		log:     log.With(zap.String("handler", "employee")),
	}
}

// Create handles POST /api/employees
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	var req request.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create employee")
		return
	}

	utils.ResponseCreated(w, "employee created", resp)
}

// List handles GET /api/employees
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, offset := utils.ParseLimitOffset(query.Get("limit"), query.Get("offset"))

	filter := repository.EmployeeFilter{
		Search:     query.Get("search"),
		Position:   query.Get("position"),
		Department: query.Get("department"),
		Status:     query.Get("status"),
	}

	resp, err := h.service.List(r.Context(), filter, limit, offset)
	if err != nil {
		handleServiceError(w, h.log, err, "list employees")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Get handles GET /api/employees/{id}
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid employee ID", nil)
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get employee")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/employees/{id}
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid employee ID", nil)
		return
	}

	var req request.EmployeeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update employee")
		return
	}

	utils.ResponseSuccess(w, "employee updated", resp)
}

// Delete handles DELETE /api/employees/{id}
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetIdentityFromContext(r.Context())

	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid employee ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		handleServiceError(w, h.log, err, "delete employee")
		return
	}

	utils.ResponseSuccess(w, "employee deleted", nil)
}
