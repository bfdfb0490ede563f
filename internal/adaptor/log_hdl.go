package adaptor

import (
	"net/http"
	"time"

	"promoservice/internal/data/repository"
	"promoservice/internal/usecase"
	"promoservice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OperationLogHandler struct {
	service usecase.OperationLogService
	log     *zap.Logger
}

func NewOperationLogHandler(service usecase.OperationLogService, log *zap.Logger) *OperationLogHandler {
	return &OperationLogHandler{
		service: service,
		log:     log.With(zap.String("handler", "logs")),
	}
}

// List handles GET /api/logs
func (h *OperationLogHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, offset := utils.ParseLimitOffset(query.Get("limit"), query.Get("offset"))

	filter := repository.OperationLogFilter{
		OperationType: query.Get("operation_type"),
		TableName:     query.Get("table_name"),
	}

	if v := query.Get("user_id"); v != "" {
		id, ok := utils.ParseID(v)
		if !ok {
			utils.ResponseBadRequest(w, "Invalid user_id", nil)
			return
		}
		filter.UserID = id
	}

	if v := query.Get("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid start_date, expected YYYY-MM-DD", nil)
			return
		}
		filter.StartDate = &t
	}

	if v := query.Get("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid end_date, expected YYYY-MM-DD", nil)
			return
		}
		// the whole end day is included
		end := t.Add(24*time.Hour - time.Second)
		filter.EndDate = &end
	}

	resp, err := h.service.List(r.Context(), filter, limit, offset)
	if err != nil {
		handleServiceError(w, h.log, err, "list operation logs")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// ListByUser handles GET /api/logs/user/{id}
func (h *OperationLogHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	query := r.URL.Query()
	limit, offset := utils.ParseLimitOffset(query.Get("limit"), query.Get("offset"))

	resp, err := h.service.List(r.Context(), repository.OperationLogFilter{UserID: id}, limit, offset)
	if err != nil {
		handleServiceError(w, h.log, err, "list operation logs by user")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// ListByTable handles GET /api/logs/table/{name}
func (h *OperationLogHandler) ListByTable(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	query := r.URL.Query()
	limit, offset := utils.ParseLimitOffset(query.Get("limit"), query.Get("offset"))

	resp, err := h.service.List(r.Context(), repository.OperationLogFilter{TableName: name}, limit, offset)
	if err != nil {
		handleServiceError(w, h.log, err, "list operation logs by table")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Stats handles GET /api/logs/stats
func (h *OperationLogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Stats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "operation log stats")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}
