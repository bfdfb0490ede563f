package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"promoservice/internal/data/repository"
	"promoservice/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubLogService struct {
	lastFilter repository.OperationLogFilter
}

func (s *stubLogService) List(_ context.Context, filter repository.OperationLogFilter, limit, offset int) (*response.ListResponse[response.OperationLogResponse], error) {
	s.lastFilter = filter
	return response.NewListResponse([]response.OperationLogResponse{}, 0, limit, offset), nil
}

func (s *stubLogService) Stats(_ context.Context) (*response.OperationStatsResponse, error) {
	return &response.OperationStatsResponse{}, nil
}

func newLogRouter(svc *stubLogService) http.Handler {
	h := NewOperationLogHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/logs/user/{id}", h.ListByUser)
	r.Get("/api/logs/table/{name}", h.ListByTable)
	return r
}

func TestLogsListByUser(t *testing.T) {
	svc := &stubLogService{}
	router := newLogRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs/user/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.lastFilter.UserID)
}

func TestLogsListByUserBadID(t *testing.T) {
	svc := &stubLogService{}
	router := newLogRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs/user/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogsListByTable(t *testing.T) {
	svc := &stubLogService{}
	router := newLogRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs/table/clients", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "clients", svc.lastFilter.TableName)
}
