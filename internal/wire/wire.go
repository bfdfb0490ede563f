package wire

import (
	"net/http"

	"promoservice/internal/adaptor"
	"promoservice/internal/data/entity"
	"promoservice/internal/usecase"
	"promoservice/pkg/middleware"
	"promoservice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the HTTP surface on top of an already-constructed
// usecase layer.
func Wiring(service *usecase.Service, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)
	router := setupRouter(handler, service, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, service *usecase.Service, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Route guards shared by the modules. Deletes are manager and up;
	// finer checks (user management, self-delete) live in the usecases.
	authn := middleware.Auth(service.Auth, logger)
	managerOnly := middleware.RequireRole(entity.RoleManager, logger)

	wireAuth(r, handler.Auth, authn)
	wireUser(r, handler.User, authn, managerOnly)
	wireClient(r, handler.Client, authn, managerOnly)
	wireEmployee(r, handler.Employee, authn, managerOnly)
	wireEquipment(r, handler.Equipment, authn, managerOnly)
	wireWarehouse(r, handler.Warehouse, authn, managerOnly)
	wireServices(r, handler.Services, authn, managerOnly)
	wireLogs(r, handler.Log, authn, managerOnly)

	// Health check endpoint
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Resource not found")
	})

	return r
}
