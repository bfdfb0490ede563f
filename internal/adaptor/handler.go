package adaptor

import (
	"promoservice/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Client    *ClientHandler
	Employee  *EmployeeHandler
	Equipment *EquipmentHandler
	Warehouse *WarehouseHandler
	Services  *ServicesHandler
	Log       *OperationLogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Client:    NewClientHandler(service.Client, log),
		Employee:  NewEmployeeHandler(service.Employee, log),
		Equipment: NewEquipmentHandler(service.Equipment, log),
		Warehouse: NewWarehouseHandler(service.Warehouse, log),
		Services:  NewServicesHandler(service.Services, log),
		Log:       NewOperationLogHandler(service.Log, log),
	}
}
