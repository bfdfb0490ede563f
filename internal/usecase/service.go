package usecase

import (
	"promoservice/internal/data/repository"
	"promoservice/pkg/auth"
	"promoservice/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Client    ClientService
	Employee  EmployeeService
	Equipment EquipmentService
	Warehouse WarehouseService
	Services  ServicesService
	Log       OperationLogService
}

func NewService(repo *repository.Repository, tokens *auth.TokenManager, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, tokens, config, log),
		User:      NewUserService(repo, log),
		Client:    NewClientService(repo, log),
		Employee:  NewEmployeeService(repo, log),
		Equipment: NewEquipmentService(repo, log),
		Warehouse: NewWarehouseService(repo, log),
		Services:  NewServicesService(repo, log),
		Log:       NewOperationLogService(repo.OperationLog, log),
	}
}
