package repository

import (
	"promoservice/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Client       ClientRepository
	Employee     EmployeeRepository
	Equipment    EquipmentRepository
	Warehouse    WarehouseRepository
	Service      ServiceRepository
	OperationLog OperationLogRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Client:       NewClientRepository(db, log),
		Employee:     NewEmployeeRepository(db, log),
		Equipment:    NewEquipmentRepository(db, log),
		Warehouse:    NewWarehouseRepository(db, log),
		Service:      NewServiceRepository(db, log),
		OperationLog: NewOperationLogRepository(db, log),
	}
}
