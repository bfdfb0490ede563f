package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"promoservice/internal/data/entity"
	"promoservice/internal/data/repository"
	"promoservice/internal/dto/request"
	"promoservice/internal/dto/response"
	"promoservice/pkg/auth"
	"promoservice/pkg/utils"

	"go.uber.org/zap"
)

type EmployeeService interface {
	Create(ctx context.Context, actor *auth.Identity, req *request.EmployeeRequest) (*response.EmployeeResponse, error)
	List(ctx context.Context, filter repository.EmployeeFilter, limit, offset int) (*response.ListResponse[response.EmployeeResponse], error)
	Get(ctx context.Context, id int64) (*response.EmployeeResponse, error)
	Update(ctx context.Context, actor *auth.Identity, id int64, req *request.EmployeeUpdateRequest) (*response.EmployeeResponse, error)
	Delete(ctx context.Context, actor *auth.Identity, id int64) error
}

type employeeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEmployeeService(repo *repository.Repository, log *zap.Logger) EmployeeService {
	return &employeeService{
		repo: repo,
		log:  log,
	}
}

func (s *employeeService) Create(ctx context.Context, actor *auth.Identity, req *request.EmployeeRequest) (*response.EmployeeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Employee.FindByNameAndPosition(ctx, req.FirstName, req.LastName, req.Position)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("employee with this name and position %w", ErrDuplicate)
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	now := time.Now()
	employee := &entity.Employee{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Position:   req.Position,
		Department: req.Department,
		Phone:      req.Phone,
		Email:      req.Email,
		HireDate:   req.HireDate,
		Status:     status,
		Notes:      req.Notes,
	}

	if err := s.repo.Employee.Create(ctx, employee); err != nil {
		return nil, err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpCreate, "employees", employee.ID,
		fmt.Sprintf("employee %s %s created", employee.FirstName, employee.LastName))
	s.log.Info("Employee created", zap.Int64("employee_id", employee.ID))

	resp := response.EmployeeToResponse(employee)
	return &resp, nil
}

func (s *employeeService) List(ctx context.Context, filter repository.EmployeeFilter, limit, offset int) (*response.ListResponse[response.EmployeeResponse], error) {
	employees, err := s.repo.Employee.FindAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Employee.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return response.NewListResponse(response.EmployeesToResponse(employees), total, limit, offset), nil
}

func (s *employeeService) Get(ctx context.Context, id int64) (*response.EmployeeResponse, error) {
	employee, err := s.repo.Employee.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("employee %w", ErrNotFound)
	}

	resp := response.EmployeeToResponse(employee)
	return &resp, nil
}

func (s *employeeService) Update(ctx context.Context, actor *auth.Identity, id int64, req *request.EmployeeUpdateRequest) (*response.EmployeeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	employee, err := s.repo.Employee.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("employee %w", ErrNotFound)
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Department != nil {
		employee.Department = req.Department
	}
	if req.Phone != nil {
		employee.Phone = req.Phone
	}
	if req.Email != nil {
		employee.Email = req.Email
	}
	if req.HireDate != nil {
		employee.HireDate = req.HireDate
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}
	if req.Notes != nil {
		employee.Notes = req.Notes
	}
	employee.UpdatedAt = time.Now()

	if err := s.repo.Employee.Update(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("employee %w", ErrNotFound)
		}
		return nil, err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpUpdate, "employees", employee.ID,
		fmt.Sprintf("employee %s %s updated", employee.FirstName, employee.LastName))

	resp := response.EmployeeToResponse(employee)
	return &resp, nil
}

func (s *employeeService) Delete(ctx context.Context, actor *auth.Identity, id int64) error {
	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("employee %w", ErrNotFound)
		}
		return err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpDelete, "employees", id, "")
	s.log.Info("Employee deleted", zap.Int64("employee_id", id))
	return nil
}
