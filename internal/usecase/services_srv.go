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

// ServicesService manages the service catalog (the offerings sold to
// clients, not to be confused with this usecase layer).
type ServicesService interface {
	Create(ctx context.Context, actor *auth.Identity, req *request.ServiceRequest) (*response.ServiceResponse, error)
	List(ctx context.Context, filter repository.ServiceFilter, limit, offset int) (*response.ListResponse[response.ServiceResponse], error)
	Get(ctx context.Context, id int64) (*response.ServiceResponse, error)
	Update(ctx context.Context, actor *auth.Identity, id int64, req *request.ServiceUpdateRequest) (*response.ServiceResponse, error)
	Delete(ctx context.Context, actor *auth.Identity, id int64) error
}

type servicesService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewServicesService(repo *repository.Repository, log *zap.Logger) ServicesService {
	return &servicesService{
		repo: repo,
		log:  log,
	}
}

func (s *servicesService) Create(ctx context.Context, actor *auth.Identity, req *request.ServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Service.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("service with this name %w", ErrDuplicate)
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("service with this name %w", ErrDuplicate)
		}
		return nil, err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpCreate, "services", service.ID,
		fmt.Sprintf("service %s created", service.Name))
	s.log.Info("Service created", zap.Int64("service_id", service.ID))

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *servicesService) List(ctx context.Context, filter repository.ServiceFilter, limit, offset int) (*response.ListResponse[response.ServiceResponse], error) {
	services, err := s.repo.Service.FindAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Service.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return response.NewListResponse(response.ServicesToResponse(services), total, limit, offset), nil
}

func (s *servicesService) Get(ctx context.Context, id int64) (*response.ServiceResponse, error) {
	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, fmt.Errorf("service %w", ErrNotFound)
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *servicesService) Update(ctx context.Context, actor *auth.Identity, id int64, req *request.ServiceUpdateRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, fmt.Errorf("service %w", ErrNotFound)
	}

	if req.Name != nil && *req.Name != service.Name {
		existing, err := s.repo.Service.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("service with this name %w", ErrDuplicate)
		}
		service.Name = *req.Name
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Description != nil {
		service.Description = req.Description
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = req.DurationMinutes
	}
	if req.Notes != nil {
		service.Notes = req.Notes
	}
	service.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, service); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("service with this name %w", ErrDuplicate)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("service %w", ErrNotFound)
		}
		return nil, err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpUpdate, "services", service.ID,
		fmt.Sprintf("service %s updated", service.Name))

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *servicesService) Delete(ctx context.Context, actor *auth.Identity, id int64) error {
	if err := s.repo.Service.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("service %w", ErrNotFound)
		}
		return err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpDelete, "services", id, "")
	s.log.Info("Service deleted", zap.Int64("service_id", id))
	return nil
}
