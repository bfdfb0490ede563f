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

type EquipmentService interface {
	Create(ctx context.Context, actor *auth.Identity, req *request.EquipmentRequest) (*response.EquipmentResponse, error)
	List(ctx context.Context, filter repository.EquipmentFilter, limit, offset int) (*response.ListResponse[response.EquipmentResponse], error)
	Get(ctx context.Context, id int64) (*response.EquipmentResponse, error)
	Update(ctx context.Context, actor *auth.Identity, id int64, req *request.EquipmentUpdateRequest) (*response.EquipmentResponse, error)
	Delete(ctx context.Context, actor *auth.Identity, id int64) error
}

type equipmentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEquipmentService(repo *repository.Repository, log *zap.Logger) EquipmentService {
	return &equipmentService{
		repo: repo,
		log:  log,
	}
}

func (s *equipmentService) Create(ctx context.Context, actor *auth.Identity, req *request.EquipmentRequest) (*response.EquipmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// serial numbers are optional but unique when present
	if req.SerialNumber != nil && *req.SerialNumber != "" {
		existing, err := s.repo.Equipment.FindBySerialNumber(ctx, *req.SerialNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("equipment with this serial number %w", ErrDuplicate)
		}
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	now := time.Now()
	equipment := &entity.Equipment{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		EquipmentType: req.EquipmentType,
		Model:         req.Model,
		SerialNumber:  req.SerialNumber,
		PurchaseDate:  req.PurchaseDate,
		Status:        status,
		Location:      req.Location,
		Notes:         req.Notes,
	}

	if err := s.repo.Equipment.Create(ctx, equipment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("equipment with this serial number %w", ErrDuplicate)
		}
		return nil, err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpCreate, "equipment", equipment.ID,
		fmt.Sprintf("equipment %s created", equipment.Name))
	s.log.Info("Equipment created", zap.Int64("equipment_id", equipment.ID))

	resp := response.EquipmentToResponse(equipment)
	return &resp, nil
}

func (s *equipmentService) List(ctx context.Context, filter repository.EquipmentFilter, limit, offset int) (*response.ListResponse[response.EquipmentResponse], error) {
	items, err := s.repo.Equipment.FindAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Equipment.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return response.NewListResponse(response.EquipmentListToResponse(items), total, limit, offset), nil
}

func (s *equipmentService) Get(ctx context.Context, id int64) (*response.EquipmentResponse, error) {
	equipment, err := s.repo.Equipment.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, fmt.Errorf("equipment %w", ErrNotFound)
	}

	resp := response.EquipmentToResponse(equipment)
	return &resp, nil
}

func (s *equipmentService) Update(ctx context.Context, actor *auth.Identity, id int64, req *request.EquipmentUpdateRequest) (*response.EquipmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	equipment, err := s.repo.Equipment.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, fmt.Errorf("equipment %w", ErrNotFound)
	}

	if req.SerialNumber != nil && *req.SerialNumber != "" {
		existing, err := s.repo.Equipment.FindBySerialNumber(ctx, *req.SerialNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("equipment with this serial number %w", ErrDuplicate)
		}
	}

	if req.Name != nil {
		equipment.Name = *req.Name
	}
	if req.EquipmentType != nil {
		equipment.EquipmentType = *req.EquipmentType
	}
	if req.Model != nil {
		equipment.Model = req.Model
	}
	if req.SerialNumber != nil {
		equipment.SerialNumber = req.SerialNumber
	}
	if req.PurchaseDate != nil {
		equipment.PurchaseDate = req.PurchaseDate
	}
	if req.Status != nil {
		equipment.Status = *req.Status
	}
	if req.Location != nil {
		equipment.Location = req.Location
	}
	if req.Notes != nil {
		equipment.Notes = req.Notes
	}
	equipment.UpdatedAt = time.Now()

	if err := s.repo.Equipment.Update(ctx, equipment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("equipment with this serial number %w", ErrDuplicate)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("equipment %w", ErrNotFound)
		}
		return nil, err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpUpdate, "equipment", equipment.ID,
		fmt.Sprintf("equipment %s updated", equipment.Name))

	resp := response.EquipmentToResponse(equipment)
	return &resp, nil
}

func (s *equipmentService) Delete(ctx context.Context, actor *auth.Identity, id int64) error {
	if err := s.repo.Equipment.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("equipment %w", ErrNotFound)
		}
		return err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpDelete, "equipment", id, "")
	s.log.Info("Equipment deleted", zap.Int64("equipment_id", id))
	return nil
}
