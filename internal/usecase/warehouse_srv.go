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

type WarehouseService interface {
	Create(ctx context.Context, actor *auth.Identity, req *request.WarehouseItemRequest) (*response.WarehouseItemResponse, error)
	List(ctx context.Context, filter repository.WarehouseFilter, limit, offset int) (*response.ListResponse[response.WarehouseItemResponse], error)
	Get(ctx context.Context, id int64) (*response.WarehouseItemResponse, error)
	Update(ctx context.Context, actor *auth.Identity, id int64, req *request.WarehouseItemUpdateRequest) (*response.WarehouseItemResponse, error)
	Delete(ctx context.Context, actor *auth.Identity, id int64) error
}

type warehouseService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWarehouseService(repo *repository.Repository, log *zap.Logger) WarehouseService {
	return &warehouseService{
		repo: repo,
		log:  log,
	}
}

func (s *warehouseService) Create(ctx context.Context, actor *auth.Identity, req *request.WarehouseItemRequest) (*response.WarehouseItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Warehouse.FindByArticleNumber(ctx, req.ArticleNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("item with this article number %w", ErrDuplicate)
	}

	now := time.Now()
	item := &entity.WarehouseItem{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		ItemName:      req.ItemName,
		ArticleNumber: req.ArticleNumber,
		Category:      req.Category,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		Location:      req.Location,
		Supplier:      req.Supplier,
		Notes:         req.Notes,
	}

	if err := s.repo.Warehouse.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("item with this article number %w", ErrDuplicate)
		}
		return nil, err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpCreate, "warehouse", item.ID,
		fmt.Sprintf("item %s created", item.ItemName))
	s.log.Info("Warehouse item created", zap.Int64("item_id", item.ID))

	resp := response.WarehouseItemToResponse(item)
	return &resp, nil
}

func (s *warehouseService) List(ctx context.Context, filter repository.WarehouseFilter, limit, offset int) (*response.ListResponse[response.WarehouseItemResponse], error) {
	items, err := s.repo.Warehouse.FindAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Warehouse.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return response.NewListResponse(response.WarehouseItemsToResponse(items), total, limit, offset), nil
}

func (s *warehouseService) Get(ctx context.Context, id int64) (*response.WarehouseItemResponse, error) {
	item, err := s.repo.Warehouse.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("item %w", ErrNotFound)
	}

	resp := response.WarehouseItemToResponse(item)
	return &resp, nil
}

func (s *warehouseService) Update(ctx context.Context, actor *auth.Identity, id int64, req *request.WarehouseItemUpdateRequest) (*response.WarehouseItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	item, err := s.repo.Warehouse.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("item %w", ErrNotFound)
	}

	if req.ArticleNumber != nil && *req.ArticleNumber != item.ArticleNumber {
		existing, err := s.repo.Warehouse.FindByArticleNumber(ctx, *req.ArticleNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("item with this article number %w", ErrDuplicate)
		}
		item.ArticleNumber = *req.ArticleNumber
	}
	if req.ItemName != nil {
		item.ItemName = *req.ItemName
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.Location != nil {
		item.Location = req.Location
	}
	if req.Supplier != nil {
		item.Supplier = req.Supplier
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}
	item.UpdatedAt = time.Now()

	if err := s.repo.Warehouse.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("item with this article number %w", ErrDuplicate)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("item %w", ErrNotFound)
		}
		return nil, err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpUpdate, "warehouse", item.ID,
		fmt.Sprintf("item %s updated", item.ItemName))

	resp := response.WarehouseItemToResponse(item)
	return &resp, nil
}

func (s *warehouseService) Delete(ctx context.Context, actor *auth.Identity, id int64) error {
	if err := s.repo.Warehouse.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("item %w", ErrNotFound)
		}
		return err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpDelete, "warehouse", id, "")
	s.log.Info("Warehouse item deleted", zap.Int64("item_id", id))
	return nil
}
