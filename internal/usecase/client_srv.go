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

type ClientService interface {
	Create(ctx context.Context, actor *auth.Identity, req *request.ClientRequest) (*response.ClientResponse, error)
	List(ctx context.Context, filter repository.ClientFilter, limit, offset int) (*response.ListResponse[response.ClientResponse], error)
	Get(ctx context.Context, id int64) (*response.ClientResponse, error)
	Update(ctx context.Context, actor *auth.Identity, id int64, req *request.ClientUpdateRequest) (*response.ClientResponse, error)
	Delete(ctx context.Context, actor *auth.Identity, id int64) error
}

type clientService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewClientService(repo *repository.Repository, log *zap.Logger) ClientService {
	return &clientService{
		repo: repo,
		log:  log,
	}
}

func (s *clientService) Create(ctx context.Context, actor *auth.Identity, req *request.ClientRequest) (*response.ClientResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Client.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("client with this phone %w", ErrDuplicate)
	}

	now := time.Now()
	client := &entity.Client{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		SocialMedia: req.SocialMedia,
		Notes:       req.Notes,
	}

	if err := s.repo.Client.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("client with this phone %w", ErrDuplicate)
		}
		return nil, err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpCreate, "clients", client.ID, fmt.Sprintf("client %s created", client.FullName))
	s.log.Info("Client created", zap.Int64("client_id", client.ID))

	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) List(ctx context.Context, filter repository.ClientFilter, limit, offset int) (*response.ListResponse[response.ClientResponse], error) {
	clients, err := s.repo.Client.FindAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Client.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return response.NewListResponse(response.ClientsToResponse(clients), total, limit, offset), nil
}

func (s *clientService) Get(ctx context.Context, id int64) (*response.ClientResponse, error) {
	client, err := s.repo.Client.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %w", ErrNotFound)
	}

	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) Update(ctx context.Context, actor *auth.Identity, id int64, req *request.ClientUpdateRequest) (*response.ClientResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	client, err := s.repo.Client.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %w", ErrNotFound)
	}

	if req.Phone != nil && *req.Phone != client.Phone {
		existing, err := s.repo.Client.FindByPhone(ctx, *req.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("client with this phone %w", ErrDuplicate)
		}
		client.Phone = *req.Phone
	}
	if req.FullName != nil {
		client.FullName = *req.FullName
	}
	if req.Email != nil {
		client.Email = req.Email
	}
	if req.Address != nil {
		client.Address = req.Address
	}
	if req.SocialMedia != nil {
		client.SocialMedia = req.SocialMedia
	}
	if req.Notes != nil {
		client.Notes = req.Notes
	}
	client.UpdatedAt = time.Now()

	if err := s.repo.Client.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("client with this phone %w", ErrDuplicate)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("client %w", ErrNotFound)
		}
		return nil, err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpUpdate, "clients", client.ID, fmt.Sprintf("client %s updated", client.FullName))

	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) Delete(ctx context.Context, actor *auth.Identity, id int64) error {
	if err := s.repo.Client.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("client %w", ErrNotFound)
		}
		return err
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpDelete, "clients", id, "")
	s.log.Info("Client deleted", zap.Int64("client_id", id))
	return nil
}
