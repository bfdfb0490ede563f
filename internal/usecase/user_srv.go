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

type UserService interface {
	Create(ctx context.Context, actor *auth.Identity, req *request.UserCreateRequest) (*response.UserResponse, error)
	List(ctx context.Context, filter repository.UserFilter, limit, offset int) (*response.ListResponse[response.UserResponse], error)
	Get(ctx context.Context, id int64) (*response.UserResponse, error)
	Update(ctx context.Context, actor *auth.Identity, id int64, req *request.UserUpdateRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, actor *auth.Identity, id int64) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

// Create adds an account on behalf of a manager or director. Unlike
// self-service registration it can set any role up front.
func (s *userService) Create(ctx context.Context, actor *auth.Identity, req *request.UserCreateRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user with this username %w", ErrDuplicate)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = string(entity.RoleEmployee)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         entity.ParseRole(role),
		Email:        req.Email,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("user with this username %w", ErrDuplicate)
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("create user: %w", err)
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpCreate, "users", user.ID, fmt.Sprintf("user %s created", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, filter repository.UserFilter, limit, offset int) (*response.ListResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.User.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return response.NewListResponse(response.UsersToResponse(users), total, limit, offset), nil
}

func (s *userService) Get(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Update lets a user edit their own account; editing others needs manager
// privileges or above. Role and status fields sent by non-managers are
// dropped, not rejected.
func (s *userService) Update(ctx context.Context, actor *auth.Identity, id int64, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if actor.ID != id && actor.Role.Level() < entity.RoleManager.Level() {
		return nil, ErrForbidden
	}
	if actor.Role.Level() < entity.RoleManager.Level() {
		req.Role = nil
		req.Status = nil
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		user.Role = entity.ParseRole(*req.Role)
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Status != nil {
		user.Status = entity.UserStatus(*req.Status)
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		s.log.Error("Failed to update user", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("update user: %w", err)
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpUpdate, "users", user.ID, fmt.Sprintf("user %s updated", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Delete is restricted to directors, and a director can never delete
// their own account.
func (s *userService) Delete(ctx context.Context, actor *auth.Identity, id int64) error {
	if actor.Role.Level() < entity.RoleDirector.Level() {
		return ErrForbidden
	}
	if actor.ID == id {
		return ErrSelfDelete
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("user %w", ErrNotFound)
		}
		s.log.Error("Failed to delete user", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("delete user: %w", err)
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpDelete, "users", id, "")
	return nil
}
