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

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, actor *auth.Identity, req *request.ChangePasswordRequest) error
	VerifyToken(token string) *auth.Claims
	EnsureDefaultAdmin(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	tokens *auth.TokenManager
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tokens *auth.TokenManager,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		config: config,
		log:    log,
	}
}

// Login verifies credentials and issues a fresh bearer token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to look up user for login", zap.Error(err))
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		s.log.Warn("Login rejected", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	// Audit only; tokens stay valid until expiry regardless.
	if err := s.repo.User.SaveToken(ctx, user.ID, token); err != nil {
		s.log.Warn("Failed to save issued token", zap.Error(err), zap.Int64("user_id", user.ID))
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return &response.AuthResponse{
		Token: token,
		User:  response.UserToResponse(user),
	}, nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
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

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) ChangePassword(ctx context.Context, actor *auth.Identity, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, actor.ID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.Int64("user_id", actor.ID))
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %w", ErrNotFound)
	}

	if !auth.CheckPassword(req.OldPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("update password: %w", err)
	}

	recordOperation(ctx, s.repo.OperationLog, s.log, actor, entity.OpUpdate, "users", user.ID, "password changed")
	s.log.Info("Password changed", zap.Int64("user_id", user.ID))

	return nil
}

// VerifyToken decodes a bearer token. A nil result means the token is
// invalid for any reason.
func (s *authService) VerifyToken(token string) *auth.Claims {
	return s.tokens.Decode(token)
}

// EnsureDefaultAdmin creates the bootstrap director account so a fresh
// deployment is never locked out. It only fires on an empty users table;
// once any account exists the operators own the account set, including a
// deliberately removed default.
func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	username := s.config.Bootstrap.AdminUsername

	count, err := s.repo.User.Count(ctx, repository.UserFilter{})
	if err != nil {
		return fmt.Errorf("check bootstrap admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(s.config.Bootstrap.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		Role:         entity.RoleDirector,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// another instance may have won the race
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("create bootstrap admin: %w", err)
	}

	s.log.Info("Bootstrap admin created", zap.String("username", username))
	return nil
}
