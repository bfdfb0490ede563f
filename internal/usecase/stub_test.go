package usecase

import (
	"context"
	"time"

	"promoservice/internal/data/entity"
	"promoservice/internal/data/repository"
	"promoservice/pkg/auth"
	"promoservice/pkg/utils"

	"go.uber.org/zap"
)

// In-memory repository stubs. Only the behavior the usecases rely on is
// modeled: duplicate detection, not-found, and basic listing.

type stubUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*entity.User)}
}

func (s *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range s.users {
		if u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) FindAll(_ context.Context, _ repository.UserFilter, _, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserRepo) Count(_ context.Context, _ repository.UserFilter) (int64, error) {
	return int64(len(s.users)), nil
}

func (s *stubUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (s *stubUserRepo) SaveToken(_ context.Context, id int64, token string) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Token = &token
	return nil
}

func (s *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type stubClientRepo struct {
	clients map[int64]*entity.Client
	nextID  int64
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[int64]*entity.Client)}
}

func (s *stubClientRepo) Create(_ context.Context, client *entity.Client) error {
	for _, c := range s.clients {
		if c.Phone == client.Phone {
			return repository.ErrDuplicate
		}
	}
	s.nextID++
	client.ID = s.nextID
	s.clients[client.ID] = client
	return nil
}

func (s *stubClientRepo) FindByID(_ context.Context, id int64) (*entity.Client, error) {
	return s.clients[id], nil
}

func (s *stubClientRepo) FindByPhone(_ context.Context, phone string) (*entity.Client, error) {
	for _, c := range s.clients {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubClientRepo) FindAll(_ context.Context, _ repository.ClientFilter, _, _ int) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubClientRepo) Count(_ context.Context, _ repository.ClientFilter) (int64, error) {
	return int64(len(s.clients)), nil
}

func (s *stubClientRepo) Update(_ context.Context, client *entity.Client) error {
	if _, ok := s.clients[client.ID]; !ok {
		return repository.ErrNotFound
	}
	s.clients[client.ID] = client
	return nil
}

func (s *stubClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.clients[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.clients, id)
	return nil
}

type stubLogRepo struct {
	entries []*entity.OperationLog
	failing bool
}

func (s *stubLogRepo) Create(_ context.Context, log *entity.OperationLog) error {
	if s.failing {
		return context.DeadlineExceeded
	}
	log.ID = int64(len(s.entries) + 1)
	s.entries = append(s.entries, log)
	return nil
}

func (s *stubLogRepo) FindAll(_ context.Context, _ repository.OperationLogFilter, _, _ int) ([]*entity.OperationLog, error) {
	return s.entries, nil
}

func (s *stubLogRepo) Count(_ context.Context, _ repository.OperationLogFilter) (int64, error) {
	return int64(len(s.entries)), nil
}

func (s *stubLogRepo) Stats(_ context.Context) (*repository.OperationStats, error) {
	stats := &repository.OperationStats{
		ByOperationType: make(map[string]int64),
		ByTable:         make(map[string]int64),
	}
	for _, e := range s.entries {
		stats.ByOperationType[e.OperationType]++
		stats.ByTable[e.TableName]++
		stats.Total++
	}
	return stats, nil
}

type testEnv struct {
	users   *stubUserRepo
	clients *stubClientRepo
	logs    *stubLogRepo
	repo    *repository.Repository
	tokens  *auth.TokenManager
	service *Service
}

func newTestEnv() *testEnv {
	users := newStubUserRepo()
	clients := newStubClientRepo()
	logs := &stubLogRepo{}

	repo := &repository.Repository{
		User:         users,
		Client:       clients,
		OperationLog: logs,
	}

	tokens, _ := auth.NewTokenManager("test-secret", "HS256", time.Hour)
	config := &utils.Config{
		Bootstrap: utils.BootstrapConfig{
			AdminUsername: "admin",
			AdminPassword: "admin123",
		},
	}

	return &testEnv{
		users:   users,
		clients: clients,
		logs:    logs,
		repo:    repo,
		tokens:  tokens,
		service: NewService(repo, tokens, config, zap.NewNop()),
	}
}

func (e *testEnv) addUser(username, password string, role entity.Role) *entity.User {
	hash, _ := auth.HashPassword(password)
	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
	}
	_ = e.users.Create(context.Background(), user)
	return user
}

func identityOf(user *entity.User) *auth.Identity {
	return &auth.Identity{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}
