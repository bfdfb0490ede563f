package usecase

import (
	"context"
	"testing"

	"promoservice/internal/data/entity"
	"promoservice/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv()
	user := env.addUser("alice", "secret-pass", entity.RoleManager)

	resp, err := env.service.Auth.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, entity.RoleManager, resp.User.Role)

	claims := env.service.Auth.VerifyToken(resp.Token)
	require.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "manager", claims.Role)

	// issued token is remembered on the account
	require.NotNil(t, user.Token)
	assert.Equal(t, resp.Token, *user.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv()
	env.addUser("alice", "secret-pass", entity.RoleEmployee)

	_, err := env.service.Auth.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Auth.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterHashesPassword(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Username: "bob",
		Password: "secret-pass",
		Role:     "employee",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, resp.Role)

	stored := env.users.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret-pass", stored.PasswordHash)
	assert.Equal(t, entity.UserStatusActive, stored.Status)
}

func TestRegisterWithoutRoleDefaultsToEmployee(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Username: "bob",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, resp.Role)
}

func TestRegisterAdminAliasBecomesDirector(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Username: "boss",
		Password: "secret-pass",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDirector, resp.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv()
	env.addUser("bob", "pass-one", entity.RoleEmployee)

	_, err := env.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Username: "bob",
		Password: "pass-two",
		Role:     "employee",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Username: "eve",
		Password: "secret-pass",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv()
	user := env.addUser("alice", "old-pass", entity.RoleEmployee)
	oldHash := user.PasswordHash

	err := env.service.Auth.ChangePassword(context.Background(), identityOf(user), &request.ChangePasswordRequest{
		OldPassword: "old-pass",
		NewPassword: "new-pass-123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, env.users.users[user.ID].PasswordHash)

	// audit entry written
	require.Len(t, env.logs.entries, 1)
	assert.Equal(t, entity.OpUpdate, env.logs.entries[0].OperationType)
	assert.Equal(t, "users", env.logs.entries[0].TableName)
}

func TestChangePasswordWrongOld(t *testing.T) {
	env := newTestEnv()
	user := env.addUser("alice", "old-pass", entity.RoleEmployee)

	err := env.service.Auth.ChangePassword(context.Background(), identityOf(user), &request.ChangePasswordRequest{
		OldPassword: "not-the-old-pass",
		NewPassword: "new-pass-123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	env := newTestEnv()

	assert.Nil(t, env.service.Auth.VerifyToken("not-a-token"))
	assert.Nil(t, env.service.Auth.VerifyToken(""))
}

func TestEnsureDefaultAdmin(t *testing.T) {
	env := newTestEnv()

	require.NoError(t, env.service.Auth.EnsureDefaultAdmin(context.Background()))

	admin, err := env.users.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleDirector, admin.Role)

	// second run leaves the account untouched
	require.NoError(t, env.service.Auth.EnsureDefaultAdmin(context.Background()))
	assert.Len(t, env.users.users, 1)
}

func TestEnsureDefaultAdminSkipsPopulatedTable(t *testing.T) {
	env := newTestEnv()
	env.addUser("alice", "pass", entity.RoleDirector)

	// accounts exist, so no default director comes back even though no
	// user is named "admin"
	require.NoError(t, env.service.Auth.EnsureDefaultAdmin(context.Background()))

	admin, err := env.users.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Nil(t, admin)
	assert.Len(t, env.users.users, 1)
}
