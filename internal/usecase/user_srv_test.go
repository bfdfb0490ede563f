package usecase

import (
	"context"
	"testing"

	"promoservice/internal/data/entity"
	"promoservice/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserCreateByManager(t *testing.T) {
	env := newTestEnv()
	boss := env.addUser("boss", "pass", entity.RoleManager)

	resp, err := env.service.User.Create(context.Background(), identityOf(boss), &request.UserCreateRequest{
		Username: "carol",
		Password: "secret-pass",
		Role:     "warehouse",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleWarehouse, resp.Role)

	stored := env.users.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret-pass", stored.PasswordHash)

	require.Len(t, env.logs.entries, 1)
	assert.Equal(t, entity.OpCreate, env.logs.entries[0].OperationType)
	assert.Equal(t, "users", env.logs.entries[0].TableName)
}

func TestUserCreateDefaultsToEmployee(t *testing.T) {
	env := newTestEnv()
	boss := env.addUser("boss", "pass", entity.RoleManager)

	resp, err := env.service.User.Create(context.Background(), identityOf(boss), &request.UserCreateRequest{
		Username: "carol",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, resp.Role)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	env := newTestEnv()
	boss := env.addUser("boss", "pass", entity.RoleManager)
	env.addUser("carol", "pass", entity.RoleEmployee)

	_, err := env.service.User.Create(context.Background(), identityOf(boss), &request.UserCreateRequest{
		Username: "carol",
		Password: "secret-pass",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserUpdateSelfEmail(t *testing.T) {
	env := newTestEnv()
	user := env.addUser("alice", "pass", entity.RoleEmployee)

	resp, err := env.service.User.Update(context.Background(), identityOf(user), user.ID, &request.UserUpdateRequest{
		Email: strPtr("alice@example.com"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Email)
	assert.Equal(t, "alice@example.com", *resp.Email)
}

func TestUserUpdateOtherRequiresManager(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser("alice", "pass", entity.RoleEmployee)
	bob := env.addUser("bob", "pass", entity.RoleEmployee)

	_, err := env.service.User.Update(context.Background(), identityOf(alice), bob.ID, &request.UserUpdateRequest{
		Email: strPtr("bob@example.com"),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUserUpdateRoleIgnoredForNonManager(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser("alice", "pass", entity.RoleEmployee)

	// role and status fields from a non-manager are dropped, the rest
	// of the update still applies
	resp, err := env.service.User.Update(context.Background(), identityOf(alice), alice.ID, &request.UserUpdateRequest{
		Role:   strPtr("director"),
		Status: strPtr("inactive"),
		Email:  strPtr("alice@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, resp.Role)
	assert.Equal(t, entity.UserStatusActive, env.users.users[alice.ID].Status)
	require.NotNil(t, resp.Email)
	assert.Equal(t, "alice@example.com", *resp.Email)
}

func TestUserUpdateRoleByManager(t *testing.T) {
	env := newTestEnv()
	boss := env.addUser("boss", "pass", entity.RoleManager)
	alice := env.addUser("alice", "pass", entity.RoleEmployee)

	resp, err := env.service.User.Update(context.Background(), identityOf(boss), alice.ID, &request.UserUpdateRequest{
		Role: strPtr("warehouse"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleWarehouse, resp.Role)
	require.Len(t, env.logs.entries, 1)
}

func TestUserDeleteRequiresDirector(t *testing.T) {
	env := newTestEnv()
	boss := env.addUser("boss", "pass", entity.RoleManager)
	alice := env.addUser("alice", "pass", entity.RoleEmployee)

	err := env.service.User.Delete(context.Background(), identityOf(boss), alice.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUserDeleteSelfForbidden(t *testing.T) {
	env := newTestEnv()
	director := env.addUser("director", "pass", entity.RoleDirector)

	err := env.service.User.Delete(context.Background(), identityOf(director), director.ID)
	assert.ErrorIs(t, err, ErrSelfDelete)
}

func TestUserDeleteByDirector(t *testing.T) {
	env := newTestEnv()
	director := env.addUser("director", "pass", entity.RoleDirector)
	alice := env.addUser("alice", "pass", entity.RoleEmployee)

	require.NoError(t, env.service.User.Delete(context.Background(), identityOf(director), alice.ID))
	assert.NotContains(t, env.users.users, alice.ID)

	require.Len(t, env.logs.entries, 1)
	assert.Equal(t, entity.OpDelete, env.logs.entries[0].OperationType)
}

func TestUserDeleteMissing(t *testing.T) {
	env := newTestEnv()
	director := env.addUser("director", "pass", entity.RoleDirector)

	err := env.service.User.Delete(context.Background(), identityOf(director), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserGetMissing(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.User.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
