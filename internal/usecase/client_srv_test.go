package usecase

import (
	"context"
	"testing"

	"promoservice/internal/data/entity"
	"promoservice/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreate(t *testing.T) {
	env := newTestEnv()
	actor := identityOf(env.addUser("alice", "pass", entity.RoleEmployee))

	resp, err := env.service.Client.Create(context.Background(), actor, &request.ClientRequest{
		FullName: "Ivan Petrov",
		Phone:    "+7900123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ivan Petrov", resp.FullName)
	assert.NotZero(t, resp.ID)

	require.Len(t, env.logs.entries, 1)
	assert.Equal(t, entity.OpCreate, env.logs.entries[0].OperationType)
	assert.Equal(t, "clients", env.logs.entries[0].TableName)
}

func TestClientCreateDuplicatePhone(t *testing.T) {
	env := newTestEnv()
	actor := identityOf(env.addUser("alice", "pass", entity.RoleEmployee))

	_, err := env.service.Client.Create(context.Background(), actor, &request.ClientRequest{
		FullName: "Ivan Petrov",
		Phone:    "+7900123456",
	})
	require.NoError(t, err)

	_, err = env.service.Client.Create(context.Background(), actor, &request.ClientRequest{
		FullName: "Another Person",
		Phone:    "+7900123456",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestClientCreateValidation(t *testing.T) {
	env := newTestEnv()
	actor := identityOf(env.addUser("alice", "pass", entity.RoleEmployee))

	_, err := env.service.Client.Create(context.Background(), actor, &request.ClientRequest{
		FullName: "",
		Phone:    "",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClientUpdatePartial(t *testing.T) {
	env := newTestEnv()
	actor := identityOf(env.addUser("alice", "pass", entity.RoleEmployee))

	created, err := env.service.Client.Create(context.Background(), actor, &request.ClientRequest{
		FullName: "Ivan Petrov",
		Phone:    "+7900123456",
	})
	require.NoError(t, err)

	resp, err := env.service.Client.Update(context.Background(), actor, created.ID, &request.ClientUpdateRequest{
		Email: strPtr("ivan@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ivan Petrov", resp.FullName)
	require.NotNil(t, resp.Email)
	assert.Equal(t, "ivan@example.com", *resp.Email)
	assert.Equal(t, "+7900123456", resp.Phone)
}

func TestClientUpdatePhoneConflict(t *testing.T) {
	env := newTestEnv()
	actor := identityOf(env.addUser("alice", "pass", entity.RoleEmployee))

	first, err := env.service.Client.Create(context.Background(), actor, &request.ClientRequest{
		FullName: "Ivan Petrov",
		Phone:    "+7900123456",
	})
	require.NoError(t, err)
	_ = first

	second, err := env.service.Client.Create(context.Background(), actor, &request.ClientRequest{
		FullName: "Anna Sidorova",
		Phone:    "+7900654321",
	})
	require.NoError(t, err)

	_, err = env.service.Client.Update(context.Background(), actor, second.ID, &request.ClientUpdateRequest{
		Phone: strPtr("+7900123456"),
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestClientGetMissing(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Client.Get(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientDelete(t *testing.T) {
	env := newTestEnv()
	actor := identityOf(env.addUser("boss", "pass", entity.RoleManager))

	created, err := env.service.Client.Create(context.Background(), actor, &request.ClientRequest{
		FullName: "Ivan Petrov",
		Phone:    "+7900123456",
	})
	require.NoError(t, err)

	require.NoError(t, env.service.Client.Delete(context.Background(), actor, created.ID))

	_, err = env.service.Client.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuditFailureDoesNotFailOperation(t *testing.T) {
	env := newTestEnv()
	env.logs.failing = true
	actor := identityOf(env.addUser("alice", "pass", entity.RoleEmployee))

	_, err := env.service.Client.Create(context.Background(), actor, &request.ClientRequest{
		FullName: "Ivan Petrov",
		Phone:    "+7900123456",
	})
	assert.NoError(t, err)
}
