package service

import (
	"context"
	"testing"

	"spa_booking/internal/model"
	"spa_booking/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpsertUser_CreatesWithoutID(t *testing.T) {
	st := store.NewMemory()
	svc := NewUserService(st)
	ctx := context.Background()

	id, err := svc.UpsertUser(ctx, "", "111", "pw", false)

	require.NoError(t, err)
	assert.NotEmpty(t, id)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, id, users[0].ID)
	assert.Equal(t, "111", users[0].Phone)
	assert.Equal(t, "pw", users[0].Password)
	assert.False(t, users[0].Role)
}

func TestUserService_UpsertUser_UpdatesInPlace(t *testing.T) {
	st := store.NewMemory()
	svc := NewUserService(st)
	ctx := context.Background()

	id, err := svc.UpsertUser(ctx, "", "111", "pw", false)
	require.NoError(t, err)

	returned, err := svc.UpsertUser(ctx, id, "222", "newpw", true)
	require.NoError(t, err)
	assert.Equal(t, id, returned)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "222", users[0].Phone)
	assert.Equal(t, "newpw", users[0].Password)
	assert.True(t, users[0].Role)
}

func TestUserService_UpsertUser_EmptyFields(t *testing.T) {
	spy := newCountingStore()
	svc := NewUserService(spy)
	ctx := context.Background()

	_, err := svc.UpsertUser(ctx, "", "", "pw", false)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpsertUser(ctx, "", "111", "", false)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Zero(t, spy.calls, "validation failures must not reach the store")
}

func TestUserService_UpsertUser_UnknownID(t *testing.T) {
	svc := NewUserService(store.NewMemory())

	_, err := svc.UpsertUser(context.Background(), "missing", "111", "pw", false)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpsertUser_DuplicatePhoneAllowed(t *testing.T) {
	st := store.NewMemory()
	svc := NewUserService(st)
	ctx := context.Background()

	// The admin path does not enforce phone uniqueness
	_, err := svc.UpsertUser(ctx, "", "111", "pw", false)
	require.NoError(t, err)
	_, err = svc.UpsertUser(ctx, "", "111", "other", true)
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_DeleteUser(t *testing.T) {
	st := store.NewMemory()
	svc := NewUserService(st)
	ctx := context.Background()

	id, err := svc.UpsertUser(ctx, "", "111", "pw", false)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, id))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	assert.ErrorIs(t, svc.DeleteUser(ctx, id), ErrUserNotFound)
}

func TestUserService_ListUsers_Empty(t *testing.T) {
	svc := NewUserService(store.NewMemory())

	users, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserService_ListUsers_DecodesStoredDocuments(t *testing.T) {
	st := store.NewMemory()
	svc := NewUserService(st)
	ctx := context.Background()

	// Documents written by other clients of the collection decode the same way
	id, err := st.Insert(ctx, model.CollectionUsers, store.Document{
		"phone":    "0123456789",
		"password": "abc",
		"role":     true,
	})
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, model.UserAccount{ID: id, Phone: "0123456789", Password: "abc", Role: true}, users[0])
}
