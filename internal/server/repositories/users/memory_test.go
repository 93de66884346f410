package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophaccount/internal/common"
	"github.com/dmitrijs2005/gophaccount/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndLookup(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	a, err := r.Create(ctx, &models.User{UserName: "alice", PasswordHash: []byte("h")})
	require.NoError(t, err)
	b, err := r.Create(ctx, &models.User{UserName: "bob", PasswordHash: []byte("h")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	_, err = r.Create(ctx, &models.User{UserName: "alice"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := r.GetUserByLogin(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)

	got, err = r.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)

	_, err = r.GetUserByLogin(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.GetByID(ctx, 99)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_Update(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{UserName: "alice", PasswordHash: []byte("h1")})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.User{UserName: "bob", PasswordHash: []byte("h1")})
	require.NoError(t, err)

	u, err := r.Update(ctx, &models.User{ID: 1, UserName: "carol", PasswordHash: []byte("h2")})
	require.NoError(t, err)
	assert.Equal(t, "carol", u.UserName)

	_, err = r.GetUserByLogin(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	got, err := r.GetUserByLogin(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, []byte("h2"), got.PasswordHash)

	// keeping the own name is not a conflict
	_, err = r.Update(ctx, &models.User{ID: 1, UserName: "carol", PasswordHash: []byte("h3")})
	require.NoError(t, err)

	_, err = r.Update(ctx, &models.User{ID: 1, UserName: "bob"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = r.Update(ctx, &models.User{ID: 5, UserName: "x"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	_, err := r.Create(ctx, &models.User{UserName: "alice"})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, 1)
	require.NoError(t, err)
	got.UserName = "mutated"

	again, err := r.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", again.UserName)
}
