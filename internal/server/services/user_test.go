package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophaccount/internal/common"
	"github.com/dmitrijs2005/gophaccount/internal/server/config"
	"github.com/dmitrijs2005/gophaccount/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newMemoryService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(repomanager.NewMemoryRepositoryManager(), &config.Config{BcryptCost: bcrypt.MinCost})
}

func TestNewUserService_CostFallback(t *testing.T) {
	s := NewUserService(repomanager.NewMemoryRepositoryManager(), &config.Config{BcryptCost: 1})
	assert.Equal(t, bcrypt.DefaultCost, s.bcryptCost)
}

func TestRegister_HashesPassword(t *testing.T) {
	s := newMemoryService(t)

	u, err := s.Register(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.NotEqual(t, []byte("secret"), u.PasswordHash)
	assert.True(t, CheckPassword(u, "secret"))
	assert.False(t, CheckPassword(u, "other"))
}

func TestRegister_Validation(t *testing.T) {
	s := newMemoryService(t)

	_, err := s.Register(context.Background(), " ", "secret")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Register(context.Background(), "alice", "")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Register(context.Background(), "alice", strings.Repeat("x", 100))
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestRegister_Duplicate(t *testing.T) {
	s := newMemoryService(t)

	_, err := s.Register(context.Background(), "alice", "secret")
	require.NoError(t, err)
	_, err = s.Register(context.Background(), "alice", "secret")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_HashFailure(t *testing.T) {
	orig := hashPassword
	hashPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("entropy") }
	t.Cleanup(func() { hashPassword = orig })

	_, err := newMemoryService(t).Register(context.Background(), "alice", "secret")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestGetByUsername(t *testing.T) {
	s := newMemoryService(t)
	_, err := s.Register(context.Background(), "alice", "secret")
	require.NoError(t, err)

	u, err := s.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)

	_, err = s.GetByUsername(context.Background(), "bob")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate(t *testing.T) {
	s := newMemoryService(t)
	ctx := context.Background()
	_, err := s.Register(ctx, "alice", "secret")
	require.NoError(t, err)
	_, err = s.Register(ctx, "bob", "secret")
	require.NoError(t, err)

	u, err := s.Update(ctx, 1, "alice", "n3w")
	require.NoError(t, err)
	assert.True(t, CheckPassword(u, "n3w"))

	_, err = s.Update(ctx, 1, "bob", "n3w")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = s.Update(ctx, 99, "zed", "n3w")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Update(ctx, 1, "", "n3w")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestUpdate_PostgresRollsBackOnMissingUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m, err := repomanager.NewPostgresRepositoryManager(db)
	require.NoError(t, err)
	s := NewUserService(m, &config.Config{BcryptCost: bcrypt.MinCost})

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, username, password_hash").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}))
	mock.ExpectRollback()

	_, err = s.Update(context.Background(), 5, "alice", "pw")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
