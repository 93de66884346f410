// Package services contains server-side business logic. This file implements
// UserService, which creates, looks up and updates accounts and keeps only
// bcrypt hashes of their passwords.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophaccount/internal/common"
	"github.com/dmitrijs2005/gophaccount/internal/dbx"
	"github.com/dmitrijs2005/gophaccount/internal/server/config"
	"github.com/dmitrijs2005/gophaccount/internal/server/models"
	"github.com/dmitrijs2005/gophaccount/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// hashPassword is a test seam for bcrypt.GenerateFromPassword.
var hashPassword = bcrypt.GenerateFromPassword

// UserService provides account operations:
// - Register: create users
// - GetByUsername: look a user up
// - Update: replace username and password of an existing user
type UserService struct {
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &UserService{repomanager: m, bcryptCost: cost}
}

// Register creates a user. Empty fields yield common.ErrorValidation, a
// taken username common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := s.prepare(username, password)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.repomanager.Conn())
	u, err := repo.Create(ctx, &models.User{UserName: username, PasswordHash: hash})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// GetByUsername returns the user or common.ErrorNotFound.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	repo := s.repomanager.Users(s.repomanager.Conn())
	u, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	return u, nil
}

// Update replaces username and password of user id inside one transaction.
// Absent users yield common.ErrorNotFound; renaming onto another user's
// name yields common.ErrorAlreadyExists.
func (s *UserService) Update(ctx context.Context, id int64, username, password string) (*models.User, error) {
	hash, err := s.prepare(username, password)
	if err != nil {
		return nil, err
	}

	var updated *models.User
	err = s.repomanager.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if _, err := repo.GetByID(ctx, id); err != nil {
			return err
		}
		u, err := repo.Update(ctx, &models.User{ID: id, UserName: username, PasswordHash: hash})
		if err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return updated, nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(u *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) == nil
}

func (s *UserService) prepare(username, password string) ([]byte, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}

	hash, err := hashPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password is too long", common.ErrorValidation)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return hash, nil
}
