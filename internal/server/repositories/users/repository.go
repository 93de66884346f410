package users

import (
	"context"

	"github.com/dmitrijs2005/gophaccount/internal/server/models"
)

// Repository stores users. Lookups of absent users return
// common.ErrorNotFound; username collisions return common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}
