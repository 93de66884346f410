package client

import (
	"context"

	"github.com/dmitrijs2005/gophaccount/internal/client/models"
)

// Client is the transport-agnostic contract of the backend user service.
type Client interface {
	// RegisterUser creates a user. Any 2xx is success.
	RegisterUser(ctx context.Context, creds models.Credentials) error
	// GetUser looks a user up by username.
	GetUser(ctx context.Context, username string) (*models.User, error)
	// UpdateUser replaces username and password of user id. Only 200 is success.
	UpdateUser(ctx context.Context, id int64, creds models.Credentials) error
	Close() error
}
