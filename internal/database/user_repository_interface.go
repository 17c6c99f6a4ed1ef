package database

import (
	"context"

	"github.com/thenoetrevino/lista/internal/models"
)

// UserAuthenticator defines the registration and login operations.
type UserAuthenticator interface {
	RegisterUser(ctx context.Context, name, email, password string) (*models.User, error)
	LoginUser(ctx context.Context, email, password string) (*models.User, error)
}

// UserRepository combines all user-related operations.
type UserRepository interface {
	UserAuthenticator
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	DeleteUser(ctx context.Context, id int) (int64, error)
}
