package userRepo

import (
	"context"

	"fieldbook/models"
)

// UserRepository defines the interface for user-directory data access.
type UserRepository interface {
	// GetByID returns the user, or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail returns the user, or (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	Insert(ctx context.Context, u *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error
}
