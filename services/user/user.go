package user

import (
	"context"
	"fmt"
	"time"

	userRepo "fieldbook/database/repository/user"
	"fieldbook/models"
	"fieldbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotFoundError signals that the requested user is absent.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User with ID %s not found", e.ID)
}

// DuplicateEmailError signals a registration against an email already in use.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("user with email %s already exists", e.Email)
}

// CreateUserInput carries everything needed to register a user.
type CreateUserInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

// UserService is the identity directory: who exists, nothing more.
// Authentication lives elsewhere.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Create registers a new user.
func (s *DefaultUserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicateEmailError{Email: in.Email}
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Insert(ctx, u); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("User created", zap.String("userID", u.ID))
	return u, nil
}

// Get returns a single user.
func (s *DefaultUserService) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &NotFoundError{ID: id}
	}
	return u, nil
}

// GetAll returns every user in the directory.
func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// Delete removes the user from the directory.
func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{ID: id}
	}
	return s.Repo.Delete(ctx, id)
}
