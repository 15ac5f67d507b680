package field

import (
	"context"
	"time"

	fieldRepo "fieldbook/database/repository/field"
	"fieldbook/models"
	"fieldbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateFieldInput carries everything needed to register a field.
type CreateFieldInput struct {
	ComplexID   string  `json:"complexId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required"`
	Surface     string  `json:"surface"`
	Price       float64 `json:"price" binding:"required"`
	Status      string  `json:"status"`
}

// UpdateFieldInput carries a partial field update; zero values are ignored.
type UpdateFieldInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Surface     string  `json:"surface"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}

// FieldService is the facility directory: the bookable units, their prices
// and availability status.
type FieldService interface {
	Create(ctx context.Context, in CreateFieldInput) (*models.Field, error)
	Get(ctx context.Context, id string) (*models.Field, error)
	List(ctx context.Context, q models.FieldQuery) ([]models.Field, error)
	Update(ctx context.Context, id string, in UpdateFieldInput) (*models.Field, error)
	Delete(ctx context.Context, id string) error
}

// DefaultFieldService is the production implementation of FieldService.
type DefaultFieldService struct {
	Repo fieldRepo.FieldRepository
}

// Create registers a new field, rejecting duplicate names within a complex.
func (s *DefaultFieldService) Create(ctx context.Context, in CreateFieldInput) (*models.Field, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByName(ctx, in.ComplexID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicateNameError{Name: in.Name, ComplexID: in.ComplexID}
	}

	status := in.Status
	if status == "" {
		status = models.FieldStatusAvailable
	}

	now := time.Now().UTC()
	f := &models.Field{
		ID:          uuid.New().String(),
		ComplexID:   in.ComplexID,
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		Surface:     in.Surface,
		Price:       in.Price,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Insert(ctx, f); err != nil {
		return nil, err
	}

	logger.Info("Field created", zap.String("fieldID", f.ID), zap.String("name", f.Name))
	return f, nil
}

// Get returns a single field.
func (s *DefaultFieldService) Get(ctx context.Context, id string) (*models.Field, error) {
	f, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, &NotFoundError{ID: id}
	}
	return f, nil
}

// List returns fields matching the query.
func (s *DefaultFieldService) List(ctx context.Context, q models.FieldQuery) ([]models.Field, error) {
	return s.Repo.List(ctx, q)
}

// Update applies non-zero fields of the input to the field document.
func (s *DefaultFieldService) Update(ctx context.Context, id string, in UpdateFieldInput) (*models.Field, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{ID: id}
	}

	updateFields := map[string]any{}
	if in.Name != "" && in.Name != existing.Name {
		dup, err := s.Repo.GetByName(ctx, existing.ComplexID, in.Name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, &DuplicateNameError{Name: in.Name, ComplexID: existing.ComplexID}
		}
		updateFields["name"] = in.Name
	}
	if in.Description != "" {
		updateFields["description"] = in.Description
	}
	if in.Type != "" {
		updateFields["type"] = in.Type
	}
	if in.Surface != "" {
		updateFields["surface"] = in.Surface
	}
	if in.Price != 0 {
		updateFields["price"] = in.Price
	}
	if in.Status != "" {
		updateFields["status"] = in.Status
	}

	if len(updateFields) > 0 {
		if err := s.Repo.UpdateFields(ctx, id, updateFields); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(ctx, id)
}

// Delete removes the field from the directory.
func (s *DefaultFieldService) Delete(ctx context.Context, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{ID: id}
	}
	return s.Repo.Delete(ctx, id)
}
