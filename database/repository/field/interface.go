package fieldRepo

import (
	"context"

	"fieldbook/models"
)

// FieldRepository defines the interface for field data access.
type FieldRepository interface {
	// GetByID returns the field, or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Field, error)

	// GetByName returns the field with the given name inside a complex,
	// or (nil, nil) when absent. Used for duplicate-name detection.
	GetByName(ctx context.Context, complexID, name string) (*models.Field, error)

	Insert(ctx context.Context, f *models.Field) error
	List(ctx context.Context, q models.FieldQuery) ([]models.Field, error)

	// UpdateFields applies a partial update to the field document.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error

	Delete(ctx context.Context, id string) error
}
