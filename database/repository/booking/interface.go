package bookingRepo

import (
	"context"
	"time"

	"fieldbook/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	// Insert persists a new booking without any conflict guard.
	Insert(ctx context.Context, b *models.Booking) error

	// InsertIfFree persists a new booking inside a transaction that
	// re-checks the field's timeline; returns ErrSlotTaken when an active
	// booking overlaps [b.StartAt, b.EndAt).
	InsertIfFree(ctx context.Context, b *models.Booking) error

	// GetByID returns the booking, or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// List returns bookings matching the query, sorted and paginated.
	List(ctx context.Context, q models.BookingQuery) ([]models.Booking, error)

	// ActiveByField returns all pending/confirmed bookings for a field,
	// excluding excludeID when non-empty.
	ActiveByField(ctx context.Context, fieldID, excludeID string) ([]models.Booking, error)

	// Replace overwrites a booking document by ID.
	Replace(ctx context.Context, b *models.Booking) error

	// ReplaceIfFree overwrites a booking inside a transaction that re-checks
	// the target field's timeline (the booking itself excluded); returns
	// ErrSlotTaken on overlap.
	ReplaceIfFree(ctx context.Context, b *models.Booking) error

	// SetStatus updates a booking's status, stamping updated_at with at.
	SetStatus(ctx context.Context, id, status string, at time.Time) error

	// Delete removes the booking record entirely.
	Delete(ctx context.Context, id string) error

	// CompleteExpired promotes every active booking whose end time is before
	// now to completed, returning the number of bookings changed.
	CompleteExpired(ctx context.Context, now time.Time) (int64, error)
}
