package booking

import (
	"context"
	"time"

	"fieldbook/models"
)

// CreateBookingInput carries everything needed to create a booking. Status
// is optional and defaults to pending.
type CreateBookingInput struct {
	UserID  string    `json:"userId" binding:"required"`
	FieldID string    `json:"fieldId" binding:"required"`
	StartAt time.Time `json:"startAt" binding:"required"`
	EndAt   time.Time `json:"endAt" binding:"required"`
	Status  string    `json:"status"`
}

// UpdateBookingInput carries a partial update; zero-valued fields are left
// unchanged, and unspecified interval bounds inherit the prior values.
type UpdateBookingInput struct {
	UserID  string     `json:"userId"`
	FieldID string     `json:"fieldId"`
	StartAt *time.Time `json:"startAt"`
	EndAt   *time.Time `json:"endAt"`
	Status  string     `json:"status"`
}

// BookingService orchestrates the booking lifecycle: validation against the
// identity and facility directories, overlap resolution, persistence, and
// status transitions.
type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	Update(ctx context.Context, id string, in UpdateBookingInput) (*models.Booking, error)
	Cancel(ctx context.Context, id string) (*models.Booking, error)
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, q models.BookingQuery) ([]models.Booking, error)
}
