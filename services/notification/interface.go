package notification

import (
	"context"

	"fieldbook/models"
)

// Notifier receives booking lifecycle events. Delivery is asynchronous and
// best-effort; a failed enqueue never fails the booking operation itself.
type Notifier interface {
	BookingCreated(ctx context.Context, b *models.Booking) error
	BookingCancelled(ctx context.Context, b *models.Booking) error
}
