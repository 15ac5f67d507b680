package booking

import (
	"context"

	"fieldbook/models"
	"fieldbook/utils"

	"go.uber.org/zap"
)

// Get returns a single booking with its user and field attached.
func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "Booking", ID: id}
	}
	s.attach(ctx, b)
	return b, nil
}

// List returns bookings matching the query with user/field references
// attached, each directory entry fetched at most once per call.
func (s *DefaultBookingService) List(ctx context.Context, q models.BookingQuery) ([]models.Booking, error) {
	bookings, err := s.Repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	users := map[string]*models.User{}
	fields := map[string]*models.Field{}
	for i := range bookings {
		b := &bookings[i]
		u, ok := users[b.UserID]
		if !ok {
			u, _ = s.UserRepo.GetByID(ctx, b.UserID)
			users[b.UserID] = u
		}
		f, ok := fields[b.FieldID]
		if !ok {
			f, _ = s.FieldRepo.GetByID(ctx, b.FieldID)
			fields[b.FieldID] = f
		}
		b.User = u
		b.Field = f
	}
	return bookings, nil
}

// Cancel transitions an active booking to cancelled. Terminal bookings
// (cancelled or completed) reject the transition.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	logger := utils.GetLogger()

	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "Booking", ID: id}
	}
	if b.IsTerminal() {
		return nil, &InvalidTransitionError{ID: id, Status: b.Status}
	}

	cancelledAt := s.now()
	if err := s.Repo.SetStatus(ctx, id, models.BookingStatusCancelled, cancelledAt); err != nil {
		return nil, err
	}
	b.Status = models.BookingStatusCancelled
	b.UpdatedAt = cancelledAt

	if s.Notifier != nil {
		if err := s.Notifier.BookingCancelled(ctx, b); err != nil {
			logger.Warn("Failed to enqueue booking-cancelled notification",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	logger.Info("Booking cancelled", zap.String("bookingID", id))
	s.attach(ctx, b)
	return b, nil
}

// Remove hard-deletes the booking regardless of its status.
func (s *DefaultBookingService) Remove(ctx context.Context, id string) error {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return &NotFoundError{Resource: "Booking", ID: id}
	}
	return s.Repo.Delete(ctx, id)
}

// attach fills in the user and field references for API responses. Lookup
// failures leave the reference nil; the booking itself is authoritative.
func (s *DefaultBookingService) attach(ctx context.Context, b *models.Booking) {
	if u, err := s.UserRepo.GetByID(ctx, b.UserID); err == nil {
		b.User = u
	}
	if f, err := s.FieldRepo.GetByID(ctx, b.FieldID); err == nil {
		b.Field = f
	}
}
