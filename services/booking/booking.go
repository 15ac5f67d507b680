package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "fieldbook/database/repository/booking"
	fieldRepo "fieldbook/database/repository/field"
	userRepo "fieldbook/database/repository/user"
	"fieldbook/models"
	"fieldbook/services/notification"
	"fieldbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	UserRepo  userRepo.UserRepository
	FieldRepo fieldRepo.FieldRepository
	Notifier  notification.Notifier

	// Now is the clock; overridable in tests. Defaults to time.Now UTC.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Create validates and persists a new booking.
//
// Step order matters for error reporting: referenced user, referenced
// field, interval shape, past-date check, then overlap. The final persist
// runs through the repository's guarded insert so a concurrent create for
// the same field cannot slip past the read-side overlap check.
func (s *DefaultBookingService) Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	user, err := s.UserRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "User", ID: in.UserID}
	}

	field, err := s.FieldRepo.GetByID(ctx, in.FieldID)
	if err != nil {
		return nil, err
	}
	if field == nil {
		return nil, &NotFoundError{Resource: "Field", ID: in.FieldID}
	}

	if !in.EndAt.After(in.StartAt) {
		return nil, &InvalidIntervalError{}
	}
	if in.StartAt.Before(s.now()) {
		return nil, &PastDateError{}
	}

	status := in.Status
	if status == "" {
		status = models.BookingStatusPending
	}
	if !models.ValidBookingStatus(status) {
		return nil, &InvalidStatusError{Status: status}
	}

	active, err := s.Repo.ActiveByField(ctx, in.FieldID, "")
	if err != nil {
		return nil, err
	}
	if conflict, err := FindConflict(active, in.StartAt, in.EndAt, ""); err != nil {
		return nil, err
	} else if conflict != nil {
		return nil, &ConflictError{FieldID: in.FieldID, ConflictingID: conflict.ID}
	}

	nowTS := s.now()
	b := &models.Booking{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		FieldID:   in.FieldID,
		StartAt:   in.StartAt,
		EndAt:     in.EndAt,
		Status:    status,
		CreatedAt: nowTS,
		UpdatedAt: nowTS,
	}

	if err := s.Repo.InsertIfFree(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, &ConflictError{FieldID: in.FieldID}
		}
		return nil, err
	}

	b.User = user
	b.Field = field

	if s.Notifier != nil {
		if err := s.Notifier.BookingCreated(ctx, b); err != nil {
			logger.Warn("Failed to enqueue booking-created notification",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	logger.Info("Booking created",
		zap.String("bookingID", b.ID),
		zap.String("fieldID", b.FieldID),
		zap.String("status", b.Status))
	return b, nil
}

// Update applies a partial update to an existing booking, re-resolving any
// changed references and re-running overlap validation with the booking's
// own record excluded from the conflict set.
func (s *DefaultBookingService) Update(ctx context.Context, id string, in UpdateBookingInput) (*models.Booking, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Resource: "Booking", ID: id}
	}

	if in.UserID != "" && in.UserID != existing.UserID {
		user, err := s.UserRepo.GetByID(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, &NotFoundError{Resource: "User", ID: in.UserID}
		}
		existing.UserID = in.UserID
	}

	if in.FieldID != "" && in.FieldID != existing.FieldID {
		field, err := s.FieldRepo.GetByID(ctx, in.FieldID)
		if err != nil {
			return nil, err
		}
		if field == nil {
			return nil, &NotFoundError{Resource: "Field", ID: in.FieldID}
		}
		existing.FieldID = in.FieldID
	}

	if in.Status != "" {
		if !models.ValidBookingStatus(in.Status) {
			return nil, &InvalidStatusError{Status: in.Status}
		}
		existing.Status = in.Status
	}

	// Unspecified bounds inherit the prior values.
	if in.StartAt != nil {
		existing.StartAt = *in.StartAt
	}
	if in.EndAt != nil {
		existing.EndAt = *in.EndAt
	}

	if in.StartAt != nil || in.EndAt != nil || in.FieldID != "" {
		if !existing.EndAt.After(existing.StartAt) {
			return nil, &InvalidIntervalError{}
		}

		active, err := s.Repo.ActiveByField(ctx, existing.FieldID, existing.ID)
		if err != nil {
			return nil, err
		}
		if conflict, err := FindConflict(active, existing.StartAt, existing.EndAt, existing.ID); err != nil {
			return nil, err
		} else if conflict != nil {
			return nil, &ConflictError{FieldID: existing.FieldID, ConflictingID: conflict.ID}
		}
	}

	existing.UpdatedAt = s.now()

	if existing.IsActive() {
		if err := s.Repo.ReplaceIfFree(ctx, existing); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return nil, &ConflictError{FieldID: existing.FieldID}
			}
			return nil, err
		}
	} else {
		// Cancelled/completed records no longer occupy the timeline, so a
		// plain replace is enough.
		if err := s.Repo.Replace(ctx, existing); err != nil {
			return nil, err
		}
	}

	s.attach(ctx, existing)
	return existing, nil
}
