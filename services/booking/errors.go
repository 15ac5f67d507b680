package booking

import "fmt"

// NotFoundError signals that a referenced user, field, or booking is absent.
type NotFoundError struct {
	Resource string // "User", "Field", "Booking"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// InvalidIntervalError signals that a booking's end time is not after its start.
type InvalidIntervalError struct{}

func (e *InvalidIntervalError) Error() string {
	return "end time must be after start time"
}

// PastDateError signals an attempt to create a booking starting in the past.
type PastDateError struct{}

func (e *PastDateError) Error() string {
	return "cannot book in the past"
}

// InvalidStatusError signals an unknown booking status value.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid booking status %q", e.Status)
}

// ConflictError signals that an active booking already occupies the
// requested slot on the field. ConflictingID carries the blocking booking
// when the in-memory check found it; it is empty when the conflict was
// detected by the storage-level guard at commit time.
type ConflictError struct {
	FieldID       string
	ConflictingID string
}

func (e *ConflictError) Error() string {
	return "this field is already booked for the selected time slot"
}

// InvalidTransitionError signals an attempt to cancel a booking that is
// already in a terminal status.
type InvalidTransitionError struct {
	ID     string
	Status string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot cancel a booking that is %s", e.Status)
}
