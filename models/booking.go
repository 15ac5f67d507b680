package models

import "time"

// Booking statuses. Pending and confirmed bookings occupy the field's
// timeline; cancelled and completed are terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents one reservation of a field by a user for the
// half-open interval [StartAt, EndAt).
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	FieldID   string    `bson:"field_id" json:"fieldId"`
	StartAt   time.Time `bson:"start_at" json:"startAt"`
	EndAt     time.Time `bson:"end_at" json:"endAt"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`

	// Attached on reads for API convenience; never persisted with the booking.
	User  *User  `bson:"-" json:"user,omitempty"`
	Field *Field `bson:"-" json:"field,omitempty"`
}

// IsActive reports whether the booking occupies its field's timeline.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// IsTerminal reports whether the booking permits no further transitions.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCancelled || b.Status == BookingStatusCompleted
}

// ValidBookingStatus reports whether s is one of the known statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}
