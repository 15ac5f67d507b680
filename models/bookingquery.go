package models

import "time"

// Sort directions for list queries.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Booking fields that list queries may sort by.
var BookingSortFields = map[string]struct{}{
	"id":         {},
	"start_at":   {},
	"end_at":     {},
	"status":     {},
	"created_at": {},
	"updated_at": {},
}

// BookingQuery enumerates every supported filter for listing bookings.
// Zero values mean "not filtered"; StartDate/EndDate are nil when absent.
type BookingQuery struct {
	Page            int
	Limit           int
	SortedBy        string
	SortedDirection string

	UserID    string
	FieldID   string
	Status    string
	StartDate *time.Time // bookings starting at or after this instant
	EndDate   *time.Time // bookings ending at or before this instant
}

// DefaultBookingQuery returns the query used when the caller supplies nothing:
// first page of ten, newest first.
func DefaultBookingQuery() BookingQuery {
	return BookingQuery{
		Page:            1,
		Limit:           10,
		SortedBy:        "created_at",
		SortedDirection: SortDesc,
	}
}

// Normalize clamps pagination to sane bounds and falls back to the default
// sort key/direction when the requested ones are unknown.
func (q *BookingQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if _, ok := BookingSortFields[q.SortedBy]; !ok {
		q.SortedBy = "created_at"
	}
	if q.SortedDirection != SortAsc && q.SortedDirection != SortDesc {
		q.SortedDirection = SortDesc
	}
}
