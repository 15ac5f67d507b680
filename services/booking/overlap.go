package booking

import (
	"time"

	"fieldbook/models"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Intervals that only touch at an
// endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FindConflict decides whether [start, end) may occupy a field's timeline
// given the field's current bookings. Only pending and confirmed bookings
// block; the booking identified by excludeID is skipped (its own prior
// record during an update). Returns the first conflicting booking, or nil
// when the interval is free.
//
// Pure read-only check; safe for concurrent use.
func FindConflict(candidates []models.Booking, start, end time.Time, excludeID string) (*models.Booking, error) {
	if !end.After(start) {
		return nil, &InvalidIntervalError{}
	}
	for i := range candidates {
		b := &candidates[i]
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if Overlaps(start, end, b.StartAt, b.EndAt) {
			return b, nil
		}
	}
	return nil, nil
}
