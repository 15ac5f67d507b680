package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"fieldbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// activeStatuses are the statuses that occupy a field's timeline.
var activeStatuses = []string{models.BookingStatusPending, models.BookingStatusConfirmed}

// overlapFilter builds the query matching every active booking on fieldID
// whose half-open interval overlaps [start, end): existing.start < end AND
// existing.end > start. Adjacent intervals sharing an endpoint do not match.
func overlapFilter(fieldID string, start, end time.Time, excludeID string) bson.M {
	filter := bson.M{
		"field_id": fieldID,
		"status":   bson.M{"$in": activeStatuses},
		"start_at": bson.M{"$lt": end},
		"end_at":   bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

// listFilter translates a BookingQuery's optional filters into a Mongo query.
func listFilter(q models.BookingQuery) bson.M {
	filter := bson.M{}
	if q.UserID != "" {
		filter["user_id"] = q.UserID
	}
	if q.FieldID != "" {
		filter["field_id"] = q.FieldID
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.StartDate != nil {
		filter["start_at"] = bson.M{"$gte": *q.StartDate}
	}
	if q.EndDate != nil {
		filter["end_at"] = bson.M{"$lte": *q.EndDate}
	}
	return filter
}

// List returns bookings matching the query, applying sort key, direction,
// and offset/limit pagination deterministically.
func (r *MongoBookingRepo) List(ctx context.Context, q models.BookingQuery) ([]models.Booking, error) {
	q.Normalize()

	direction := 1
	if q.SortedDirection == models.SortDesc {
		direction = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: q.SortedBy, Value: direction}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := r.coll.Find(ctx, listFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ActiveByField returns every pending or confirmed booking on the field,
// excluding excludeID when non-empty. Used as the overlap validator's
// candidate set.
func (r *MongoBookingRepo) ActiveByField(ctx context.Context, fieldID, excludeID string) ([]models.Booking, error) {
	filter := bson.M{
		"field_id": fieldID,
		"status":   bson.M{"$in": activeStatuses},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active bookings for field %s: %w", fieldID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode active bookings: %w", err)
	}
	return bookings, nil
}

// CompleteExpired bulk-promotes every active booking whose end time is
// before now to completed. Idempotent: a second run with the same now
// matches nothing.
func (r *MongoBookingRepo) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"status": bson.M{"$in": activeStatuses},
		"end_at": bson.M{"$lt": now},
	}
	update := bson.M{"$set": bson.M{"status": models.BookingStatusCompleted, "updated_at": now}}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete expired bookings: %w", err)
	}
	return res.ModifiedCount, nil
}
