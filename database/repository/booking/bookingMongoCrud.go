package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"fieldbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert persists a new booking document.
func (r *MongoBookingRepo) Insert(ctx context.Context, b *models.Booking) error {
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to insert booking %s: %w", b.ID, err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when
// no booking exists with that ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// Replace overwrites the booking document identified by b.ID.
func (r *MongoBookingRepo) Replace(ctx context.Context, b *models.Booking) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": b.ID}, b)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", b.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found for update", b.ID)
	}
	return nil
}

// SetStatus updates a booking's status in place, stamping updated_at with
// the caller's clock so the stored and returned records agree.
func (r *MongoBookingRepo) SetStatus(ctx context.Context, id, status string, at time.Time) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": at}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set status for booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found for status update", id)
	}
	return nil
}

// Delete removes the booking record entirely, independent of its status.
func (r *MongoBookingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("booking %s not found for delete", id)
	}
	return nil
}
