package bookingRepo

import (
	"context"
	"fmt"

	"fieldbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertIfFree inserts the booking inside a transaction that re-checks the
// field's timeline. The service layer validates overlap before calling, but
// two concurrent creates for the same field can both pass that read; the
// session-scoped re-check makes the decide-then-write step atomic.
func (r *MongoBookingRepo) InsertIfFree(ctx context.Context, b *models.Booking) error {
	return r.withGuard(ctx, b, "", func(sc mongo.SessionContext) error {
		if _, err := r.coll.InsertOne(sc, b); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
}

// ReplaceIfFree overwrites the booking inside a transaction that re-checks
// the target field's timeline, with the booking itself excluded from the
// conflict set.
func (r *MongoBookingRepo) ReplaceIfFree(ctx context.Context, b *models.Booking) error {
	return r.withGuard(ctx, b, b.ID, func(sc mongo.SessionContext) error {
		res, err := r.coll.ReplaceOne(sc, bson.M{"id": b.ID}, b)
		if err != nil {
			return fmt.Errorf("replace booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking %s not found for update", b.ID)
		}
		return nil
	})
}

// withGuard runs write inside a Mongo session transaction, preceded by an
// overlap count on the booking's field. Returns ErrSlotTaken when the count
// is non-zero.
func (r *MongoBookingRepo) withGuard(ctx context.Context, b *models.Booking, excludeID string, write func(sc mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(b.FieldID, b.StartAt, b.EndAt, excludeID))
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}
		return write(sc)
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
