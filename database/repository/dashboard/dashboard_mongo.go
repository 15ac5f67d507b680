package dashboardRepo

import (
	"context"
	"fmt"
	"time"

	"fieldbook/database"
	"fieldbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DashboardRepository exposes the read-only aggregation queries backing the
// reporting surface. It never mutates booking state.
type DashboardRepository interface {
	// RevenueBetween sums the price of each field booked (confirmed or
	// completed) with created_at in [from, to).
	RevenueBetween(ctx context.Context, from, to time.Time) (float64, error)

	// CountStartingBetween counts bookings with start_at in [from, to).
	CountStartingBetween(ctx context.Context, from, to time.Time) (int64, error)

	// CountActive counts pending and confirmed bookings.
	CountActive(ctx context.Context) (int64, error)

	// CountFields counts all bookable fields.
	CountFields(ctx context.Context) (int64, error)

	// Upcoming returns active bookings starting after now, soonest first,
	// with user and field display attributes joined in.
	Upcoming(ctx context.Context, now time.Time, limit int64) ([]models.UpcomingBooking, error)
}

// MongoDashboardRepo implements DashboardRepository over the bookings,
// fields and users collections.
type MongoDashboardRepo struct {
	bookingColl *mongo.Collection
	fieldColl   *mongo.Collection
}

// NewMongoDashboardRepo creates a new instance of DashboardRepository using MongoDB.
func NewMongoDashboardRepo() DashboardRepository {
	db := database.DB()
	return &MongoDashboardRepo{
		bookingColl: db.Collection("bookings"),
		fieldColl:   db.Collection("fields"),
	}
}

var revenueStatuses = bson.A{models.BookingStatusConfirmed, models.BookingStatusCompleted}

// RevenueBetween joins each qualifying booking to its field and sums prices.
func (r *MongoDashboardRepo) RevenueBetween(ctx context.Context, from, to time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status":     bson.M{"$in": revenueStatuses},
			"created_at": bson.M{"$gte": from, "$lt": to},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "fields",
			"localField":   "field_id",
			"foreignField": "id",
			"as":           "field",
		}}},
		bson.D{{Key: "$unwind", Value: "$field"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$field.price"},
		}}},
	}

	cursor, err := r.bookingColl.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("revenue aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode revenue aggregation: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// CountStartingBetween counts bookings whose start_at falls in [from, to).
func (r *MongoDashboardRepo) CountStartingBetween(ctx context.Context, from, to time.Time) (int64, error) {
	count, err := r.bookingColl.CountDocuments(ctx, bson.M{
		"start_at": bson.M{"$gte": from, "$lt": to},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings in range: %w", err)
	}
	return count, nil
}

// CountActive counts bookings currently occupying a field's timeline.
func (r *MongoDashboardRepo) CountActive(ctx context.Context) (int64, error) {
	count, err := r.bookingColl.CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": bson.A{models.BookingStatusPending, models.BookingStatusConfirmed}},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}
	return count, nil
}

// CountFields counts all fields in the facility directory.
func (r *MongoDashboardRepo) CountFields(ctx context.Context) (int64, error) {
	count, err := r.fieldColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count fields: %w", err)
	}
	return count, nil
}

// Upcoming lists active bookings starting after now, joined with user and
// field display attributes, soonest first.
func (r *MongoDashboardRepo) Upcoming(ctx context.Context, now time.Time, limit int64) ([]models.UpcomingBooking, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status":   bson.M{"$in": bson.A{models.BookingStatusPending, models.BookingStatusConfirmed}},
			"start_at": bson.M{"$gte": now},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "start_at", Value: 1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "fields",
			"localField":   "field_id",
			"foreignField": "id",
			"as":           "field",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$field", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "id",
			"as":           "user",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$project", Value: bson.M{
			"booking_id": "$id",
			"field_id":   "$field_id",
			"field_name": "$field.name",
			"user_id":    "$user_id",
			"user_name":  bson.M{"$concat": bson.A{"$user.first_name", " ", "$user.last_name"}},
			"start_at":   1,
			"end_at":     1,
			"status":     1,
		}}},
	}

	cursor, err := r.bookingColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("upcoming aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		BookingID string    `bson:"booking_id"`
		FieldID   string    `bson:"field_id"`
		FieldName string    `bson:"field_name"`
		UserID    string    `bson:"user_id"`
		UserName  string    `bson:"user_name"`
		StartAt   time.Time `bson:"start_at"`
		EndAt     time.Time `bson:"end_at"`
		Status    string    `bson:"status"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode upcoming bookings: %w", err)
	}

	out := make([]models.UpcomingBooking, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.UpcomingBooking{
			BookingID: row.BookingID,
			FieldID:   row.FieldID,
			FieldName: row.FieldName,
			UserID:    row.UserID,
			UserName:  row.UserName,
			StartAt:   row.StartAt,
			EndAt:     row.EndAt,
			Status:    row.Status,
		})
	}
	return out, nil
}
