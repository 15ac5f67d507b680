package fieldRepo

import (
	"context"
	"fmt"
	"time"

	"fieldbook/database"
	"fieldbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFieldRepo implements FieldRepository using MongoDB.
type MongoFieldRepo struct {
	coll *mongo.Collection
}

// NewMongoFieldRepo creates a new instance of FieldRepository using MongoDB.
func NewMongoFieldRepo() FieldRepository {
	coll := database.DB().Collection("fields")
	repo := &MongoFieldRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoFieldRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "complex_id", Value: 1}, {Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a field by its unique ID. Returns (nil, nil) when absent.
func (r *MongoFieldRepo) GetByID(ctx context.Context, id string) (*models.Field, error) {
	var field models.Field
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&field); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch field with id %s: %w", id, err)
	}
	return &field, nil
}

// GetByName retrieves a field by name within a complex. Returns (nil, nil) when absent.
func (r *MongoFieldRepo) GetByName(ctx context.Context, complexID, name string) (*models.Field, error) {
	var field models.Field
	if err := r.coll.FindOne(ctx, bson.M{"complex_id": complexID, "name": name}).Decode(&field); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch field %s in complex %s: %w", name, complexID, err)
	}
	return &field, nil
}

// Insert persists a new field document.
func (r *MongoFieldRepo) Insert(ctx context.Context, f *models.Field) error {
	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("failed to insert field %s: %w", f.ID, err)
	}
	return nil
}

// List returns fields matching the query, sorted and paginated.
func (r *MongoFieldRepo) List(ctx context.Context, q models.FieldQuery) ([]models.Field, error) {
	q.Normalize()

	filter := bson.M{}
	if q.ComplexID != "" {
		filter["complex_id"] = q.ComplexID
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Type != "" {
		filter["type"] = q.Type
	}
	if q.Search != "" {
		pattern := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	direction := 1
	if q.SortedDirection == models.SortDesc {
		direction = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: q.SortedBy, Value: direction}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}
	defer cursor.Close(ctx)

	var fields []models.Field
	if err := cursor.All(ctx, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode fields: %w", err)
	}
	return fields, nil
}

// UpdateFields applies a partial update to the field document.
func (r *MongoFieldRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update field %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("field %s not found for update", id)
	}
	return nil
}

// Delete removes the field document.
func (r *MongoFieldRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete field %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("field %s not found for delete", id)
	}
	return nil
}
