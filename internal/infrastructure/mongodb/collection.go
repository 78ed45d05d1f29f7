package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akmalhzn/portfolio-api/pkg/apperr"
)

// Typed helpers shared by every repository. Each takes the target collection
// and a label ("project", "award", ...) used in caller-safe error messages.

// parseID converts a hex identifier. A malformed id cannot match any record,
// so it maps to not-found rather than a separate error shape.
func parseID(id, label string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.NotFound(label + " not found")
	}
	return oid, nil
}

func findMany[T any](ctx context.Context, col *mongo.Collection, filter bson.M, opts *options.FindOptions, label string) ([]T, error) {
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Store(err, "failed to fetch "+label+" list")
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Store(err, "failed to decode "+label+" list")
	}
	return out, nil
}

func getByID[T any](ctx context.Context, col *mongo.Collection, id, label string) (*T, error) {
	oid, err := parseID(id, label)
	if err != nil {
		return nil, err
	}
	var doc T
	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(label + " not found")
	}
	if err != nil {
		return nil, apperr.Store(err, "failed to fetch "+label)
	}
	return &doc, nil
}

func insertOne(ctx context.Context, col *mongo.Collection, doc any, label string) (primitive.ObjectID, error) {
	res, err := col.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, apperr.Conflict(label + " already exists")
	}
	if err != nil {
		return primitive.NilObjectID, apperr.Store(err, "failed to create "+label)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, apperr.Store(nil, "unexpected id type for "+label)
	}
	return oid, nil
}

// replaceDoc builds the $set document for a full replacement: every stored
// field except identity and createdAt, with updatedAt stamped.
func replaceDoc(v any) (bson.M, error) {
	b, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	delete(m, "_id")
	delete(m, "createdAt")
	m["updatedAt"] = time.Now().UTC()
	return m, nil
}

func updateByID[T any](ctx context.Context, col *mongo.Collection, id string, v any, label string) (*T, error) {
	oid, err := parseID(id, label)
	if err != nil {
		return nil, err
	}
	set, err := replaceDoc(v)
	if err != nil {
		return nil, apperr.Store(err, "failed to encode "+label)
	}
	var updated T
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(label + " not found")
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperr.Conflict(label + " already exists")
	}
	if err != nil {
		return nil, apperr.Store(err, "failed to update "+label)
	}
	return &updated, nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id, label string) error {
	oid, err := parseID(id, label)
	if err != nil {
		return err
	}
	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.Store(err, "failed to delete "+label)
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound(label + " not found")
	}
	return nil
}

func countAll(ctx context.Context, col *mongo.Collection, label string) (int64, error) {
	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperr.Store(err, "failed to count "+label)
	}
	return n, nil
}

// stamp sets creation timestamps; updatedAt mirrors createdAt on insert.
func stamp() (time.Time, time.Time) {
	now := time.Now().UTC()
	return now, now
}
