package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	ColProjects   = "projects"
	ColResearch   = "research"
	ColExperience = "experience"
	ColEducation  = "education"
	ColAwards     = "awards"
	ColSpeaking   = "speaking"
	ColSkills     = "skills"
	ColMessages   = "contact_messages"
	ColAnalytics  = "analytics"
	ColUsers      = "users"
)

// Connect opens a client, verifies connectivity, and returns the database
// handle. Callers own the returned client and must Disconnect it on shutdown.
func Connect(ctx context.Context, uri, dbName string, timeout time.Duration) (*mongo.Client, *mongo.Database, error) {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(cctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, client.Database(dbName), nil
}

// EnsureIndexes creates the uniqueness constraints the data model relies on:
// one user per email, one analytics record per (page, date).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(ColUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(ColAnalytics).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "page", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
