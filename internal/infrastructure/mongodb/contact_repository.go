package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
)

type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection(ColMessages)}
}

func (r *ContactRepository) List(ctx context.Context, f repository.MessageFilter) ([]entity.ContactMessage, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return findMany[entity.ContactMessage](ctx, r.col, filter, opts, "contact message")
}

func (r *ContactRepository) Get(ctx context.Context, id string) (*entity.ContactMessage, error) {
	return getByID[entity.ContactMessage](ctx, r.col, id, "contact message")
}

func (r *ContactRepository) Create(ctx context.Context, m *entity.ContactMessage) error {
	m.CreatedAt, m.UpdatedAt = stamp()
	oid, err := insertOne(ctx, r.col, m, "contact message")
	if err != nil {
		return err
	}
	m.ID = oid
	return nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status entity.MessageStatus) (*entity.ContactMessage, error) {
	oid, err := parseID(id, "contact message")
	if err != nil {
		return nil, err
	}
	var updated entity.ContactMessage
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("contact message not found")
	}
	if err != nil {
		return nil, apperr.Store(err, "failed to update contact message")
	}
	return &updated, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, "contact message")
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
