package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
)

type AnalyticsRepository struct {
	col *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{col: db.Collection(ColAnalytics)}
}

func (r *AnalyticsRepository) List(ctx context.Context, f repository.AnalyticsFilter) ([]entity.Analytics, error) {
	filter := bson.M{}
	if f.Page != "" {
		filter["page"] = f.Page
	}
	if f.Date != "" {
		filter["date"] = f.Date
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return findMany[entity.Analytics](ctx, r.col, filter, opts, "analytics")
}

func (r *AnalyticsRepository) ListPageSince(ctx context.Context, page, since string) ([]entity.Analytics, error) {
	filter := bson.M{"page": page, "date": bson.M{"$gte": since}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return findMany[entity.Analytics](ctx, r.col, filter, opts, "analytics")
}

// IncrementView bumps both counters for the (page, date) bucket in one atomic
// upsert, so concurrent hits cannot under-count or insert duplicates. The
// unique (page, date) index backs the upsert.
func (r *AnalyticsRepository) IncrementView(ctx context.Context, page, date string) (*entity.Analytics, error) {
	now := time.Now().UTC()
	var doc entity.Analytics
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"page": page, "date": date},
		bson.M{
			"$inc":         bson.M{"views": 1, "uniqueViews": 1},
			"$set":         bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, apperr.Store(err, "failed to track page view")
	}
	return &doc, nil
}

func (r *AnalyticsRepository) Totals(ctx context.Context) (repository.ViewTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			{Key: "uniqueViews", Value: bson.D{{Key: "$sum", Value: "$uniqueViews"}}},
			{Key: "pages", Value: bson.D{{Key: "$addToSet", Value: "$page"}}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return repository.ViewTotals{}, apperr.Store(err, "failed to aggregate analytics")
	}
	defer func() { _ = cur.Close(ctx) }()

	var rows []struct {
		Views       int64    `bson:"views"`
		UniqueViews int64    `bson:"uniqueViews"`
		Pages       []string `bson:"pages"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return repository.ViewTotals{}, apperr.Store(err, "failed to decode analytics totals")
	}
	if len(rows) == 0 {
		return repository.ViewTotals{Pages: []string{}}, nil
	}
	return repository.ViewTotals{
		Views:       rows[0].Views,
		UniqueViews: rows[0].UniqueViews,
		Pages:       rows[0].Pages,
	}, nil
}

var _ repository.AnalyticsRepository = (*AnalyticsRepository)(nil)
