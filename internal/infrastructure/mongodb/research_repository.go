package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

type ResearchRepository struct {
	col *mongo.Collection
}

func NewResearchRepository(db *mongo.Database) *ResearchRepository {
	return &ResearchRepository{col: db.Collection(ColResearch)}
}

func (r *ResearchRepository) List(ctx context.Context, f repository.ResearchFilter) ([]entity.Research, error) {
	filter := bson.M{}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	if f.Venue != "" {
		filter["venue"] = f.Venue
	}
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return findMany[entity.Research](ctx, r.col, filter, opts, "research")
}

func (r *ResearchRepository) Get(ctx context.Context, id string) (*entity.Research, error) {
	return getByID[entity.Research](ctx, r.col, id, "research")
}

func (r *ResearchRepository) Create(ctx context.Context, res *entity.Research) error {
	res.CreatedAt, res.UpdatedAt = stamp()
	oid, err := insertOne(ctx, r.col, res, "research")
	if err != nil {
		return err
	}
	res.ID = oid
	return nil
}

func (r *ResearchRepository) Update(ctx context.Context, id string, res *entity.Research) error {
	updated, err := updateByID[entity.Research](ctx, r.col, id, res, "research")
	if err != nil {
		return err
	}
	*res = *updated
	return nil
}

func (r *ResearchRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, "research")
}

func (r *ResearchRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.col, "research")
}

var _ repository.ResearchRepository = (*ResearchRepository)(nil)
