package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

type AwardRepository struct {
	col *mongo.Collection
}

func NewAwardRepository(db *mongo.Database) *AwardRepository {
	return &AwardRepository{col: db.Collection(ColAwards)}
}

func (r *AwardRepository) List(ctx context.Context, f repository.AwardFilter) ([]entity.Award, error) {
	filter := bson.M{}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}})
	return findMany[entity.Award](ctx, r.col, filter, opts, "award")
}

func (r *AwardRepository) Get(ctx context.Context, id string) (*entity.Award, error) {
	return getByID[entity.Award](ctx, r.col, id, "award")
}

func (r *AwardRepository) Create(ctx context.Context, a *entity.Award) error {
	a.CreatedAt, a.UpdatedAt = stamp()
	oid, err := insertOne(ctx, r.col, a, "award")
	if err != nil {
		return err
	}
	a.ID = oid
	return nil
}

func (r *AwardRepository) Update(ctx context.Context, id string, a *entity.Award) error {
	updated, err := updateByID[entity.Award](ctx, r.col, id, a, "award")
	if err != nil {
		return err
	}
	*a = *updated
	return nil
}

func (r *AwardRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, "award")
}

func (r *AwardRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.col, "awards")
}

var _ repository.AwardRepository = (*AwardRepository)(nil)
