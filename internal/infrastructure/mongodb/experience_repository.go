package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

type ExperienceRepository struct {
	col *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) *ExperienceRepository {
	return &ExperienceRepository{col: db.Collection(ColExperience)}
}

func (r *ExperienceRepository) List(ctx context.Context) ([]entity.Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	return findMany[entity.Experience](ctx, r.col, bson.M{}, opts, "experience")
}

func (r *ExperienceRepository) Get(ctx context.Context, id string) (*entity.Experience, error) {
	return getByID[entity.Experience](ctx, r.col, id, "experience")
}

func (r *ExperienceRepository) Create(ctx context.Context, e *entity.Experience) error {
	e.CreatedAt, e.UpdatedAt = stamp()
	oid, err := insertOne(ctx, r.col, e, "experience")
	if err != nil {
		return err
	}
	e.ID = oid
	return nil
}

func (r *ExperienceRepository) Update(ctx context.Context, id string, e *entity.Experience) error {
	updated, err := updateByID[entity.Experience](ctx, r.col, id, e, "experience")
	if err != nil {
		return err
	}
	*e = *updated
	return nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, "experience")
}

var _ repository.ExperienceRepository = (*ExperienceRepository)(nil)
