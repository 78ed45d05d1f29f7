package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

type EducationRepository struct {
	col *mongo.Collection
}

func NewEducationRepository(db *mongo.Database) *EducationRepository {
	return &EducationRepository{col: db.Collection(ColEducation)}
}

func (r *EducationRepository) List(ctx context.Context) ([]entity.Education, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	return findMany[entity.Education](ctx, r.col, bson.M{}, opts, "education")
}

func (r *EducationRepository) Get(ctx context.Context, id string) (*entity.Education, error) {
	return getByID[entity.Education](ctx, r.col, id, "education")
}

func (r *EducationRepository) Create(ctx context.Context, e *entity.Education) error {
	e.CreatedAt, e.UpdatedAt = stamp()
	oid, err := insertOne(ctx, r.col, e, "education")
	if err != nil {
		return err
	}
	e.ID = oid
	return nil
}

func (r *EducationRepository) Update(ctx context.Context, id string, e *entity.Education) error {
	updated, err := updateByID[entity.Education](ctx, r.col, id, e, "education")
	if err != nil {
		return err
	}
	*e = *updated
	return nil
}

func (r *EducationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, "education")
}

var _ repository.EducationRepository = (*EducationRepository)(nil)
