package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

type SkillRepository struct {
	col *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{col: db.Collection(ColSkills)}
}

func (r *SkillRepository) List(ctx context.Context, f repository.SkillFilter) ([]entity.Skill, error) {
	filter := bson.M{}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	opts := options.Find().SetSort(bson.D{{Key: "level", Value: -1}})
	return findMany[entity.Skill](ctx, r.col, filter, opts, "skill")
}

func (r *SkillRepository) Get(ctx context.Context, id string) (*entity.Skill, error) {
	return getByID[entity.Skill](ctx, r.col, id, "skill")
}

func (r *SkillRepository) Create(ctx context.Context, s *entity.Skill) error {
	s.CreatedAt, s.UpdatedAt = stamp()
	oid, err := insertOne(ctx, r.col, s, "skill")
	if err != nil {
		return err
	}
	s.ID = oid
	return nil
}

func (r *SkillRepository) Update(ctx context.Context, id string, s *entity.Skill) error {
	updated, err := updateByID[entity.Skill](ctx, r.col, id, s, "skill")
	if err != nil {
		return err
	}
	*s = *updated
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, "skill")
}

var _ repository.SkillRepository = (*SkillRepository)(nil)
