package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(ColProjects)}
}

func (r *ProjectRepository) List(ctx context.Context, f repository.ProjectFilter) ([]entity.Project, error) {
	filter := bson.M{}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return findMany[entity.Project](ctx, r.col, filter, opts, "project")
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (*entity.Project, error) {
	return getByID[entity.Project](ctx, r.col, id, "project")
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	p.CreatedAt, p.UpdatedAt = stamp()
	oid, err := insertOne(ctx, r.col, p, "project")
	if err != nil {
		return err
	}
	p.ID = oid
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, p *entity.Project) error {
	updated, err := updateByID[entity.Project](ctx, r.col, id, p, "project")
	if err != nil {
		return err
	}
	*p = *updated
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, "project")
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.col, "projects")
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
