package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

type SpeakingRepository struct {
	col *mongo.Collection
}

func NewSpeakingRepository(db *mongo.Database) *SpeakingRepository {
	return &SpeakingRepository{col: db.Collection(ColSpeaking)}
}

func (r *SpeakingRepository) List(ctx context.Context, f repository.SpeakingFilter) ([]entity.Speaking, error) {
	filter := bson.M{}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return findMany[entity.Speaking](ctx, r.col, filter, opts, "speaking engagement")
}

func (r *SpeakingRepository) Get(ctx context.Context, id string) (*entity.Speaking, error) {
	return getByID[entity.Speaking](ctx, r.col, id, "speaking engagement")
}

func (r *SpeakingRepository) Create(ctx context.Context, s *entity.Speaking) error {
	s.CreatedAt, s.UpdatedAt = stamp()
	oid, err := insertOne(ctx, r.col, s, "speaking engagement")
	if err != nil {
		return err
	}
	s.ID = oid
	return nil
}

func (r *SpeakingRepository) Update(ctx context.Context, id string, s *entity.Speaking) error {
	updated, err := updateByID[entity.Speaking](ctx, r.col, id, s, "speaking engagement")
	if err != nil {
		return err
	}
	*s = *updated
	return nil
}

func (r *SpeakingRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, "speaking engagement")
}

func (r *SpeakingRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.col, "speaking engagements")
}

var _ repository.SpeakingRepository = (*SpeakingRepository)(nil)
