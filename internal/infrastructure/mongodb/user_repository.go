package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(ColUsers)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	u.CreatedAt, u.UpdatedAt = stamp()
	oid, err := insertOne(ctx, r.col, u, "user")
	if err != nil {
		return err
	}
	u.ID = oid
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return getByID[entity.User](ctx, r.col, id, "user")
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, apperr.Store(err, "failed to fetch user")
	}
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
