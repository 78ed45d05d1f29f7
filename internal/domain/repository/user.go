package repository

import (
	"context"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
)

// UserRepository persists admin accounts. Create fails with a conflict error
// when the email is already registered.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
