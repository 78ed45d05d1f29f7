package repository

import (
	"context"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
)

type MessageFilter struct {
	Status entity.MessageStatus
	Limit  int64
}

// ContactRepository persists contact-form submissions, newest first.
type ContactRepository interface {
	List(ctx context.Context, f MessageFilter) ([]entity.ContactMessage, error)
	Get(ctx context.Context, id string) (*entity.ContactMessage, error)
	Create(ctx context.Context, m *entity.ContactMessage) error
	UpdateStatus(ctx context.Context, id string, status entity.MessageStatus) (*entity.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}
