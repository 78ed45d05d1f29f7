package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
	"github.com/akmalhzn/portfolio-api/pkg/mailer"
)

// Notifier publishes contact notifications for async delivery. Nil disables
// notifications; intake never fails because of them.
type Notifier interface {
	PublishJSON(ctx context.Context, body any) error
}

// DefaultMessageLimit caps contact listings when no count is requested.
const DefaultMessageLimit = 50

type ContactService struct {
	Repo     repo.ContactRepository
	Notifier Notifier
	Logger   *logrus.Logger
}

func NewContactService(r repo.ContactRepository, notifier Notifier, logger *logrus.Logger) *ContactService {
	return &ContactService{Repo: r, Notifier: notifier, Logger: logger}
}

// Submit stores an incoming message with status new and, when configured,
// queues an admin notification.
func (s *ContactService) Submit(ctx context.Context, m *entity.ContactMessage) error {
	m.Status = entity.MessageStatusNew
	m.Normalize()
	if err := m.Validate(); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return err
	}

	if s.Notifier != nil {
		job := mailer.ContactNotification{
			MessageID: m.ID.Hex(),
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			Message:   m.Message,
			SentAt:    m.CreatedAt.Format(time.RFC3339),
		}
		if err := s.Notifier.PublishJSON(ctx, job); err != nil {
			// Best effort: the message is stored either way.
			s.Logger.WithError(err).WithField("message_id", job.MessageID).Warn("contact notification publish failed")
		}
	}
	return nil
}

func (s *ContactService) List(ctx context.Context, f repo.MessageFilter) ([]entity.ContactMessage, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultMessageLimit
	}
	return s.Repo.List(ctx, f)
}

func (s *ContactService) Get(ctx context.Context, id string) (*entity.ContactMessage, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ContactService) UpdateStatus(ctx context.Context, id string, status entity.MessageStatus) (*entity.ContactMessage, error) {
	if !status.Valid() {
		return nil, apperr.Validation("status must be one of new, read, replied, archived")
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
