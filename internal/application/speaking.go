package application

import (
	"context"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

func (s *PortfolioService) ListSpeaking(ctx context.Context, f repo.SpeakingFilter) ([]entity.Speaking, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	return s.Speaking.List(ctx, f)
}

func (s *PortfolioService) GetSpeaking(ctx context.Context, id string) (*entity.Speaking, error) {
	return s.Speaking.Get(ctx, id)
}

func (s *PortfolioService) CreateSpeaking(ctx context.Context, sp *entity.Speaking) error {
	sp.Normalize()
	if err := sp.Validate(); err != nil {
		return err
	}
	return s.Speaking.Create(ctx, sp)
}

func (s *PortfolioService) UpdateSpeaking(ctx context.Context, id string, sp *entity.Speaking) error {
	sp.Normalize()
	if err := sp.Validate(); err != nil {
		return err
	}
	return s.Speaking.Update(ctx, id, sp)
}

func (s *PortfolioService) DeleteSpeaking(ctx context.Context, id string) error {
	return s.Speaking.Delete(ctx, id)
}
