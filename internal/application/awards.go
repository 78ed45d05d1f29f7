package application

import (
	"context"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

func (s *PortfolioService) ListAwards(ctx context.Context, f repo.AwardFilter) ([]entity.Award, error) {
	return s.Awards.List(ctx, f)
}

func (s *PortfolioService) GetAward(ctx context.Context, id string) (*entity.Award, error) {
	return s.Awards.Get(ctx, id)
}

func (s *PortfolioService) CreateAward(ctx context.Context, a *entity.Award) error {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return err
	}
	return s.Awards.Create(ctx, a)
}

func (s *PortfolioService) UpdateAward(ctx context.Context, id string, a *entity.Award) error {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return err
	}
	return s.Awards.Update(ctx, id, a)
}

func (s *PortfolioService) DeleteAward(ctx context.Context, id string) error {
	return s.Awards.Delete(ctx, id)
}
