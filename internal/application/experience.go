package application

import (
	"context"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
)

func (s *PortfolioService) ListExperience(ctx context.Context) ([]entity.Experience, error) {
	return s.Experience.List(ctx)
}

func (s *PortfolioService) GetExperience(ctx context.Context, id string) (*entity.Experience, error) {
	return s.Experience.Get(ctx, id)
}

func (s *PortfolioService) CreateExperience(ctx context.Context, e *entity.Experience) error {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return err
	}
	return s.Experience.Create(ctx, e)
}

func (s *PortfolioService) UpdateExperience(ctx context.Context, id string, e *entity.Experience) error {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return err
	}
	return s.Experience.Update(ctx, id, e)
}

func (s *PortfolioService) DeleteExperience(ctx context.Context, id string) error {
	return s.Experience.Delete(ctx, id)
}
