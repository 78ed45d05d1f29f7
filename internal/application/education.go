package application

import (
	"context"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
)

func (s *PortfolioService) ListEducation(ctx context.Context) ([]entity.Education, error) {
	return s.Education.List(ctx)
}

func (s *PortfolioService) GetEducation(ctx context.Context, id string) (*entity.Education, error) {
	return s.Education.Get(ctx, id)
}

func (s *PortfolioService) CreateEducation(ctx context.Context, e *entity.Education) error {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return err
	}
	return s.Education.Create(ctx, e)
}

func (s *PortfolioService) UpdateEducation(ctx context.Context, id string, e *entity.Education) error {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return err
	}
	return s.Education.Update(ctx, id, e)
}

func (s *PortfolioService) DeleteEducation(ctx context.Context, id string) error {
	return s.Education.Delete(ctx, id)
}
