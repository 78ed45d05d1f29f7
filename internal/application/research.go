package application

import (
	"context"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

func (s *PortfolioService) ListResearch(ctx context.Context, f repo.ResearchFilter) ([]entity.Research, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	return s.Research.List(ctx, f)
}

func (s *PortfolioService) GetResearch(ctx context.Context, id string) (*entity.Research, error) {
	return s.Research.Get(ctx, id)
}

func (s *PortfolioService) CreateResearch(ctx context.Context, r *entity.Research) error {
	r.Normalize()
	if err := r.Validate(); err != nil {
		return err
	}
	return s.Research.Create(ctx, r)
}

func (s *PortfolioService) UpdateResearch(ctx context.Context, id string, r *entity.Research) error {
	r.Normalize()
	if err := r.Validate(); err != nil {
		return err
	}
	return s.Research.Update(ctx, id, r)
}

func (s *PortfolioService) DeleteResearch(ctx context.Context, id string) error {
	return s.Research.Delete(ctx, id)
}
