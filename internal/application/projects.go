package application

import (
	"context"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

// DefaultListLimit caps list results when the caller does not ask for a count.
const DefaultListLimit = 10

func (s *PortfolioService) ListProjects(ctx context.Context, f repo.ProjectFilter) ([]entity.Project, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	return s.Projects.List(ctx, f)
}

func (s *PortfolioService) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	return s.Projects.Get(ctx, id)
}

func (s *PortfolioService) CreateProject(ctx context.Context, p *entity.Project) error {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	return s.Projects.Create(ctx, p)
}

func (s *PortfolioService) UpdateProject(ctx context.Context, id string, p *entity.Project) error {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	return s.Projects.Update(ctx, id, p)
}

func (s *PortfolioService) DeleteProject(ctx context.Context, id string) error {
	return s.Projects.Delete(ctx, id)
}
