package application

import (
	"context"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

func (s *PortfolioService) ListSkills(ctx context.Context, f repo.SkillFilter) ([]entity.Skill, error) {
	return s.Skills.List(ctx, f)
}

func (s *PortfolioService) GetSkill(ctx context.Context, id string) (*entity.Skill, error) {
	return s.Skills.Get(ctx, id)
}

func (s *PortfolioService) CreateSkill(ctx context.Context, sk *entity.Skill) error {
	sk.Normalize()
	if err := sk.Validate(); err != nil {
		return err
	}
	return s.Skills.Create(ctx, sk)
}

func (s *PortfolioService) UpdateSkill(ctx context.Context, id string, sk *entity.Skill) error {
	sk.Normalize()
	if err := sk.Validate(); err != nil {
		return err
	}
	return s.Skills.Update(ctx, id, sk)
}

func (s *PortfolioService) DeleteSkill(ctx context.Context, id string) error {
	return s.Skills.Delete(ctx, id)
}
