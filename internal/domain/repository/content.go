package repository

import (
	"context"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
)

// Filters carry the optional list criteria per entity. A nil pointer or zero
// value means the field does not constrain the query.

type ProjectFilter struct {
	Featured *bool
	Category entity.ProjectCategory
	Limit    int64
}

type ResearchFilter struct {
	Featured *bool
	Venue    string
	Limit    int64
}

type AwardFilter struct {
	Featured *bool
	Category entity.AwardCategory
}

type SpeakingFilter struct {
	Featured *bool
	Limit    int64
}

type SkillFilter struct {
	Featured *bool
	Category entity.SkillCategory
}

// ProjectRepository persists portfolio projects, newest first.
type ProjectRepository interface {
	List(ctx context.Context, f ProjectFilter) ([]entity.Project, error)
	Get(ctx context.Context, id string) (*entity.Project, error)
	Create(ctx context.Context, p *entity.Project) error
	Update(ctx context.Context, id string, p *entity.Project) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ResearchRepository persists research entries, year descending.
type ResearchRepository interface {
	List(ctx context.Context, f ResearchFilter) ([]entity.Research, error)
	Get(ctx context.Context, id string) (*entity.Research, error)
	Create(ctx context.Context, r *entity.Research) error
	Update(ctx context.Context, id string, r *entity.Research) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ExperienceRepository persists work experience, start date descending.
type ExperienceRepository interface {
	List(ctx context.Context) ([]entity.Experience, error)
	Get(ctx context.Context, id string) (*entity.Experience, error)
	Create(ctx context.Context, e *entity.Experience) error
	Update(ctx context.Context, id string, e *entity.Experience) error
	Delete(ctx context.Context, id string) error
}

// EducationRepository persists education entries, start date descending.
type EducationRepository interface {
	List(ctx context.Context) ([]entity.Education, error)
	Get(ctx context.Context, id string) (*entity.Education, error)
	Create(ctx context.Context, e *entity.Education) error
	Update(ctx context.Context, id string, e *entity.Education) error
	Delete(ctx context.Context, id string) error
}

// AwardRepository persists awards, year descending.
type AwardRepository interface {
	List(ctx context.Context, f AwardFilter) ([]entity.Award, error)
	Get(ctx context.Context, id string) (*entity.Award, error)
	Create(ctx context.Context, a *entity.Award) error
	Update(ctx context.Context, id string, a *entity.Award) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// SpeakingRepository persists speaking engagements, date descending.
type SpeakingRepository interface {
	List(ctx context.Context, f SpeakingFilter) ([]entity.Speaking, error)
	Get(ctx context.Context, id string) (*entity.Speaking, error)
	Create(ctx context.Context, s *entity.Speaking) error
	Update(ctx context.Context, id string, s *entity.Speaking) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// SkillRepository persists skills, level descending.
type SkillRepository interface {
	List(ctx context.Context, f SkillFilter) ([]entity.Skill, error)
	Get(ctx context.Context, id string) (*entity.Skill, error)
	Create(ctx context.Context, s *entity.Skill) error
	Update(ctx context.Context, id string, s *entity.Skill) error
	Delete(ctx context.Context, id string) error
}
