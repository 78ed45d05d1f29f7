package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

// PortfolioService owns the content collections and the dashboard stats.
// Resolvers and handlers are thin adapters over it; nothing transport-specific
// lives here.
type PortfolioService struct {
	Projects   repo.ProjectRepository
	Research   repo.ResearchRepository
	Experience repo.ExperienceRepository
	Education  repo.EducationRepository
	Awards     repo.AwardRepository
	Speaking   repo.SpeakingRepository
	Skills     repo.SkillRepository
	Analytics  repo.AnalyticsRepository
	Logger     *logrus.Logger
}

func NewPortfolioService(
	projects repo.ProjectRepository,
	research repo.ResearchRepository,
	experience repo.ExperienceRepository,
	education repo.EducationRepository,
	awards repo.AwardRepository,
	speaking repo.SpeakingRepository,
	skills repo.SkillRepository,
	analytics repo.AnalyticsRepository,
	logger *logrus.Logger,
) *PortfolioService {
	return &PortfolioService{
		Projects:   projects,
		Research:   research,
		Experience: experience,
		Education:  education,
		Awards:     awards,
		Speaking:   speaking,
		Skills:     skills,
		Analytics:  analytics,
		Logger:     logger,
	}
}

// PortfolioStats is the dashboard summary, recomputed from scratch per call.
type PortfolioStats struct {
	TotalProjects    int64  `json:"totalProjects"`
	TotalResearch    int64  `json:"totalResearch"`
	TotalAwards      int64  `json:"totalAwards"`
	TotalSpeaking    int64  `json:"totalSpeaking"`
	TotalViews       int64  `json:"totalViews"`
	TotalUniqueViews int64  `json:"totalUniqueViews,omitempty"`
	LastUpdated      string `json:"lastUpdated"`
}

// GetPortfolioStats aggregates content counts plus the view total.
func (s *PortfolioService) GetPortfolioStats(ctx context.Context) (*PortfolioStats, error) {
	return s.stats(ctx, false)
}

// GetAnalyticsStats is the variant that also sums unique views.
func (s *PortfolioService) GetAnalyticsStats(ctx context.Context) (*PortfolioStats, error) {
	return s.stats(ctx, true)
}

func (s *PortfolioService) stats(ctx context.Context, includeUnique bool) (*PortfolioStats, error) {
	projects, err := s.Projects.Count(ctx)
	if err != nil {
		return nil, err
	}
	research, err := s.Research.Count(ctx)
	if err != nil {
		return nil, err
	}
	awards, err := s.Awards.Count(ctx)
	if err != nil {
		return nil, err
	}
	speaking, err := s.Speaking.Count(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.Analytics.Totals(ctx)
	if err != nil {
		return nil, err
	}

	stats := &PortfolioStats{
		TotalProjects: projects,
		TotalResearch: research,
		TotalAwards:   awards,
		TotalSpeaking: speaking,
		TotalViews:    totals.Views,
		LastUpdated:   time.Now().UTC().Format(time.RFC3339),
	}
	if includeUnique {
		stats.TotalUniqueViews = totals.UniqueViews
	}
	return stats, nil
}
