package application

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
)

// Default windows for the analytics read paths.
const (
	DefaultAnalyticsLimit = 100
	DefaultAnalyticsDays  = 30
)

type AnalyticsService struct {
	Repo   repo.AnalyticsRepository
	Logger *logrus.Logger
}

func NewAnalyticsService(r repo.AnalyticsRepository, logger *logrus.Logger) *AnalyticsService {
	return &AnalyticsService{Repo: r, Logger: logger}
}

// TrackPageView bumps the counter for (page, today). One record per page per
// UTC calendar day.
func (s *AnalyticsService) TrackPageView(ctx context.Context, page string) (*entity.Analytics, error) {
	page = strings.TrimSpace(page)
	if page == "" {
		return nil, apperr.Validation("page is required")
	}
	return s.Repo.IncrementView(ctx, page, entity.Today())
}

func (s *AnalyticsService) List(ctx context.Context, f repo.AnalyticsFilter) ([]entity.Analytics, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultAnalyticsLimit
	}
	return s.Repo.List(ctx, f)
}

// PageHistory returns records for one page over the trailing N days.
func (s *AnalyticsService) PageHistory(ctx context.Context, page string, days int) ([]entity.Analytics, error) {
	page = strings.TrimSpace(page)
	if page == "" {
		return nil, apperr.Validation("page is required")
	}
	if days <= 0 {
		days = DefaultAnalyticsDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days).Format(entity.DateLayout)
	return s.Repo.ListPageSince(ctx, page, since)
}

// ViewStats is the REST analytics summary, including the distinct page set.
type ViewStats struct {
	TotalViews       int64    `json:"totalViews"`
	TotalUniqueViews int64    `json:"totalUniqueViews"`
	TotalPages       int      `json:"totalPages"`
	Pages            []string `json:"pages"`
}

func (s *AnalyticsService) Stats(ctx context.Context) (*ViewStats, error) {
	totals, err := s.Repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return &ViewStats{
		TotalViews:       totals.Views,
		TotalUniqueViews: totals.UniqueViews,
		TotalPages:       len(totals.Pages),
		Pages:            totals.Pages,
	}, nil
}
