package repository

import (
	"context"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
)

type AnalyticsFilter struct {
	Page  string
	Date  string
	Limit int64
}

// ViewTotals is the aggregate over all analytics records.
type ViewTotals struct {
	Views       int64
	UniqueViews int64
	Pages       []string
}

// AnalyticsRepository persists daily page-view counters.
type AnalyticsRepository interface {
	List(ctx context.Context, f AnalyticsFilter) ([]entity.Analytics, error)
	// ListPageSince returns records for page with date >= since, date descending.
	ListPageSince(ctx context.Context, page, since string) ([]entity.Analytics, error)
	// IncrementView atomically increments the (page, date) counters, creating
	// the record with views = uniqueViews = 1 when absent.
	IncrementView(ctx context.Context, page, date string) (*entity.Analytics, error)
	Totals(ctx context.Context) (ViewTotals, error)
}
