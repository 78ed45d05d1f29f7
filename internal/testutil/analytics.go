package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	"github.com/akmalhzn/portfolio-api/internal/domain/repository"
)

// FakeAnalyticsRepo mirrors the upsert-or-increment contract of the Mongo
// implementation, including the (page, date) uniqueness guarantee.
type FakeAnalyticsRepo struct {
	mu    sync.Mutex
	items []entity.Analytics
}

func NewFakeAnalyticsRepo() *FakeAnalyticsRepo { return &FakeAnalyticsRepo{} }

func (r *FakeAnalyticsRepo) List(_ context.Context, f repository.AnalyticsFilter) ([]entity.Analytics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Analytics, 0, len(r.items))
	for _, a := range r.items {
		if f.Page != "" && a.Page != f.Page {
			continue
		}
		if f.Date != "" && a.Date != f.Date {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if f.Limit > 0 && int64(len(out)) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *FakeAnalyticsRepo) ListPageSince(_ context.Context, page, since string) ([]entity.Analytics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Analytics, 0)
	for _, a := range r.items {
		if a.Page == page && a.Date >= since {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *FakeAnalyticsRepo) IncrementView(_ context.Context, page, date string) (*entity.Analytics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	for i := range r.items {
		if r.items[i].Page == page && r.items[i].Date == date {
			r.items[i].Views++
			r.items[i].UniqueViews++
			r.items[i].UpdatedAt = now
			out := r.items[i]
			return &out, nil
		}
	}
	rec := entity.Analytics{
		ID:          primitive.NewObjectID(),
		Page:        page,
		Date:        date,
		Views:       1,
		UniqueViews: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.items = append(r.items, rec)
	return &rec, nil
}

func (r *FakeAnalyticsRepo) Totals(_ context.Context) (repository.ViewTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	totals := repository.ViewTotals{Pages: []string{}}
	seen := map[string]bool{}
	for _, a := range r.items {
		totals.Views += a.Views
		totals.UniqueViews += a.UniqueViews
		if !seen[a.Page] {
			seen[a.Page] = true
			totals.Pages = append(totals.Pages, a.Page)
		}
	}
	return totals, nil
}

var _ repository.AnalyticsRepository = (*FakeAnalyticsRepo)(nil)

// FakeNotifier records published payloads; Err forces a publish failure.
type FakeNotifier struct {
	mu        sync.Mutex
	Err       error
	Published []any
}

func (n *FakeNotifier) PublishJSON(_ context.Context, body any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.Published = append(n.Published, body)
	return nil
}
