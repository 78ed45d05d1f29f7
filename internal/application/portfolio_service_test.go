package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
	"github.com/akmalhzn/portfolio-api/internal/testutil"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
)

type portfolioFixture struct {
	svc       *PortfolioService
	analytics *testutil.FakeAnalyticsRepo
}

func newPortfolioFixture() portfolioFixture {
	analytics := testutil.NewFakeAnalyticsRepo()
	svc := NewPortfolioService(
		testutil.NewFakeProjectRepo(),
		testutil.NewFakeResearchRepo(),
		testutil.NewFakeExperienceRepo(),
		testutil.NewFakeEducationRepo(),
		testutil.NewFakeAwardRepo(),
		testutil.NewFakeSpeakingRepo(),
		testutil.NewFakeSkillRepo(),
		analytics,
		testutil.NewLogger(),
	)
	return portfolioFixture{svc: svc, analytics: analytics}
}

func newTestProject(title string) *entity.Project {
	return &entity.Project{
		Title:        title,
		Description:  "desc",
		Technologies: []string{"Go"},
		Category:     entity.ProjectCategoryWeb,
	}
}

func TestProjectCRUD(t *testing.T) {
	fx := newPortfolioFixture()
	ctx := context.Background()

	p := newTestProject("Site")
	require.NoError(t, fx.svc.CreateProject(ctx, p))
	assert.False(t, p.ID.IsZero())
	assert.Equal(t, entity.ProjectStatusCompleted, p.Status, "default applied on create")

	got, err := fx.svc.GetProject(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Site", got.Title)

	got.Title = "Renamed"
	require.NoError(t, fx.svc.UpdateProject(ctx, p.ID.Hex(), got))
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, p.ID, got.ID)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))

	require.NoError(t, fx.svc.DeleteProject(ctx, p.ID.Hex()))
	_, err = fx.svc.GetProject(ctx, p.ID.Hex())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateProjectRejectsInvalid(t *testing.T) {
	fx := newPortfolioFixture()
	ctx := context.Background()

	p := newTestProject("Bad")
	p.Category = "crypto"
	err := fx.svc.CreateProject(ctx, p)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	items, err := fx.svc.ListProjects(ctx, repo.ProjectFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	fx := newPortfolioFixture()

	p := newTestProject("Ghost")
	err := fx.svc.UpdateProject(context.Background(), "64b5f0a1c2d3e4f5a6b7c8d9", p)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// Malformed hex degrades to not-found too, never a server error.
	err = fx.svc.UpdateProject(context.Background(), "zzz", p)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListProjectsDefaultLimitAndFilter(t *testing.T) {
	fx := newPortfolioFixture()
	ctx := context.Background()

	for i := 0; i < DefaultListLimit+3; i++ {
		p := newTestProject(fmt.Sprintf("p%d", i))
		p.Featured = i%2 == 0
		require.NoError(t, fx.svc.CreateProject(ctx, p))
	}

	items, err := fx.svc.ListProjects(ctx, repo.ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, items, DefaultListLimit)

	featured := true
	feat, err := fx.svc.ListProjects(ctx, repo.ProjectFilter{Featured: &featured, Limit: 100})
	require.NoError(t, err)
	for _, p := range feat {
		assert.True(t, p.Featured)
	}
}

func TestResearchSortedByYearDesc(t *testing.T) {
	fx := newPortfolioFixture()
	ctx := context.Background()

	for _, year := range []int{2019, 2024, 2021} {
		r := &entity.Research{
			Title:       fmt.Sprintf("paper %d", year),
			Authors:     []string{"A"},
			Venue:       "USENIX",
			Year:        year,
			Description: "d",
		}
		require.NoError(t, fx.svc.CreateResearch(ctx, r))
		assert.Equal(t, entity.ResearchStatusPublished, r.Status)
	}

	items, err := fx.svc.ListResearch(ctx, repo.ResearchFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 2024, items[0].Year)
	assert.Equal(t, 2021, items[1].Year)
	assert.Equal(t, 2019, items[2].Year)
}

func TestSkillsSortedByLevelDesc(t *testing.T) {
	fx := newPortfolioFixture()
	ctx := context.Background()

	for _, lvl := range []int{40, 95, 70} {
		s := &entity.Skill{
			Name:        fmt.Sprintf("s%d", lvl),
			Category:    entity.SkillCategoryProgramming,
			Level:       lvl,
			Description: "d",
		}
		require.NoError(t, fx.svc.CreateSkill(ctx, s))
	}

	items, err := fx.svc.ListSkills(ctx, repo.SkillFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 95, items[0].Level)
	assert.Equal(t, 40, items[2].Level)
}

func TestPortfolioStats(t *testing.T) {
	fx := newPortfolioFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, fx.svc.CreateProject(ctx, newTestProject(fmt.Sprintf("p%d", i))))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, fx.svc.CreateResearch(ctx, &entity.Research{
			Title: fmt.Sprintf("r%d", i), Authors: []string{"A"}, Venue: "V", Year: 2023, Description: "d",
		}))
	}
	require.NoError(t, fx.svc.CreateAward(ctx, &entity.Award{
		Title: "Best Paper", Organization: "ACM", Year: 2023, Description: "d",
		Category: entity.AwardCategoryAcademic,
	}))
	for i := 0; i < 50; i++ {
		_, err := fx.analytics.IncrementView(ctx, "/home", entity.Today())
		require.NoError(t, err)
	}

	stats, err := fx.svc.GetPortfolioStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalProjects)
	assert.Equal(t, int64(2), stats.TotalResearch)
	assert.Equal(t, int64(1), stats.TotalAwards)
	assert.Equal(t, int64(0), stats.TotalSpeaking)
	assert.Equal(t, int64(50), stats.TotalViews)
	assert.Zero(t, stats.TotalUniqueViews, "portfolio variant omits unique views")
	assert.NotEmpty(t, stats.LastUpdated)

	withUnique, err := fx.svc.GetAnalyticsStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), withUnique.TotalUniqueViews)
}
