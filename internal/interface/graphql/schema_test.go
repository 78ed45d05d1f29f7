package graphql

import (
	"context"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akmalhzn/portfolio-api/internal/application"
	"github.com/akmalhzn/portfolio-api/internal/testutil"
	"github.com/akmalhzn/portfolio-api/pkg/helpers"
)

type schemaFixture struct {
	schema graphql.Schema
	auth   *application.AuthService
}

func newSchemaFixture(t *testing.T) schemaFixture {
	t.Helper()
	logger := testutil.NewLogger()

	portfolio := application.NewPortfolioService(
		testutil.NewFakeProjectRepo(),
		testutil.NewFakeResearchRepo(),
		testutil.NewFakeExperienceRepo(),
		testutil.NewFakeEducationRepo(),
		testutil.NewFakeAwardRepo(),
		testutil.NewFakeSpeakingRepo(),
		testutil.NewFakeSkillRepo(),
		testutil.NewFakeAnalyticsRepo(),
		logger,
	)
	auth := application.NewAuthService(testutil.NewFakeUserRepo(), helpers.NewJWTManager("test-secret", time.Hour), logger)
	contact := application.NewContactService(testutil.NewFakeContactRepo(), nil, logger)
	analytics := application.NewAnalyticsService(testutil.NewFakeAnalyticsRepo(), logger)

	schema, err := NewSchema(NewResolver(portfolio, auth, contact, analytics, logger))
	require.NoError(t, err)
	return schemaFixture{schema: schema, auth: auth}
}

func adminCtx() context.Context {
	return WithClaims(context.Background(), &helpers.Claims{UserID: "admin-id", Email: "admin@example.com"})
}

func exec(fx schemaFixture, ctx context.Context, query string, vars map[string]any) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         fx.schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        ctx,
	})
}

func execData(t *testing.T, fx schemaFixture, ctx context.Context, query string, vars map[string]any) map[string]any {
	t.Helper()
	res := exec(fx, ctx, query, vars)
	require.Empty(t, res.Errors, "unexpected errors: %v", res.Errors)
	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	return data
}

const createProjectMutation = `
mutation ($input: ProjectInput!) {
	createProject(input: $input) { id title featured category status technologies }
}`

func projectInputVars(title string) map[string]any {
	return map[string]any{"input": map[string]any{
		"title":        title,
		"description":  "desc",
		"technologies": []any{"Go"},
		"category":     "web",
	}}
}

func TestCreateProjectRequiresAuth(t *testing.T) {
	fx := newSchemaFixture(t)

	res := exec(fx, context.Background(), createProjectMutation, projectInputVars("Site"))
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "authentication required")
}

func TestCreateAndQueryProject(t *testing.T) {
	fx := newSchemaFixture(t)

	data := execData(t, fx, adminCtx(), createProjectMutation, projectInputVars("Site"))
	created := data["createProject"].(map[string]any)
	assert.Equal(t, "Site", created["title"])
	assert.Equal(t, "completed", created["status"], "default status applied")
	assert.NotEmpty(t, created["id"])

	// Reads are public.
	listData := execData(t, fx, context.Background(), `{ getProjects { id title category } }`, nil)
	projects := listData["getProjects"].([]any)
	require.Len(t, projects, 1)
	assert.Equal(t, "Site", projects[0].(map[string]any)["title"])

	one := execData(t, fx, context.Background(),
		`query ($id: ID!) { getProject(id: $id) { title } }`,
		map[string]any{"id": created["id"]},
	)
	assert.Equal(t, "Site", one["getProject"].(map[string]any)["title"])
}

func TestCreateProjectValidationErrorSurfaces(t *testing.T) {
	fx := newSchemaFixture(t)

	vars := projectInputVars("Bad")
	vars["input"].(map[string]any)["category"] = "crypto"
	res := exec(fx, adminCtx(), createProjectMutation, vars)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "category must be a valid project category")
}

func TestGetProjectUnknownID(t *testing.T) {
	fx := newSchemaFixture(t)

	res := exec(fx, context.Background(),
		`query ($id: ID!) { getProject(id: $id) { title } }`,
		map[string]any{"id": "64b5f0a1c2d3e4f5a6b7c8d9"},
	)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "project not found")
}

func TestUpdateAndDeleteProject(t *testing.T) {
	fx := newSchemaFixture(t)
	ctx := adminCtx()

	data := execData(t, fx, ctx, createProjectMutation, projectInputVars("Old"))
	id := data["createProject"].(map[string]any)["id"]

	vars := projectInputVars("New")
	vars["id"] = id
	updated := execData(t, fx, ctx,
		`mutation ($id: ID!, $input: ProjectInput!) { updateProject(id: $id, input: $input) { id title } }`,
		vars,
	)
	assert.Equal(t, "New", updated["updateProject"].(map[string]any)["title"])

	deleted := execData(t, fx, ctx,
		`mutation ($id: ID!) { deleteProject(id: $id) }`,
		map[string]any{"id": id},
	)
	assert.Equal(t, true, deleted["deleteProject"])

	res := exec(fx, context.Background(),
		`query ($id: ID!) { getProject(id: $id) { title } }`,
		map[string]any{"id": id},
	)
	require.NotEmpty(t, res.Errors)
}

func TestRegisterAndLoginMutations(t *testing.T) {
	fx := newSchemaFixture(t)

	data := execData(t, fx, context.Background(),
		`mutation { register(email: "admin@example.com", password: "hunter22", name: "Admin") }`, nil)
	token, ok := data["register"].(string)
	require.True(t, ok)
	claims, err := fx.auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)

	login := execData(t, fx, context.Background(),
		`mutation { login(email: "admin@example.com", password: "hunter22") }`, nil)
	_, err = fx.auth.Verify(login["login"].(string))
	require.NoError(t, err)

	res := exec(fx, context.Background(),
		`mutation { login(email: "admin@example.com", password: "wrong") }`, nil)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "invalid credentials")
}

func TestTrackPageViewMutation(t *testing.T) {
	fx := newSchemaFixture(t)

	const track = `mutation { trackPageView(page: "/home") { page views uniqueViews date } }`

	first := execData(t, fx, context.Background(), track, nil)
	rec := first["trackPageView"].(map[string]any)
	assert.Equal(t, 1, rec["views"])

	second := execData(t, fx, context.Background(), track, nil)
	rec = second["trackPageView"].(map[string]any)
	assert.Equal(t, 2, rec["views"])
	assert.Equal(t, 2, rec["uniqueViews"])
}

func TestContactMessagesAdminGated(t *testing.T) {
	fx := newSchemaFixture(t)

	sent := execData(t, fx, context.Background(), `
mutation {
	sendContactMessage(input: {name: "Visitor", email: "v@example.com", subject: "Hi", message: "Hello"}) {
		id status
	}
}`, nil)
	assert.Equal(t, "new", sent["sendContactMessage"].(map[string]any)["status"])

	res := exec(fx, context.Background(), `{ getContactMessages { id } }`, nil)
	require.NotEmpty(t, res.Errors, "listing messages needs a token")

	data := execData(t, fx, adminCtx(), `{ getContactMessages { id status } }`, nil)
	msgs := data["getContactMessages"].([]any)
	require.Len(t, msgs, 1)
}

func TestAnalyticsQueriesAdminGated(t *testing.T) {
	fx := newSchemaFixture(t)

	for _, q := range []string{
		`{ getAnalytics { page } }`,
		`{ getAnalyticsStats { totalViews } }`,
	} {
		res := exec(fx, context.Background(), q, nil)
		require.NotEmpty(t, res.Errors, "query %s must be gated", q)
		assert.Contains(t, res.Errors[0].Message, "authentication required")
	}

	data := execData(t, fx, adminCtx(), `{ getAnalyticsStats { totalProjects totalViews } }`, nil)
	stats := data["getAnalyticsStats"].(map[string]any)
	assert.Equal(t, 0, stats["totalProjects"])
}

func TestPortfolioStatsQuery(t *testing.T) {
	fx := newSchemaFixture(t)
	ctx := adminCtx()

	for _, title := range []string{"a", "b"} {
		execData(t, fx, ctx, createProjectMutation, projectInputVars(title))
	}

	data := execData(t, fx, context.Background(), `{ getPortfolioStats { totalProjects totalResearch lastUpdated } }`, nil)
	stats := data["getPortfolioStats"].(map[string]any)
	assert.Equal(t, 2, stats["totalProjects"])
	assert.Equal(t, 0, stats["totalResearch"])
	assert.NotEmpty(t, stats["lastUpdated"])
}
