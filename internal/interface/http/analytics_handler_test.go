package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackPageView(t *testing.T) {
	e := newEnv()

	first := e.do(t, http.MethodPost, "/api/analytics/track", "", map[string]any{"page": "/projects"})
	require.Equal(t, http.StatusOK, first.Code)
	data := decode(t, first)["data"].(map[string]any)
	assert.Equal(t, "/projects", data["page"])
	assert.Equal(t, float64(1), data["views"])

	second := e.do(t, http.MethodPost, "/api/analytics/track", "", map[string]any{"page": "/projects"})
	require.Equal(t, http.StatusOK, second.Code)
	data = decode(t, second)["data"].(map[string]any)
	assert.Equal(t, float64(2), data["views"])
	assert.Equal(t, float64(2), data["uniqueViews"])
}

func TestTrackRequiresPage(t *testing.T) {
	e := newEnv()

	w := e.do(t, http.MethodPost, "/api/analytics/track", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPost, "/api/analytics/track", "", map[string]any{"page": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsAdminRoutesRequireToken(t *testing.T) {
	e := newEnv()

	for _, path := range []string{
		"/api/analytics",
		"/api/analytics/stats",
		"/api/analytics/page/home",
	} {
		w := e.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAnalyticsListAndStats(t *testing.T) {
	e := newEnv()
	token := e.token(t)

	for _, page := range []string{"/a", "/a", "/b"} {
		w := e.do(t, http.MethodPost, "/api/analytics/track", "", map[string]any{"page": page})
		require.Equal(t, http.StatusOK, w.Code)
	}

	list := e.do(t, http.MethodGet, "/api/analytics?page=/a", token, nil)
	require.Equal(t, http.StatusOK, list.Code)
	records := decode(t, list)["data"].([]any)
	require.Len(t, records, 1)
	assert.Equal(t, float64(2), records[0].(map[string]any)["views"])

	stats := e.do(t, http.MethodGet, "/api/analytics/stats", token, nil)
	require.Equal(t, http.StatusOK, stats.Code)
	data := decode(t, stats)["data"].(map[string]any)
	assert.Equal(t, float64(3), data["totalViews"])
	assert.Equal(t, float64(2), data["totalPages"])

	history := e.do(t, http.MethodGet, "/api/analytics/page/a?days=7", token, nil)
	require.Equal(t, http.StatusOK, history.Code)
}
