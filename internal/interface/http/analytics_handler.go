package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/akmalhzn/portfolio-api/internal/application"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
	"github.com/akmalhzn/portfolio-api/pkg/response"
	"github.com/akmalhzn/portfolio-api/pkg/validation"
)

type AnalyticsHandler struct {
	Svc    *application.AnalyticsService
	Logger *logrus.Logger
}

func NewAnalyticsHandler(svc *application.AnalyticsService, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{Svc: svc, Logger: logger}
}

type trackRequest struct {
	Page string `json:"page" binding:"required"`
}

// Track POST /api/analytics/track (public)
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "page is required", validation.ToDetails(err))
		return
	}
	rec, err := h.Svc.TrackPageView(c.Request.Context(), req.Page)
	if err != nil {
		fail(c, h.Logger, err, "analytics.track")
		return
	}
	response.Success(c, http.StatusOK, rec, "page view tracked", nil)
}

// List GET /api/analytics (admin)
func (h *AnalyticsHandler) List(c *gin.Context) {
	f := repo.AnalyticsFilter{
		Page: c.Query("page"),
		Date: c.Query("date"),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.Limit = n
		}
	}
	recs, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		fail(c, h.Logger, err, "analytics.list")
		return
	}
	response.Success(c, http.StatusOK, recs, "analytics", map[string]any{"count": len(recs)})
}

// Stats GET /api/analytics/stats (admin)
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err, "analytics.stats")
		return
	}
	response.Success(c, http.StatusOK, stats, "analytics stats", nil)
}

// PageHistory GET /api/analytics/page/:page?days=N (admin)
func (h *AnalyticsHandler) PageHistory(c *gin.Context) {
	days := 0
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			days = n
		}
	}
	recs, err := h.Svc.PageHistory(c.Request.Context(), c.Param("page"), days)
	if err != nil {
		fail(c, h.Logger, err, "analytics.page_history")
		return
	}
	response.Success(c, http.StatusOK, recs, "page analytics", map[string]any{"count": len(recs)})
}
