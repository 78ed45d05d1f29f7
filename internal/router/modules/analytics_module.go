package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akmalhzn/portfolio-api/internal/container"
	handlers "github.com/akmalhzn/portfolio-api/internal/interface/http"
	"github.com/akmalhzn/portfolio-api/internal/interface/middleware"
	"github.com/akmalhzn/portfolio-api/pkg/helpers"
)

// AnalyticsModule wires the analytics REST surface.
// Public: POST /api/analytics/track (one call per rendered page).
// Protected: raw records, totals and per-page history.
type AnalyticsModule struct {
	Handler *handlers.AnalyticsHandler
	JWT     *helpers.JWTManager
}

func NewAnalyticsModule(h *handlers.AnalyticsHandler, jwt *helpers.JWTManager) *AnalyticsModule {
	return &AnalyticsModule{Handler: h, JWT: jwt}
}

func (m *AnalyticsModule) Register(rg *gin.RouterGroup) {
	trackLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP())

	rg.POST("/analytics/track", trackLimiter, m.Handler.Track)

	auth := rg.Group("/analytics")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP()))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/stats", m.Handler.Stats)
		auth.GET("/page/:page", m.Handler.PageHistory)
	}
}
