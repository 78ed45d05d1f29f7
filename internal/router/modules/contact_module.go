package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akmalhzn/portfolio-api/internal/container"
	handlers "github.com/akmalhzn/portfolio-api/internal/interface/http"
	"github.com/akmalhzn/portfolio-api/internal/interface/middleware"
	"github.com/akmalhzn/portfolio-api/pkg/helpers"
)

// ContactModule wires the contact REST surface.
// Public: POST /api/contact (tightly rate limited; it sends mail downstream).
// Protected: listing, reading, status changes and deletes.
type ContactModule struct {
	Handler *handlers.ContactHandler
	JWT     *helpers.JWTManager
}

func NewContactModule(h *handlers.ContactHandler, jwt *helpers.JWTManager) *ContactModule {
	return &ContactModule{Handler: h, JWT: jwt}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	submitLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/contact", submitLimiter, m.Handler.Submit)

	auth := rg.Group("/contact")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP()))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.PATCH("/:id/status", m.Handler.UpdateStatus)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
