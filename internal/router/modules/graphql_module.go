package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akmalhzn/portfolio-api/internal/container"
	gql "github.com/akmalhzn/portfolio-api/internal/interface/graphql"
	"github.com/akmalhzn/portfolio-api/internal/interface/middleware"
)

// GraphQLModule exposes the primary API surface at POST /api/graphql.
// Auth is per-operation inside the resolvers, so the route itself is public.
type GraphQLModule struct {
	Handler *gql.Handler
}

func NewGraphQLModule(h *gql.Handler) *GraphQLModule {
	return &GraphQLModule{Handler: h}
}

func (m *GraphQLModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP())

	rg.POST("/graphql", limiter, m.Handler.Serve)
}
