package graphql

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"github.com/akmalhzn/portfolio-api/internal/application"
	"github.com/akmalhzn/portfolio-api/internal/interface/middleware"
)

// Handler serves the GraphQL endpoint over POST. A bearer token, when present
// and valid, attaches claims to the execution context; resolvers decide which
// operations need them. An invalid token degrades to an anonymous request
// rather than failing public operations.
type Handler struct {
	Schema graphql.Schema
	Auth   *application.AuthService
}

func NewHandler(schema graphql.Schema, auth *application.AuthService) *Handler {
	return &Handler{Schema: schema, Auth: auth}
}

type graphqlRequest struct {
	Query         string         `json:"query" binding:"required"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

func (h *Handler) Serve(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []gin.H{{"message": "invalid request body: query is required"}},
		})
		return
	}

	ctx := c.Request.Context()
	if token := middleware.BearerToken(c); token != "" {
		if claims, err := h.Auth.Verify(token); err == nil {
			ctx = WithClaims(ctx, claims)
		}
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.Schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
	c.JSON(http.StatusOK, result)
}
