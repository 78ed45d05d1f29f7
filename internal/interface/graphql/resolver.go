package graphql

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/sirupsen/logrus"

	"github.com/akmalhzn/portfolio-api/internal/application"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
)

// Resolver binds the schema's query and mutation fields to the application
// services. All data access goes through the services; resolvers only parse
// arguments, enforce the admin gate and translate errors.
type Resolver struct {
	Portfolio *application.PortfolioService
	Auth      *application.AuthService
	Contact   *application.ContactService
	Analytics *application.AnalyticsService
	Logger    *logrus.Logger
}

func NewResolver(
	portfolio *application.PortfolioService,
	auth *application.AuthService,
	contact *application.ContactService,
	analytics *application.AnalyticsService,
	logger *logrus.Logger,
) *Resolver {
	return &Resolver{
		Portfolio: portfolio,
		Auth:      auth,
		Contact:   contact,
		Analytics: analytics,
		Logger:    logger,
	}
}

// wrap converts service errors into client-safe GraphQL errors. Store and
// unclassified failures are logged with their cause and surfaced generically.
func (r *Resolver) wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	switch apperr.KindOf(err) {
	case apperr.KindStore, apperr.KindUnknown:
		r.Logger.WithError(err).WithField("op", op).Error("graphql operation failed")
	}
	return errors.New(apperr.MessageOf(err))
}

var errAuthRequired = apperr.Unauthenticated("authentication required")

// requireAdmin rejects the operation unless the request carried a valid
// bearer token. Every authenticated user is an admin.
func (r *Resolver) requireAdmin(p graphql.ResolveParams) error {
	if ClaimsFrom(p.Context) == nil {
		return errors.New(errAuthRequired.Message)
	}
	return nil
}

func strArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func idArg(p graphql.ResolveParams) string {
	return strArg(p, "id")
}

func boolPtrArg(p graphql.ResolveParams, name string) *bool {
	if b, ok := p.Args[name].(bool); ok {
		return &b
	}
	return nil
}

func intArg(p graphql.ResolveParams, name string) int64 {
	if n, ok := p.Args[name].(int); ok {
		return int64(n)
	}
	return 0
}
