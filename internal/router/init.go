package router

import (
	"github.com/akmalhzn/portfolio-api/internal/application"
	"github.com/akmalhzn/portfolio-api/internal/container"
	"github.com/akmalhzn/portfolio-api/internal/infrastructure/mongodb"
	gql "github.com/akmalhzn/portfolio-api/internal/interface/graphql"
	handlers "github.com/akmalhzn/portfolio-api/internal/interface/http"
	"github.com/akmalhzn/portfolio-api/internal/router/modules"
)

// Services groups the constructed application layer so both transports share
// the same instances.
type Services struct {
	Portfolio *application.PortfolioService
	Auth      *application.AuthService
	Contact   *application.ContactService
	Analytics *application.AnalyticsService
}

func buildServices() Services {
	db := container.GetMongo()
	logger := container.GetLogger()

	analyticsRepo := mongodb.NewAnalyticsRepository(db)

	portfolio := application.NewPortfolioService(
		mongodb.NewProjectRepository(db),
		mongodb.NewResearchRepository(db),
		mongodb.NewExperienceRepository(db),
		mongodb.NewEducationRepository(db),
		mongodb.NewAwardRepository(db),
		mongodb.NewSpeakingRepository(db),
		mongodb.NewSkillRepository(db),
		analyticsRepo,
		logger,
	)

	auth := application.NewAuthService(mongodb.NewUserRepository(db), container.GetJWT(), logger)

	var notifier application.Notifier
	if pub := container.GetRabbitPub(); pub != nil {
		notifier = pub
	}
	contact := application.NewContactService(mongodb.NewContactRepository(db), notifier, logger)

	analytics := application.NewAnalyticsService(analyticsRepo, logger)

	return Services{Portfolio: portfolio, Auth: auth, Contact: contact, Analytics: analytics}
}

// InitModules constructs the application services once and registers every
// feature module with the router registry.
func InitModules(r *Registry) error {
	svcs := buildServices()
	logger := container.GetLogger()

	resolver := gql.NewResolver(svcs.Portfolio, svcs.Auth, svcs.Contact, svcs.Analytics, logger)
	schema, err := gql.NewSchema(resolver)
	if err != nil {
		return err
	}

	r.Add(modules.NewGraphQLModule(gql.NewHandler(schema, svcs.Auth)))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(svcs.Contact, logger), container.GetJWT()))
	r.Add(modules.NewAnalyticsModule(handlers.NewAnalyticsHandler(svcs.Analytics, logger), container.GetJWT()))
	return nil
}
