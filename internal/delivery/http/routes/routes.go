package routes

import (
	"portfolio/internal/delivery/http/handler"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/pkg/jwt"
	"portfolio/internal/repository"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Deps struct {
	Storage repository.Storage
	// Cache may be nil to disable the read cache.
	Cache usecase.ContentCache
	// JWT nil turns admin auth off: admin routes become open and /api/auth
	// is not mounted.
	JWT    jwt.Service
	Logger *zap.Logger
}

type Registry struct {
	health    *handler.HealthHandler
	auth      *handler.AuthHandler
	profile   *handler.ProfileHandler
	skills    *handler.SkillHandler
	projects  *handler.ProjectHandler
	blog      *handler.BlogHandler
	contact   *handler.ContactHandler
	analytics *handler.AnalyticsHandler

	admin handler.Guard
}

func NewRegistry(d Deps) *Registry {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Registry{
		health:    handler.NewHealthHandler(d.Storage),
		profile:   handler.NewProfileHandler(usecase.NewProfileUsecase(d.Storage, d.Cache, logger.Named("profile"))),
		skills:    handler.NewSkillHandler(usecase.NewSkillUsecase(d.Storage, d.Cache, logger.Named("skills"))),
		projects:  handler.NewProjectHandler(usecase.NewProjectUsecase(d.Storage, d.Cache, logger.Named("projects"))),
		blog:      handler.NewBlogHandler(usecase.NewBlogUsecase(d.Storage, d.Cache, logger.Named("blog"))),
		contact:   handler.NewContactHandler(usecase.NewContactUsecase(d.Storage, logger.Named("contact"))),
		analytics: handler.NewAnalyticsHandler(usecase.NewAnalyticsUsecase(d.Storage, logger.Named("analytics"))),
		admin:     handler.OpenGuard,
	}

	if d.JWT != nil {
		r.auth = handler.NewAuthHandler(usecase.NewAuthUsecase(d.Storage, d.JWT, logger.Named("auth")))
		r.admin = middleware.NewAuthMiddleware(d.JWT).Middleware()
	}
	return r
}

// Register mounts every route. It must run once, before the app starts listening.
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	if r.auth != nil {
		r.auth.RegisterRoutes(api, r.admin)
	}
	r.profile.RegisterRoutes(api, r.admin)
	r.skills.RegisterRoutes(api, r.admin)
	r.projects.RegisterRoutes(api, r.admin)
	r.blog.RegisterRoutes(api, r.admin)
	r.contact.RegisterRoutes(api, r.admin)
	r.analytics.RegisterRoutes(api, r.admin)
}
