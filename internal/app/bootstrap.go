package app

import (
	"context"
	"fmt"
	"strings"

	"portfolio/internal/config"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/routes"
	"portfolio/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

// New builds the HTTP application with routes registered. Nothing is mounted
// after New returns.
func New(cfg config.Config, deps routes.Deps) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, cfg, deps.Logger)
	routes.NewRegistry(deps).Register(f)

	return &App{Fiber: f}
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	container, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	deps := routes.Deps{
		Storage: container.Storage,
		Logger:  logger,
	}
	if container.Cache != nil {
		deps.Cache = container.Cache
	}
	if cfg.Auth.Enabled {
		deps.JWT = jwt.NewHMACService(
			cfg.Auth.AccessSecret,
			cfg.Auth.RefreshSecret,
			cfg.Auth.AccessExpiresIn,
			cfg.Auth.RefreshExpiresIn,
		)
	} else {
		logger.Warn("admin auth disabled, write routes are open")
	}

	return New(cfg, deps), container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins(cfg.App.CORSOrigins),
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
	}))
	app.Use(middleware.Metrics())
}

func corsOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
