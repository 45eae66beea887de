package app

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/database/migration"
	dbpostgres "portfolio/internal/database/postgres"
	dbsqlite "portfolio/internal/database/sqlite"
	"portfolio/internal/infrastructure/cache"
	"portfolio/internal/repository"
	"portfolio/internal/usecase"

	"go.uber.org/zap"
)

// Container owns the process-wide resources shared by the server and the
// seed utility.
type Container struct {
	Config  config.Config
	DB      database.DB
	Storage *repository.Store
	Cache   usecase.ContentCache
	Logger  *zap.Logger

	redis *cache.Redis
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := OpenDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", zap.String("driver", db.Driver()))

	if cfg.Database.AutoMigrate {
		if err := (migration.Runner{}).Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	c := &Container{
		Config:  cfg,
		DB:      db,
		Storage: repository.NewStore(db),
		Logger:  logger,
	}

	if cfg.Redis.CacheEnabled() {
		c.redis = cache.NewRedis(cfg.Redis, logger.Named("cache"))
		c.Cache = c.redis
	}

	return c, nil
}

// OpenDatabase connects to the configured driver.
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	switch cfg.Driver {
	case database.DriverPostgres:
		return dbpostgres.Connect(ctx, cfg)
	case database.DriverSQLite:
		return dbsqlite.Open(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.redis != nil {
		errs = append(errs, c.redis.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
