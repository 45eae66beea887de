package seeder

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/repository"
	"portfolio/internal/usecase"

	"go.uber.org/zap"
)

// CacheInvalidator drops cached content the seeders have made stale.
type CacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// Runner runs every seeder even when an earlier one fails, and returns the
// joined failures.
type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
	// Cache, when set, is cleared after the seeders run, failed or not.
	Cache CacheInvalidator
}

func (r Runner) Run(ctx context.Context, store repository.Storage) error {
	if store == nil {
		return fmt.Errorf("nil store")
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var errs []error
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, store); err != nil {
			logger.Error("seed step failed", zap.String("seeder", s.Name()), zap.Error(err))
			errs = append(errs, fmt.Errorf("seed %s: %w", s.Name(), err))
			continue
		}
		logger.Info("seed step done", zap.String("seeder", s.Name()))
	}

	if r.Cache != nil {
		if err := r.Cache.DeleteByPattern(ctx, usecase.ContentCachePattern); err != nil {
			logger.Warn("content cache not cleared", zap.Error(err))
		}
	}
	return errors.Join(errs...)
}
