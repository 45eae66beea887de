package usecase

import (
	"context"
	"strconv"
	"time"

	"portfolio/internal/observability"

	"go.uber.org/zap"
)

// ContentCache is the read cache in front of public portfolio reads. A nil
// ContentCache disables caching.
type ContentCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const (
	cacheKeyProfile  = "portfolio:profile"
	cacheKeySkills   = "portfolio:skills"
	cacheKeyProjects = "portfolio:projects"

	cacheKeyBlogPattern = "portfolio:blog:*"
)

// ContentCachePattern matches every key the usecases cache. Writers that
// bypass the usecases clear it when they are done.
const ContentCachePattern = "portfolio:*"

func blogListCacheKey(publishedOnly bool) string {
	if publishedOnly {
		return "portfolio:blog:list:published"
	}
	return "portfolio:blog:list:all"
}

func blogPostCacheKey(id int64) string {
	return "portfolio:blog:post:" + strconv.FormatInt(id, 10)
}

// readThrough serves key from the cache, falling back to load and populating
// the cache on a miss. Cache failures are logged and never fail the read.
func readThrough[T any](ctx context.Context, cache ContentCache, logger *zap.Logger, key string, load func(context.Context) (T, error)) (T, error) {
	if cache != nil {
		var cached T
		hit, err := cache.GetJSON(ctx, key, &cached)
		if err != nil {
			logger.Debug("cache read failed", zap.String("key", key), zap.Error(err))
		}
		if hit {
			observability.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		observability.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if cache != nil {
		if err := cache.SetJSON(ctx, key, v, 0); err != nil {
			logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return v, nil
}

func invalidate(ctx context.Context, cache ContentCache, logger *zap.Logger, keys ...string) {
	if cache == nil {
		return
	}
	if err := cache.Delete(ctx, keys...); err != nil {
		logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func invalidatePattern(ctx context.Context, cache ContentCache, logger *zap.Logger, pattern string) {
	if cache == nil {
		return
	}
	if err := cache.DeleteByPattern(ctx, pattern); err != nil {
		logger.Warn("cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
	}
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
