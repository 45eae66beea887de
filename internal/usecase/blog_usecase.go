package usecase

import (
	"context"
	"errors"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

type BlogUsecase interface {
	ListPosts(ctx context.Context, publishedOnly bool) ([]portfolio.BlogPost, error)
	GetPost(ctx context.Context, id int64) (portfolio.BlogPost, error)
	CreatePost(ctx context.Context, in portfolio.BlogPostInput) (portfolio.BlogPost, error)
	UpdatePost(ctx context.Context, id int64, patch portfolio.BlogPostPatch) (portfolio.BlogPost, error)
	DeletePost(ctx context.Context, id int64) error
}

type Blog struct {
	repo   repository.BlogRepository
	cache  ContentCache
	logger *zap.Logger
}

func NewBlogUsecase(repo repository.BlogRepository, cache ContentCache, logger *zap.Logger) *Blog {
	return &Blog{repo: repo, cache: cache, logger: loggerOrNop(logger)}
}

func (u *Blog) ListPosts(ctx context.Context, publishedOnly bool) ([]portfolio.BlogPost, error) {
	posts, err := readThrough(ctx, u.cache, u.logger, blogListCacheKey(publishedOnly),
		func(ctx context.Context) ([]portfolio.BlogPost, error) {
			return u.repo.GetBlogPosts(ctx, publishedOnly)
		})
	if err != nil {
		u.logger.Error("list blog posts failed", zap.Bool("published_only", publishedOnly), zap.Error(err))
		return nil, ErrInternal
	}
	return posts, nil
}

func (u *Blog) GetPost(ctx context.Context, id int64) (portfolio.BlogPost, error) {
	if id <= 0 {
		return portfolio.BlogPost{}, ErrInvalidInput
	}

	post, err := readThrough(ctx, u.cache, u.logger, blogPostCacheKey(id),
		func(ctx context.Context) (portfolio.BlogPost, error) {
			return u.repo.GetBlogPost(ctx, id)
		})
	if err != nil {
		if errors.Is(err, portfolio.ErrNotFound) {
			return portfolio.BlogPost{}, ErrNotFound
		}
		u.logger.Error("get blog post failed", zap.Int64("id", id), zap.Error(err))
		return portfolio.BlogPost{}, ErrInternal
	}
	return post, nil
}

func (u *Blog) CreatePost(ctx context.Context, in portfolio.BlogPostInput) (portfolio.BlogPost, error) {
	if err := in.Validate(); err != nil {
		return portfolio.BlogPost{}, err
	}

	created, err := u.repo.CreateBlogPost(ctx, in)
	if err != nil {
		u.logger.Error("create blog post failed", zap.Error(err))
		return portfolio.BlogPost{}, ErrInternal
	}
	invalidatePattern(ctx, u.cache, u.logger, cacheKeyBlogPattern)
	return created, nil
}

func (u *Blog) UpdatePost(ctx context.Context, id int64, patch portfolio.BlogPostPatch) (portfolio.BlogPost, error) {
	if id <= 0 {
		return portfolio.BlogPost{}, ErrInvalidInput
	}
	if err := patch.Validate(); err != nil {
		return portfolio.BlogPost{}, err
	}

	updated, err := u.repo.UpdateBlogPost(ctx, id, patch)
	if err != nil {
		if errors.Is(err, portfolio.ErrNotFound) {
			return portfolio.BlogPost{}, ErrNotFound
		}
		u.logger.Error("update blog post failed", zap.Int64("id", id), zap.Error(err))
		return portfolio.BlogPost{}, ErrInternal
	}
	invalidatePattern(ctx, u.cache, u.logger, cacheKeyBlogPattern)
	return updated, nil
}

func (u *Blog) DeletePost(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if err := u.repo.DeleteBlogPost(ctx, id); err != nil {
		u.logger.Error("delete blog post failed", zap.Int64("id", id), zap.Error(err))
		return ErrInternal
	}
	invalidatePattern(ctx, u.cache, u.logger, cacheKeyBlogPattern)
	return nil
}
