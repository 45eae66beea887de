package usecase

import (
	"context"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/observability"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

type AnalyticsUsecase interface {
	RecordPageView(ctx context.Context, in portfolio.PageViewInput) (portfolio.PageView, error)
	ListPageViews(ctx context.Context, filter portfolio.PageViewFilter) ([]portfolio.PageView, error)
	Summary(ctx context.Context, filter portfolio.PageViewFilter) (portfolio.PageViewStats, error)
}

type Analytics struct {
	repo   repository.PageViewRepository
	logger *zap.Logger
}

func NewAnalyticsUsecase(repo repository.PageViewRepository, logger *zap.Logger) *Analytics {
	return &Analytics{repo: repo, logger: loggerOrNop(logger)}
}

func (u *Analytics) RecordPageView(ctx context.Context, in portfolio.PageViewInput) (portfolio.PageView, error) {
	if err := in.Validate(); err != nil {
		return portfolio.PageView{}, err
	}

	v, err := u.repo.CreatePageView(ctx, in)
	if err != nil {
		u.logger.Error("record page view failed", zap.String("path", in.Path), zap.Error(err))
		return portfolio.PageView{}, ErrInternal
	}
	observability.PageViewsTotal.Inc()
	return v, nil
}

func (u *Analytics) ListPageViews(ctx context.Context, filter portfolio.PageViewFilter) ([]portfolio.PageView, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	views, err := u.repo.GetPageViews(ctx, filter)
	if err != nil {
		u.logger.Error("list page views failed", zap.Error(err))
		return nil, ErrInternal
	}
	return views, nil
}

func (u *Analytics) Summary(ctx context.Context, filter portfolio.PageViewFilter) (portfolio.PageViewStats, error) {
	if err := filter.Validate(); err != nil {
		return portfolio.PageViewStats{}, err
	}

	stats, err := u.repo.GetPageViewStats(ctx, filter)
	if err != nil {
		u.logger.Error("page view summary failed", zap.Error(err))
		return portfolio.PageViewStats{}, ErrInternal
	}
	return stats, nil
}
