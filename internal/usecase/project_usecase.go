package usecase

import (
	"context"
	"errors"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

type ProjectUsecase interface {
	ListProjects(ctx context.Context) ([]portfolio.Project, error)
	CreateProject(ctx context.Context, in portfolio.ProjectInput) (portfolio.Project, error)
	UpdateProject(ctx context.Context, id int64, patch portfolio.ProjectPatch) (portfolio.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

type Project struct {
	repo   repository.ProjectRepository
	cache  ContentCache
	logger *zap.Logger
}

func NewProjectUsecase(repo repository.ProjectRepository, cache ContentCache, logger *zap.Logger) *Project {
	return &Project{repo: repo, cache: cache, logger: loggerOrNop(logger)}
}

func (u *Project) ListProjects(ctx context.Context) ([]portfolio.Project, error) {
	items, err := readThrough(ctx, u.cache, u.logger, cacheKeyProjects, u.repo.GetProjects)
	if err != nil {
		u.logger.Error("list projects failed", zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Project) CreateProject(ctx context.Context, in portfolio.ProjectInput) (portfolio.Project, error) {
	if err := in.Validate(); err != nil {
		return portfolio.Project{}, err
	}

	created, err := u.repo.CreateProject(ctx, in)
	if err != nil {
		u.logger.Error("create project failed", zap.Error(err))
		return portfolio.Project{}, ErrInternal
	}
	invalidate(ctx, u.cache, u.logger, cacheKeyProjects)
	return created, nil
}

func (u *Project) UpdateProject(ctx context.Context, id int64, patch portfolio.ProjectPatch) (portfolio.Project, error) {
	if id <= 0 {
		return portfolio.Project{}, ErrInvalidInput
	}
	if err := patch.Validate(); err != nil {
		return portfolio.Project{}, err
	}

	updated, err := u.repo.UpdateProject(ctx, id, patch)
	if err != nil {
		if errors.Is(err, portfolio.ErrNotFound) {
			return portfolio.Project{}, ErrNotFound
		}
		u.logger.Error("update project failed", zap.Int64("id", id), zap.Error(err))
		return portfolio.Project{}, ErrInternal
	}
	invalidate(ctx, u.cache, u.logger, cacheKeyProjects)
	return updated, nil
}

func (u *Project) DeleteProject(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if err := u.repo.DeleteProject(ctx, id); err != nil {
		u.logger.Error("delete project failed", zap.Int64("id", id), zap.Error(err))
		return ErrInternal
	}
	invalidate(ctx, u.cache, u.logger, cacheKeyProjects)
	return nil
}
