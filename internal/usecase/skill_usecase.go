package usecase

import (
	"context"
	"errors"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]portfolio.Skill, error)
	CreateSkill(ctx context.Context, in portfolio.SkillInput) (portfolio.Skill, error)
	UpdateSkill(ctx context.Context, id int64, patch portfolio.SkillPatch) (portfolio.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}

type Skill struct {
	repo   repository.SkillRepository
	cache  ContentCache
	logger *zap.Logger
}

func NewSkillUsecase(repo repository.SkillRepository, cache ContentCache, logger *zap.Logger) *Skill {
	return &Skill{repo: repo, cache: cache, logger: loggerOrNop(logger)}
}

func (u *Skill) ListSkills(ctx context.Context) ([]portfolio.Skill, error) {
	items, err := readThrough(ctx, u.cache, u.logger, cacheKeySkills, u.repo.GetSkills)
	if err != nil {
		u.logger.Error("list skills failed", zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Skill) CreateSkill(ctx context.Context, in portfolio.SkillInput) (portfolio.Skill, error) {
	if err := in.Validate(); err != nil {
		return portfolio.Skill{}, err
	}

	created, err := u.repo.CreateSkill(ctx, in)
	if err != nil {
		u.logger.Error("create skill failed", zap.Error(err))
		return portfolio.Skill{}, ErrInternal
	}
	invalidate(ctx, u.cache, u.logger, cacheKeySkills)
	return created, nil
}

func (u *Skill) UpdateSkill(ctx context.Context, id int64, patch portfolio.SkillPatch) (portfolio.Skill, error) {
	if id <= 0 {
		return portfolio.Skill{}, ErrInvalidInput
	}
	if err := patch.Validate(); err != nil {
		return portfolio.Skill{}, err
	}

	updated, err := u.repo.UpdateSkill(ctx, id, patch)
	if err != nil {
		if errors.Is(err, portfolio.ErrNotFound) {
			return portfolio.Skill{}, ErrNotFound
		}
		u.logger.Error("update skill failed", zap.Int64("id", id), zap.Error(err))
		return portfolio.Skill{}, ErrInternal
	}
	invalidate(ctx, u.cache, u.logger, cacheKeySkills)
	return updated, nil
}

func (u *Skill) DeleteSkill(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if err := u.repo.DeleteSkill(ctx, id); err != nil {
		u.logger.Error("delete skill failed", zap.Int64("id", id), zap.Error(err))
		return ErrInternal
	}
	invalidate(ctx, u.cache, u.logger, cacheKeySkills)
	return nil
}
