package usecase

import (
	"context"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*portfolio.Profile, error)
	UpdateProfile(ctx context.Context, in portfolio.ProfileInput) (portfolio.Profile, error)
}

type Profile struct {
	repo   repository.ProfileRepository
	cache  ContentCache
	logger *zap.Logger
}

func NewProfileUsecase(repo repository.ProfileRepository, cache ContentCache, logger *zap.Logger) *Profile {
	return &Profile{repo: repo, cache: cache, logger: loggerOrNop(logger)}
}

// GetProfile returns nil when no profile has been stored yet.
func (u *Profile) GetProfile(ctx context.Context) (*portfolio.Profile, error) {
	p, err := readThrough(ctx, u.cache, u.logger, cacheKeyProfile, u.repo.GetProfile)
	if err != nil {
		u.logger.Error("get profile failed", zap.Error(err))
		return nil, ErrInternal
	}
	return p, nil
}

func (u *Profile) UpdateProfile(ctx context.Context, in portfolio.ProfileInput) (portfolio.Profile, error) {
	if err := in.Validate(); err != nil {
		return portfolio.Profile{}, err
	}

	p, err := u.repo.UpdateProfile(ctx, in)
	if err != nil {
		u.logger.Error("update profile failed", zap.Error(err))
		return portfolio.Profile{}, ErrInternal
	}
	invalidate(ctx, u.cache, u.logger, cacheKeyProfile)
	return p, nil
}
