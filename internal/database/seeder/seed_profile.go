package seeder

import (
	"context"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/repository"
)

type ProfileSeeder struct {
	Profile portfolio.ProfileInput
}

func (ProfileSeeder) Name() string { return "profile" }

func (s ProfileSeeder) Run(ctx context.Context, store repository.Storage) error {
	if err := s.Profile.Validate(); err != nil {
		return err
	}
	_, err := store.UpdateProfile(ctx, s.Profile)
	return err
}
