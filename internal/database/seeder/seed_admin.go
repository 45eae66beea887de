package seeder

import (
	"context"

	"portfolio/internal/repository"
	ucuser "portfolio/internal/usecase/user"
)

// AdminSeeder creates the admin account when the username is not taken yet.
type AdminSeeder struct {
	Username string
	Password string
}

func (AdminSeeder) Name() string { return "admin user" }

func (s AdminSeeder) Run(ctx context.Context, store repository.Storage) error {
	_, _, err := ucuser.NewService(store).EnsureAdmin(ctx, s.Username, s.Password)
	return err
}
