package seeder

import (
	"context"

	"portfolio/internal/repository"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, store repository.Storage) error
}
