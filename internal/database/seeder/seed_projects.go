package seeder

import (
	"context"
	"fmt"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/repository"
)

type ProjectsSeeder struct {
	Projects []portfolio.ProjectInput
	Reset    bool
}

func (ProjectsSeeder) Name() string { return "projects" }

func (s ProjectsSeeder) Run(ctx context.Context, store repository.Storage) error {
	for i, in := range s.Projects {
		if err := in.Validate(); err != nil {
			return fmt.Errorf("project %d: %w", i, err)
		}
	}

	if s.Reset {
		if err := store.ClearProjects(ctx); err != nil {
			return err
		}
	}

	for _, in := range s.Projects {
		if _, err := store.CreateProject(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
