package seeder

import (
	"context"
	"fmt"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/repository"
)

// SkillsSeeder inserts skills. Reset clears the table first so repeated runs
// do not duplicate rows.
type SkillsSeeder struct {
	Skills []portfolio.SkillInput
	Reset  bool
}

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, store repository.Storage) error {
	for i, in := range s.Skills {
		if err := in.Validate(); err != nil {
			return fmt.Errorf("skill %d: %w", i, err)
		}
	}

	if s.Reset {
		if err := store.ClearSkills(ctx); err != nil {
			return err
		}
	}

	for _, in := range s.Skills {
		if _, err := store.CreateSkill(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
