package seeder

import (
	"strings"

	"portfolio/internal/domain/portfolio"
)

type Options struct {
	Reset         bool
	AdminUsername string
	AdminPassword string
}

// Defaults builds the seeders for content. The admin seeder is included only
// when both credentials are set.
func Defaults(content Content, opts Options) []Seeder {
	var out []Seeder

	if content.Profile != nil {
		out = append(out, ProfileSeeder{Profile: content.Profile.Input()})
	}
	if len(content.Skills) > 0 {
		skills := make([]portfolio.SkillInput, 0, len(content.Skills))
		for _, s := range content.Skills {
			skills = append(skills, s.Input())
		}
		out = append(out, SkillsSeeder{Skills: skills, Reset: opts.Reset})
	}
	if len(content.Projects) > 0 {
		projects := make([]portfolio.ProjectInput, 0, len(content.Projects))
		for _, p := range content.Projects {
			projects = append(projects, p.Input())
		}
		out = append(out, ProjectsSeeder{Projects: projects, Reset: opts.Reset})
	}
	if strings.TrimSpace(opts.AdminUsername) != "" && opts.AdminPassword != "" {
		out = append(out, AdminSeeder{Username: opts.AdminUsername, Password: opts.AdminPassword})
	}

	return out
}
