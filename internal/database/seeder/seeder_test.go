package seeder

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"portfolio/internal/database/migration"
	"portfolio/internal/database/sqlite"
	"portfolio/internal/domain/portfolio"
	"portfolio/internal/repository"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewStore(db)
}

func TestDefaults_SeedTwiceWithReset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	opts := Options{Reset: true, AdminUsername: "admin", AdminPassword: "s3cret-pass"}
	for i := 0; i < 2; i++ {
		r := Runner{Seeders: Defaults(DefaultContent(), opts)}
		if err := r.Run(ctx, store); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	skills, err := store.GetSkills(ctx)
	if err != nil {
		t.Fatalf("get skills: %v", err)
	}
	if len(skills) != 8 || skills[0].Name != "React.js" || skills[7].Name != "GraphQL" {
		t.Fatalf("unexpected skills %+v", skills)
	}

	projects, err := store.GetProjects(ctx)
	if err != nil {
		t.Fatalf("get projects: %v", err)
	}
	if len(projects) != 6 || projects[0].Link == nil || *projects[0].Link != "https://github.com" {
		t.Fatalf("unexpected projects %+v", projects)
	}

	profile, err := store.GetProfile(ctx)
	if err != nil || profile == nil || profile.Name != "Alex Developer" {
		t.Fatalf("unexpected profile %+v err=%v", profile, err)
	}

	admin, err := store.GetUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("admin missing: %v", err)
	}
	if admin.PasswordHash == "" || admin.PasswordHash == "s3cret-pass" {
		t.Fatalf("expected a bcrypt hash to be stored")
	}
}

func TestDefaults_SkipsAdminWithoutCredentials(t *testing.T) {
	for _, s := range Defaults(DefaultContent(), Options{AdminUsername: "admin"}) {
		if _, ok := s.(AdminSeeder); ok {
			t.Fatalf("admin seeder must be skipped without a password")
		}
	}
}

type failingSeeder struct{}

func (failingSeeder) Name() string { return "failing" }

func (failingSeeder) Run(context.Context, repository.Storage) error {
	return errors.New("boom")
}

type recordingCache struct {
	patterns []string
}

func (c *recordingCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return nil
}

func TestRunner_ClearsContentCache(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cache := &recordingCache{}
	r := Runner{Seeders: []Seeder{failingSeeder{}, SkillsSeeder{Skills: []portfolio.SkillInput{
		{Name: "Go", Proficiency: "Expert", Experience: "5 yrs"},
	}}}, Cache: cache}
	if err := r.Run(ctx, store); err == nil {
		t.Fatalf("expected failing step to be reported")
	}

	if len(cache.patterns) != 1 || cache.patterns[0] != "portfolio:*" {
		t.Fatalf("expected one content cache wipe, got %v", cache.patterns)
	}
}

func TestRunner_ContinuesAfterFailure(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	content := DefaultContent()
	r := Runner{Seeders: []Seeder{failingSeeder{}, ProfileSeeder{Profile: content.Profile.Input()}}}

	err := r.Run(ctx, store)
	if err == nil || !strings.Contains(err.Error(), "seed failing") {
		t.Fatalf("expected joined failure, got %v", err)
	}

	profile, err := store.GetProfile(ctx)
	if err != nil || profile == nil {
		t.Fatalf("expected profile seeded after failing step, got %+v err=%v", profile, err)
	}
}

func TestSkillsSeeder_RejectsInvalidContent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	s := SkillsSeeder{Skills: []portfolio.SkillInput{
		{Name: "Go", Proficiency: "Expert", Experience: "1 yr"},
		{Name: ""},
	}}
	if err := s.Run(ctx, store); err == nil {
		t.Fatalf("expected validation error")
	}

	skills, _ := store.GetSkills(ctx)
	if len(skills) != 0 {
		t.Fatalf("no skills should be inserted when any entry is invalid, got %d", len(skills))
	}
}

func TestParseContent(t *testing.T) {
	doc := []byte(`
profile:
  name: Sam
  role: Engineer
  monthlyListeners: "10"
  bio: bio
  education: edu
  githubUrl: https://github.com/sam
  linkedinUrl: https://linkedin.com/in/sam
  avatarUrl: https://example.com/sam.png
skills:
  - name: Go
    proficiency: Expert
    experience: 6 yrs
    order: 0
projects:
  - title: Tool
    subtitle: Go
    gradient: from-a to-b
    order: 1
`)
	c, err := ParseContent(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Profile == nil || c.Profile.MonthlyListeners != "10" {
		t.Fatalf("unexpected profile %+v", c.Profile)
	}
	if len(c.Skills) != 1 || c.Skills[0].Experience != "6 yrs" {
		t.Fatalf("unexpected skills %+v", c.Skills)
	}
	if len(c.Projects) != 1 || c.Projects[0].Link != nil || c.Projects[0].Order == nil || *c.Projects[0].Order != 1 {
		t.Fatalf("unexpected projects %+v", c.Projects)
	}

	if _, err := ParseContent([]byte("skills:\n  - nmae: Go\n")); err == nil {
		t.Fatalf("expected unknown field error")
	}
}
