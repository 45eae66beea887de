package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/database"
	"portfolio/internal/domain/portfolio"
	"portfolio/internal/domain/user"
)

type ProfileRepository interface {
	GetProfile(ctx context.Context) (*portfolio.Profile, error)
	UpdateProfile(ctx context.Context, in portfolio.ProfileInput) (portfolio.Profile, error)
}

type SkillRepository interface {
	GetSkills(ctx context.Context) ([]portfolio.Skill, error)
	CreateSkill(ctx context.Context, in portfolio.SkillInput) (portfolio.Skill, error)
	UpdateSkill(ctx context.Context, id int64, patch portfolio.SkillPatch) (portfolio.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
	ClearSkills(ctx context.Context) error
}

type ProjectRepository interface {
	GetProjects(ctx context.Context) ([]portfolio.Project, error)
	CreateProject(ctx context.Context, in portfolio.ProjectInput) (portfolio.Project, error)
	UpdateProject(ctx context.Context, id int64, patch portfolio.ProjectPatch) (portfolio.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	ClearProjects(ctx context.Context) error
}

type BlogRepository interface {
	GetBlogPosts(ctx context.Context, publishedOnly bool) ([]portfolio.BlogPost, error)
	GetBlogPost(ctx context.Context, id int64) (portfolio.BlogPost, error)
	CreateBlogPost(ctx context.Context, in portfolio.BlogPostInput) (portfolio.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id int64, patch portfolio.BlogPostPatch) (portfolio.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id int64) error
}

type ContactRepository interface {
	CreateContactSubmission(ctx context.Context, in portfolio.ContactInput) (portfolio.ContactSubmission, error)
	GetContactSubmissions(ctx context.Context) ([]portfolio.ContactSubmission, error)
}

type PageViewRepository interface {
	CreatePageView(ctx context.Context, in portfolio.PageViewInput) (portfolio.PageView, error)
	GetPageViews(ctx context.Context, filter portfolio.PageViewFilter) ([]portfolio.PageView, error)
	GetPageViewStats(ctx context.Context, filter portfolio.PageViewFilter) (portfolio.PageViewStats, error)
}

// Storage is the only component that touches persisted portfolio state. Every
// method is a single statement against a single table.
type Storage interface {
	user.Repository
	ProfileRepository
	SkillRepository
	ProjectRepository
	BlogRepository
	ContactRepository
	PageViewRepository

	Ping(ctx context.Context) error
}

type Store struct {
	db  database.DB
	now func() time.Time
}

var _ Storage = (*Store)(nil)

func NewStore(db database.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Ping reports whether the underlying database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil db")
	}
	return s.db.Ping(ctx)
}

// timestamp truncates to microseconds, the precision both drivers keep.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func notFound(err error) error {
	if errors.Is(err, database.ErrNoRows) {
		return portfolio.ErrNotFound
	}
	return err
}

// setClause accumulates "column = $n" assignments for partial updates.
type setClause struct {
	cols []string
	args []any
}

func (c *setClause) add(col string, v any) {
	c.args = append(c.args, v)
	c.cols = append(c.cols, fmt.Sprintf("%s = $%d", col, len(c.args)))
}

func (c *setClause) empty() bool {
	return len(c.cols) == 0
}

// update renders "UPDATE table SET ... WHERE id = $n RETURNING returning".
func (c *setClause) update(table string, id int64, returning string) (string, []any) {
	args := append(c.args, id)
	q := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(c.cols, ", "), len(args), returning,
	)
	return q, args
}

func setIf[T any](c *setClause, col string, v *T) {
	if v != nil {
		c.add(col, *v)
	}
}
