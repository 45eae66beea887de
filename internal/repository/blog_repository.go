package repository

import (
	"context"

	"portfolio/internal/database"
	"portfolio/internal/domain/portfolio"
)

const blogPostColumns = `id, title, subtitle, content, cover_gradient, published, created_at, updated_at`

// GetBlogPosts lists posts newest first, optionally only the published ones.
func (s *Store) GetBlogPosts(ctx context.Context, publishedOnly bool) ([]portfolio.BlogPost, error) {
	var (
		rows database.Rows
		err  error
	)
	if publishedOnly {
		rows, err = s.db.Query(ctx,
			`SELECT `+blogPostColumns+` FROM blog_posts WHERE published = $1 ORDER BY created_at DESC, id DESC`,
			true,
		)
	} else {
		rows, err = s.db.Query(ctx, `SELECT `+blogPostColumns+` FROM blog_posts ORDER BY created_at DESC, id DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.BlogPost, 0)
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) GetBlogPost(ctx context.Context, id int64) (portfolio.BlogPost, error) {
	row := s.db.QueryRow(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE id = $1`, id)
	p, err := scanBlogPost(row)
	return p, notFound(err)
}

func (s *Store) CreateBlogPost(ctx context.Context, in portfolio.BlogPostInput) (portfolio.BlogPost, error) {
	now := s.timestamp()
	row := s.db.QueryRow(ctx,
		`INSERT INTO blog_posts (title, subtitle, content, cover_gradient, published, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+blogPostColumns,
		in.Title, in.Subtitle, in.Content, in.CoverGradient, in.Published, now, now,
	)
	return scanBlogPost(row)
}

// UpdateBlogPost applies the patch and always refreshes updated_at.
func (s *Store) UpdateBlogPost(ctx context.Context, id int64, patch portfolio.BlogPostPatch) (portfolio.BlogPost, error) {
	var set setClause
	setIf(&set, "title", patch.Title)
	setIf(&set, "subtitle", patch.Subtitle)
	setIf(&set, "content", patch.Content)
	setIf(&set, "cover_gradient", patch.CoverGradient)
	setIf(&set, "published", patch.Published)
	set.add("updated_at", s.timestamp())

	q, args := set.update("blog_posts", id, blogPostColumns)
	p, err := scanBlogPost(s.db.QueryRow(ctx, q, args...))
	return p, notFound(err)
}

func (s *Store) DeleteBlogPost(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	return err
}

func scanBlogPost(row database.Row) (portfolio.BlogPost, error) {
	var p portfolio.BlogPost
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Subtitle,
		&p.Content,
		&p.CoverGradient,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return portfolio.BlogPost{}, err
	}
	return p, nil
}
