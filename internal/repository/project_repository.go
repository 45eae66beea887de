package repository

import (
	"context"

	"portfolio/internal/database"
	"portfolio/internal/domain/portfolio"
)

const projectColumns = `id, title, subtitle, gradient, image_url, link, sort_order`

func (s *Store) GetProjects(ctx context.Context) ([]portfolio.Project, error) {
	rows, err := s.db.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
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

func (s *Store) CreateProject(ctx context.Context, in portfolio.ProjectInput) (portfolio.Project, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO projects (title, subtitle, gradient, image_url, link, sort_order)
		 VALUES ($1, $2, $3, $4, $5, COALESCE(CAST($6 AS INTEGER), (SELECT COALESCE(MAX(sort_order) + 1, 0) FROM projects)))
		 RETURNING `+projectColumns,
		in.Title, in.Subtitle, in.Gradient, in.ImageURL, in.Link, in.Order,
	)
	return scanProject(row)
}

func (s *Store) UpdateProject(ctx context.Context, id int64, patch portfolio.ProjectPatch) (portfolio.Project, error) {
	var set setClause
	setIf(&set, "title", patch.Title)
	setIf(&set, "subtitle", patch.Subtitle)
	setIf(&set, "gradient", patch.Gradient)
	if patch.ImageURL.Set {
		set.add("image_url", patch.ImageURL.Value)
	}
	if patch.Link.Set {
		set.add("link", patch.Link.Value)
	}
	setIf(&set, "sort_order", patch.Order)

	if set.empty() {
		row := s.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
		p, err := scanProject(row)
		return p, notFound(err)
	}

	q, args := set.update("projects", id, projectColumns)
	p, err := scanProject(s.db.QueryRow(ctx, q, args...))
	return p, notFound(err)
}

func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func (s *Store) ClearProjects(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DELETE FROM projects`)
	return err
}

func scanProject(row database.Row) (portfolio.Project, error) {
	var p portfolio.Project
	if err := row.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Gradient, &p.ImageURL, &p.Link, &p.Order); err != nil {
		return portfolio.Project{}, err
	}
	return p, nil
}
