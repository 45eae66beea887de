package repository

import (
	"context"
	"fmt"
	"strings"

	"portfolio/internal/database"
	"portfolio/internal/domain/portfolio"
)

const pageViewColumns = `id, path, timestamp`

func (s *Store) CreatePageView(ctx context.Context, in portfolio.PageViewInput) (portfolio.PageView, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO page_views (path, timestamp) VALUES ($1, $2) RETURNING `+pageViewColumns,
		in.Path, s.timestamp(),
	)
	return scanPageView(row)
}

// GetPageViews lists views newest first within the optional time window.
func (s *Store) GetPageViews(ctx context.Context, filter portfolio.PageViewFilter) ([]portfolio.PageView, error) {
	where, args := pageViewWhere(filter)
	rows, err := s.db.Query(ctx,
		`SELECT `+pageViewColumns+` FROM page_views`+where+` ORDER BY timestamp DESC, id DESC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.PageView, 0)
	for rows.Next() {
		v, err := scanPageView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPageViewStats counts views per path, most viewed first.
func (s *Store) GetPageViewStats(ctx context.Context, filter portfolio.PageViewFilter) (portfolio.PageViewStats, error) {
	where, args := pageViewWhere(filter)
	rows, err := s.db.Query(ctx,
		`SELECT path, COUNT(*) AS views FROM page_views`+where+` GROUP BY path ORDER BY views DESC, path ASC`,
		args...,
	)
	if err != nil {
		return portfolio.PageViewStats{}, err
	}
	defer rows.Close()

	stats := portfolio.PageViewStats{Paths: make([]portfolio.PathCount, 0)}
	for rows.Next() {
		var pc portfolio.PathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			return portfolio.PageViewStats{}, err
		}
		stats.Total += pc.Count
		stats.Paths = append(stats.Paths, pc)
	}
	if err := rows.Err(); err != nil {
		return portfolio.PageViewStats{}, err
	}
	return stats, nil
}

func pageViewWhere(filter portfolio.PageViewFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if !filter.From.IsZero() {
		args = append(args, filter.From.UTC())
		conds = append(conds, fmt.Sprintf("timestamp >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To.UTC())
		conds = append(conds, fmt.Sprintf("timestamp <= $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanPageView(row database.Row) (portfolio.PageView, error) {
	var v portfolio.PageView
	if err := row.Scan(&v.ID, &v.Path, &v.Timestamp); err != nil {
		return portfolio.PageView{}, err
	}
	return v, nil
}
