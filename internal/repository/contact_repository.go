package repository

import (
	"context"

	"portfolio/internal/database"
	"portfolio/internal/domain/portfolio"
)

const contactColumns = `id, name, email, message, submitted_at`

func (s *Store) CreateContactSubmission(ctx context.Context, in portfolio.ContactInput) (portfolio.ContactSubmission, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, message, submitted_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+contactColumns,
		in.Name, in.Email, in.Message, s.timestamp(),
	)
	return scanContact(row)
}

func (s *Store) GetContactSubmissions(ctx context.Context) ([]portfolio.ContactSubmission, error) {
	rows, err := s.db.Query(ctx, `SELECT `+contactColumns+` FROM contact_submissions ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.ContactSubmission, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanContact(row database.Row) (portfolio.ContactSubmission, error) {
	var c portfolio.ContactSubmission
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.SubmittedAt); err != nil {
		return portfolio.ContactSubmission{}, err
	}
	return c, nil
}
