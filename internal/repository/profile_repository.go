package repository

import (
	"context"
	"errors"

	"portfolio/internal/database"
	"portfolio/internal/domain/portfolio"
)

const profileColumns = `id, name, role, monthly_listeners, bio, education, github_url, linkedin_url, avatar_url, updated_at`

// GetProfile returns nil when the profile has not been created yet.
func (s *Store) GetProfile(ctx context.Context) (*portfolio.Profile, error) {
	row := s.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profile WHERE id = $1`, portfolio.ProfileID)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpdateProfile inserts the singleton row or overwrites it and stamps updated_at.
func (s *Store) UpdateProfile(ctx context.Context, in portfolio.ProfileInput) (portfolio.Profile, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO profile (`+profileColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name,
		   role = EXCLUDED.role,
		   monthly_listeners = EXCLUDED.monthly_listeners,
		   bio = EXCLUDED.bio,
		   education = EXCLUDED.education,
		   github_url = EXCLUDED.github_url,
		   linkedin_url = EXCLUDED.linkedin_url,
		   avatar_url = EXCLUDED.avatar_url,
		   updated_at = EXCLUDED.updated_at
		 RETURNING `+profileColumns,
		portfolio.ProfileID,
		in.Name,
		in.Role,
		in.MonthlyListeners,
		in.Bio,
		in.Education,
		in.GithubURL,
		in.LinkedinURL,
		in.AvatarURL,
		s.timestamp(),
	)
	return scanProfile(row)
}

func scanProfile(row database.Row) (portfolio.Profile, error) {
	var p portfolio.Profile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Role,
		&p.MonthlyListeners,
		&p.Bio,
		&p.Education,
		&p.GithubURL,
		&p.LinkedinURL,
		&p.AvatarURL,
		&p.UpdatedAt,
	)
	if err != nil {
		return portfolio.Profile{}, err
	}
	return p, nil
}
