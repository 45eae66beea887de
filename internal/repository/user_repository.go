package repository

import (
	"context"
	"errors"

	"portfolio/internal/database"
	"portfolio/internal/domain/user"
)

const userColumns = `id, username, password`

func (s *Store) GetUser(ctx context.Context, id int64) (user.User, error) {
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (s *Store) CreateUser(ctx context.Context, in user.CreateInput) (user.User, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING `+userColumns,
		in.Username, in.PasswordHash,
	)
	u, err := scanUser(row)
	if errors.Is(err, database.ErrUniqueViolation) {
		return user.User{}, user.ErrUsernameTaken
	}
	return u, err
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
