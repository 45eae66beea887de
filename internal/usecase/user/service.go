package user

import (
	"context"
	"errors"
	"strings"

	"portfolio/internal/domain/user"
	ucauth "portfolio/internal/usecase/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

// Service manages admin accounts.
type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetMe(ctx context.Context, userID int64) (user.User, error) {
	usr, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

// EnsureAdmin creates the account unless the username already exists. The
// returned bool reports whether a new account was created.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (user.User, bool, error) {
	username = strings.TrimSpace(username)
	if err := ucauth.ValidateCredentials(username, password); err != nil {
		return user.User{}, false, ErrInvalidInput
	}

	existing, err := s.users.GetUserByUsername(ctx, username)
	if err == nil {
		return sanitizeUser(existing), false, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, false, ErrInternal
	}

	hash, err := ucauth.HashPassword(password)
	if err != nil {
		return user.User{}, false, ErrInternal
	}

	created, err := s.users.CreateUser(ctx, user.CreateInput{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			existing, gerr := s.users.GetUserByUsername(ctx, username)
			if gerr == nil {
				return sanitizeUser(existing), false, nil
			}
		}
		return user.User{}, false, ErrInternal
	}
	return sanitizeUser(created), true, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
