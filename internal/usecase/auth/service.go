package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/domain/user"
)

const (
	maxCredentialLength = 255
	minPasswordLength   = 8
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

type LoginInput struct {
	Username string
	Password string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// Login checks the password against the stored bcrypt hash. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	username := normalizeUsername(in.Username)
	if username == "" || in.Password == "" {
		return user.User{}, ErrInvalidInput
	}
	if len(username) > maxCredentialLength || len(in.Password) > maxCredentialLength {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

// ValidateCredentials applies the account rules used when creating users.
func ValidateCredentials(username, password string) error {
	username = normalizeUsername(username)
	if username == "" || len(username) > maxCredentialLength {
		return ErrInvalidInput
	}
	if !isValidPassword(password) {
		return ErrInvalidInput
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

func isValidPassword(pw string) bool {
	pw = strings.TrimSpace(pw)
	return len(pw) >= minPasswordLength && len(pw) <= maxCredentialLength
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
