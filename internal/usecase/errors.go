package usecase

import (
	"errors"

	"portfolio/internal/domain/portfolio"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = portfolio.ErrNotFound
	ErrInternal            = errors.New("internal error")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
