package usecase

import (
	"context"
	"errors"

	"portfolio/internal/domain/user"
	"portfolio/internal/pkg/jwt"
	ucauth "portfolio/internal/usecase/auth"
	ucuser "portfolio/internal/usecase/user"

	"go.uber.org/zap"
)

type AuthUsecase interface {
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Me(ctx context.Context, userID int64) (user.User, error)
}

type Auth struct {
	authSvc *ucauth.Service
	userSvc *ucuser.Service
	jwt     jwt.Service
	logger  *zap.Logger
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authSvc: ucauth.NewService(users),
		userSvc: ucuser.NewService(users),
		jwt:     jwtSvc,
		logger:  loggerOrNop(logger),
	}
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		if errors.Is(err, ucauth.ErrInternal) {
			u.logger.Error("login lookup failed", zap.String("username", in.Username))
		}
		return user.User{}, "", "", err
	}

	access, refresh, err := u.issue(usr)
	if err != nil {
		return user.User{}, "", "", err
	}
	u.logger.Info("admin login", zap.Int64("user_id", usr.ID))
	return usr, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.userSvc.GetMe(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ucuser.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	return u.issue(usr)
}

func (u *Auth) Me(ctx context.Context, userID int64) (user.User, error) {
	usr, err := u.userSvc.GetMe(ctx, userID)
	if err != nil {
		if errors.Is(err, ucuser.ErrNotFound) {
			return user.User{}, ErrUnauthorized
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}

func (u *Auth) issue(usr user.User) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Username)
	if err != nil {
		u.logger.Error("sign access token failed", zap.Error(err))
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		u.logger.Error("sign refresh token failed", zap.Error(err))
		return "", "", ErrInternal
	}
	return access, refresh, nil
}
