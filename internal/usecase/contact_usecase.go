package usecase

import (
	"context"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/observability"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

type ContactUsecase interface {
	Submit(ctx context.Context, in portfolio.ContactInput) (portfolio.ContactSubmission, error)
	ListSubmissions(ctx context.Context) ([]portfolio.ContactSubmission, error)
}

type Contact struct {
	repo   repository.ContactRepository
	logger *zap.Logger
}

func NewContactUsecase(repo repository.ContactRepository, logger *zap.Logger) *Contact {
	return &Contact{repo: repo, logger: loggerOrNop(logger)}
}

func (u *Contact) Submit(ctx context.Context, in portfolio.ContactInput) (portfolio.ContactSubmission, error) {
	if err := in.Validate(); err != nil {
		return portfolio.ContactSubmission{}, err
	}

	sub, err := u.repo.CreateContactSubmission(ctx, in)
	if err != nil {
		u.logger.Error("create contact submission failed", zap.Error(err))
		return portfolio.ContactSubmission{}, ErrInternal
	}
	observability.ContactSubmissionsTotal.Inc()
	u.logger.Info("contact submission received", zap.Int64("id", sub.ID))
	return sub, nil
}

func (u *Contact) ListSubmissions(ctx context.Context) ([]portfolio.ContactSubmission, error) {
	subs, err := u.repo.GetContactSubmissions(ctx)
	if err != nil {
		u.logger.Error("list contact submissions failed", zap.Error(err))
		return nil, ErrInternal
	}
	return subs, nil
}
