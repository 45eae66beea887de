package handler

import (
	"errors"
	"strconv"
	"strings"

	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/domain/portfolio"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// fromUsecase maps a usecase error onto an HTTP error. failureMsg is the
// generic text returned for 500s.
func fromUsecase(err error, failureMsg, notFoundMsg string) error {
	if err == nil {
		return nil
	}

	var ve *portfolio.ValidationError
	switch {
	case errors.As(err, &ve):
		return middleware.NewAppError(fiber.StatusBadRequest, ve.Error(), ve.Fields, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = response.MessageNotFound
		}
		return middleware.NewAppError(fiber.StatusNotFound, notFoundMsg, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, failureMsg, nil, err)
	}
}

func parseID(c fiber.Ctx) (int64, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}

// Guard is the middleware placed in front of admin routes.
type Guard = fiber.Handler

// OpenGuard admits every request. It stands in for auth when admin auth is off.
func OpenGuard(c fiber.Ctx) error {
	return c.Next()
}
