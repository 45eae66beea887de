package handler

import (
	"portfolio/internal/domain/portfolio"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router, admin Guard) {
	if r == nil {
		return
	}

	r.Get("/profile", h.Get)
	r.Put("/profile", admin, h.Update)
}

// Get responds with the profile, or null before one has been stored.
func (h *ProfileHandler) Get(c fiber.Ctx) error {
	p, err := h.uc.GetProfile(c.Context())
	if err != nil {
		return fromUsecase(err, "Failed to fetch profile", "")
	}
	return response.Success(c, fiber.StatusOK, p)
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	in, err := portfolio.DecodeProfileInput(c.Body())
	if err != nil {
		return fromUsecase(err, "Failed to update profile", "")
	}

	p, err := h.uc.UpdateProfile(c.Context(), in)
	if err != nil {
		return fromUsecase(err, "Failed to update profile", "")
	}
	return response.Success(c, fiber.StatusOK, p)
}
