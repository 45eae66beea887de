package handler

import (
	"portfolio/internal/domain/portfolio"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContactHandler struct {
	uc usecase.ContactUsecase
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterRoutes(r fiber.Router, admin Guard) {
	if r == nil {
		return
	}

	grp := r.Group("/contact")
	grp.Post("/", h.Submit)
	grp.Get("/submissions", admin, h.List)
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	in, err := portfolio.DecodeContactInput(c.Body())
	if err != nil {
		return fromUsecase(err, "Failed to submit contact form", "")
	}

	sub, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		return fromUsecase(err, "Failed to submit contact form", "")
	}
	return response.Success(c, fiber.StatusOK, sub)
}

func (h *ContactHandler) List(c fiber.Ctx) error {
	subs, err := h.uc.ListSubmissions(c.Context())
	if err != nil {
		return fromUsecase(err, "Failed to fetch submissions", "")
	}
	return response.Success(c, fiber.StatusOK, subs)
}
