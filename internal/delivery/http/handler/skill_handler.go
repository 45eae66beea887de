package handler

import (
	"portfolio/internal/domain/portfolio"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router, admin Guard) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", admin, h.Create)
	grp.Patch("/:id", admin, h.Update)
	grp.Delete("/:id", admin, h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return fromUsecase(err, "Failed to fetch skills", "")
	}
	return response.Success(c, fiber.StatusOK, items)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	in, err := portfolio.DecodeSkillInput(c.Body())
	if err != nil {
		return fromUsecase(err, "Failed to create skill", "")
	}

	created, err := h.uc.CreateSkill(c.Context(), in)
	if err != nil {
		return fromUsecase(err, "Failed to create skill", "")
	}
	return response.Success(c, fiber.StatusOK, created)
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	patch, err := portfolio.DecodeSkillPatch(c.Body())
	if err != nil {
		return fromUsecase(err, "Failed to update skill", "")
	}

	updated, err := h.uc.UpdateSkill(c.Context(), id, patch)
	if err != nil {
		return fromUsecase(err, "Failed to update skill", "Skill not found")
	}
	return response.Success(c, fiber.StatusOK, updated)
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteSkill(c.Context(), id); err != nil {
		return fromUsecase(err, "Failed to delete skill", "")
	}
	return response.Deleted(c)
}
