package handler

import (
	"portfolio/internal/domain/portfolio"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router, admin Guard) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Post("/", admin, h.Create)
	grp.Patch("/:id", admin, h.Update)
	grp.Delete("/:id", admin, h.Delete)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListProjects(c.Context())
	if err != nil {
		return fromUsecase(err, "Failed to fetch projects", "")
	}
	return response.Success(c, fiber.StatusOK, items)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	in, err := portfolio.DecodeProjectInput(c.Body())
	if err != nil {
		return fromUsecase(err, "Failed to create project", "")
	}

	created, err := h.uc.CreateProject(c.Context(), in)
	if err != nil {
		return fromUsecase(err, "Failed to create project", "")
	}
	return response.Success(c, fiber.StatusOK, created)
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	patch, err := portfolio.DecodeProjectPatch(c.Body())
	if err != nil {
		return fromUsecase(err, "Failed to update project", "")
	}

	updated, err := h.uc.UpdateProject(c.Context(), id, patch)
	if err != nil {
		return fromUsecase(err, "Failed to update project", "Project not found")
	}
	return response.Success(c, fiber.StatusOK, updated)
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteProject(c.Context(), id); err != nil {
		return fromUsecase(err, "Failed to delete project", "")
	}
	return response.Deleted(c)
}
