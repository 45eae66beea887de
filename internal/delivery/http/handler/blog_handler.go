package handler

import (
	"portfolio/internal/domain/portfolio"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type BlogHandler struct {
	uc usecase.BlogUsecase
}

func NewBlogHandler(uc usecase.BlogUsecase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

func (h *BlogHandler) RegisterRoutes(r fiber.Router, admin Guard) {
	if r == nil {
		return
	}

	grp := r.Group("/blog")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Post("/", admin, h.Create)
	grp.Patch("/:id", admin, h.Update)
	grp.Delete("/:id", admin, h.Delete)
}

// List honours ?published=true only for that exact value.
func (h *BlogHandler) List(c fiber.Ctx) error {
	publishedOnly := c.Query("published") == "true"

	posts, err := h.uc.ListPosts(c.Context(), publishedOnly)
	if err != nil {
		return fromUsecase(err, "Failed to fetch blog posts", "")
	}
	return response.Success(c, fiber.StatusOK, posts)
}

func (h *BlogHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	post, err := h.uc.GetPost(c.Context(), id)
	if err != nil {
		return fromUsecase(err, "Failed to fetch blog post", "Blog post not found")
	}
	return response.Success(c, fiber.StatusOK, post)
}

func (h *BlogHandler) Create(c fiber.Ctx) error {
	in, err := portfolio.DecodeBlogPostInput(c.Body())
	if err != nil {
		return fromUsecase(err, "Failed to create blog post", "")
	}

	created, err := h.uc.CreatePost(c.Context(), in)
	if err != nil {
		return fromUsecase(err, "Failed to create blog post", "")
	}
	return response.Success(c, fiber.StatusOK, created)
}

func (h *BlogHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	patch, err := portfolio.DecodeBlogPostPatch(c.Body())
	if err != nil {
		return fromUsecase(err, "Failed to update blog post", "")
	}

	updated, err := h.uc.UpdatePost(c.Context(), id, patch)
	if err != nil {
		return fromUsecase(err, "Failed to update blog post", "Blog post not found")
	}
	return response.Success(c, fiber.StatusOK, updated)
}

func (h *BlogHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeletePost(c.Context(), id); err != nil {
		return fromUsecase(err, "Failed to delete blog post", "")
	}
	return response.Deleted(c)
}
