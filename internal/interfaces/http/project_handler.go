package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
	"github.com/wanjiru-dev/consultpro-api/internal/application/projects"
)

// ProjectHandler handles project requests (protected).
type ProjectHandler struct {
	uc *projects.ProjectUseCase
}

// NewProjectHandler builds the handler.
func NewProjectHandler(uc *projects.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create POST /api/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	p, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// List GET /api/projects?status=&client_id=&limit=20&offset=0
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	list, err := h.uc.List(c.Context(), c.Query("status"), c.Query("client_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// Update PUT /api/projects/:id
// Replaces subcontractor assignments when subcontractor_ids is present.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	p, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// Delete DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
