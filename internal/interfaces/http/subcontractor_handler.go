package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
	"github.com/wanjiru-dev/consultpro-api/internal/application/projects"
)

// SubcontractorHandler handles subcontractor requests (protected).
type SubcontractorHandler struct {
	uc *projects.SubcontractorUseCase
}

// NewSubcontractorHandler builds the handler.
func NewSubcontractorHandler(uc *projects.SubcontractorUseCase) *SubcontractorHandler {
	return &SubcontractorHandler{uc: uc}
}

// Create POST /api/subcontractors
func (h *SubcontractorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcontractorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	s, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

// List GET /api/subcontractors?limit=20&offset=0
func (h *SubcontractorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	list, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/subcontractors/:id
func (h *SubcontractorHandler) GetByID(c *fiber.Ctx) error {
	s, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// Update PUT /api/subcontractors/:id
func (h *SubcontractorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubcontractorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	s, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// Delete DELETE /api/subcontractors/:id
// Refused with 409 while the subcontractor is assigned to projects.
func (h *SubcontractorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
