package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjiru-dev/consultpro-api/internal/application/compliance"
	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
)

// ComplianceHandler handles compliance event requests (protected).
type ComplianceHandler struct {
	uc *compliance.EventUseCase
}

// NewComplianceHandler builds the handler.
func NewComplianceHandler(uc *compliance.EventUseCase) *ComplianceHandler {
	return &ComplianceHandler{uc: uc}
}

// Create POST /api/compliance
func (h *ComplianceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateComplianceEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	event, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// List GET /api/compliance?status=&client_id=&priority=&limit=20&offset=0
func (h *ComplianceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	list, err := h.uc.List(c.Context(), c.Query("status"), c.Query("client_id"), c.Query("priority"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/compliance/:id
func (h *ComplianceHandler) GetByID(c *fiber.Ctx) error {
	event, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}

// Update PUT /api/compliance/:id
func (h *ComplianceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateComplianceEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	event, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}

// Delete DELETE /api/compliance/:id
func (h *ComplianceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
