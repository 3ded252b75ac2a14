package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjiru-dev/consultpro-api/internal/application/compliance"
	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
)

// AnniversaryHandler handles service anniversary requests (protected).
type AnniversaryHandler struct {
	uc *compliance.AnniversaryUseCase
}

// NewAnniversaryHandler builds the handler.
func NewAnniversaryHandler(uc *compliance.AnniversaryUseCase) *AnniversaryHandler {
	return &AnniversaryHandler{uc: uc}
}

// Create POST /api/anniversaries
func (h *AnniversaryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAnniversaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	a, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// List GET /api/anniversaries?client_id=&limit=20&offset=0
func (h *AnniversaryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	list, err := h.uc.List(c.Context(), c.Query("client_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/anniversaries/:id
func (h *AnniversaryHandler) GetByID(c *fiber.Ctx) error {
	a, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(a)
}

// Update PUT /api/anniversaries/:id
func (h *AnniversaryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAnniversaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	a, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(a)
}

// Delete DELETE /api/anniversaries/:id
func (h *AnniversaryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
