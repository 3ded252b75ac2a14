package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjiru-dev/consultpro-api/internal/application/compliance"
	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
)

// CertificationHandler handles client certification requests (protected).
type CertificationHandler struct {
	uc *compliance.CertificationUseCase
}

// NewCertificationHandler builds the handler.
func NewCertificationHandler(uc *compliance.CertificationUseCase) *CertificationHandler {
	return &CertificationHandler{uc: uc}
}

// Create POST /api/certifications
func (h *CertificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCertificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	cert, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cert)
}

// List GET /api/certifications?client_id=&limit=20&offset=0
func (h *CertificationHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/certifications/:id
func (h *CertificationHandler) GetByID(c *fiber.Ctx) error {
	cert, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cert)
}

// Update PUT /api/certifications/:id
func (h *CertificationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCertificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	cert, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cert)
}

// Delete DELETE /api/certifications/:id
func (h *CertificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
