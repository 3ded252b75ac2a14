package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjiru-dev/consultpro-api/internal/application/documents"
	"github.com/wanjiru-dev/consultpro-api/internal/application/dto"
)

// DocumentHandler handles document storage requests (protected).
type DocumentHandler struct {
	uc *documents.DocumentUseCase
}

// NewDocumentHandler builds the handler.
func NewDocumentHandler(uc *documents.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Upload POST /api/documents
// Multipart form: `file` plus the metadata fields of UploadDocumentRequest.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	var in dto.UploadDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid form fields"})
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file form field is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cannot read uploaded file"})
	}
	defer file.Close()

	doc, err := h.uc.Upload(c.Context(), in, fileHeader.Filename, fileHeader.Size, file, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// List GET /api/documents?category=&client_id=&limit=20&offset=0
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	list, err := h.uc.List(c.Context(), c.Query("category"), c.Query("client_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Download GET /api/documents/:id/download
// Responds with a time-limited signed URL rather than streaming the binary.
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	url, err := h.uc.DownloadURL(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

// Delete DELETE /api/documents/:id
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
