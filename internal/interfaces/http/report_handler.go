package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjiru-dev/consultpro-api/internal/application/analytics"
)

// ReportHandler handles reporting requests (protected).
type ReportHandler struct {
	uc *analytics.DashboardUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *analytics.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
