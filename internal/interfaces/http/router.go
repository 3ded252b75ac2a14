package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjiru-dev/consultpro-api/internal/application/analytics"
	"github.com/wanjiru-dev/consultpro-api/internal/application/auth"
	"github.com/wanjiru-dev/consultpro-api/internal/application/billing"
	"github.com/wanjiru-dev/consultpro-api/internal/application/compliance"
	"github.com/wanjiru-dev/consultpro-api/internal/application/crm"
	"github.com/wanjiru-dev/consultpro-api/internal/application/documents"
	"github.com/wanjiru-dev/consultpro-api/internal/application/projects"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ClientUC        *crm.ClientUseCase
	DocumentUC      *documents.DocumentUseCase
	InvoiceUC       *billing.InvoiceUseCase
	InvoicePDFUC    *billing.PDFUseCase
	ComplianceUC    *compliance.EventUseCase
	AnniversaryUC   *compliance.AnniversaryUseCase
	CertificationUC *compliance.CertificationUseCase
	ProjectUC       *projects.ProjectUseCase
	SubcontractorUC *projects.SubcontractorUseCase
	DashboardUC     *analytics.DashboardUseCase
	JWTSecret       string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything below requires a Bearer token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", RequireRole(entity.RoleAdmin), clientHandler.Delete)

	docs := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	docs.Post("/", documentHandler.Upload)
	docs.Get("/", documentHandler.List)
	docs.Get("/:id/download", documentHandler.Download)
	docs.Delete("/:id", RequireRole(entity.RoleAdmin), documentHandler.Delete)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Delete("/:id", RequireRole(entity.RoleAdmin), invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	complianceGroup := protected.Group("/compliance")
	complianceHandler := NewComplianceHandler(deps.ComplianceUC)
	complianceGroup.Post("/", complianceHandler.Create)
	complianceGroup.Get("/", complianceHandler.List)
	complianceGroup.Get("/:id", complianceHandler.GetByID)
	complianceGroup.Put("/:id", complianceHandler.Update)
	complianceGroup.Delete("/:id", complianceHandler.Delete)

	anniversaries := protected.Group("/anniversaries")
	anniversaryHandler := NewAnniversaryHandler(deps.AnniversaryUC)
	anniversaries.Post("/", anniversaryHandler.Create)
	anniversaries.Get("/", anniversaryHandler.List)
	anniversaries.Get("/:id", anniversaryHandler.GetByID)
	anniversaries.Put("/:id", anniversaryHandler.Update)
	anniversaries.Delete("/:id", anniversaryHandler.Delete)

	certifications := protected.Group("/certifications")
	certificationHandler := NewCertificationHandler(deps.CertificationUC)
	certifications.Post("/", certificationHandler.Create)
	certifications.Get("/", certificationHandler.List)
	certifications.Get("/:id", certificationHandler.GetByID)
	certifications.Put("/:id", certificationHandler.Update)
	certifications.Delete("/:id", certificationHandler.Delete)

	projectGroup := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projectGroup.Post("/", projectHandler.Create)
	projectGroup.Get("/", projectHandler.List)
	projectGroup.Get("/:id", projectHandler.GetByID)
	projectGroup.Put("/:id", projectHandler.Update)
	projectGroup.Delete("/:id", RequireRole(entity.RoleAdmin), projectHandler.Delete)

	subcontractors := protected.Group("/subcontractors")
	subcontractorHandler := NewSubcontractorHandler(deps.SubcontractorUC)
	subcontractors.Post("/", subcontractorHandler.Create)
	subcontractors.Get("/", subcontractorHandler.List)
	subcontractors.Get("/:id", subcontractorHandler.GetByID)
	subcontractors.Put("/:id", subcontractorHandler.Update)
	subcontractors.Delete("/:id", RequireRole(entity.RoleAdmin), subcontractorHandler.Delete)

	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.DashboardUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
}
