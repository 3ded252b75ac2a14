package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wanjiru-dev/consultpro-api/internal/application/analytics"
	"github.com/wanjiru-dev/consultpro-api/internal/application/auth"
	"github.com/wanjiru-dev/consultpro-api/internal/application/billing"
	"github.com/wanjiru-dev/consultpro-api/internal/application/compliance"
	"github.com/wanjiru-dev/consultpro-api/internal/application/crm"
	"github.com/wanjiru-dev/consultpro-api/internal/application/documents"
	"github.com/wanjiru-dev/consultpro-api/internal/application/projects"
	"github.com/wanjiru-dev/consultpro-api/internal/infrastructure/gcs"
	infrapdf "github.com/wanjiru-dev/consultpro-api/internal/infrastructure/pdf"
	"github.com/wanjiru-dev/consultpro-api/internal/infrastructure/postgres"
	httpRouter "github.com/wanjiru-dev/consultpro-api/internal/interfaces/http"
	"github.com/wanjiru-dev/consultpro-api/pkg/config"
	"github.com/wanjiru-dev/consultpro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	objectStorage, err := gcs.New(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsJSON)
	if err != nil {
		log.Fatal().Err(err).Msg("object storage")
	}
	defer objectStorage.Close()

	txRunner := postgres.NewTxRunner(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool, txRunner)
	complianceRepo := postgres.NewComplianceEventRepository(pool)
	anniversaryRepo := postgres.NewAnniversaryRepository(pool)
	certificationRepo := postgres.NewCertificationRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool, txRunner)
	subcontractorRepo := postgres.NewSubcontractorRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := crm.NewClientUseCase(clientRepo)
	documentUC := documents.NewDocumentUseCase(
		documentRepo, clientRepo, objectStorage,
		time.Duration(cfg.Storage.SignedURLTTL)*time.Minute,
	)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, clientRepo, cfg.Billing.DueDays)

	firm := billing.FirmDetails{
		Name:     cfg.Billing.FirmName,
		TaxID:    cfg.Billing.FirmTaxID,
		Address:  cfg.Billing.FirmAddress,
		Email:    cfg.Billing.FirmEmail,
		Currency: cfg.Billing.CurrencyCode,
	}
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, clientRepo, pdfGenerator, firm)

	complianceUC := compliance.NewEventUseCase(complianceRepo, clientRepo)
	anniversaryUC := compliance.NewAnniversaryUseCase(anniversaryRepo, clientRepo)
	certificationUC := compliance.NewCertificationUseCase(certificationRepo, clientRepo)
	projectUC := projects.NewProjectUseCase(projectRepo, subcontractorRepo, clientRepo)
	subcontractorUC := projects.NewSubcontractorUseCase(subcontractorRepo)
	dashboardUC := analytics.NewDashboardUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ConsultPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ClientUC:        clientUC,
		DocumentUC:      documentUC,
		InvoiceUC:       invoiceUC,
		InvoicePDFUC:    invoicePDFUC,
		ComplianceUC:    complianceUC,
		AnniversaryUC:   anniversaryUC,
		CertificationUC: certificationUC,
		ProjectUC:       projectUC,
		SubcontractorUC: subcontractorUC,
		DashboardUC:     dashboardUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
