package main

import (
	"fmt"
	"log"

	"gstbill/internal/config"
	emailnoop "gstbill/internal/email/noop"
	"gstbill/internal/email/ses"
	"gstbill/internal/handler"
	"gstbill/internal/port"
	"gstbill/internal/repository/postgres"
	"gstbill/internal/router"
	"gstbill/internal/service"
	s3storage "gstbill/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	partyRepo := postgres.NewPartyRepo(db)
	documentRepo := postgres.NewDocumentRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	// Receipt storage is optional; without a bucket the endpoints report
	// upload failures instead of panicking.
	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = emailnoop.NewNoopSender()
	}

	// Initialize services
	partySvc := service.NewPartyService(partyRepo)
	documentSvc := service.NewDocumentService(
		documentRepo, partyRepo, storage, emailSender,
		cfg.Seller.Profile(), cfg.S3, cfg.Billing)
	paymentSvc := service.NewPaymentService(paymentRepo, documentRepo, partyRepo, emailSender)
	reportSvc := service.NewReportService(reportRepo, partyRepo)

	// Initialize handlers
	healthH := handler.NewHealthHandler(db)
	partyH := handler.NewPartyHandler(partySvc)
	documentH := handler.NewDocumentHandler(documentSvc)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	reportH := handler.NewReportHandler(reportSvc)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, healthH, partyH, documentH, paymentH, reportH)

	log.Printf("Server starting on %s (seller: %s, state: %s)",
		cfg.Server.Port, cfg.Seller.Name, cfg.Seller.StateOfSupply)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
