package main

import (
	"fmt"
	"log"

	"insdocs/internal/config"
	"insdocs/internal/handler"
	"insdocs/internal/recognize"
	"insdocs/internal/repository/postgres"
	"insdocs/internal/router"
	"insdocs/internal/service"
	s3storage "insdocs/internal/storage/s3"

	_ "insdocs/internal/parser/debitnote"
	_ "insdocs/internal/parser/renewal"
	_ "insdocs/internal/parser/statement"
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
	userRepo := postgres.NewUserRepo(db)
	debitNoteRepo := postgres.NewDebitNoteRepo(db)
	statementRepo := postgres.NewAccountStatementRepo(db)
	renewalRepo := postgres.NewRenewalNoticeRepo(db)
	summaryRepo := postgres.NewDocumentSummaryRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize OCR
	recognizer := recognize.NewRecognizer(recognize.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.Lang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	})

	// Initialize services
	authSvc := service.NewAuthService(userRepo, &cfg.JWT)
	scanSvc := service.NewScanService(recognizer)
	docSvc := service.NewDocumentService(debitNoteRepo, statementRepo, renewalRepo, summaryRepo, s3Client, &cfg.S3)
	fileSvc := service.NewFileService(debitNoteRepo, statementRepo, renewalRepo, s3Client, &cfg.S3)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	scanH := handler.NewScanHandler(scanSvc)
	docH := handler.NewDocumentHandler(docSvc)
	fileH := handler.NewFileHandler(fileSvc)
	exportH := handler.NewExportHandler(docSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, scanH, docH, fileH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
