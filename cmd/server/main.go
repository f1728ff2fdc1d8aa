package main

import (
	"fmt"
	"log"

	"basesync/internal/config"
	"basesync/internal/email/noop"
	"basesync/internal/email/ses"
	"basesync/internal/handler"
	"basesync/internal/port"
	"basesync/internal/reconcile"
	"basesync/internal/repository/postgres"
	"basesync/internal/router"
	"basesync/internal/search"
	"basesync/internal/service"
	s3storage "basesync/internal/storage/s3"
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
	clientRepo := postgres.NewClientRepo(db)

	// Initialize storage
	retriever, err := s3storage.NewRetriever(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 retriever: %w", err)
	}

	// Initialize report delivery
	sender, err := newReportSender(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize report sender: %w", err)
	}

	// Initialize services. Search and sync share one guard so a sync run
	// and a search pass never read the exports concurrently.
	engine := search.NewEngine(retriever, &cfg.Sheets, &cfg.Search)
	reconciler := reconcile.New(clientRepo)
	guard := service.NewGuard()

	searchSvc := service.NewSearchService(engine, guard)
	syncSvc := service.NewSyncService(retriever, reconciler, sender, &cfg.Sheets, &cfg.Sync, guard)
	clientSvc := service.NewClientService(clientRepo)

	// Initialize handlers
	searchH := handler.NewSearchHandler(searchSvc)
	syncH := handler.NewSyncHandler(syncSvc)
	clientH := handler.NewClientHandler(clientSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, searchH, syncH, clientH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func newReportSender(cfg *config.EmailConfig) (port.ReportSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName)
	default:
		return noop.NewNoopSender(), nil
	}
}
