// Command syncbase runs one reconciliation pass against the latest export
// and prints the outcome, without starting the HTTP server.
// Usage: go run ./cmd/syncbase [domain]   (defaults to cadastro)
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"basesync/internal/config"
	"basesync/internal/domain"
	"basesync/internal/email/noop"
	"basesync/internal/reconcile"
	"basesync/internal/repository/postgres"
	"basesync/internal/service"
	s3storage "basesync/internal/storage/s3"
)

const runTimeout = 10 * time.Minute

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	d := domain.DomainCadastro
	if len(os.Args) > 1 {
		parsed, err := domain.ParseDomain(os.Args[1])
		if err != nil {
			return err
		}
		d = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	retriever, err := s3storage.NewRetriever(&cfg.S3)
	if err != nil {
		return fmt.Errorf("initializing S3 retriever: %w", err)
	}

	clientRepo := postgres.NewClientRepo(db)
	reconciler := reconcile.New(clientRepo)

	// Report delivery is suppressed on manual runs; the operator sees the
	// counts directly.
	syncSvc := service.NewSyncService(
		retriever, reconciler, noop.NewNoopSender(),
		&cfg.Sheets, &config.SyncConfig{}, service.NewGuard(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	start := time.Now()
	outcome, err := syncSvc.Run(ctx, d)
	if err != nil {
		return fmt.Errorf("sync run failed: %w", err)
	}

	counts := outcome.Counts()
	log.Printf("sync completed in %s: created=%d updated=%d unchanged=%d deactivated=%d errors=%d",
		time.Since(start).Round(time.Millisecond),
		counts[domain.SyncCreated], counts[domain.SyncUpdated],
		counts[domain.SyncUnchanged], counts[domain.SyncDeactivated],
		len(outcome.Errors))

	for _, e := range outcome.Errors {
		log.Printf("WARN: row %s: %s", e.Code, e.Message)
	}

	return nil
}
