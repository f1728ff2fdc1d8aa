package service

import (
	"context"
	"fmt"
	"log"

	"basesync/internal/config"
	"basesync/internal/domain"
	"basesync/internal/normalize"
	"basesync/internal/port"
	"basesync/internal/reconcile"
	"basesync/internal/report"
	"basesync/internal/sheet"
)

// SyncService runs one full ingestion pass: fetch the latest export, read
// and normalize it, reconcile against storage, and deliver a run report.
type SyncService interface {
	Run(ctx context.Context, d domain.Domain) (*domain.SyncOutcome, error)
}

type syncService struct {
	retriever  port.FileRetriever
	reconciler *reconcile.Reconciler
	sender     port.ReportSender
	sheets     *config.SheetsConfig
	cfg        *config.SyncConfig
	guard      *Guard
}

// NewSyncService creates a SyncService. The guard is shared with the
// search service.
func NewSyncService(
	retriever port.FileRetriever,
	reconciler *reconcile.Reconciler,
	sender port.ReportSender,
	sheets *config.SheetsConfig,
	cfg *config.SyncConfig,
	guard *Guard,
) SyncService {
	return &syncService{
		retriever:  retriever,
		reconciler: reconciler,
		sender:     sender,
		sheets:     sheets,
		cfg:        cfg,
		guard:      guard,
	}
}

func (s *syncService) Run(ctx context.Context, d domain.Domain) (*domain.SyncOutcome, error) {
	// Only the registry sheet is persisted; produtos and saida feed
	// search, not storage.
	if d != domain.DomainCadastro {
		return nil, domain.ErrSyncUnsupported
	}
	if !s.guard.TryAcquire() {
		return nil, domain.ErrSyncBusy
	}
	defer s.guard.Release()

	sheetCfg := s.sheets.ForDomain(d)

	path, err := s.retriever.FetchFile(ctx, sheetCfg.SourcePrefix)
	if err != nil {
		return nil, fmt.Errorf("syncService.Run: fetching %s export: %w", d, err)
	}

	rows, err := sheet.Read(path, sheetCfg.HeaderRow, sheetCfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("syncService.Run: reading %s sheet: %w", d, err)
	}

	records := normalize.Records(d, rows)
	log.Printf("syncService.Run: %s batch of %d records from %s", d, len(records), path)

	outcome, err := s.reconciler.Run(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("syncService.Run: reconciling %s: %w", d, err)
	}

	s.deliverReport(ctx, d, outcome)
	return outcome, nil
}

// deliverReport is fire-and-forget: a delivery failure is logged and never
// fails the sync run that produced the outcome.
func (s *syncService) deliverReport(ctx context.Context, d domain.Domain, outcome *domain.SyncOutcome) {
	if s.cfg.ReportRecipient == "" {
		return
	}
	payload, err := report.BuildSyncReport(d, outcome)
	if err != nil {
		log.Printf("syncService.deliverReport: building report: %v", err)
		return
	}
	subject := fmt.Sprintf("BaseSync: sincronização %s concluída", d)
	if err := s.sender.Deliver(ctx, s.cfg.ReportRecipient, subject, payload); err != nil {
		log.Printf("syncService.deliverReport: delivery to %s failed: %v", s.cfg.ReportRecipient, err)
	}
}
