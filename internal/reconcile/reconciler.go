// Package reconcile diffs a freshly normalized cadastro batch against the
// set of active clients in storage, classifying every code as created,
// updated, unchanged, or deactivated. It is best-effort: a failure on one
// code is recorded and never aborts the rest of the batch.
package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"basesync/internal/domain"
	"basesync/internal/port"
)

// Reconciler applies one spreadsheet batch to the client repository.
type Reconciler struct {
	repo port.ClientRepository
}

// New creates a Reconciler over repo.
func New(repo port.ClientRepository) *Reconciler {
	return &Reconciler{repo: repo}
}

// Run reconciles records against storage. Codes are processed sequentially
// so per-code error attribution and write ordering stay deterministic.
// Re-running with an unchanged batch is idempotent: everything classifies
// unchanged and no writes occur.
func (r *Reconciler) Run(ctx context.Context, records []domain.Record) (*domain.SyncOutcome, error) {
	activeCodes, err := r.repo.ListActiveCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile.Run: listing active codes: %w", err)
	}

	outcome := &domain.SyncOutcome{}
	incoming := make(map[string]bool, len(records))

	for i := range records {
		rec := &records[i]
		code := rec.Field("codigo")
		if code == "" {
			outcome.Errors = append(outcome.Errors, domain.SyncError{
				Message: fmt.Sprintf("row %d: no codigo field; skipped", i+1),
			})
			continue
		}
		incoming[code] = true

		fresh := clientFromRecord(code, rec)
		existing, err := r.repo.FindByCode(ctx, code)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			if err := r.repo.Upsert(ctx, fresh); err != nil {
				outcome.Errors = append(outcome.Errors, domain.SyncError{Code: code, Message: err.Error()})
				continue
			}
			outcome.Created = append(outcome.Created, code)

		case err != nil:
			outcome.Errors = append(outcome.Errors, domain.SyncError{Code: code, Message: err.Error()})

		case existing.Active && existing.TrackedEquals(fresh):
			outcome.Unchanged = append(outcome.Unchanged, code)

		default:
			// Changed fields, or a previously deactivated client returning.
			fresh.ID = existing.ID
			fresh.CreatedAt = existing.CreatedAt
			if err := r.repo.Upsert(ctx, fresh); err != nil {
				outcome.Errors = append(outcome.Errors, domain.SyncError{Code: code, Message: err.Error()})
				continue
			}
			outcome.Updated = append(outcome.Updated, code)
		}
	}

	// Active codes missing from the fresh batch are deactivated, never
	// deleted.
	for _, code := range activeCodes {
		if incoming[code] {
			continue
		}
		if _, err := r.repo.Deactivate(ctx, code); err != nil {
			outcome.Errors = append(outcome.Errors, domain.SyncError{Code: code, Message: err.Error()})
			continue
		}
		outcome.Deactivated = append(outcome.Deactivated, code)
	}

	log.Printf("reconcile.Run: %d created, %d updated, %d unchanged, %d deactivated, %d errors",
		len(outcome.Created), len(outcome.Updated), len(outcome.Unchanged),
		len(outcome.Deactivated), len(outcome.Errors))
	return outcome, nil
}

// clientFromRecord maps the canonical cadastro fields onto a Client. The
// extra bag is persisted as jsonb but not diffed.
func clientFromRecord(code string, rec *domain.Record) *domain.Client {
	c := &domain.Client{
		ID:           uuid.New(),
		Code:         code,
		Grupo:        rec.Field("grupo"),
		RazaoSocial:  rec.Field("razao_social"),
		NomeFantasia: rec.Field("nome_fantasia"),
		ContatoEmail: rec.Field("contato_principal_email"),
		Servicos:     rec.Field("servicos_contratados"),
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	if cnpj := rec.Field("cnpj"); cnpj != "" {
		c.CNPJ = &cnpj
	}
	if len(rec.Extra) > 0 {
		if raw, err := json.Marshal(rec.Extra); err == nil {
			c.Extra = raw
		}
	}
	return c
}
