package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"basesync/internal/domain"
	"basesync/internal/port"
)

type clientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new PostgreSQL-backed ClientRepository.
func NewClientRepo(db *sqlx.DB) port.ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) FindByCode(ctx context.Context, code string) (*domain.Client, error) {
	var client domain.Client
	err := r.db.GetContext(ctx, &client,
		"SELECT * FROM clients WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("clientRepo.FindByCode: %w", err)
	}
	return &client, nil
}

// Upsert inserts the client or, when the code already exists, overwrites
// its tracked fields and reactivates it. created_at survives updates.
func (r *clientRepo) Upsert(ctx context.Context, client *domain.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	now := time.Now().UTC()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}
	client.UpdatedAt = now

	query := `INSERT INTO clients (id, code, grupo, razao_social, nome_fantasia, cnpj,
		contato_email, servicos, extra, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (code) DO UPDATE SET
			grupo = EXCLUDED.grupo,
			razao_social = EXCLUDED.razao_social,
			nome_fantasia = EXCLUDED.nome_fantasia,
			cnpj = EXCLUDED.cnpj,
			contato_email = EXCLUDED.contato_email,
			servicos = EXCLUDED.servicos,
			extra = EXCLUDED.extra,
			active = TRUE,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		client.ID, client.Code, client.Grupo, client.RazaoSocial, client.NomeFantasia,
		client.CNPJ, client.ContatoEmail, client.Servicos, client.Extra,
		client.Active, client.CreatedAt, client.UpdatedAt)
	if err != nil {
		return fmt.Errorf("clientRepo.Upsert: %w", err)
	}
	return nil
}

// Deactivate flips the active flag; the row is never deleted. Returns
// false when no active row with that code exists.
func (r *clientRepo) Deactivate(ctx context.Context, code string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE clients SET active = FALSE, updated_at = $1 WHERE code = $2 AND active = TRUE",
		time.Now().UTC(), code)
	if err != nil {
		return false, fmt.Errorf("clientRepo.Deactivate: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("clientRepo.Deactivate rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *clientRepo) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.SelectContext(ctx, &codes,
		"SELECT code FROM clients WHERE active = TRUE ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("clientRepo.ListActiveCodes: %w", err)
	}
	return codes, nil
}

func (r *clientRepo) List(ctx context.Context, offset, limit int) ([]domain.Client, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM clients")
	if err != nil {
		return nil, 0, fmt.Errorf("clientRepo.List count: %w", err)
	}

	var clients []domain.Client
	err = r.db.SelectContext(ctx, &clients,
		"SELECT * FROM clients ORDER BY code LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("clientRepo.List: %w", err)
	}
	return clients, total, nil
}
