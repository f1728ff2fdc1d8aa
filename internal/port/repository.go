package port

import (
	"context"

	"basesync/internal/domain"
)

// ClientRepository defines the contract for client registry persistence.
// Deactivation is soft; historical records are never hard-deleted.
type ClientRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.Client, error)
	Upsert(ctx context.Context, client *domain.Client) error
	Deactivate(ctx context.Context, code string) (bool, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	List(ctx context.Context, offset, limit int) ([]domain.Client, int, error)
}
