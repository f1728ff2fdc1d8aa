package service

import (
	"context"
	"fmt"

	"basesync/internal/domain"
	"basesync/internal/port"
)

// ClientService exposes read access to the persisted client registry.
type ClientService interface {
	Get(ctx context.Context, code string) (*domain.Client, error)
	List(ctx context.Context, offset, limit int) ([]domain.Client, int, error)
}

type clientService struct {
	repo port.ClientRepository
}

// NewClientService creates a ClientService backed by repo.
func NewClientService(repo port.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Get(ctx context.Context, code string) (*domain.Client, error) {
	client, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("clientService.Get: %w", err)
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context, offset, limit int) ([]domain.Client, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	clients, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("clientService.List: %w", err)
	}
	return clients, total, nil
}
