package bank

import (
	"context"

	"bankagent/internal/models"

	"github.com/google/uuid"
)

// Cache is the subset of the cache service used for bank lookups.
type Cache interface {
	GetBank(ctx context.Context, id uint) (*models.Bank, error)
	CacheBank(ctx context.Context, bank *models.Bank) error
	InvalidateBank(ctx context.Context, id uint) error
}

// CreateInput registers a new remote ledger.
type CreateInput struct {
	Name  string `json:"name"`
	UUID  string `json:"uuid"`
	Token string `json:"token"`
	URL   string `json:"url"`
}

// Service manages the registry of remote banks.
type Service interface {
	Create(ctx context.Context, in CreateInput) (*models.Bank, error)
	Get(ctx context.Context, id uint) (*models.Bank, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*models.Bank, error)
	List(ctx context.Context) ([]models.Bank, error)
}
