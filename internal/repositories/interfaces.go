package repositories

import (
	"context"
	"time"

	"accounts-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerRepositoryInterface defines the contract for customer persistence
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Search(ctx context.Context, filters models.CustomerFilters, page, pageSize int) (models.PaginatedResult[models.Customer], error)
}

// AccountRepositoryInterface defines the contract for account persistence.
// Freeze, Unfreeze and ApplyBalanceDelta lock the row and re-check the
// account state inside their own transaction.
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.Account, error)
	Search(ctx context.Context, filters models.AccountFilters, page, pageSize int) (models.PaginatedResult[models.Account], error)
	Freeze(ctx context.Context, id uuid.UUID, at time.Time) (*models.Account, error)
	Unfreeze(ctx context.Context, id uuid.UUID) (*models.Account, error)
	ApplyBalanceDelta(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*models.Account, error)
}
