package services

import (
	"context"
	"time"

	"accounts-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountManagerInterface enforces the account lifecycle rules.
// Lifecycle operations report business outcomes through the returned
// ServiceErrorCode; the error is non-nil only for unrecoverable faults.
type AccountManagerInterface interface {
	CreateCustomer(ctx context.Context, id uuid.UUID, firstName, lastName string) (models.ServiceErrorCode, error)
	CreateCurrentAccount(ctx context.Context, accountID, customerID uuid.UUID, currency string, initialBalance, overdraftLimit decimal.Decimal) (models.ServiceErrorCode, error)
	CreateSavingsAccount(ctx context.Context, accountID, customerID uuid.UUID, currency string, initialBalance, interestRate decimal.Decimal) (models.ServiceErrorCode, error)
	FreezeAccount(ctx context.Context, accountID uuid.UUID) (models.ServiceErrorCode, error)
	UnfreezeAccount(ctx context.Context, accountID uuid.UUID) (models.ServiceErrorCode, error)
	Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (models.ServiceErrorCode, error)
	Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (models.ServiceErrorCode, error)

	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (models.AccountModel, error)
	GetAccountsByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.AccountModel, error)
	SearchCustomers(ctx context.Context, filters models.CustomerFilters, page, pageSize int) (models.PaginatedResult[models.Customer], error)
	SearchAccounts(ctx context.Context, filters models.AccountFilters, page, pageSize int) (models.PaginatedResult[models.AccountModel], error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TokenServiceInterface issues and validates back-office operator tokens
type TokenServiceInterface interface {
	GenerateAccessToken(operatorID, role string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}
