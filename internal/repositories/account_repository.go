package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"accounts-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountExists        = errors.New("account already exists")
	ErrAccountAlreadyFrozen = errors.New("account is already frozen")
	ErrAccountNotFrozen     = errors.New("account is not frozen")
	ErrAccountNotActive     = errors.New("account is not active")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrBalanceOutOfRange    = errors.New("balance exceeds the storable range")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create inserts a new account. The owning customer must already exist.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(account).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return ErrAccountExists
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("account_id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("account_id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}

// GetByCustomerID retrieves all accounts of a customer, newest first
func (r *accountRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).
		Order("created_at DESC").Order("account_id DESC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for customer: %w", err)
	}
	return accounts, nil
}

// Search applies every present filter conjunctively and returns one page,
// newest accounts first
func (r *accountRepository) Search(ctx context.Context, filters models.AccountFilters, page, pageSize int) (models.PaginatedResult[models.Account], error) {
	if err := validatePage(page, pageSize); err != nil {
		return models.PaginatedResult[models.Account]{}, err
	}

	query := applyAccountFilters(r.db.WithContext(ctx).Model(&models.Account{}), filters)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return models.PaginatedResult[models.Account]{}, fmt.Errorf("failed to count filtered accounts: %w", err)
	}

	if models.PastLastPage(page, pageSize, total) {
		return models.NewPaginatedResult[models.Account](page, pageSize, total, nil), nil
	}

	var accounts []models.Account
	if err := query.Session(&gorm.Session{}).
		Order("created_at DESC").Order("account_id DESC").
		Offset(models.Offset(page, pageSize)).Limit(pageSize).
		Find(&accounts).Error; err != nil {
		return models.PaginatedResult[models.Account]{}, fmt.Errorf("failed to get filtered accounts: %w", err)
	}

	return models.NewPaginatedResult(page, pageSize, total, accounts), nil
}

func applyAccountFilters(query *gorm.DB, filters models.AccountFilters) *gorm.DB {
	if filters.CustomerID != nil {
		query = query.Where("customer_id = ?", *filters.CustomerID)
	}
	if filters.AccountType != nil {
		query = query.Where("account_type = ?", string(*filters.AccountType))
	}
	if filters.Currency != nil {
		query = query.Where("currency = ?", models.NormalizeCurrency(*filters.Currency))
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.MinBalance != nil {
		query = query.Where("balance >= ?", *filters.MinBalance)
	}
	if filters.MaxBalance != nil {
		query = query.Where("balance <= ?", *filters.MaxBalance)
	}
	if filters.CreatedAfter != nil {
		query = query.Where("created_at >= ?", filters.CreatedAfter.UTC())
	}
	if filters.CreatedBefore != nil {
		query = query.Where("created_at <= ?", filters.CreatedBefore.UTC())
	}
	if filters.IsFrozen != nil {
		if *filters.IsFrozen {
			query = query.Where("frozen_at IS NOT NULL")
		} else {
			query = query.Where("frozen_at IS NULL")
		}
	}
	return query
}

// mutate loads the account under a row lock, lets fn change it and persists
// the listed columns, all in one transaction
func (r *accountRepository) mutate(ctx context.Context, id uuid.UUID, fn func(*models.Account) error, columns ...string) (*models.Account, error) {
	var account models.Account

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_id = ?", id).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		if err := fn(&account); err != nil {
			return err
		}

		result := tx.Model(&models.Account{}).Where("account_id = ?", id).
			Select(columns).Omit(clause.Associations).Updates(&account)
		if result.Error != nil {
			return fmt.Errorf("failed to update account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// Freeze moves an active account to Frozen and stamps FrozenAt
func (r *accountRepository) Freeze(ctx context.Context, id uuid.UUID, at time.Time) (*models.Account, error) {
	return r.mutate(ctx, id, func(account *models.Account) error {
		if account.IsFrozen() {
			return ErrAccountAlreadyFrozen
		}
		account.Freeze(at)
		return nil
	}, "status", "frozen_at")
}

// Unfreeze moves a frozen or closed account back to Active
func (r *accountRepository) Unfreeze(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return r.mutate(ctx, id, func(account *models.Account) error {
		if account.IsActive() {
			return ErrAccountNotFrozen
		}
		account.Unfreeze()
		return nil
	}, "status", "frozen_at")
}

// ApplyBalanceDelta adds delta to the balance of an active account.
// A negative delta larger than the balance fails with ErrInsufficientFunds,
// a result the balance column cannot hold with ErrBalanceOutOfRange.
func (r *accountRepository) ApplyBalanceDelta(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*models.Account, error) {
	return r.mutate(ctx, id, func(account *models.Account) error {
		if !account.IsActive() {
			return ErrAccountNotActive
		}
		balance := account.Balance.Add(delta)
		if balance.IsNegative() {
			return ErrInsufficientFunds
		}
		if !models.IsStorableMoney(balance) {
			return ErrBalanceOutOfRange
		}
		account.Balance = balance
		return nil
	}, "balance")
}
