package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"accounts-service/internal/logging"
	"accounts-service/internal/models"
	"accounts-service/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidPagination = errors.New("invalid pagination")
)

const (
	OpCreateCustomer       = "create_customer"
	OpCreateCurrentAccount = "create_current_account"
	OpCreateSavingsAccount = "create_savings_account"
	OpFreezeAccount        = "freeze_account"
	OpUnfreezeAccount      = "unfreeze_account"
	OpDeposit              = "deposit"
	OpWithdraw             = "withdraw"
)

// accountManager implements AccountManagerInterface
type accountManager struct {
	customerRepo repositories.CustomerRepositoryInterface
	accountRepo  repositories.AccountRepositoryInterface
	metrics      MetricsRecorderInterface
	events       *EventLogger
	logger       *slog.Logger
	now          func() time.Time
}

// NewAccountManager creates the account lifecycle manager
func NewAccountManager(
	customerRepo repositories.CustomerRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountManagerInterface {
	return &accountManager{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		metrics:      metrics,
		events:       NewEventLogger(logger),
		logger:       logger,
		now:          time.Now,
	}
}

// CreateCustomer registers a customer under a caller-supplied id
func (m *accountManager) CreateCustomer(ctx context.Context, id uuid.UUID, firstName, lastName string) (models.ServiceErrorCode, error) {
	start := time.Now()
	code, err := m.createCustomer(ctx, id, firstName, lastName)
	return m.complete(ctx, OpCreateCustomer, start, code, err, "customer_id", id)
}

func (m *accountManager) createCustomer(ctx context.Context, id uuid.UUID, firstName, lastName string) (models.ServiceErrorCode, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if id == uuid.Nil || !validName(firstName) || !validName(lastName) {
		return models.ValidationFailed, nil
	}

	exists, err := m.customerRepo.Exists(ctx, id)
	if err != nil {
		return models.UnknownError, fmt.Errorf("failed to check customer existence: %w", err)
	}
	if exists {
		return models.CustomerAlreadyExists, nil
	}

	customer := &models.Customer{
		CustomerID: id,
		FirstName:  firstName,
		LastName:   lastName,
		CreatedAt:  m.now().UTC(),
	}
	if err := m.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, repositories.ErrCustomerExists) {
			return models.CustomerAlreadyExists, nil
		}
		return models.UnknownError, fmt.Errorf("failed to create customer: %w", err)
	}

	m.events.LogCustomerCreated(ctx, customer)
	return models.Ok, nil
}

// CreateCurrentAccount opens an active current account with the given overdraft limit
func (m *accountManager) CreateCurrentAccount(ctx context.Context, accountID, customerID uuid.UUID, currency string, initialBalance, overdraftLimit decimal.Decimal) (models.ServiceErrorCode, error) {
	start := time.Now()

	var code models.ServiceErrorCode
	var err error
	if !validNewAccount(accountID, customerID, currency, initialBalance) || overdraftLimit.IsNegative() || !models.IsStorableMoney(overdraftLimit) {
		code = models.ValidationFailed
	} else {
		code, err = m.createAccount(ctx, &models.Account{
			AccountID:      accountID,
			CustomerID:     customerID,
			AccountType:    models.AccountTypeCurrent,
			Currency:       models.NormalizeCurrency(currency),
			Balance:        initialBalance,
			Status:         models.AccountStatusActive,
			CreatedAt:      m.now().UTC(),
			OverdraftLimit: decimal.NewNullDecimal(overdraftLimit),
		})
	}

	return m.complete(ctx, OpCreateCurrentAccount, start, code, err, "account_id", accountID, "customer_id", customerID)
}

// CreateSavingsAccount opens an active savings account with the given interest rate
func (m *accountManager) CreateSavingsAccount(ctx context.Context, accountID, customerID uuid.UUID, currency string, initialBalance, interestRate decimal.Decimal) (models.ServiceErrorCode, error) {
	start := time.Now()

	var code models.ServiceErrorCode
	var err error
	if !validNewAccount(accountID, customerID, currency, initialBalance) || !interestRate.IsPositive() || !models.IsStorableInterestRate(interestRate) {
		code = models.ValidationFailed
	} else {
		code, err = m.createAccount(ctx, &models.Account{
			AccountID:    accountID,
			CustomerID:   customerID,
			AccountType:  models.AccountTypeSavings,
			Currency:     models.NormalizeCurrency(currency),
			Balance:      initialBalance,
			Status:       models.AccountStatusActive,
			CreatedAt:    m.now().UTC(),
			InterestRate: decimal.NewNullDecimal(interestRate),
		})
	}

	return m.complete(ctx, OpCreateSavingsAccount, start, code, err, "account_id", accountID, "customer_id", customerID)
}

func (m *accountManager) createAccount(ctx context.Context, account *models.Account) (models.ServiceErrorCode, error) {
	exists, err := m.customerRepo.Exists(ctx, account.CustomerID)
	if err != nil {
		return models.UnknownError, fmt.Errorf("failed to check customer existence: %w", err)
	}
	if !exists {
		return models.CustomerNotFound, nil
	}

	exists, err = m.accountRepo.Exists(ctx, account.AccountID)
	if err != nil {
		return models.UnknownError, fmt.Errorf("failed to check account existence: %w", err)
	}
	if exists {
		return models.AccountAlreadyExists, nil
	}

	if err := m.accountRepo.Create(ctx, account); err != nil {
		switch {
		case errors.Is(err, repositories.ErrAccountExists):
			return models.AccountAlreadyExists, nil
		case errors.Is(err, repositories.ErrCustomerNotFound):
			return models.CustomerNotFound, nil
		}
		return models.UnknownError, fmt.Errorf("failed to create account: %w", err)
	}

	m.events.LogAccountOpened(ctx, account)
	return models.Ok, nil
}

// FreezeAccount moves an account to Frozen
func (m *accountManager) FreezeAccount(ctx context.Context, accountID uuid.UUID) (models.ServiceErrorCode, error) {
	start := time.Now()
	code, err := m.freezeAccount(ctx, accountID)
	return m.complete(ctx, OpFreezeAccount, start, code, err, "account_id", accountID)
}

func (m *accountManager) freezeAccount(ctx context.Context, accountID uuid.UUID) (models.ServiceErrorCode, error) {
	account, code, err := m.loadAccount(ctx, accountID)
	if account == nil {
		return code, err
	}
	if account.IsFrozen() {
		return models.AccountAlreadyFrozen, nil
	}

	if _, err := m.accountRepo.Freeze(ctx, accountID, m.now()); err != nil {
		return mapWriteError(accountID, err)
	}
	m.events.LogAccountStatusChange(ctx, accountID, account.Status, models.AccountStatusFrozen)
	return models.Ok, nil
}

// UnfreezeAccount moves a non-active account back to Active
func (m *accountManager) UnfreezeAccount(ctx context.Context, accountID uuid.UUID) (models.ServiceErrorCode, error) {
	start := time.Now()
	code, err := m.unfreezeAccount(ctx, accountID)
	return m.complete(ctx, OpUnfreezeAccount, start, code, err, "account_id", accountID)
}

func (m *accountManager) unfreezeAccount(ctx context.Context, accountID uuid.UUID) (models.ServiceErrorCode, error) {
	account, code, err := m.loadAccount(ctx, accountID)
	if account == nil {
		return code, err
	}
	// Closed accounts are eligible too; only Active is rejected.
	if account.IsActive() {
		return models.AccountNotFrozen, nil
	}

	if _, err := m.accountRepo.Unfreeze(ctx, accountID); err != nil {
		return mapWriteError(accountID, err)
	}
	m.events.LogAccountStatusChange(ctx, accountID, account.Status, models.AccountStatusActive)
	return models.Ok, nil
}

// Deposit credits amount to an active account
func (m *accountManager) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (models.ServiceErrorCode, error) {
	start := time.Now()
	code, err := m.moveBalance(ctx, accountID, amount, false)
	return m.complete(ctx, OpDeposit, start, code, err, "account_id", accountID, "amount", amount.String())
}

// Withdraw debits amount from an active account. Overdraft limits are not drawn on.
func (m *accountManager) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (models.ServiceErrorCode, error) {
	start := time.Now()
	code, err := m.moveBalance(ctx, accountID, amount, true)
	return m.complete(ctx, OpWithdraw, start, code, err, "account_id", accountID, "amount", amount.String())
}

func (m *accountManager) moveBalance(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, withdraw bool) (models.ServiceErrorCode, error) {
	if !amount.IsPositive() || !models.IsStorableMoney(amount) {
		return models.ValidationFailed, nil
	}

	account, code, err := m.loadAccount(ctx, accountID)
	if account == nil {
		return code, err
	}
	if !account.IsActive() {
		return models.AccountClosed, nil
	}

	delta, direction := amount, "deposit"
	if withdraw {
		if account.Balance.LessThan(amount) {
			return models.InsufficientFunds, nil
		}
		delta, direction = amount.Neg(), "withdrawal"
	} else if !models.IsStorableMoney(account.Balance.Add(amount)) {
		return models.ValidationFailed, nil
	}

	updated, err := m.accountRepo.ApplyBalanceDelta(ctx, accountID, delta)
	if err != nil {
		return mapWriteError(accountID, err)
	}

	m.events.LogBalanceUpdate(ctx, accountID, updated.Balance.Sub(delta), updated.Balance, direction)
	m.metrics.RecordGauge(MetricBalanceMovement, amount.InexactFloat64(), map[string]string{
		"direction": direction,
		"currency":  updated.Currency,
	})
	return models.Ok, nil
}

// loadAccount returns the account, or a nil account together with the code
// and error the caller should return
func (m *accountManager) loadAccount(ctx context.Context, accountID uuid.UUID) (*models.Account, models.ServiceErrorCode, error) {
	account, err := m.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, models.AccountNotFound, nil
		}
		return nil, models.UnknownError, fmt.Errorf("failed to load account: %w", err)
	}
	return account, models.Ok, nil
}

// mapWriteError translates state re-checks done under the row lock.
// An account that vanished after the existence check is unrecoverable.
func mapWriteError(accountID uuid.UUID, err error) (models.ServiceErrorCode, error) {
	switch {
	case errors.Is(err, repositories.ErrAccountAlreadyFrozen):
		return models.AccountAlreadyFrozen, nil
	case errors.Is(err, repositories.ErrAccountNotFrozen):
		return models.AccountNotFrozen, nil
	case errors.Is(err, repositories.ErrAccountNotActive):
		return models.AccountClosed, nil
	case errors.Is(err, repositories.ErrInsufficientFunds):
		return models.InsufficientFunds, nil
	case errors.Is(err, repositories.ErrBalanceOutOfRange):
		return models.ValidationFailed, nil
	case errors.Is(err, repositories.ErrAccountNotFound):
		return models.UnknownError, fmt.Errorf("account %s disappeared during update: %w", accountID, err)
	}
	return models.UnknownError, fmt.Errorf("failed to update account %s: %w", accountID, err)
}

func (m *accountManager) complete(ctx context.Context, operation string, start time.Time, code models.ServiceErrorCode, err error, attrs ...any) (models.ServiceErrorCode, error) {
	result := code.String()
	if err != nil {
		code = models.UnknownError
		result = "error"
	}

	m.metrics.IncrementCounter(MetricAccountOperation, map[string]string{
		"operation": operation,
		"result":    result,
	})
	m.metrics.RecordProcessingTime(operation, time.Since(start))

	logger := logging.FromContextOr(ctx, m.logger)
	attrs = append(attrs, "operation", operation, "result", result)
	switch {
	case err != nil:
		logger.ErrorContext(ctx, "account operation failed", append(attrs, "error", err)...)
	case code.IsOk():
		logger.InfoContext(ctx, "account operation completed", attrs...)
	default:
		logger.InfoContext(ctx, "account operation rejected", attrs...)
	}

	return code, err
}

// GetCustomer retrieves a customer by id
func (m *accountManager) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := m.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// GetAccount retrieves an account resolved to its variant
func (m *accountManager) GetAccount(ctx context.Context, accountID uuid.UUID) (models.AccountModel, error) {
	account, err := m.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return models.ToAccountModel(account)
}

// GetAccountsByCustomerID lists a customer's accounts, newest first
func (m *accountManager) GetAccountsByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.AccountModel, error) {
	exists, err := m.customerRepo.Exists(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer existence: %w", err)
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	accounts, err := m.accountRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer accounts: %w", err)
	}
	return models.ToAccountModels(accounts)
}

// SearchCustomers returns one page of customers matching the name filters
func (m *accountManager) SearchCustomers(ctx context.Context, filters models.CustomerFilters, page, pageSize int) (models.PaginatedResult[models.Customer], error) {
	result, err := m.customerRepo.Search(ctx, filters, page, pageSize)
	m.recordSearch("customer", err)
	if err != nil {
		return models.PaginatedResult[models.Customer]{}, mapSearchError(err)
	}
	return result, nil
}

// SearchAccounts returns one page of accounts matching every present filter
func (m *accountManager) SearchAccounts(ctx context.Context, filters models.AccountFilters, page, pageSize int) (models.PaginatedResult[models.AccountModel], error) {
	result, err := m.accountRepo.Search(ctx, filters, page, pageSize)
	m.recordSearch("account", err)
	if err != nil {
		return models.PaginatedResult[models.AccountModel]{}, mapSearchError(err)
	}

	items, err := models.ToAccountModels(result.Items)
	if err != nil {
		return models.PaginatedResult[models.AccountModel]{}, err
	}
	return models.NewPaginatedResult(result.Page, result.PageSize, result.TotalCount, items), nil
}

func (m *accountManager) recordSearch(entity string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.metrics.IncrementCounter(MetricSearchRequest, map[string]string{
		"entity": entity,
		"status": status,
	})
}

func mapSearchError(err error) error {
	if errors.Is(err, repositories.ErrInvalidPagination) {
		return fmt.Errorf("%w: %v", ErrInvalidPagination, err)
	}
	return fmt.Errorf("search failed: %w", err)
}

func validName(name string) bool {
	return name != "" && utf8.RuneCountInString(name) <= models.MaxCustomerNameLength
}

func validNewAccount(accountID, customerID uuid.UUID, currency string, initialBalance decimal.Decimal) bool {
	return accountID != uuid.Nil &&
		customerID != uuid.Nil &&
		models.IsValidCurrencyCode(currency) &&
		!initialBalance.IsNegative() &&
		models.IsStorableMoney(initialBalance)
}
