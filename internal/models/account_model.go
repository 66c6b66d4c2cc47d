package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUnknownAccountType is returned when a stored discriminator cannot be resolved.
// It indicates corrupted data and is never a business outcome.
var ErrUnknownAccountType = errors.New("unknown account type discriminator")

// AccountBase holds the fields shared by every account variant
type AccountBase struct {
	AccountID  uuid.UUID
	CustomerID uuid.UUID
	Currency   string
	Balance    decimal.Decimal
	Status     AccountStatus
	CreatedAt  time.Time
	FrozenAt   *time.Time
}

// AccountModel is the business view of an account. The concrete type is
// either *CurrentAccount or *SavingsAccount.
type AccountModel interface {
	Base() *AccountBase
	Type() AccountType
	accountVariant()
}

// CurrentAccount is a transactional account with an overdraft limit
type CurrentAccount struct {
	AccountBase
	OverdraftLimit decimal.Decimal
}

// SavingsAccount is an interest-bearing account
type SavingsAccount struct {
	AccountBase
	InterestRate decimal.Decimal
}

func (a *CurrentAccount) Base() *AccountBase { return &a.AccountBase }
func (a *CurrentAccount) Type() AccountType  { return AccountTypeCurrent }
func (a *CurrentAccount) accountVariant()    {}

func (a *SavingsAccount) Base() *AccountBase { return &a.AccountBase }
func (a *SavingsAccount) Type() AccountType  { return AccountTypeSavings }
func (a *SavingsAccount) accountVariant()    {}

// ToAccountModel resolves a stored record to its variant using the discriminator.
// The variant-specific field defaults to zero when the column is NULL.
func ToAccountModel(record *Account) (AccountModel, error) {
	if record == nil {
		return nil, nil
	}

	accountType, err := ParseAccountType(string(record.AccountType))
	if err != nil {
		return nil, fmt.Errorf("account %s: %w: %q", record.AccountID, ErrUnknownAccountType, record.AccountType)
	}

	base := AccountBase{
		AccountID:  record.AccountID,
		CustomerID: record.CustomerID,
		Currency:   record.Currency,
		Balance:    record.Balance,
		Status:     record.Status,
		CreatedAt:  record.CreatedAt,
		FrozenAt:   record.FrozenAt,
	}

	switch accountType {
	case AccountTypeCurrent:
		return &CurrentAccount{
			AccountBase:    base,
			OverdraftLimit: valueOrZero(record.OverdraftLimit),
		}, nil
	case AccountTypeSavings:
		return &SavingsAccount{
			AccountBase:  base,
			InterestRate: valueOrZero(record.InterestRate),
		}, nil
	}

	return nil, fmt.Errorf("account %s: %w: %q", record.AccountID, ErrUnknownAccountType, record.AccountType)
}

// ToAccountModels maps a slice of records, stopping at the first unresolvable row
func ToAccountModels(records []Account) ([]AccountModel, error) {
	result := make([]AccountModel, 0, len(records))
	for i := range records {
		model, err := ToAccountModel(&records[i])
		if err != nil {
			return nil, err
		}
		result = append(result, model)
	}
	return result, nil
}

func valueOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
