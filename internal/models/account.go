package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType is the discriminator stored alongside every account row
type AccountType string

// AccountStatus is the lifecycle state of an account
type AccountStatus string

const (
	AccountTypeCurrent AccountType = "Current"
	AccountTypeSavings AccountType = "Savings"

	AccountStatusActive AccountStatus = "Active"
	AccountStatusFrozen AccountStatus = "Frozen"
	// AccountStatusClosed is reserved; no operation transitions into it.
	AccountStatusClosed AccountStatus = "Closed"

	CurrencyCodeLength = 3
)

var (
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrInvalidCurrency      = errors.New("currency must be a 3-letter code")
	ErrMissingVariantField  = errors.New("account variant field does not match account type")
)

// Account is the persisted record for both current and savings accounts.
// Exactly one of OverdraftLimit and InterestRate is set, selected by AccountType.
type Account struct {
	AccountID      uuid.UUID           `gorm:"type:uuid;primaryKey;uniqueIndex:idx_accounts_customer_account,priority:2" json:"accountId"`
	CustomerID     uuid.UUID           `gorm:"type:uuid;not null;index;uniqueIndex:idx_accounts_customer_account,priority:1" json:"customerId"`
	AccountType    AccountType         `gorm:"type:varchar(50);not null" json:"accountType"`
	Currency       string              `gorm:"type:varchar(3);not null" json:"currency"`
	Balance        decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0" json:"balance"`
	Status         AccountStatus       `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt      time.Time           `gorm:"not null" json:"createdAt"`
	FrozenAt       *time.Time          `json:"frozenAt,omitempty"`
	OverdraftLimit decimal.NullDecimal `gorm:"type:decimal(18,2)" json:"overdraftLimit,omitempty"`
	InterestRate   decimal.NullDecimal `gorm:"type:decimal(9,6)" json:"interestRate,omitempty"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = AccountStatusActive
	}

	a.Currency = NormalizeCurrency(a.Currency)

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if a.CustomerID == uuid.Nil {
		return errors.New("customer ID is required")
	}

	if len(a.Currency) != CurrencyCodeLength {
		return ErrInvalidCurrency
	}

	if !IsValidAccountStatus(string(a.Status)) {
		return ErrInvalidAccountStatus
	}

	switch a.AccountType {
	case AccountTypeCurrent:
		if !a.OverdraftLimit.Valid || a.InterestRate.Valid {
			return ErrMissingVariantField
		}
	case AccountTypeSavings:
		if !a.InterestRate.Valid || a.OverdraftLimit.Valid {
			return ErrMissingVariantField
		}
	default:
		return ErrInvalidAccountType
	}

	return nil
}

// IsActive returns true if the account accepts balance mutations
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// IsFrozen returns true if the account is frozen
func (a *Account) IsFrozen() bool {
	return a.Status == AccountStatusFrozen
}

// Freeze moves the account to Frozen and stamps FrozenAt
func (a *Account) Freeze(now time.Time) {
	frozenAt := now.UTC()
	a.Status = AccountStatusFrozen
	a.FrozenAt = &frozenAt
}

// Unfreeze moves the account back to Active and clears FrozenAt
func (a *Account) Unfreeze() {
	a.Status = AccountStatusActive
	a.FrozenAt = nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// NormalizeCurrency upper-cases and trims a currency code
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

// IsValidCurrencyCode reports whether currency is a three-letter alphabetic code, ignoring case
func IsValidCurrencyCode(currency string) bool {
	code := NormalizeCurrency(currency)
	if len(code) != CurrencyCodeLength {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// ParseAccountType resolves a discriminator value case-insensitively
func ParseAccountType(value string) (AccountType, error) {
	switch {
	case strings.EqualFold(value, string(AccountTypeCurrent)):
		return AccountTypeCurrent, nil
	case strings.EqualFold(value, string(AccountTypeSavings)):
		return AccountTypeSavings, nil
	default:
		return "", ErrInvalidAccountType
	}
}

// ParseAccountStatus resolves a status value case-insensitively
func ParseAccountStatus(value string) (AccountStatus, error) {
	switch {
	case strings.EqualFold(value, string(AccountStatusActive)):
		return AccountStatusActive, nil
	case strings.EqualFold(value, string(AccountStatusFrozen)):
		return AccountStatusFrozen, nil
	case strings.EqualFold(value, string(AccountStatusClosed)):
		return AccountStatusClosed, nil
	default:
		return "", ErrInvalidAccountStatus
	}
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	_, err := ParseAccountStatus(status)
	return err == nil
}
