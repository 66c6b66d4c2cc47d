package dto

import (
	"fmt"
	"strconv"
	"time"

	"accounts-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account Request DTOs

// CreateCurrentAccountRequest represents the request payload for opening a current account
type CreateCurrentAccountRequest struct {
	AccountID      string          `json:"accountId" validate:"required,guid"`
	CustomerID     string          `json:"customerId" validate:"required,guid"`
	Currency       string          `json:"currency" validate:"required,currency_code"`
	InitialBalance decimal.Decimal `json:"initialBalance" validate:"gte=0,money"`
	OverdraftLimit decimal.Decimal `json:"overdraftLimit" validate:"gte=0,money"`
}

// CreateSavingsAccountRequest represents the request payload for opening a savings account
type CreateSavingsAccountRequest struct {
	AccountID      string          `json:"accountId" validate:"required,guid"`
	CustomerID     string          `json:"customerId" validate:"required,guid"`
	Currency       string          `json:"currency" validate:"required,currency_code"`
	InitialBalance decimal.Decimal `json:"initialBalance" validate:"gte=0,money"`
	InterestRate   decimal.Decimal `json:"interestRate" validate:"gt=0,interest_rate"`
}

// AmountRequest represents the request payload for a deposit or a withdrawal
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0,money"`
}

// SearchAccountsRequest represents the query parameters of an account search.
// Empty values leave the corresponding filter unset.
type SearchAccountsRequest struct {
	CustomerID    string `query:"customerId" validate:"omitempty,guid"`
	AccountType   string `query:"accountType" validate:"omitempty,account_type"`
	Currency      string `query:"currency" validate:"omitempty,currency_code"`
	Status        string `query:"status" validate:"omitempty,account_status"`
	MinBalance    string `query:"minBalance" validate:"omitempty,numeric"`
	MaxBalance    string `query:"maxBalance" validate:"omitempty,numeric"`
	CreatedAfter  string `query:"createdAfter"`
	CreatedBefore string `query:"createdBefore"`
	IsFrozen      string `query:"isFrozen" validate:"omitempty,oneof=true false"`
	Page          int    `query:"page" validate:"min=1,max=1000000"`
	PageSize      int    `query:"pageSize" validate:"min=1,max=100"`
}

// NewSearchAccountsRequest returns a request holding the default paging
func NewSearchAccountsRequest() SearchAccountsRequest {
	return SearchAccountsRequest{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Filters converts the query parameters into account filters
func (r SearchAccountsRequest) Filters() (models.AccountFilters, error) {
	var filters models.AccountFilters

	if r.CustomerID != "" {
		id, err := uuid.Parse(r.CustomerID)
		if err != nil {
			return filters, fmt.Errorf("customerId: %w", err)
		}
		filters.CustomerID = &id
	}

	if r.AccountType != "" {
		accountType, err := models.ParseAccountType(r.AccountType)
		if err != nil {
			return filters, fmt.Errorf("accountType: %w", err)
		}
		filters.AccountType = &accountType
	}

	if r.Currency != "" {
		currency := models.NormalizeCurrency(r.Currency)
		filters.Currency = &currency
	}

	if r.Status != "" {
		status, err := models.ParseAccountStatus(r.Status)
		if err != nil {
			return filters, fmt.Errorf("status: %w", err)
		}
		filters.Status = &status
	}

	var err error
	if filters.MinBalance, err = parseDecimal("minBalance", r.MinBalance); err != nil {
		return filters, err
	}
	if filters.MaxBalance, err = parseDecimal("maxBalance", r.MaxBalance); err != nil {
		return filters, err
	}
	if filters.CreatedAfter, err = parseTime("createdAfter", r.CreatedAfter); err != nil {
		return filters, err
	}
	if filters.CreatedBefore, err = parseTime("createdBefore", r.CreatedBefore); err != nil {
		return filters, err
	}

	if r.IsFrozen != "" {
		frozen, err := strconv.ParseBool(r.IsFrozen)
		if err != nil {
			return filters, fmt.Errorf("isFrozen: %w", err)
		}
		filters.IsFrozen = &frozen
	}

	return filters, nil
}

func parseDecimal(field, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &d, nil
}

// parseTime accepts RFC 3339 timestamps or plain dates, interpreted as UTC
func parseTime(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s: expected RFC 3339 timestamp or YYYY-MM-DD date, got %q", field, value)
}

// Account Response DTOs

// AccountResponse represents a single account in API responses.
// Exactly one of OverdraftLimit and InterestRate is present.
type AccountResponse struct {
	AccountID      uuid.UUID            `json:"accountId"`
	CustomerID     uuid.UUID            `json:"customerId"`
	AccountType    models.AccountType   `json:"accountType"`
	Currency       string               `json:"currency"`
	Balance        decimal.Decimal      `json:"balance"`
	Status         models.AccountStatus `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	FrozenAt       *time.Time           `json:"frozenAt,omitempty"`
	OverdraftLimit *decimal.Decimal     `json:"overdraftLimit,omitempty"`
	InterestRate   *decimal.Decimal     `json:"interestRate,omitempty"`
}

// NewAccountResponse flattens an account variant into its response shape
func NewAccountResponse(account models.AccountModel) AccountResponse {
	base := account.Base()
	response := AccountResponse{
		AccountID:   base.AccountID,
		CustomerID:  base.CustomerID,
		AccountType: account.Type(),
		Currency:    base.Currency,
		Balance:     base.Balance,
		Status:      base.Status,
		CreatedAt:   base.CreatedAt,
		FrozenAt:    base.FrozenAt,
	}

	switch a := account.(type) {
	case *models.CurrentAccount:
		limit := a.OverdraftLimit
		response.OverdraftLimit = &limit
	case *models.SavingsAccount:
		rate := a.InterestRate
		response.InterestRate = &rate
	}

	return response
}

func NewAccountResponses(accounts []models.AccountModel) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, NewAccountResponse(account))
	}
	return responses
}
