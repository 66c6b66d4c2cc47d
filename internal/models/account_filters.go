package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountFilters contains filter criteria for account queries.
// A nil field means no constraint.
type AccountFilters struct {
	CustomerID    *uuid.UUID
	AccountType   *AccountType
	Currency      *string
	Status        *AccountStatus
	MinBalance    *decimal.Decimal
	MaxBalance    *decimal.Decimal
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	IsFrozen      *bool
}

// CustomerFilters contains the optional name filters for customer queries
type CustomerFilters struct {
	FirstName string
	LastName  string
}
