package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ServiceErrorCode is the outcome of a lifecycle operation. Business rule
// failures are reported through it instead of through Go errors.
type ServiceErrorCode int

const (
	Ok ServiceErrorCode = 0

	// Generic
	UnknownError     ServiceErrorCode = 1
	ValidationFailed ServiceErrorCode = 2

	// Customer related
	CustomerNotFound      ServiceErrorCode = 10
	CustomerAlreadyExists ServiceErrorCode = 11

	// Account related
	AccountNotFound       ServiceErrorCode = 20
	AccountAlreadyExists  ServiceErrorCode = 21
	AccountTypeNotAllowed ServiceErrorCode = 22
	AccountAlreadyFrozen  ServiceErrorCode = 23
	AccountNotFrozen      ServiceErrorCode = 24
	AccountClosed         ServiceErrorCode = 25

	// Business rules
	InsufficientFunds   ServiceErrorCode = 30
	OverdraftNotAllowed ServiceErrorCode = 31
	CurrencyMismatch    ServiceErrorCode = 32
)

var serviceErrorCodeNames = map[ServiceErrorCode]string{
	Ok:                    "Ok",
	UnknownError:          "UnknownError",
	ValidationFailed:      "ValidationFailed",
	CustomerNotFound:      "CustomerNotFound",
	CustomerAlreadyExists: "CustomerAlreadyExists",
	AccountNotFound:       "AccountNotFound",
	AccountAlreadyExists:  "AccountAlreadyExists",
	AccountTypeNotAllowed: "AccountTypeNotAllowed",
	AccountAlreadyFrozen:  "AccountAlreadyFrozen",
	AccountNotFrozen:      "AccountNotFrozen",
	AccountClosed:         "AccountClosed",
	InsufficientFunds:     "InsufficientFunds",
	OverdraftNotAllowed:   "OverdraftNotAllowed",
	CurrencyMismatch:      "CurrencyMismatch",
}

// String returns the code name, or the numeric value for unregistered codes
func (c ServiceErrorCode) String() string {
	if name, ok := serviceErrorCodeNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// IsOk reports whether the operation succeeded
func (c ServiceErrorCode) IsOk() bool {
	return c == Ok
}

// IsValid checks whether the code is part of the taxonomy
func (c ServiceErrorCode) IsValid() bool {
	_, ok := serviceErrorCodeNames[c]
	return ok
}

// ParseServiceErrorCode resolves a code from its name or numeric value
func ParseServiceErrorCode(value string) (ServiceErrorCode, error) {
	for code, name := range serviceErrorCodeNames {
		if name == value {
			return code, nil
		}
	}

	if n, err := strconv.Atoi(value); err == nil {
		code := ServiceErrorCode(n)
		if code.IsValid() {
			return code, nil
		}
	}

	return UnknownError, fmt.Errorf("unknown service error code %q", value)
}

// MarshalJSON encodes the code as its name
func (c ServiceErrorCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts either the name or the numeric value
func (c *ServiceErrorCode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		code, err := ParseServiceErrorCode(name)
		if err != nil {
			return err
		}
		*c = code
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("service error code must be a string or number: %w", err)
	}

	code := ServiceErrorCode(n)
	if !code.IsValid() {
		return fmt.Errorf("unknown service error code %d", n)
	}
	*c = code
	return nil
}
