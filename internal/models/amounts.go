package models

import "github.com/shopspring/decimal"

// Column precision of the accounts table: money is DECIMAL(18,2), rates DECIMAL(9,6).
const (
	MoneyScale        = 2
	InterestRateScale = 6
)

var (
	// MaxMoney is the exclusive upper bound of any stored balance or limit
	MaxMoney = decimal.New(1, 16)
	// MaxInterestRate is the exclusive upper bound of a stored interest rate
	MaxInterestRate = decimal.New(1, 3)
)

// IsStorableMoney reports whether amount fits the money columns without rounding
func IsStorableMoney(amount decimal.Decimal) bool {
	return hasScale(amount, MoneyScale) && amount.Abs().LessThan(MaxMoney)
}

// IsStorableInterestRate reports whether rate fits the rate column without rounding
func IsStorableInterestRate(rate decimal.Decimal) bool {
	return hasScale(rate, InterestRateScale) && rate.Abs().LessThan(MaxInterestRate)
}

func hasScale(d decimal.Decimal, scale int32) bool {
	return d.Equal(d.Truncate(scale))
}
