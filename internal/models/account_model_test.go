package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAccountModel_Current(t *testing.T) {
	record := newCurrentAccount()

	model, err := ToAccountModel(&record)
	require.NoError(t, err)

	current, ok := model.(*CurrentAccount)
	require.True(t, ok, "expected *CurrentAccount, got %T", model)
	assert.Equal(t, AccountTypeCurrent, current.Type())
	assert.Equal(t, record.AccountID, current.Base().AccountID)
	assert.True(t, current.OverdraftLimit.Equal(decimal.NewFromInt(50)))
	assert.True(t, current.Balance.Equal(decimal.NewFromInt(100)))
}

func TestToAccountModel_Savings(t *testing.T) {
	record := newCurrentAccount()
	record.AccountType = AccountTypeSavings
	record.OverdraftLimit = decimal.NullDecimal{}
	record.InterestRate = decimal.NewNullDecimal(decimal.RequireFromString("0.035"))

	model, err := ToAccountModel(&record)
	require.NoError(t, err)

	savings, ok := model.(*SavingsAccount)
	require.True(t, ok, "expected *SavingsAccount, got %T", model)
	assert.Equal(t, AccountTypeSavings, savings.Type())
	assert.True(t, savings.InterestRate.Equal(decimal.RequireFromString("0.035")))
}

func TestToAccountModel_UpperCaseDiscriminator(t *testing.T) {
	record := newCurrentAccount()
	record.AccountType = "CURRENT"

	model, err := ToAccountModel(&record)
	require.NoError(t, err)
	assert.IsType(t, &CurrentAccount{}, model)
}

func TestToAccountModel_MissingVariantFieldDefaultsToZero(t *testing.T) {
	record := newCurrentAccount()
	record.OverdraftLimit = decimal.NullDecimal{}

	model, err := ToAccountModel(&record)
	require.NoError(t, err)
	assert.True(t, model.(*CurrentAccount).OverdraftLimit.IsZero())
}

func TestToAccountModel_UnknownDiscriminator(t *testing.T) {
	record := newCurrentAccount()
	record.AccountType = "Brokerage"

	model, err := ToAccountModel(&record)
	assert.Nil(t, model)
	assert.ErrorIs(t, err, ErrUnknownAccountType)
}

func TestToAccountModel_Nil(t *testing.T) {
	model, err := ToAccountModel(nil)
	assert.NoError(t, err)
	assert.Nil(t, model)
}

func TestToAccountModels(t *testing.T) {
	first := newCurrentAccount()
	second := newCurrentAccount()
	second.AccountType = AccountTypeSavings
	second.OverdraftLimit = decimal.NullDecimal{}
	second.InterestRate = decimal.NewNullDecimal(decimal.NewFromInt(1))

	models, err := ToAccountModels([]Account{first, second})
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.IsType(t, &CurrentAccount{}, models[0])
	assert.IsType(t, &SavingsAccount{}, models[1])

	bad := newCurrentAccount()
	bad.AccountType = "???"
	_, err = ToAccountModels([]Account{first, bad})
	assert.ErrorIs(t, err, ErrUnknownAccountType)
}
