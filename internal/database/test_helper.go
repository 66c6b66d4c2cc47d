package database

import (
	"fmt"
	"testing"
	"time"

	"accounts-service/internal/config"
	"accounts-service/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an isolated in-memory sqlite database with the schema applied
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:         config.DriverSQLite,
		SQLitePath:     "file::memory:",
		MaxConnections: 1,
		MaxIdleConns:   1,
	}

	gormCfg := gormConfig(cfg)
	gormCfg.Logger = logger.Default.LogMode(logger.Silent)

	db, err := gorm.Open(sqlite.Open(cfg.SQLiteDSN()), gormCfg)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// every pooled connection to :memory: would see its own empty database
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB:     db,
		config: cfg,
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CustomerOption customizes a fixture customer before it is persisted
type CustomerOption func(*models.Customer)

func WithCustomerName(firstName, lastName string) CustomerOption {
	return func(c *models.Customer) {
		c.FirstName = firstName
		c.LastName = lastName
	}
}

func CreateTestCustomer(t *testing.T, db *DB, opts ...CustomerOption) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		CustomerID: uuid.New(),
		FirstName:  gofakeit.FirstName(),
		LastName:   gofakeit.LastName(),
	}
	for _, opt := range opts {
		opt(customer)
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

// AccountOption customizes a fixture account before it is persisted
type AccountOption func(*models.Account)

func AsSavings(rate string) AccountOption {
	return func(a *models.Account) {
		a.AccountType = models.AccountTypeSavings
		a.OverdraftLimit = decimal.NullDecimal{}
		a.InterestRate = decimal.NewNullDecimal(decimal.RequireFromString(rate))
	}
}

func WithBalance(balance string) AccountOption {
	return func(a *models.Account) {
		a.Balance = decimal.RequireFromString(balance)
	}
}

func WithCurrency(currency string) AccountOption {
	return func(a *models.Account) {
		a.Currency = currency
	}
}

func WithCreatedAt(createdAt time.Time) AccountOption {
	return func(a *models.Account) {
		a.CreatedAt = createdAt.UTC()
	}
}

func WithFrozenAt(frozenAt time.Time) AccountOption {
	return func(a *models.Account) {
		a.Freeze(frozenAt)
	}
}

// CreateTestAccount persists an active current account owned by customerID
func CreateTestAccount(t *testing.T, db *DB, customerID uuid.UUID, opts ...AccountOption) *models.Account {
	t.Helper()

	account := &models.Account{
		AccountID:      uuid.New(),
		CustomerID:     customerID,
		AccountType:    models.AccountTypeCurrent,
		Currency:       "USD",
		Balance:        decimal.NewFromInt(100),
		Status:         models.AccountStatusActive,
		OverdraftLimit: decimal.NewNullDecimal(decimal.Zero),
	}
	for _, opt := range opts {
		opt(account)
	}

	if err := db.Omit(clause.Associations).Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"accounts",
		"customers",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
