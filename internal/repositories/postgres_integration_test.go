//go:build integration

package repositories

import (
	"context"
	"testing"
	"time"

	"accounts-service/internal/database"

	"github.com/stretchr/testify/suite"
)

// The sqlite suites rerun against postgres: one container per suite,
// tables emptied between tests.

type PostgresAccountRepositorySuite struct {
	AccountRepositorySuite
	pg *database.DB
}

func (s *PostgresAccountRepositorySuite) SetupSuite() {
	s.pg = database.SetupPostgresTestDB(s.T(), false)
}

func (s *PostgresAccountRepositorySuite) SetupTest() {
	s.db = s.pg
	s.repo = NewAccountRepository(s.db.DB)
	s.ctx = context.Background()
	s.customer = database.CreateTestCustomer(s.T(), s.db)
	s.base = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
}

func TestPostgresAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(PostgresAccountRepositorySuite))
}

type PostgresCustomerRepositorySuite struct {
	CustomerRepositorySuite
	pg *database.DB
}

func (s *PostgresCustomerRepositorySuite) SetupSuite() {
	s.pg = database.SetupPostgresTestDB(s.T(), false)
}

func (s *PostgresCustomerRepositorySuite) SetupTest() {
	s.db = s.pg
	s.repo = NewCustomerRepository(s.db.DB)
	s.ctx = context.Background()
}

func TestPostgresCustomerRepositorySuite(t *testing.T) {
	suite.Run(t, new(PostgresCustomerRepositorySuite))
}
