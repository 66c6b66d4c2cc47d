package repositories

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"accounts-service/internal/database"
	"accounts-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     AccountRepositoryInterface
	ctx      context.Context
	customer *models.Customer
	base     time.Time
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.ctx = context.Background()
	s.customer = database.CreateTestCustomer(s.T(), s.db)
	s.base = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) newCurrent() *models.Account {
	return &models.Account{
		AccountID:      uuid.New(),
		CustomerID:     s.customer.CustomerID,
		AccountType:    models.AccountTypeCurrent,
		Currency:       "usd",
		Balance:        decimal.NewFromInt(100),
		OverdraftLimit: decimal.NewNullDecimal(decimal.NewFromInt(50)),
	}
}

func (s *AccountRepositorySuite) TestCreate() {
	account := s.newCurrent()

	s.Require().NoError(s.repo.Create(s.ctx, account))

	stored, err := s.repo.GetByID(s.ctx, account.AccountID)
	s.Require().NoError(err)
	s.Equal(models.AccountStatusActive, stored.Status)
	s.Equal("USD", stored.Currency)
	s.Nil(stored.FrozenAt)
	s.True(stored.Balance.Equal(decimal.NewFromInt(100)))
	s.True(stored.OverdraftLimit.Decimal.Equal(decimal.NewFromInt(50)))
	s.False(stored.InterestRate.Valid)
}

func (s *AccountRepositorySuite) TestCreate_DuplicateID() {
	account := s.newCurrent()
	s.Require().NoError(s.repo.Create(s.ctx, account))

	duplicate := s.newCurrent()
	duplicate.AccountID = account.AccountID
	s.ErrorIs(s.repo.Create(s.ctx, duplicate), ErrAccountExists)
}

func (s *AccountRepositorySuite) TestCreate_UnknownCustomer() {
	account := s.newCurrent()
	account.CustomerID = uuid.New()

	s.ErrorIs(s.repo.Create(s.ctx, account), ErrCustomerNotFound)
}

func (s *AccountRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestExists() {
	account := database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID)

	exists, err := s.repo.Exists(s.ctx, account.AccountID)
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.Exists(s.ctx, uuid.New())
	s.NoError(err)
	s.False(exists)
}

func (s *AccountRepositorySuite) TestGetByCustomerID_NewestFirst() {
	older := database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID, database.WithCreatedAt(s.base))
	newer := database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID, database.WithCreatedAt(s.base.Add(time.Hour)))
	other := database.CreateTestCustomer(s.T(), s.db)
	database.CreateTestAccount(s.T(), s.db, other.CustomerID)

	accounts, err := s.repo.GetByCustomerID(s.ctx, s.customer.CustomerID)
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal(newer.AccountID, accounts[0].AccountID)
	s.Equal(older.AccountID, accounts[1].AccountID)

	accounts, err = s.repo.GetByCustomerID(s.ctx, uuid.New())
	s.NoError(err)
	s.Empty(accounts)
}

func (s *AccountRepositorySuite) seedSearchFixtures() map[string]*models.Account {
	other := database.CreateTestCustomer(s.T(), s.db)

	return map[string]*models.Account{
		"usdCurrent": database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID,
			database.WithBalance("100"), database.WithCreatedAt(s.base)),
		"eurSavings": database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID,
			database.AsSavings("0.02"), database.WithCurrency("EUR"), database.WithBalance("5000"),
			database.WithCreatedAt(s.base.Add(24*time.Hour))),
		"usdFrozen": database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID,
			database.WithBalance("250.75"), database.WithCreatedAt(s.base.Add(48*time.Hour)),
			database.WithFrozenAt(s.base.Add(72*time.Hour))),
		"otherCurrent": database.CreateTestAccount(s.T(), s.db, other.CustomerID,
			database.WithBalance("0"), database.WithCreatedAt(s.base.Add(96*time.Hour))),
	}
}

func (s *AccountRepositorySuite) TestSearch_Filters() {
	fixtures := s.seedSearchFixtures()

	customerID := s.customer.CustomerID
	savings := models.AccountTypeSavings
	current := models.AccountTypeCurrent
	eur := "eur"
	usd := "USD"
	frozen := models.AccountStatusFrozen
	active := models.AccountStatusActive
	minBalance := decimal.NewFromInt(100)
	maxBalance := decimal.RequireFromString("250.75")
	after := s.base.Add(24 * time.Hour)
	before := s.base.Add(48 * time.Hour)
	isFrozen := true
	notFrozen := false

	tests := []struct {
		name    string
		filters models.AccountFilters
		want    []string
	}{
		{name: "no filters newest first", want: []string{"otherCurrent", "usdFrozen", "eurSavings", "usdCurrent"}},
		{name: "customer", filters: models.AccountFilters{CustomerID: &customerID}, want: []string{"usdFrozen", "eurSavings", "usdCurrent"}},
		{name: "account type", filters: models.AccountFilters{AccountType: &savings}, want: []string{"eurSavings"}},
		{name: "currency is case-insensitive", filters: models.AccountFilters{Currency: &eur}, want: []string{"eurSavings"}},
		{name: "status", filters: models.AccountFilters{Status: &frozen}, want: []string{"usdFrozen"}},
		{name: "balance range is inclusive", filters: models.AccountFilters{MinBalance: &minBalance, MaxBalance: &maxBalance}, want: []string{"usdFrozen", "usdCurrent"}},
		{name: "created range is inclusive", filters: models.AccountFilters{CreatedAfter: &after, CreatedBefore: &before}, want: []string{"usdFrozen", "eurSavings"}},
		{name: "is frozen", filters: models.AccountFilters{IsFrozen: &isFrozen}, want: []string{"usdFrozen"}},
		{name: "is not frozen", filters: models.AccountFilters{IsFrozen: &notFrozen}, want: []string{"otherCurrent", "eurSavings", "usdCurrent"}},
		{
			name:    "filters combine conjunctively",
			filters: models.AccountFilters{CustomerID: &customerID, AccountType: &current, Currency: &usd, Status: &active},
			want:    []string{"usdCurrent"},
		},
		{
			name:    "contradictory filters match nothing",
			filters: models.AccountFilters{Status: &frozen, IsFrozen: &notFrozen},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result, err := s.repo.Search(s.ctx, tt.filters, 1, 10)
			s.Require().NoError(err)

			s.Equal(int64(len(tt.want)), result.TotalCount)
			got := make([]uuid.UUID, 0, len(result.Items))
			for _, item := range result.Items {
				got = append(got, item.AccountID)
			}
			want := make([]uuid.UUID, 0, len(tt.want))
			for _, key := range tt.want {
				want = append(want, fixtures[key].AccountID)
			}
			s.Equal(want, got)
		})
	}
}

func (s *AccountRepositorySuite) TestSearch_Pagination() {
	for i := 0; i < 23; i++ {
		database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID, database.WithCreatedAt(s.base.Add(time.Duration(i)*time.Minute)))
	}

	seen := map[uuid.UUID]bool{}
	for page := 1; page <= 3; page++ {
		result, err := s.repo.Search(s.ctx, models.AccountFilters{}, page, 10)
		s.Require().NoError(err)
		s.Equal(int64(23), result.TotalCount)
		s.Equal(3, result.TotalPages())

		for _, item := range result.Items {
			s.False(seen[item.AccountID], "account returned on more than one page")
			seen[item.AccountID] = true
		}
	}
	s.Len(seen, 23)

	result, err := s.repo.Search(s.ctx, models.AccountFilters{}, 3, 10)
	s.Require().NoError(err)
	s.Len(result.Items, 3)
	s.True(result.Items[2].CreatedAt.Equal(s.base))
}

func (s *AccountRepositorySuite) TestSearch_PageBeyondEnd() {
	for i := 0; i < 3; i++ {
		database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID)
	}

	for _, page := range []int{2, math.MaxInt/100 + 2} {
		result, err := s.repo.Search(s.ctx, models.AccountFilters{}, page, 100)
		s.Require().NoError(err)
		s.Equal(int64(3), result.TotalCount)
		s.Empty(result.Items)
		s.Equal(page, result.Page)
	}
}

func (s *AccountRepositorySuite) TestSearch_InvalidPagination() {
	_, err := s.repo.Search(s.ctx, models.AccountFilters{}, -1, 10)
	s.ErrorIs(err, ErrInvalidPagination)
}

func (s *AccountRepositorySuite) TestFreezeAndUnfreeze() {
	account := database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID)
	at := s.base.Add(5 * time.Minute)

	frozen, err := s.repo.Freeze(s.ctx, account.AccountID, at)
	s.Require().NoError(err)
	s.Equal(models.AccountStatusFrozen, frozen.Status)
	s.Require().NotNil(frozen.FrozenAt)

	stored, err := s.repo.GetByID(s.ctx, account.AccountID)
	s.Require().NoError(err)
	s.Equal(models.AccountStatusFrozen, stored.Status)
	s.Require().NotNil(stored.FrozenAt)
	s.True(stored.FrozenAt.Equal(at))

	_, err = s.repo.Freeze(s.ctx, account.AccountID, at)
	s.ErrorIs(err, ErrAccountAlreadyFrozen)

	unfrozen, err := s.repo.Unfreeze(s.ctx, account.AccountID)
	s.Require().NoError(err)
	s.Equal(models.AccountStatusActive, unfrozen.Status)

	stored, err = s.repo.GetByID(s.ctx, account.AccountID)
	s.Require().NoError(err)
	s.Equal(models.AccountStatusActive, stored.Status)
	s.Nil(stored.FrozenAt)

	_, err = s.repo.Unfreeze(s.ctx, account.AccountID)
	s.ErrorIs(err, ErrAccountNotFrozen)
}

func (s *AccountRepositorySuite) TestUnfreeze_ClosedAccountBecomesActive() {
	account := database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID)
	s.Require().NoError(s.db.Model(&models.Account{}).Where("account_id = ?", account.AccountID).
		Update("status", models.AccountStatusClosed).Error)

	unfrozen, err := s.repo.Unfreeze(s.ctx, account.AccountID)
	s.Require().NoError(err)
	s.Equal(models.AccountStatusActive, unfrozen.Status)
}

func (s *AccountRepositorySuite) TestMutations_NotFound() {
	_, err := s.repo.Freeze(s.ctx, uuid.New(), s.base)
	s.ErrorIs(err, ErrAccountNotFound)

	_, err = s.repo.Unfreeze(s.ctx, uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)

	_, err = s.repo.ApplyBalanceDelta(s.ctx, uuid.New(), decimal.NewFromInt(1))
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestApplyBalanceDelta() {
	account := database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID, database.WithBalance("100.00"))

	updated, err := s.repo.ApplyBalanceDelta(s.ctx, account.AccountID, decimal.RequireFromString("25.50"))
	s.Require().NoError(err)
	s.True(updated.Balance.Equal(decimal.RequireFromString("125.50")))

	updated, err = s.repo.ApplyBalanceDelta(s.ctx, account.AccountID, decimal.RequireFromString("-125.50"))
	s.Require().NoError(err)
	s.True(updated.Balance.IsZero())

	_, err = s.repo.ApplyBalanceDelta(s.ctx, account.AccountID, decimal.RequireFromString("-0.01"))
	s.ErrorIs(err, ErrInsufficientFunds)

	stored, err := s.repo.GetByID(s.ctx, account.AccountID)
	s.Require().NoError(err)
	s.True(stored.Balance.IsZero())
}

func (s *AccountRepositorySuite) TestApplyBalanceDelta_OutOfRange() {
	account := database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID, database.WithBalance("9999999999999999.00"))

	_, err := s.repo.ApplyBalanceDelta(s.ctx, account.AccountID, decimal.NewFromInt(1))
	s.ErrorIs(err, ErrBalanceOutOfRange)

	stored, err := s.repo.GetByID(s.ctx, account.AccountID)
	s.Require().NoError(err)
	s.True(stored.Balance.Equal(decimal.RequireFromString("9999999999999999.00")))
}

func (s *AccountRepositorySuite) TestApplyBalanceDelta_FrozenAccount() {
	account := database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID, database.WithFrozenAt(s.base))

	_, err := s.repo.ApplyBalanceDelta(s.ctx, account.AccountID, decimal.NewFromInt(10))
	s.ErrorIs(err, ErrAccountNotActive)
}

func (s *AccountRepositorySuite) TestApplyBalanceDelta_ConcurrentWithdrawalsNeverOverdraw() {
	account := database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID, database.WithBalance("100"))

	var wg sync.WaitGroup
	results := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.ApplyBalanceDelta(s.ctx, account.AccountID, decimal.NewFromInt(-10))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, ErrInsufficientFunds)
	}
	s.Equal(10, succeeded)

	stored, err := s.repo.GetByID(s.ctx, account.AccountID)
	s.Require().NoError(err)
	s.True(stored.Balance.IsZero())
}
