package handlers

import (
	stderrors "errors"
	"net/http"

	"accounts-service/internal/dto"
	"accounts-service/internal/errors"
	"accounts-service/internal/models"
	"accounts-service/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	manager services.AccountManagerInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(manager services.AccountManagerInterface) *AccountHandler {
	return &AccountHandler{manager: manager}
}

// Register mounts the account routes on g. restricted guards the freeze and
// unfreeze routes.
func (h *AccountHandler) Register(g *echo.Group, restricted ...echo.MiddlewareFunc) {
	g.POST("/accounts/current", h.CreateCurrentAccount)
	g.POST("/accounts/savings", h.CreateSavingsAccount)
	g.GET("/accounts/search", h.SearchAccounts)
	g.GET("/accounts/:accountId", h.GetAccount)
	g.POST("/accounts/:accountId/freeze", h.FreezeAccount, restricted...)
	g.POST("/accounts/:accountId/unfreeze", h.UnfreezeAccount, restricted...)
	g.POST("/accounts/:accountId/deposit", h.Deposit)
	g.POST("/accounts/:accountId/withdraw", h.Withdraw)
}

// CreateCurrentAccount opens a current account
// @Summary Create current account
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCurrentAccountRequest true "Account details"
// @Success 200 {object} dto.OperationResponse "Operation outcome"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/current [post]
func (h *AccountHandler) CreateCurrentAccount(c echo.Context) error {
	var req dto.CreateCurrentAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	code, err := h.manager.CreateCurrentAccount(c.Request().Context(),
		uuid.MustParse(req.AccountID), uuid.MustParse(req.CustomerID),
		req.Currency, req.InitialBalance, req.OverdraftLimit)
	return h.operationResult(c, code, err)
}

// CreateSavingsAccount opens a savings account
// @Summary Create savings account
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSavingsAccountRequest true "Account details"
// @Success 200 {object} dto.OperationResponse "Operation outcome"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/savings [post]
func (h *AccountHandler) CreateSavingsAccount(c echo.Context) error {
	var req dto.CreateSavingsAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	code, err := h.manager.CreateSavingsAccount(c.Request().Context(),
		uuid.MustParse(req.AccountID), uuid.MustParse(req.CustomerID),
		req.Currency, req.InitialBalance, req.InterestRate)
	return h.operationResult(c, code, err)
}

// FreezeAccount moves an account to Frozen
// @Summary Freeze account
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.OperationResponse "Ok, AccountNotFound or AccountAlreadyFrozen"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 - Invalid account ID format"
// @Router /accounts/{accountId}/freeze [post]
func (h *AccountHandler) FreezeAccount(c echo.Context) error {
	accountID, ok, err := parseIDParam(c, "accountId", errors.AccountInvalidID)
	if !ok {
		return err
	}

	code, err := h.manager.FreezeAccount(c.Request().Context(), accountID)
	return h.operationResult(c, code, err)
}

// UnfreezeAccount moves an account back to Active
// @Summary Unfreeze account
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.OperationResponse "Ok, AccountNotFound or AccountNotFrozen"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 - Invalid account ID format"
// @Router /accounts/{accountId}/unfreeze [post]
func (h *AccountHandler) UnfreezeAccount(c echo.Context) error {
	accountID, ok, err := parseIDParam(c, "accountId", errors.AccountInvalidID)
	if !ok {
		return err
	}

	code, err := h.manager.UnfreezeAccount(c.Request().Context(), accountID)
	return h.operationResult(c, code, err)
}

// Deposit credits an active account
// @Summary Deposit
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.AmountRequest true "Amount"
// @Success 200 {object} dto.OperationResponse "Ok, AccountNotFound or AccountClosed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid amount"
// @Router /accounts/{accountId}/deposit [post]
func (h *AccountHandler) Deposit(c echo.Context) error {
	accountID, ok, err := parseIDParam(c, "accountId", errors.AccountInvalidID)
	if !ok {
		return err
	}

	var req dto.AmountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	code, err := h.manager.Deposit(c.Request().Context(), accountID, req.Amount)
	return h.operationResult(c, code, err)
}

// Withdraw debits an active account
// @Summary Withdraw
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.AmountRequest true "Amount"
// @Success 200 {object} dto.OperationResponse "Ok, AccountNotFound, AccountClosed or InsufficientFunds"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid amount"
// @Router /accounts/{accountId}/withdraw [post]
func (h *AccountHandler) Withdraw(c echo.Context) error {
	accountID, ok, err := parseIDParam(c, "accountId", errors.AccountInvalidID)
	if !ok {
		return err
	}

	var req dto.AmountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	code, err := h.manager.Withdraw(c.Request().Context(), accountID, req.Amount)
	return h.operationResult(c, code, err)
}

// GetAccount retrieves an account by ID
// @Summary Get account
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 - Invalid account ID format"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, ok, err := parseIDParam(c, "accountId", errors.AccountInvalidID)
	if !ok {
		return err
	}

	account, err := h.manager.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		if stderrors.Is(err, services.ErrAccountNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// SearchAccounts returns one page of accounts, newest first
// @Summary Search accounts
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param customerId query string false "Owner customer ID"
// @Param accountType query string false "Current or Savings"
// @Param currency query string false "3-letter currency code"
// @Param status query string false "Active, Frozen or Closed"
// @Param minBalance query string false "Inclusive lower balance bound"
// @Param maxBalance query string false "Inclusive upper balance bound"
// @Param createdAfter query string false "Inclusive lower creation bound (RFC 3339 or YYYY-MM-DD)"
// @Param createdBefore query string false "Inclusive upper creation bound (RFC 3339 or YYYY-MM-DD)"
// @Param isFrozen query bool false "Frozen state"
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.PageResponse[dto.AccountResponse]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query parameters"
// @Router /accounts/search [get]
func (h *AccountHandler) SearchAccounts(c echo.Context) error {
	req := dto.NewSearchAccountsRequest()
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	filters, err := req.Filters()
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	result, err := h.manager.SearchAccounts(c.Request().Context(), filters, req.Page, req.PageSize)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidPagination) {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPageResponse(result, dto.NewAccountResponse))
}

func (h *AccountHandler) operationResult(c echo.Context, code models.ServiceErrorCode, err error) error {
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewOperationResponse(code))
}
