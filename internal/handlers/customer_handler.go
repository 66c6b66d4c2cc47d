package handlers

import (
	stderrors "errors"
	"net/http"

	"accounts-service/internal/dto"
	"accounts-service/internal/errors"
	"accounts-service/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	manager services.AccountManagerInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(manager services.AccountManagerInterface) *CustomerHandler {
	return &CustomerHandler{manager: manager}
}

// Register mounts the customer routes on g
func (h *CustomerHandler) Register(g *echo.Group) {
	g.POST("/customers", h.CreateCustomer)
	g.GET("/customers", h.SearchCustomers)
	g.GET("/customers/:customerId", h.GetCustomer)
	g.GET("/customers/:customerId/accounts", h.GetCustomerAccounts)
}

// CreateCustomer registers a customer under the caller-supplied ID
// @Summary Create customer
// @Tags Customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer details"
// @Success 200 {object} dto.OperationResponse "Operation outcome (Ok or CustomerAlreadyExists)"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req dto.CreateCustomerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	code, err := h.manager.CreateCustomer(c.Request().Context(), uuid.MustParse(req.CustomerID), req.FirstName, req.LastName)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewOperationResponse(code))
}

// GetCustomer retrieves a customer by ID
// @Summary Get customer
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param customerId path string true "Customer ID (UUID)"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_002 - Invalid customer ID format"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{customerId} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID, ok, err := parseIDParam(c, "customerId", errors.CustomerInvalidID)
	if !ok {
		return err
	}

	customer, err := h.manager.GetCustomer(c.Request().Context(), customerID)
	if err != nil {
		if stderrors.Is(err, services.ErrCustomerNotFound) {
			return SendError(c, errors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCustomerResponse(*customer))
}

// GetCustomerAccounts lists the accounts of a customer, newest first
// @Summary List customer accounts
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param customerId path string true "Customer ID (UUID)"
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_002 - Invalid customer ID format"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{customerId}/accounts [get]
func (h *CustomerHandler) GetCustomerAccounts(c echo.Context) error {
	customerID, ok, err := parseIDParam(c, "customerId", errors.CustomerInvalidID)
	if !ok {
		return err
	}

	accounts, err := h.manager.GetAccountsByCustomerID(c.Request().Context(), customerID)
	if err != nil {
		if stderrors.Is(err, services.ErrCustomerNotFound) {
			return SendError(c, errors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponses(accounts))
}

// SearchCustomers returns one page of customers ordered by last and first name
// @Summary Search customers
// @Description Name filters are case-insensitive substrings and only apply when longer than 3 characters
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param firstNameFilter query string false "First name filter"
// @Param lastNameFilter query string false "Last name filter"
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.PageResponse[dto.CustomerResponse]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query parameters"
// @Router /customers [get]
func (h *CustomerHandler) SearchCustomers(c echo.Context) error {
	req := dto.NewSearchCustomersRequest()
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.manager.SearchCustomers(c.Request().Context(), req.Filters(), req.Page, req.PageSize)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidPagination) {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPageResponse(result, dto.NewCustomerResponse))
}
