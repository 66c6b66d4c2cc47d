package dto

import (
	"time"

	"accounts-service/internal/models"

	"github.com/google/uuid"
)

// CreateCustomerRequest represents the request payload for registering a customer.
// The caller supplies the customer ID.
type CreateCustomerRequest struct {
	CustomerID string `json:"customerId" validate:"required,guid"`
	FirstName  string `json:"firstName" validate:"required,max=100"`
	LastName   string `json:"lastName" validate:"required,max=100"`
}

// SearchCustomersRequest represents the query parameters of a customer search
type SearchCustomersRequest struct {
	FirstName string `query:"firstNameFilter" validate:"omitempty,max=100"`
	LastName  string `query:"lastNameFilter" validate:"omitempty,max=100"`
	Page      int    `query:"page" validate:"min=1,max=1000000"`
	PageSize  int    `query:"pageSize" validate:"min=1,max=100"`
}

// NewSearchCustomersRequest returns a request holding the default paging
func NewSearchCustomersRequest() SearchCustomersRequest {
	return SearchCustomersRequest{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Filters returns the name filters of the request
func (r SearchCustomersRequest) Filters() models.CustomerFilters {
	return models.CustomerFilters{
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	CustomerID uuid.UUID `json:"customerId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewCustomerResponse(customer models.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: customer.CustomerID,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		CreatedAt:  customer.CreatedAt,
	}
}
