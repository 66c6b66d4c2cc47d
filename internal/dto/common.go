package dto

import "accounts-service/internal/models"

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage bounds the page number so the row offset stays representable
	MaxPage = 1_000_000
)

// OperationResponse reports the outcome of a lifecycle operation.
// Business rule failures are carried here with a 200 status.
type OperationResponse struct {
	Result models.ServiceErrorCode `json:"result"`
	Code   int                     `json:"code"`
}

func NewOperationResponse(code models.ServiceErrorCode) OperationResponse {
	return OperationResponse{Result: code, Code: int(code)}
}

// PageResponse is one page of a search result
type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// NewPageResponse converts the items of p with fn and keeps the page metadata
func NewPageResponse[T, U any](p models.PaginatedResult[T], fn func(T) U) PageResponse[U] {
	mapped := models.MapPage(p, fn)
	return PageResponse[U]{
		Items:      mapped.Items,
		Page:       mapped.Page,
		PageSize:   mapped.PageSize,
		TotalCount: mapped.TotalCount,
		TotalPages: mapped.TotalPages(),
	}
}
