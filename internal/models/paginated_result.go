package models

// PaginatedResult is one page of a filtered result set.
// TotalCount is the number of matching rows before paging.
type PaginatedResult[T any] struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	Items      []T   `json:"items"`
}

// NewPaginatedResult builds a page, never returning nil items
func NewPaginatedResult[T any](page, pageSize int, totalCount int64, items []T) PaginatedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResult[T]{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		Items:      items,
	}
}

// TotalPages returns ceil(TotalCount / PageSize)
func (p PaginatedResult[T]) TotalPages() int {
	if p.PageSize <= 0 || p.TotalCount <= 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// Offset returns the number of rows skipped before the first item of a page
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// PastLastPage reports whether page starts beyond the last matching row.
// Computed without forming the offset so very large pages cannot overflow.
func PastLastPage(page, pageSize int, totalCount int64) bool {
	if pageSize <= 0 {
		return true
	}
	lastPage := (totalCount + int64(pageSize) - 1) / int64(pageSize)
	return int64(page-1) >= lastPage
}

// MapPage converts the items of a page while keeping its metadata
func MapPage[T, U any](p PaginatedResult[T], fn func(T) U) PaginatedResult[U] {
	items := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return NewPaginatedResult(p.Page, p.PageSize, p.TotalCount, items)
}
