package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedResult_TotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{name: "empty", total: 0, pageSize: 10, want: 0},
		{name: "exact multiple", total: 30, pageSize: 10, want: 3},
		{name: "remainder", total: 31, pageSize: 10, want: 4},
		{name: "single item", total: 1, pageSize: 100, want: 1},
		{name: "invalid page size", total: 5, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPaginatedResult[int](1, tt.pageSize, tt.total, nil)
			assert.Equal(t, tt.want, page.TotalPages())
		})
	}
}

func TestNewPaginatedResult_NilItems(t *testing.T) {
	page := NewPaginatedResult[string](3, 20, 12, nil)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(12), page.TotalCount)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 20))
	assert.Equal(t, 40, Offset(3, 20))
}

func TestPastLastPage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     bool
	}{
		{name: "first page of empty set", page: 1, pageSize: 10, total: 0, want: true},
		{name: "first page", page: 1, pageSize: 10, total: 3, want: false},
		{name: "last partial page", page: 3, pageSize: 10, total: 23, want: false},
		{name: "one past the end", page: 4, pageSize: 10, total: 23, want: true},
		{name: "offset would overflow", page: math.MaxInt/100 + 2, pageSize: 100, total: 3, want: true},
		{name: "invalid page size", page: 1, pageSize: 0, total: 3, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PastLastPage(tt.page, tt.pageSize, tt.total))
		})
	}
}

func TestMapPage(t *testing.T) {
	page := NewPaginatedResult(2, 2, 5, []int{3, 4})
	mapped := MapPage(page, func(i int) string { return string(rune('a' + i)) })

	assert.Equal(t, []string{"d", "e"}, mapped.Items)
	assert.Equal(t, 2, mapped.Page)
	assert.Equal(t, int64(5), mapped.TotalCount)
}
