package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset int
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "third page", page: 3, size: 20, wantOffset: 40, wantLimit: 20},
		{name: "zero page defaults to first", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "negative page defaults to first", page: -5, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "zero size defaults", page: 2, size: 0, wantOffset: 10, wantLimit: 10},
		{name: "oversized page size capped to default", page: 1, size: 500, wantOffset: 0, wantLimit: 10},
		{name: "max page size allowed", page: 2, size: 100, wantOffset: 100, wantLimit: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name        string
		totalItems  int64
		page        int
		size        int
		wantPage    int
		wantPages   int
		wantSize    int
	}{
		{name: "single page", totalItems: 5, page: 1, size: 10, wantPage: 1, wantPages: 1, wantSize: 10},
		{name: "exact fit", totalItems: 20, page: 1, size: 10, wantPage: 1, wantPages: 2, wantSize: 10},
		{name: "partial last page", totalItems: 21, page: 3, size: 10, wantPage: 3, wantPages: 3, wantSize: 10},
		{name: "empty result on first page", totalItems: 0, page: 1, size: 10, wantPage: 1, wantPages: 1, wantSize: 10},
		{name: "page beyond range clamps", totalItems: 10, page: 5, size: 10, wantPage: 1, wantPages: 1, wantSize: 10},
		{name: "invalid size defaults", totalItems: 25, page: 1, size: 0, wantPage: 1, wantPages: 3, wantSize: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.totalItems, tt.page, tt.size)
			assert.Equal(t, tt.wantPage, info.CurrentPage)
			assert.Equal(t, tt.wantPages, info.TotalPages)
			assert.Equal(t, tt.wantSize, info.PageSize)
			assert.Equal(t, tt.totalItems, info.TotalItems)
		})
	}
}
