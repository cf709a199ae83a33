package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page treated as first", 0, 10, 0, 10},
		{"negative page treated as first", -2, 10, 0, 10},
		{"zero size falls back to default", 2, 0, 10, DefaultPageSize},
		{"oversized page size capped", 1, 500, 0, DefaultPageSize},
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
	t.Run("exact fit", func(t *testing.T) {
		info := NewPaginationInfo(40, 2, 10)
		assert.Equal(t, 2, info.CurrentPage)
		assert.Equal(t, 4, info.TotalPages)
		assert.Equal(t, int64(40), info.TotalItems)
	})

	t.Run("partial last page", func(t *testing.T) {
		info := NewPaginationInfo(41, 1, 10)
		assert.Equal(t, 5, info.TotalPages)
	})

	t.Run("empty result set", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, int64(0), info.TotalItems)
	})

	t.Run("page beyond last clamps", func(t *testing.T) {
		info := NewPaginationInfo(10, 9, 10)
		assert.Equal(t, 1, info.CurrentPage)
	})
}
