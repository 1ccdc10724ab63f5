package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymstack/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		p := ValidatePagination(0, 0)
		assert.Equal(t, constants.DefaultPage, p.Page)
		assert.Equal(t, constants.DefaultPageSize, p.PageSize)
	})

	t.Run("negative values normalized", func(t *testing.T) {
		p := ValidatePagination(-5, -10)
		assert.Equal(t, constants.DefaultPage, p.Page)
		assert.Equal(t, constants.DefaultPageSize, p.PageSize)
	})

	t.Run("page size capped", func(t *testing.T) {
		p := ValidatePagination(2, 10000)
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, constants.MaxPageSize, p.PageSize)
	})
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Pagination{Page: 3, PageSize: 20}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(100, 0))
}
