package response_test

import (
	"testing"

	"go-hrm/internal/shared/response"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)
	assert.Equal(t, int64(21), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PageSize)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("middle page", func(t *testing.T) {
		page, meta := response.Paginate(items, 2, 2)
		assert.Equal(t, []int{3, 4}, page)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, meta := response.Paginate(items, 9, 2)
		assert.Empty(t, page)
		assert.Equal(t, int64(5), meta.Total)
	})

	t.Run("defaults for invalid input", func(t *testing.T) {
		page, meta := response.Paginate(items, 0, 0)
		assert.Len(t, page, 5)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, 10, meta.PageSize)
	})
}
