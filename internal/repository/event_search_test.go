package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventSearchQueryWhereClause(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		cond, args := EventSearchQuery{}.whereClause()
		assert.Equal(t, "1=1", cond)
		assert.Empty(t, args)
	})

	t.Run("search matches title or description", func(t *testing.T) {
		cond, args := EventSearchQuery{Search: "Tech"}.whereClause()
		assert.Equal(t, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", cond)
		assert.Equal(t, []any{"%tech%", "%tech%"}, args)
	})

	t.Run("category is exact", func(t *testing.T) {
		cond, args := EventSearchQuery{Category: "Music"}.whereClause()
		assert.Equal(t, "category = ?", cond)
		assert.Equal(t, []any{"Music"}, args)
	})

	t.Run("combined", func(t *testing.T) {
		cond, args := EventSearchQuery{Search: "conf", Category: "Tech"}.whereClause()
		assert.Equal(t, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?) AND category = ?", cond)
		assert.Equal(t, []any{"%conf%", "%conf%", "Tech"}, args)
	})
}

func TestEventSearchQueryNormalize(t *testing.T) {
	q := EventSearchQuery{Page: 0, Limit: 0}.normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)

	q = EventSearchQuery{Page: -3, Limit: 5000}.normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 100, q.Limit)

	q = EventSearchQuery{Page: 2, Limit: 10}.normalize()
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 10, q.Limit)
}
