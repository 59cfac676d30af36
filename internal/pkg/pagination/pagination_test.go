package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams(t *testing.T) {
	assert.Equal(t, Params{Page: DefaultPage, PerPage: DefaultPerPage}, NewParams(0, 0))
	assert.Equal(t, MaxPerPage, NewParams(1, 1000).PerPage)

	p := NewParams(3, 10)
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 10, p.Limit())
}

func TestNewInfo(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		info := NewInfo(2, 10, 25)

		assert.Equal(t, 3, info.TotalPages)
		assert.True(t, info.HasNext)
		assert.True(t, info.HasPrev)
	})

	t.Run("from params", func(t *testing.T) {
		assert.Equal(t, NewInfo(2, 5, 11), NewParams(2, 5).Info(11))
	})

	t.Run("zero per page falls back to default", func(t *testing.T) {
		info := NewInfo(1, 0, 45)

		assert.Equal(t, DefaultPerPage, info.PerPage)
		assert.Equal(t, 3, info.TotalPages)
	})

	t.Run("empty result has one page", func(t *testing.T) {
		info := NewInfo(1, 10, 0)

		assert.Equal(t, 1, info.TotalPages)
		assert.False(t, info.HasNext)
		assert.False(t, info.HasPrev)
	})
}
