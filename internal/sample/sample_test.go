package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khidi-engine/internal/store"
)

func TestBriefings(t *testing.T) {
	all := Briefings()
	require.Len(t, all, 5)

	seen := map[int64]bool{}
	for _, b := range all {
		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Content)
		assert.NotEmpty(t, b.URL)
		assert.False(t, seen[b.ID], "sample ids must be unique")
		seen[b.ID] = true
	}
}

func TestFilter(t *testing.T) {
	all := Briefings()

	assert.Len(t, Filter(all, ""), 5)
	assert.Len(t, Filter(all, store.CategoryAll), 5)

	hiring := Filter(all, "채용 분석")
	require.Len(t, hiring, 1)
	assert.Equal(t, "채용 분석", hiring[0].Category)

	assert.Empty(t, Filter(all, "없는 카테고리"))
}

func TestByID(t *testing.T) {
	b, ok := ByID(3)
	require.True(t, ok)
	assert.Equal(t, int64(3), b.ID)

	_, ok = ByID(99)
	assert.False(t, ok)
}
