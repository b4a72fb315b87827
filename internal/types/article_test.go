package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectIDs(articles []ProcessedArticle) []string {
	ids := make([]string, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}
	return ids
}

func TestPrepend(t *testing.T) {
	existing := []ProcessedArticle{{ID: "b"}, {ID: "c"}}

	t.Run("Single article goes to the front", func(t *testing.T) {
		result := Prepend(existing, ProcessedArticle{ID: "a"})
		assert.Equal(t, []string{"a", "b", "c"}, collectIDs(result))
	})

	t.Run("Batch keeps its own order ahead of existing", func(t *testing.T) {
		result := Prepend(existing, ProcessedArticle{ID: "x"}, ProcessedArticle{ID: "y"})
		assert.Equal(t, []string{"x", "y", "b", "c"}, collectIDs(result))
	})

	t.Run("Does not mutate the original collection", func(t *testing.T) {
		_ = Prepend(existing, ProcessedArticle{ID: "z"})
		assert.Equal(t, []string{"b", "c"}, collectIDs(existing))
	})

	t.Run("Empty batch returns equal collection", func(t *testing.T) {
		result := Prepend(existing)
		assert.Equal(t, existing, result)
	})
}

func TestRemove(t *testing.T) {
	articles := []ProcessedArticle{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	t.Run("Removes matching id and preserves order", func(t *testing.T) {
		result := Remove(articles, "b")
		assert.Equal(t, []string{"a", "c"}, collectIDs(result))
	})

	t.Run("Unknown id leaves collection unchanged", func(t *testing.T) {
		result := Remove(articles, "nope")
		assert.Equal(t, []string{"a", "b", "c"}, collectIDs(result))
	})

	t.Run("Empty collection stays empty", func(t *testing.T) {
		assert.Empty(t, Remove(nil, "a"))
	})
}

func TestFind(t *testing.T) {
	articles := []ProcessedArticle{{ID: "a", Title: "First"}, {ID: "b", Title: "Second"}}

	found := Find(articles, "b")
	require.NotNil(t, found)
	assert.Equal(t, "Second", found.Title)

	assert.Nil(t, Find(articles, "missing"))
	assert.Nil(t, Find(nil, "a"))
}
