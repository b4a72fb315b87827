package report

import (
	"testing"

	"github.com/rmoreira/researchflow/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("Nil article is a no-op", func(t *testing.T) {
		data, err := Generate(nil)
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("Produces a PDF document", func(t *testing.T) {
		data, err := Generate(sampleArticle())
		require.NoError(t, err)
		require.NotEmpty(t, data)
		assert.Equal(t, "%PDF", string(data[:4]))
	})

	t.Run("Handles a fully empty article", func(t *testing.T) {
		data, err := Generate(&types.ProcessedArticle{})
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})
}
