package vocab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/core/contract"
	"github.com/dmitrymomot/textkit/core/vocab"
)

func intPtr(n int) *int { return &n }

func corpusRows() []vocab.Row {
	return []vocab.Row{
		{"text": []string{"the", "quick", "brown", "fox"}},
		{"text": []string{"the", "lazy", "dog"}},
		{"text": []string{"the", "quick", "dog"}},
		{"title": []string{"fox", "story"}},
	}
}

func TestFromDataset(t *testing.T) {
	t.Parallel()

	t.Run("single column name is normalized to a sequence", func(t *testing.T) {
		t.Parallel()

		v, err := vocab.FromDataset(corpusRows(), "text", nil, 0, nil, true)
		require.NoError(t, err)

		// "story" only appears in the title column.
		_, ok := v.TokenID("story")
		assert.False(t, ok)
		_, ok = v.TokenID("the")
		assert.True(t, ok)
	})

	t.Run("nil columns select every column", func(t *testing.T) {
		t.Parallel()

		v, err := vocab.FromDataset(corpusRows(), nil, nil, 0, nil, true)
		require.NoError(t, err)

		_, ok := v.TokenID("story")
		assert.True(t, ok)
	})

	t.Run("frequency ordering is deterministic", func(t *testing.T) {
		t.Parallel()

		v, err := vocab.FromDataset(corpusRows(), "text", nil, 0, nil, true)
		require.NoError(t, err)

		// "the" has the highest frequency, so it takes id 0.
		id, ok := v.TokenID("the")
		require.True(t, ok)
		assert.Equal(t, int32(0), id)
	})

	t.Run("top-k keeps the most frequent tokens", func(t *testing.T) {
		t.Parallel()

		v, err := vocab.FromDataset(corpusRows(), "text", nil, 2, nil, true)
		require.NoError(t, err)
		assert.Equal(t, 2, v.Len())

		_, ok := v.TokenID("the")
		assert.True(t, ok)
	})

	t.Run("frequency range filters tokens", func(t *testing.T) {
		t.Parallel()

		v, err := vocab.FromDataset(corpusRows(), "text",
			&vocab.FreqRange{Min: intPtr(2)}, 0, nil, true)
		require.NoError(t, err)

		_, ok := v.TokenID("lazy") // frequency 1
		assert.False(t, ok)
		_, ok = v.TokenID("quick") // frequency 2
		assert.True(t, ok)
	})

	t.Run("invalid frequency range", func(t *testing.T) {
		t.Parallel()

		_, err := vocab.FromDataset(corpusRows(), "text",
			&vocab.FreqRange{Min: intPtr(5), Max: intPtr(2)}, 0, nil, true)
		assert.ErrorIs(t, err, contract.ErrValue)

		_, err = vocab.FromDataset(corpusRows(), "text",
			&vocab.FreqRange{Min: intPtr(-1), Max: intPtr(5)}, 0, nil, true)
		assert.ErrorIs(t, err, contract.ErrValue)
	})

	t.Run("negative top-k", func(t *testing.T) {
		t.Parallel()

		_, err := vocab.FromDataset(corpusRows(), "text", nil, -3, nil, true)
		assert.ErrorIs(t, err, contract.ErrValue)
	})

	t.Run("special tokens never counted from the corpus", func(t *testing.T) {
		t.Parallel()

		v, err := vocab.FromDataset(corpusRows(), "text", nil, 0, []string{"the"}, true)
		require.NoError(t, err)

		id, ok := v.TokenID("the")
		require.True(t, ok)
		assert.Equal(t, int32(0), id, "special token takes the first id, not a corpus slot")
	})
}
