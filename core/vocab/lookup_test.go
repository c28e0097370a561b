package vocab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/core/contract"
	"github.com/dmitrymomot/textkit/core/vocab"
)

func TestNewLookup(t *testing.T) {
	t.Parallel()

	v, err := vocab.FromList([]string{"hello", "world"}, []string{"<unk>"}, true)
	require.NoError(t, err)

	t.Run("nil vocab handle fails", func(t *testing.T) {
		t.Parallel()

		_, err := vocab.NewLookup(nil, "")
		assert.ErrorIs(t, err, contract.ErrType)
	})

	t.Run("unknown token must be in the vocabulary", func(t *testing.T) {
		t.Parallel()

		_, err := vocab.NewLookup(v, "<oov>")
		assert.ErrorIs(t, err, vocab.ErrUnknownNotInVocab)
	})

	t.Run("lookup with placeholder", func(t *testing.T) {
		t.Parallel()

		l, err := vocab.NewLookup(v, "<unk>")
		require.NoError(t, err)

		ids, err := l.Ids([]string{"hello", "unseen", "world"})
		require.NoError(t, err)
		assert.Equal(t, []int32{1, 0, 2}, ids)
	})

	t.Run("lookup without placeholder fails on oov", func(t *testing.T) {
		t.Parallel()

		l, err := vocab.NewLookup(v, "")
		require.NoError(t, err)

		_, err = l.Ids([]string{"unseen"})
		assert.ErrorIs(t, err, vocab.ErrOutOfVocabulary)
	})

	t.Run("round trip ids to tokens", func(t *testing.T) {
		t.Parallel()

		l, err := vocab.NewLookup(v, "")
		require.NoError(t, err)

		tokens, err := l.Tokens([]int32{0, 1, 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"<unk>", "hello", "world"}, tokens)

		_, err = l.Tokens([]int32{99})
		assert.ErrorIs(t, err, vocab.ErrOutOfVocabulary)
	})
}
