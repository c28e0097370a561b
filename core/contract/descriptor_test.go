package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/core/contract"
)

func lookupDescriptor() contract.Descriptor {
	return contract.Descriptor{
		Op: "test.lookup",
		Params: []contract.Param{
			{Name: "vocab", Required: true},
			{Name: "unknown_token"},
			{Name: "strict", Default: true},
		},
	}
}

func TestDescriptor_Bind(t *testing.T) {
	t.Parallel()

	t.Run("positional arguments in declared order", func(t *testing.T) {
		t.Parallel()

		b, err := lookupDescriptor().Bind([]any{"handle", "<unk>"}, nil)
		require.NoError(t, err)

		assert.Equal(t, "handle", b.Value("vocab"))
		assert.Equal(t, "<unk>", b.String("unknown_token"))
		assert.True(t, b.Bool("strict"), "omitted optional must resolve to its default")
	})

	t.Run("keyword arguments", func(t *testing.T) {
		t.Parallel()

		b, err := lookupDescriptor().Bind(nil, map[string]any{
			"vocab":  "handle",
			"strict": false,
		})
		require.NoError(t, err)

		assert.False(t, b.Bool("strict"))
		assert.True(t, b.IsNil("unknown_token"))
	})

	t.Run("mixed positional and keyword", func(t *testing.T) {
		t.Parallel()

		b, err := lookupDescriptor().Bind([]any{"handle"}, map[string]any{"unknown_token": "<unk>"})
		require.NoError(t, err)

		assert.Equal(t, "<unk>", b.String("unknown_token"))
	})

	t.Run("missing required parameter", func(t *testing.T) {
		t.Parallel()

		_, err := lookupDescriptor().Bind(nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, contract.ErrArity)
		assert.Contains(t, err.Error(), "vocab")
	})

	t.Run("unexpected parameter name", func(t *testing.T) {
		t.Parallel()

		_, err := lookupDescriptor().Bind([]any{"handle"}, map[string]any{"vocabulary": "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, contract.ErrArity)
	})

	t.Run("too many positional arguments", func(t *testing.T) {
		t.Parallel()

		_, err := lookupDescriptor().Bind([]any{"a", "b", true, "extra"}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, contract.ErrArity)
	})

	t.Run("parameter supplied twice", func(t *testing.T) {
		t.Parallel()

		_, err := lookupDescriptor().Bind([]any{"handle"}, map[string]any{"vocab": "other"})
		require.Error(t, err)
		assert.ErrorIs(t, err, contract.ErrArity)
	})
}

func TestBundle_IsNil(t *testing.T) {
	t.Parallel()

	d := contract.Descriptor{
		Op: "test.isnil",
		Params: []contract.Param{
			{Name: "words"},
			{Name: "flag", Default: false},
		},
	}

	t.Run("typed nil slice counts as absent", func(t *testing.T) {
		t.Parallel()

		var words []string
		b, err := d.Bind([]any{words}, nil)
		require.NoError(t, err)
		assert.True(t, b.IsNil("words"))
	})

	t.Run("defaulted scalar is present", func(t *testing.T) {
		t.Parallel()

		b, err := d.Bind(nil, nil)
		require.NoError(t, err)
		assert.False(t, b.IsNil("flag"))
	})
}
