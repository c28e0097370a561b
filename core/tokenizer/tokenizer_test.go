package tokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/core/tokenizer"
)

func TestWhitespaceTokenizer(t *testing.T) {
	t.Parallel()

	t.Run("splits on whitespace runs", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewWhitespace(false)
		require.NoError(t, err)

		tokens := tk.Tokenize("hello\t world \n")
		assert.Equal(t, []string{"hello", "world"}, tokenizer.Texts(tokens))
	})

	t.Run("reports byte offsets", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewWhitespace(true)
		require.NoError(t, err)

		tokens := tk.Tokenize("hi  there")
		require.Len(t, tokens, 2)
		assert.Equal(t, tokenizer.Token{Text: "hi", Start: 0, End: 2}, tokens[0])
		assert.Equal(t, tokenizer.Token{Text: "there", Start: 4, End: 9}, tokens[1])
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewWhitespace(false)
		require.NoError(t, err)
		assert.Empty(t, tk.Tokenize(""))
	})
}

func TestUnicodeCharTokenizer(t *testing.T) {
	t.Parallel()

	tk, err := tokenizer.NewUnicodeChar(true)
	require.NoError(t, err)

	tokens := tk.Tokenize("a中b")
	require.Len(t, tokens, 3)
	assert.Equal(t, "中", tokens[1].Text)
	assert.Equal(t, 1, tokens[1].Start)
	assert.Equal(t, 4, tokens[1].End, "multi-byte rune spans its encoded width")
}

func TestUnicodeScriptTokenizer(t *testing.T) {
	t.Parallel()

	t.Run("splits on script boundaries", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewUnicodeScript(false, false)
		require.NoError(t, err)

		tokens := tk.Tokenize("abc中文def")
		assert.Equal(t, []string{"abc", "中文", "def"}, tokenizer.Texts(tokens))
	})

	t.Run("whitespace dropped by default", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewUnicodeScript(false, false)
		require.NoError(t, err)

		tokens := tk.Tokenize("abc 中文")
		assert.Equal(t, []string{"abc", "中文"}, tokenizer.Texts(tokens))
	})

	t.Run("whitespace kept on request", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewUnicodeScript(true, false)
		require.NoError(t, err)

		tokens := tk.Tokenize("abc 中文")
		assert.Equal(t, []string{"abc", " ", "中文"}, tokenizer.Texts(tokens))
	})
}

func TestRegexTokenizer(t *testing.T) {
	t.Parallel()

	t.Run("splits on delimiter pattern", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewRegex(`\s+`, "", false)
		require.NoError(t, err)

		tokens := tk.Tokenize("hello   world again")
		assert.Equal(t, []string{"hello", "world", "again"}, tokenizer.Texts(tokens))
	})

	t.Run("retains delimiters matching the keep pattern", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewRegex(`[\s,]`, `,`, false)
		require.NoError(t, err)

		tokens := tk.Tokenize("a,b c")
		assert.Equal(t, []string{"a", ",", "b", "c"}, tokenizer.Texts(tokens))
	})

	t.Run("invalid delimiter pattern", func(t *testing.T) {
		t.Parallel()

		_, err := tokenizer.NewRegex(`[`, "", false)
		assert.ErrorIs(t, err, tokenizer.ErrInvalidPattern)
	})

	t.Run("invalid keep pattern", func(t *testing.T) {
		t.Parallel()

		_, err := tokenizer.NewRegex(`\s`, `(`, false)
		assert.ErrorIs(t, err, tokenizer.ErrInvalidKeepPattern)
	})
}

func TestBasicTokenizer(t *testing.T) {
	t.Parallel()

	t.Run("lower case strips accents", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewBasic(true, false, tokenizer.NormalizeNone, false, false)
		require.NoError(t, err)

		tokens := tk.Tokenize("Héllo Wörld")
		assert.Equal(t, []string{"hello", "world"}, tokenizer.Texts(tokens))
	})

	t.Run("isolates CJK characters", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewBasic(false, false, tokenizer.NormalizeNone, false, false)
		require.NoError(t, err)

		tokens := tk.Tokenize("ab中c")
		assert.Equal(t, []string{"ab", "中", "c"}, tokenizer.Texts(tokens))
	})

	t.Run("splits punctuation", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewBasic(false, false, tokenizer.NormalizeNone, false, false)
		require.NoError(t, err)

		tokens := tk.Tokenize("wait, stop!")
		assert.Equal(t, []string{"wait", ",", "stop", "!"}, tokenizer.Texts(tokens))
	})

	t.Run("preserves reserved tokens from lower casing", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewBasic(true, false, tokenizer.NormalizeNone, true, false)
		require.NoError(t, err)

		tokens := tk.Tokenize("[CLS] Hello [SEP]")
		assert.Equal(t, []string{"[CLS]", "hello", "[SEP]"}, tokenizer.Texts(tokens))
	})

	t.Run("keeps whitespace on request", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewBasic(false, true, tokenizer.NormalizeNone, false, false)
		require.NoError(t, err)

		tokens := tk.Tokenize("a b")
		assert.Equal(t, []string{"a", " ", "b"}, tokenizer.Texts(tokens))
	})

	t.Run("nfkc normalization", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewBasic(false, false, tokenizer.NormalizeNFKC, false, false)
		require.NoError(t, err)

		// Fullwidth letters fold to ASCII under NFKC.
		tokens := tk.Tokenize("ＡＢ")
		assert.Equal(t, []string{"AB"}, tokenizer.Texts(tokens))
	})
}

func TestFuncTokenizer(t *testing.T) {
	t.Parallel()

	t.Run("wraps a user function", func(t *testing.T) {
		t.Parallel()

		tk, err := tokenizer.NewFunc(func(s string) []string {
			return []string{s}
		})
		require.NoError(t, err)

		tokens := tk.Tokenize("as is")
		assert.Equal(t, []string{"as is"}, tokenizer.Texts(tokens))
	})

	t.Run("nil function fails the contract", func(t *testing.T) {
		t.Parallel()

		_, err := tokenizer.NewFunc(nil)
		assert.Error(t, err)
	})
}

func TestTruncateSequencePair(t *testing.T) {
	t.Parallel()

	tr, err := tokenizer.NewTruncateSequencePair(4)
	require.NoError(t, err)

	t.Run("under budget unchanged", func(t *testing.T) {
		t.Parallel()

		a, b := tr.Apply([]string{"a", "b"}, []string{"c"})
		assert.Equal(t, []string{"a", "b"}, a)
		assert.Equal(t, []string{"c"}, b)
	})

	t.Run("drops from the longer side", func(t *testing.T) {
		t.Parallel()

		a, b := tr.Apply([]string{"a", "b", "c", "d"}, []string{"e", "f", "g"})
		assert.Len(t, a, 2)
		assert.Len(t, b, 2)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		t.Parallel()

		first := []string{"a", "b", "c", "d", "e"}
		tr.Apply(first, nil)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, first)
	})
}
