package jieba_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/core/contract"
	"github.com/dmitrymomot/textkit/core/jieba"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func modelFiles(t *testing.T) (hmmPath, mpPath string) {
	t.Helper()
	dir := t.TempDir()
	hmmPath = writeFile(t, dir, "hmm_model.txt", "# emission probabilities\n")
	mpPath = writeFile(t, dir, "dict.txt", `
今天 10
天气 8
很 5
好 5
今天天气 3 n
`)
	return hmmPath, mpPath
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing model path", func(t *testing.T) {
		t.Parallel()

		_, mp := modelFiles(t)
		_, err := jieba.New("", mp, jieba.ModeMix, false)
		assert.ErrorIs(t, err, contract.ErrValue)
	})

	t.Run("missing dictionary path", func(t *testing.T) {
		t.Parallel()

		hmm, _ := modelFiles(t)
		_, err := jieba.New(hmm, "", jieba.ModeMix, false)
		assert.ErrorIs(t, err, contract.ErrValue)
	})

	t.Run("unknown mode", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		_, err := jieba.New(hmm, mp, jieba.CutMode("fast"), false)
		assert.ErrorIs(t, err, contract.ErrValue)
	})

	t.Run("unreadable dictionary", func(t *testing.T) {
		t.Parallel()

		hmm, _ := modelFiles(t)
		_, err := jieba.New(hmm, filepath.Join(t.TempDir(), "missing.txt"), jieba.ModeMix, false)
		assert.ErrorIs(t, err, jieba.ErrDictNotFound)
	})

	t.Run("malformed dictionary", func(t *testing.T) {
		t.Parallel()

		hmm, _ := modelFiles(t)
		bad := writeFile(t, t.TempDir(), "bad.txt", "word notanumber\n")
		_, err := jieba.New(hmm, bad, jieba.ModeMix, false)
		assert.ErrorIs(t, err, jieba.ErrDictFormat)
	})
}

func TestCut(t *testing.T) {
	t.Parallel()

	t.Run("dictionary path search", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeMP, false)
		require.NoError(t, err)

		assert.Equal(t, []string{"今天天气", "很", "好"}, seg.CutStrings("今天天气很好"))
	})

	t.Run("mp mode leaves unknown runes single", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeMP, false)
		require.NoError(t, err)

		assert.Equal(t, []string{"云", "计", "算"}, seg.CutStrings("云计算"))
	})

	t.Run("mix mode groups unknown runs", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeMix, false)
		require.NoError(t, err)

		assert.Equal(t, []string{"云计算"}, seg.CutStrings("云计算"))
	})

	t.Run("model mode pairs runes", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeHMM, false)
		require.NoError(t, err)

		assert.Equal(t, []string{"今天", "天气"}, seg.CutStrings("今天天气"))
	})

	t.Run("whitespace separates, punctuation stands alone", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeMP, false)
		require.NoError(t, err)

		assert.Equal(t, []string{"今天", "，", "天气"}, seg.CutStrings("今天 ，天气"))
	})

	t.Run("byte offsets", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeMP, true)
		require.NoError(t, err)

		tokens := seg.Cut("好 好")
		require.Len(t, tokens, 2)
		assert.Equal(t, 0, tokens[0].Start)
		assert.Equal(t, 3, tokens[0].End)
		assert.Equal(t, 4, tokens[1].Start)
		assert.Equal(t, 7, tokens[1].End)
	})
}

func TestAddWord(t *testing.T) {
	t.Parallel()

	t.Run("keeps the added word whole", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeMP, false)
		require.NoError(t, err)

		require.NoError(t, seg.AddWord("云计算", 0))
		assert.Equal(t, []string{"云计算"}, seg.CutStrings("云计算"))
	})

	t.Run("wins against multi-rune dictionary components", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		hmm := writeFile(t, dir, "hmm_model.txt", "")
		mp := writeFile(t, dir, "dict.txt", "云 10\n计算 10\n")
		seg, err := jieba.New(hmm, mp, jieba.ModeMP, false)
		require.NoError(t, err)

		require.Equal(t, []string{"云", "计算"}, seg.CutStrings("云计算"))

		require.NoError(t, seg.AddWord("云计算", 0))
		assert.Equal(t, []string{"云计算"}, seg.CutStrings("云计算"))
	})

	t.Run("empty word rejected", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeMP, false)
		require.NoError(t, err)

		assert.ErrorIs(t, seg.AddWord("", 0), contract.ErrValue)
	})

	t.Run("negative frequency rejected", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeMP, false)
		require.NoError(t, err)

		assert.ErrorIs(t, seg.AddWord("云计算", -1), contract.ErrValue)
	})
}

func TestAddDict(t *testing.T) {
	t.Parallel()

	t.Run("merges a frequency table", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeMP, false)
		require.NoError(t, err)

		require.NoError(t, seg.AddDict(map[string]int{"云计算": 20}))
		assert.Equal(t, []string{"云计算"}, seg.CutStrings("云计算"))
	})

	t.Run("nil table rejected", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeMP, false)
		require.NoError(t, err)

		assert.ErrorIs(t, seg.AddDict(nil), contract.ErrValue)
	})

	t.Run("merges a dictionary file", func(t *testing.T) {
		t.Parallel()

		hmm, mp := modelFiles(t)
		seg, err := jieba.New(hmm, mp, jieba.ModeMP, false)
		require.NoError(t, err)

		user := writeFile(t, t.TempDir(), "user.txt", "云计算 20\n")
		require.NoError(t, seg.AddDictFile(user))
		assert.Equal(t, []string{"云计算"}, seg.CutStrings("云计算"))
	})
}

func TestNewFromEnv(t *testing.T) {
	hmm, mp := modelFiles(t)
	t.Setenv("TEXTKIT_JIEBA_HMM_PATH", hmm)
	t.Setenv("TEXTKIT_JIEBA_MP_PATH", mp)
	t.Setenv("TEXTKIT_JIEBA_MODE", "mp")

	seg, err := jieba.New(hmm, mp, jieba.ModeMP, false)
	require.NoError(t, err)
	assert.Equal(t, jieba.ModeMP, seg.Mode())

	envSeg, err := jieba.NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, jieba.ModeMP, envSeg.Mode())
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"mp", "hmm", "mix"} {
		mode, err := jieba.ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, jieba.CutMode(name), mode)
	}

	_, err := jieba.ParseMode("fast")
	assert.ErrorIs(t, err, jieba.ErrUnknownMode)
}
