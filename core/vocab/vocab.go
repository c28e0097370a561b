package vocab

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	radix "github.com/armon/go-radix"

	"github.com/dmitrymomot/textkit/core/contract"
)

// Vocab is an immutable token-to-id handle. Ids are int32 and need not be
// dense: mappings built from user dictionaries may carry arbitrary
// non-negative ids. A radix index over the tokens supports longest-prefix
// matching for sub-word tokenization.
type Vocab struct {
	ids    map[string]int32
	tokens map[int32]string
	index  *radix.Tree
}

// Len returns the number of tokens in the vocabulary.
func (v *Vocab) Len() int {
	return len(v.ids)
}

// TokenID returns the id assigned to token.
func (v *Vocab) TokenID(token string) (int32, bool) {
	id, ok := v.ids[token]
	return id, ok
}

// TokenForID returns the token assigned to id.
func (v *Vocab) TokenForID(id int32) (string, bool) {
	t, ok := v.tokens[id]
	return t, ok
}

// Tokens returns all tokens ordered by ascending id.
func (v *Vocab) Tokens() []string {
	ids := make([]int, 0, len(v.tokens))
	for id := range v.tokens {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, v.tokens[int32(id)])
	}
	return out
}

// LongestPrefix returns the longest vocabulary token that is a prefix of s.
func (v *Vocab) LongestPrefix(s string) (string, int32, bool) {
	key, val, ok := v.index.LongestPrefix(s)
	if !ok {
		return "", 0, false
	}
	return key, val.(int32), true
}

// build assembles a vocabulary from an ordered word list, assigning dense
// ids starting at zero. Special tokens are placed before or after the words
// according to specialFirst.
func build(words, special []string, specialFirst bool) (*Vocab, error) {
	ordered := make([]string, 0, len(words)+len(special))
	if specialFirst {
		ordered = append(ordered, special...)
		ordered = append(ordered, words...)
	} else {
		ordered = append(ordered, words...)
		ordered = append(ordered, special...)
	}
	if len(ordered) == 0 {
		return nil, ErrEmptyVocab
	}

	v := &Vocab{
		ids:    make(map[string]int32, len(ordered)),
		tokens: make(map[int32]string, len(ordered)),
		index:  radix.New(),
	}
	for i, w := range ordered {
		if _, dup := v.ids[w]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateToken, w)
		}
		id := int32(i)
		v.ids[w] = id
		v.tokens[id] = w
		v.index.Insert(w, id)
	}
	return v, nil
}

// FromList builds a vocabulary from a word list. The word list must be free
// of duplicates, and special tokens, when given, must be unique and disjoint
// from the words.
func FromList(words, specialTokens []string, specialFirst bool) (*Vocab, error) {
	b, err := contract.Guard(opFromList, []any{words, specialTokens, specialFirst}, nil)
	if err != nil {
		return nil, err
	}
	return build(b.StringSlice("word_list"), b.StringSlice("special_tokens"), b.Bool("special_first"))
}

// FromFile builds a vocabulary from a file holding one token per line. When
// delimiter is non-empty each line is split on it and the first column is
// the token. vocabSize caps the number of tokens read from the file; the
// sentinel -1 leaves it unbounded. Special tokens are appended on top of the
// file contents.
func FromFile(path, delimiter string, vocabSize int, specialTokens []string, specialFirst bool) (*Vocab, error) {
	b, err := contract.Guard(opFromFile, []any{path, delimiter, vocabSize, specialTokens, specialFirst}, nil)
	if err != nil {
		return nil, err
	}

	words, err := readWordFile(b.String("file_path"), b.String("delimiter"), b.Int("vocab_size"))
	if err != nil {
		return nil, err
	}
	return build(words, b.StringSlice("special_tokens"), b.Bool("special_first"))
}

func readWordFile(path, delimiter string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOpenFile, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if delimiter != "" {
			line, _, _ = strings.Cut(line, delimiter)
		}
		if line == "" {
			continue
		}
		words = append(words, line)
		if limit >= 0 && len(words) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOpenFile, err)
	}
	return words, nil
}

// FromDict builds a vocabulary from an explicit token-to-id mapping. Ids
// must be within [0, IntMax] and unique; they are kept as supplied, dense or
// not.
func FromDict(mapping map[string]int) (*Vocab, error) {
	b, err := contract.Guard(opFromDict, []any{mapping}, nil)
	if err != nil {
		return nil, err
	}

	m := b.Value("word_dict").(map[string]int)
	if len(m) == 0 {
		return nil, ErrEmptyVocab
	}
	v := &Vocab{
		ids:    make(map[string]int32, len(m)),
		tokens: make(map[int32]string, len(m)),
		index:  radix.New(),
	}
	for _, w := range sortedKeys(m) {
		id := int32(m[w])
		if prev, dup := v.tokens[id]; dup {
			return nil, fmt.Errorf("%w: %d assigned to %q and %q", ErrDuplicateID, id, prev, w)
		}
		v.ids[w] = id
		v.tokens[id] = w
		v.index.Insert(w, id)
	}
	return v, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
