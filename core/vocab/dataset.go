package vocab

import (
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/dmitrymomot/textkit/core/contract"
)

// Row is one corpus record: column name to the tokens found in that cell.
type Row map[string][]string

// FreqRange bounds token frequencies for corpus-built vocabularies. A nil
// bound leaves that side of the range open; both bounds are inclusive.
type FreqRange struct {
	Min *int
	Max *int
}

func (fr *FreqRange) pair() []any {
	if fr == nil {
		return nil
	}
	p := []any{nil, nil}
	if fr.Min != nil {
		p[0] = *fr.Min
	}
	if fr.Max != nil {
		p[1] = *fr.Max
	}
	return p
}

// FromDataset builds a vocabulary from corpus token frequencies.
//
// columns selects which row columns contribute tokens; it accepts a single
// column name or a []string and defaults to every column present. freqRange
// keeps only tokens whose corpus frequency falls inside the range. topK
// keeps the most frequent tokens after range filtering; zero keeps all.
// Ties and ordering are deterministic: frequency descending, then token
// ascending. Special tokens are added on top and never counted.
func FromDataset(rows []Row, columns any, freqRange *FreqRange, topK int, specialTokens []string, specialFirst bool) (*Vocab, error) {
	var topKArg any
	if topK != 0 {
		topKArg = topK
	}
	b, err := contract.Guard(opFromDataset, nil, map[string]any{
		"columns":        columns,
		"freq_range":     freqRange.pair(),
		"top_k":          topKArg,
		"special_tokens": specialTokens,
		"special_first":  specialFirst,
	})
	if err != nil {
		return nil, err
	}

	cols := b.StringSlice("columns")
	if len(cols) == 0 {
		cols = allColumns(rows)
	}

	counts := countTokens(rows, cols)

	special := b.StringSlice("special_tokens")
	for _, s := range special {
		delete(counts, s)
	}

	lo, hi, hasLo, hasHi := boundsOf(b)
	words := selectWords(counts, lo, hi, hasLo, hasHi, b.Int("top_k"))
	return build(words, special, b.Bool("special_first"))
}

func boundsOf(b contract.Bundle) (lo, hi int, hasLo, hasHi bool) {
	pair, ok := b.Value("freq_range").([]any)
	if !ok {
		return 0, 0, false, false
	}
	if n, ok := pair[0].(int); ok {
		lo, hasLo = n, true
	}
	if n, ok := pair[1].(int); ok {
		hi, hasHi = n, true
	}
	return lo, hi, hasLo, hasHi
}

func allColumns(rows []Row) []string {
	seen := make(map[string]struct{})
	var cols []string
	for _, row := range rows {
		for col := range row {
			if _, ok := seen[col]; !ok {
				seen[col] = struct{}{}
				cols = append(cols, col)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

// countTokens tallies token frequencies per column concurrently and merges
// the per-column results.
func countTokens(rows []Row, cols []string) map[string]int {
	p := pool.NewWithResults[map[string]int]()
	for _, col := range cols {
		col := col
		p.Go(func() map[string]int {
			counts := make(map[string]int)
			for _, row := range rows {
				for _, tok := range row[col] {
					counts[tok]++
				}
			}
			return counts
		})
	}

	merged := make(map[string]int)
	for _, counts := range p.Wait() {
		for tok, n := range counts {
			merged[tok] += n
		}
	}
	return merged
}

func selectWords(counts map[string]int, lo, hi int, hasLo, hasHi bool, topK int) []string {
	words := make([]string, 0, len(counts))
	for tok, n := range counts {
		if hasLo && n < lo {
			continue
		}
		if hasHi && n > hi {
			continue
		}
		words = append(words, tok)
	}

	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if topK > 0 && topK < len(words) {
		words = words[:topK]
	}
	return words
}
