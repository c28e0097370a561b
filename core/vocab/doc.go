// Package vocab provides immutable token-to-id vocabularies with guarded
// constructors and lookup. Every constructor runs its argument contract
// before touching any input: word lists must be duplicate-free, special
// tokens unique and disjoint from the words, sizes and ids bounded to
// 32 bits, and corpus frequency ranges well-formed.
//
// # Construction
//
// Vocabularies come from four sources:
//
//	v, err := vocab.FromList([]string{"hello", "world"}, []string{"<pad>", "<unk>"}, true)
//	v, err := vocab.FromFile("vocab.txt", "", -1, nil, true)
//	v, err := vocab.FromDict(map[string]int{"hello": 0, "world": 1})
//	v, err := vocab.FromDataset(rows, "text", nil, 5000, []string{"<unk>"}, true)
//
// FromFile reads one token per line, optionally splitting each line on a
// delimiter and keeping the first column. A vocab size of -1 is the
// unbounded sentinel. FromDataset counts token frequencies over the
// selected corpus columns concurrently, filters by frequency range, and
// keeps the topK most frequent tokens with deterministic ordering.
//
// # Lookup
//
// A Lookup resolves tokens to ids, substituting a configured unknown-token
// placeholder for out-of-vocabulary entries:
//
//	l, err := vocab.NewLookup(v, "<unk>")
//	ids, err := l.Ids([]string{"hello", "unseen"})
//
// Without a placeholder, out-of-vocabulary tokens fail with
// ErrOutOfVocabulary.
package vocab
