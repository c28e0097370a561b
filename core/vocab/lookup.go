package vocab

import (
	"fmt"

	"github.com/dmitrymomot/textkit/core/contract"
)

// Lookup maps tokens to vocabulary ids. When an unknown-token placeholder is
// configured, out-of-vocabulary tokens resolve to its id; otherwise they
// fail the lookup.
type Lookup struct {
	v          *Vocab
	unknownID  int32
	hasUnknown bool
}

// NewLookup builds a guarded lookup over v. unknownToken, when non-empty,
// must itself be a vocabulary entry; its id is substituted for
// out-of-vocabulary tokens.
func NewLookup(v *Vocab, unknownToken string) (*Lookup, error) {
	var unk any
	if unknownToken != "" {
		unk = unknownToken
	}
	b, err := contract.Guard(opLookup, []any{v, unk}, nil)
	if err != nil {
		return nil, err
	}

	l := &Lookup{v: b.Value("vocab").(*Vocab)}
	if !b.IsNil("unknown_token") {
		id, ok := l.v.TokenID(b.String("unknown_token"))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNotInVocab, b.String("unknown_token"))
		}
		l.unknownID = id
		l.hasUnknown = true
	}
	return l, nil
}

// Ids resolves tokens to their vocabulary ids.
func (l *Lookup) Ids(tokens []string) ([]int32, error) {
	out := make([]int32, len(tokens))
	for i, tok := range tokens {
		id, ok := l.v.TokenID(tok)
		if !ok {
			if !l.hasUnknown {
				return nil, fmt.Errorf("%w: %q", ErrOutOfVocabulary, tok)
			}
			id = l.unknownID
		}
		out[i] = id
	}
	return out, nil
}

// Tokens resolves ids back to their tokens. Ids without an assigned token
// fail the lookup regardless of the unknown-token configuration.
func (l *Lookup) Tokens(ids []int32) ([]string, error) {
	out := make([]string, len(ids))
	for i, id := range ids {
		tok, ok := l.v.TokenForID(id)
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrOutOfVocabulary, id)
		}
		out[i] = tok
	}
	return out, nil
}
