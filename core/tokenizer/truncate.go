package tokenizer

import "github.com/dmitrymomot/textkit/core/contract"

// TruncateSequencePair trims two token sequences until their combined
// length fits maxLength. Tokens are dropped from the end of the longer
// sequence first, one at a time; on ties the first sequence gives way.
type TruncateSequencePair struct {
	maxLength int
}

// NewTruncateSequencePair builds the guarded pair truncation operation.
func NewTruncateSequencePair(maxLength int) (*TruncateSequencePair, error) {
	b, err := contract.Guard(opTruncatePair, []any{maxLength}, nil)
	if err != nil {
		return nil, err
	}
	return &TruncateSequencePair{maxLength: b.Int("max_length")}, nil
}

// Apply returns truncated copies of both sequences.
func (t *TruncateSequencePair) Apply(first, second []string) ([]string, []string) {
	a := append([]string(nil), first...)
	b := append([]string(nil), second...)
	for len(a)+len(b) > t.maxLength {
		if len(a) >= len(b) {
			if len(a) == 0 {
				break
			}
			a = a[:len(a)-1]
		} else {
			b = b[:len(b)-1]
		}
	}
	return a, b
}
