package tokenizer

import (
	"strings"

	"github.com/dmitrymomot/textkit/core/contract"
)

// FuncTokenizer wraps a user-supplied tokenization function. The contract
// only requires the value to be an invocable function; what it does with
// the text is entirely up to the caller.
type FuncTokenizer struct {
	fn func(string) []string
}

// NewFunc builds a guarded tokenizer around fn.
func NewFunc(fn func(string) []string) (*FuncTokenizer, error) {
	b, err := contract.Guard(opFunc, []any{fn}, nil)
	if err != nil {
		return nil, err
	}
	return &FuncTokenizer{fn: b.Value("tokenizer").(func(string) []string)}, nil
}

// Tokenize applies the wrapped function. Offsets are resolved by searching
// for each produced token in the remaining text; tokens the function
// invented carry zero offsets.
func (t *FuncTokenizer) Tokenize(text string) []Token {
	parts := t.fn(text)
	tokens := make([]Token, 0, len(parts))
	pos := 0
	for _, p := range parts {
		tok := Token{Text: p}
		if idx := strings.Index(text[pos:], p); idx >= 0 {
			tok.Start = pos + idx
			tok.End = tok.Start + len(p)
			pos = tok.End
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
