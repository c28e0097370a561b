package tokenizer

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/textkit/core/contract"
)

// RegexTokenizer splits text on matches of a delimiter pattern. Delimiter
// matches that also match the retained-delimiter pattern are kept as tokens
// of their own; all other delimiter matches are discarded.
type RegexTokenizer struct {
	delim       *regexp.Regexp
	keep        *regexp.Regexp
	withOffsets bool
}

// NewRegex builds a guarded pattern-based tokenizer. delimPattern is
// required; an empty keepDelimPattern discards every delimiter match.
func NewRegex(delimPattern, keepDelimPattern string, withOffsets bool) (*RegexTokenizer, error) {
	b, err := contract.Guard(opRegex, []any{delimPattern, keepDelimPattern, withOffsets}, nil)
	if err != nil {
		return nil, err
	}

	delim, err := regexp.Compile(b.String("delim_pattern"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPattern, err)
	}

	t := &RegexTokenizer{delim: delim, withOffsets: b.Bool("with_offsets")}
	if keep := b.String("keep_delim_pattern"); keep != "" {
		t.keep, err = regexp.Compile(keep)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidKeepPattern, err)
		}
	}
	return t, nil
}

// Tokenize splits text around delimiter matches.
func (t *RegexTokenizer) Tokenize(text string) []Token {
	var tokens []Token
	emit := func(start, end int) {
		if end <= start {
			return
		}
		tok := Token{Text: text[start:end]}
		if t.withOffsets {
			tok.Start, tok.End = start, end
		}
		tokens = append(tokens, tok)
	}

	prev := 0
	for _, m := range t.delim.FindAllStringIndex(text, -1) {
		emit(prev, m[0])
		if t.keep != nil && t.keep.MatchString(text[m[0]:m[1]]) {
			emit(m[0], m[1])
		}
		prev = m[1]
	}
	emit(prev, len(text))
	return tokens
}
