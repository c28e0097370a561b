package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/textkit/core/contract"
)

// WhitespaceTokenizer splits text on runs of Unicode whitespace. Whitespace
// itself is never emitted.
type WhitespaceTokenizer struct {
	withOffsets bool
}

// NewWhitespace builds a guarded whitespace tokenizer.
func NewWhitespace(withOffsets bool) (*WhitespaceTokenizer, error) {
	b, err := contract.Guard(opWhitespace, []any{withOffsets}, nil)
	if err != nil {
		return nil, err
	}
	return &WhitespaceTokenizer{withOffsets: b.Bool("with_offsets")}, nil
}

// Tokenize splits text into whitespace-delimited tokens.
func (t *WhitespaceTokenizer) Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, t.token(text, start, i))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, t.token(text, start, len(text)))
	}
	return tokens
}

func (t *WhitespaceTokenizer) token(text string, start, end int) Token {
	tok := Token{Text: text[start:end]}
	if t.withOffsets {
		tok.Start, tok.End = start, end
	}
	return tok
}

// UnicodeCharTokenizer splits text into individual Unicode code points.
type UnicodeCharTokenizer struct {
	withOffsets bool
}

// NewUnicodeChar builds a guarded per-code-point tokenizer.
func NewUnicodeChar(withOffsets bool) (*UnicodeCharTokenizer, error) {
	b, err := contract.Guard(opUnicodeChar, []any{withOffsets}, nil)
	if err != nil {
		return nil, err
	}
	return &UnicodeCharTokenizer{withOffsets: b.Bool("with_offsets")}, nil
}

// Tokenize splits text into one token per code point.
func (t *UnicodeCharTokenizer) Tokenize(text string) []Token {
	tokens := make([]Token, 0, utf8.RuneCountInString(text))
	for i, r := range text {
		tok := Token{Text: string(r)}
		if t.withOffsets {
			tok.Start, tok.End = i, i+utf8.RuneLen(r)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
