package tokenizer

import (
	"strings"

	radix "github.com/armon/go-radix"

	"github.com/dmitrymomot/textkit/core/contract"
	"github.com/dmitrymomot/textkit/core/vocab"
)

// WordPieceTokenizer splits words into sub-word units by greedy
// longest-match-first lookup against a vocabulary. Continuation pieces carry
// the suffix indicator ("##aff" for the piece "aff"). Words longer than
// maxBytes or containing an unmatchable piece resolve to the unknown token;
// an empty unknown token keeps the original word instead.
type WordPieceTokenizer struct {
	v           *vocab.Vocab
	suffix      string
	maxBytes    int
	unknown     string
	withOffsets bool
	headIndex   *radix.Tree
	suffixIndex *radix.Tree
}

// NewWordPiece builds a guarded sub-word tokenizer over v.
func NewWordPiece(v *vocab.Vocab, suffixIndicator string, maxBytesPerToken int, unknownToken string, withOffsets bool) (*WordPieceTokenizer, error) {
	b, err := contract.Guard(opWordPiece, []any{v, suffixIndicator, maxBytesPerToken, unknownToken, withOffsets}, nil)
	if err != nil {
		return nil, err
	}
	return newWordPiece(b), nil
}

func newWordPiece(b contract.Bundle) *WordPieceTokenizer {
	t := &WordPieceTokenizer{
		v:           b.Value("vocab").(*vocab.Vocab),
		suffix:      b.String("suffix_indicator"),
		maxBytes:    b.Int("max_bytes_per_token"),
		unknown:     b.String("unknown_token"),
		withOffsets: b.Bool("with_offsets"),
		headIndex:   radix.New(),
		suffixIndex: radix.New(),
	}
	for _, tok := range t.v.Tokens() {
		id, ok := t.v.TokenID(tok)
		if !ok {
			continue
		}
		if t.suffix != "" && strings.HasPrefix(tok, t.suffix) && len(tok) > len(t.suffix) {
			t.suffixIndex.Insert(strings.TrimPrefix(tok, t.suffix), id)
		} else {
			t.headIndex.Insert(tok, id)
		}
	}
	return t
}

// Tokenize splits each word into sub-word tokens. Offsets are byte
// positions within the word the piece came from.
func (t *WordPieceTokenizer) Tokenize(words []string) []Token {
	var tokens []Token
	for _, word := range words {
		tokens = append(tokens, t.TokenizeWord(word)...)
	}
	return tokens
}

// TokenizeWord splits a single word.
func (t *WordPieceTokenizer) TokenizeWord(word string) []Token {
	if word == "" {
		return nil
	}
	if t.maxBytes > 0 && len(word) > t.maxBytes {
		return []Token{t.unknownFor(word)}
	}

	var pieces []Token
	pos := 0
	for pos < len(word) {
		rest := word[pos:]
		var (
			match string
			ok    bool
		)
		if pos == 0 {
			match, _, ok = t.headIndex.LongestPrefix(rest)
		} else {
			match, _, ok = t.suffixIndex.LongestPrefix(rest)
		}
		if !ok || match == "" {
			return []Token{t.unknownFor(word)}
		}

		text := match
		if pos > 0 {
			text = t.suffix + match
		}
		piece := Token{Text: text}
		if t.withOffsets {
			piece.Start, piece.End = pos, pos+len(match)
		}
		pieces = append(pieces, piece)
		pos += len(match)
	}
	return pieces
}

func (t *WordPieceTokenizer) unknownFor(word string) Token {
	text := t.unknown
	if text == "" {
		text = word
	}
	tok := Token{Text: text}
	if t.withOffsets {
		tok.End = len(word)
	}
	return tok
}
