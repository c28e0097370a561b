package tokenizer

import (
	"github.com/dmitrymomot/textkit/core/contract"
	"github.com/dmitrymomot/textkit/core/vocab"
)

// BertTokenizer composes basic cleanup with sub-word splitting: text is
// cleaned and split into words by the basic stage, then each word is broken
// into vocabulary pieces by the WordPiece stage. Its contract is the union
// of both stages' predicate sets.
type BertTokenizer struct {
	basic *BasicTokenizer
	wp    *WordPieceTokenizer
}

// NewBert builds a guarded BERT-style tokenizer over v.
func NewBert(v *vocab.Vocab, suffixIndicator string, maxBytesPerToken int, unknownToken string,
	lowerCase, keepWhitespace bool, form NormalizeForm, preserveUnusedToken, withOffsets bool,
) (*BertTokenizer, error) {
	b, err := contract.Guard(opBert, []any{v, suffixIndicator, maxBytesPerToken, unknownToken, withOffsets},
		map[string]any{
			"lower_case":            lowerCase,
			"keep_whitespace":       keepWhitespace,
			"normalization_form":    form,
			"preserve_unused_token": preserveUnusedToken,
		})
	if err != nil {
		return nil, err
	}

	return &BertTokenizer{
		basic: &BasicTokenizer{
			lowerCase:      b.Bool("lower_case"),
			keepWhitespace: false, // whitespace never reaches the sub-word stage
			form:           b.Value("normalization_form").(NormalizeForm),
			preserveUnused: b.Bool("preserve_unused_token"),
			withOffsets:    b.Bool("with_offsets"),
			lower:          lowerCaser(),
		},
		wp: newWordPiece(b),
	}, nil
}

// Tokenize cleans text and splits it into sub-word tokens. Offsets combine
// the word position from the basic stage with the piece position inside the
// word, relative to the normalized text.
func (t *BertTokenizer) Tokenize(text string) []Token {
	var tokens []Token
	for _, word := range t.basic.Tokenize(text) {
		if _, ok := t.wp.v.TokenID(word.Text); ok {
			// Whole-word vocabulary hits, including preserved tokens,
			// bypass sub-word splitting.
			tokens = append(tokens, word)
			continue
		}
		for _, piece := range t.wp.TokenizeWord(word.Text) {
			if t.wp.withOffsets {
				piece.Start += word.Start
				piece.End += word.Start
			}
			tokens = append(tokens, piece)
		}
	}
	return tokens
}
