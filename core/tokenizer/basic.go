package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/textkit/core/contract"
)

// NormalizeForm selects the Unicode normalization applied before
// tokenization.
type NormalizeForm string

const (
	NormalizeNone NormalizeForm = "none"
	NormalizeNFC  NormalizeForm = "nfc"
	NormalizeNFKC NormalizeForm = "nfkc"
	NormalizeNFD  NormalizeForm = "nfd"
	NormalizeNFKD NormalizeForm = "nfkd"
)

// preservedRE matches the reserved bracket tokens that the basic tokenizer
// keeps intact when preserve-unused-token is enabled.
var preservedRE = regexp.MustCompile(`\[(CLS|SEP|UNK|PAD|MASK)\]`)

// accentStripper removes combining marks after canonical decomposition.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// BasicTokenizer performs BERT-style text cleanup and splitting: optional
// Unicode normalization, optional lower-casing with accent stripping, CJK
// character isolation, and punctuation splitting. Reported offsets refer to
// the normalized text the tokenizer scanned, not the raw input.
type BasicTokenizer struct {
	lowerCase      bool
	keepWhitespace bool
	form           NormalizeForm
	preserveUnused bool
	withOffsets    bool
	lower          cases.Caser
}

// NewBasic builds a guarded basic tokenizer.
func NewBasic(lowerCase, keepWhitespace bool, form NormalizeForm, preserveUnusedToken, withOffsets bool) (*BasicTokenizer, error) {
	b, err := contract.Guard(opBasic, []any{lowerCase, keepWhitespace, form, preserveUnusedToken, withOffsets}, nil)
	if err != nil {
		return nil, err
	}
	return &BasicTokenizer{
		lowerCase:      b.Bool("lower_case"),
		keepWhitespace: b.Bool("keep_whitespace"),
		form:           b.Value("normalization_form").(NormalizeForm),
		preserveUnused: b.Bool("preserve_unused_token"),
		withOffsets:    b.Bool("with_offsets"),
		lower:          lowerCaser(),
	}, nil
}

func lowerCaser() cases.Caser {
	return cases.Lower(language.Und)
}

// Tokenize cleans and splits text.
func (t *BasicTokenizer) Tokenize(text string) []Token {
	processed, preserved := t.prepare(text)
	return t.scan(processed, preserved)
}

// prepare normalizes text while keeping reserved bracket tokens intact.
// It returns the processed text and the byte ranges of preserved tokens
// within it.
func (t *BasicTokenizer) prepare(text string) (string, [][2]int) {
	if !t.preserveUnused {
		return t.normalizeText(text), nil
	}

	var (
		b         strings.Builder
		preserved [][2]int
		prev      int
	)
	for _, m := range preservedRE.FindAllStringIndex(text, -1) {
		b.WriteString(t.normalizeText(text[prev:m[0]]))
		start := b.Len()
		b.WriteString(text[m[0]:m[1]])
		preserved = append(preserved, [2]int{start, b.Len()})
		prev = m[1]
	}
	b.WriteString(t.normalizeText(text[prev:]))
	return b.String(), preserved
}

func (t *BasicTokenizer) normalizeText(s string) string {
	switch t.form {
	case NormalizeNFC:
		s = norm.NFC.String(s)
	case NormalizeNFKC:
		s = norm.NFKC.String(s)
	case NormalizeNFD:
		s = norm.NFD.String(s)
	case NormalizeNFKD:
		s = norm.NFKD.String(s)
	}
	if t.lowerCase {
		s = t.lower.String(s)
		if stripped, _, err := transform.String(accentStripper, s); err == nil {
			s = stripped
		}
	}
	return s
}

func (t *BasicTokenizer) scan(s string, preserved [][2]int) []Token {
	var tokens []Token
	emit := func(start, end int) {
		if end <= start {
			return
		}
		tok := Token{Text: s[start:end]}
		if t.withOffsets {
			tok.Start, tok.End = start, end
		}
		tokens = append(tokens, tok)
	}

	wordStart := -1
	flushWord := func(end int) {
		if wordStart >= 0 {
			emit(wordStart, end)
			wordStart = -1
		}
	}

	i := 0
	for i < len(s) {
		if len(preserved) > 0 && preserved[0][0] == i {
			flushWord(i)
			emit(preserved[0][0], preserved[0][1])
			i = preserved[0][1]
			preserved = preserved[1:]
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r):
			flushWord(i)
			if t.keepWhitespace {
				emit(i, i+size)
			}
		case isCJK(r), unicode.IsPunct(r), unicode.IsSymbol(r):
			flushWord(i)
			emit(i, i+size)
		default:
			if wordStart < 0 {
				wordStart = i
			}
		}
		i += size
	}
	flushWord(len(s))
	return tokens
}

// isCJK reports whether r falls in the CJK ranges that are isolated into
// single-character tokens.
func isCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF, // CJK Unified Ideographs
		r >= 0x3400 && r <= 0x4DBF, // Extension A
		r >= 0x20000 && r <= 0x2A6DF, // Extension B
		r >= 0x2A700 && r <= 0x2B73F,
		r >= 0x2B740 && r <= 0x2B81F,
		r >= 0x2B820 && r <= 0x2CEAF,
		r >= 0xF900 && r <= 0xFAFF, // CJK Compatibility Ideographs
		r >= 0x2F800 && r <= 0x2FA1F:
		return true
	default:
		return false
	}
}
