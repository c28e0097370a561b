package tokenizer

import (
	"sort"
	"unicode"

	"github.com/dmitrymomot/textkit/core/contract"
)

// UnicodeScriptTokenizer splits text on Unicode script boundaries: runs of
// code points sharing a script form one token. Whitespace runs form their
// own segments and are emitted only when keepWhitespace is set.
type UnicodeScriptTokenizer struct {
	keepWhitespace bool
	withOffsets    bool
}

// NewUnicodeScript builds a guarded script-boundary tokenizer.
func NewUnicodeScript(keepWhitespace, withOffsets bool) (*UnicodeScriptTokenizer, error) {
	b, err := contract.Guard(opUnicodeScript, []any{keepWhitespace, withOffsets}, nil)
	if err != nil {
		return nil, err
	}
	return &UnicodeScriptTokenizer{
		keepWhitespace: b.Bool("keep_whitespace"),
		withOffsets:    b.Bool("with_offsets"),
	}, nil
}

// Tokenize splits text into script-homogeneous tokens.
func (t *UnicodeScriptTokenizer) Tokenize(text string) []Token {
	var tokens []Token
	start := 0
	current := ""
	currentIsSpace := false

	flush := func(end int) {
		if end <= start {
			return
		}
		if currentIsSpace && !t.keepWhitespace {
			return
		}
		tok := Token{Text: text[start:end]}
		if t.withOffsets {
			tok.Start, tok.End = start, end
		}
		tokens = append(tokens, tok)
	}

	for i, r := range text {
		isSpace := unicode.IsSpace(r)
		script := ""
		if !isSpace {
			script = scriptOf(r)
		}
		if i == 0 {
			current, currentIsSpace = script, isSpace
			continue
		}
		if isSpace != currentIsSpace || script != current {
			flush(i)
			start = i
			current, currentIsSpace = script, isSpace
		}
	}
	flush(len(text))
	return tokens
}

// scriptNames is the stable, sorted list of Unicode script table names used
// to classify runes deterministically.
var scriptNames = func() []string {
	names := make([]string, 0, len(unicode.Scripts))
	for name := range unicode.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// scriptOf returns the Unicode script name of r, or "" when unassigned.
func scriptOf(r rune) string {
	for _, name := range scriptNames {
		if unicode.Is(unicode.Scripts[name], r) {
			return name
		}
	}
	return ""
}
