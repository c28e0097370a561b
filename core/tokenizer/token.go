package tokenizer

// Token is one unit of tokenizer output. Start and End are byte offsets
// into the tokenized text and are populated only when the tokenizer was
// constructed with offset reporting enabled; otherwise both are zero.
type Token struct {
	Text  string
	Start int
	End   int
}

// Texts flattens tokens into their text values.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
