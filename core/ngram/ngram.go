package ngram

import (
	"strings"

	"github.com/dmitrymomot/textkit/core/contract"
)

const opNew = "ngram.new"

func init() {
	contract.Register(contract.Descriptor{
		Op: opNew,
		Params: []contract.Param{
			{Name: "n", Required: true},
			{Name: "left_pad", Default: []any{"", 0}},
			{Name: "right_pad", Default: []any{"", 0}},
			{Name: "separator", Default: " "},
		},
	}, func(b contract.Bundle) error {
		return contract.Apply(
			gramSizesRule(b, "n"),
			contract.IsPad(b, "left_pad"),
			contract.PadWidthNonNegative(b, "left_pad"),
			contract.IsPad(b, "right_pad"),
			contract.PadWidthNonNegative(b, "right_pad"),
			contract.IsString(b, "separator"),
		)
	})
}

// gramSizesRule accepts a single gram size or a list of them. A scalar is
// rewritten into a one-element list so the engine always sees a sequence.
// Every size must be a positive 32-bit integer and the list must not be
// empty.
func gramSizesRule(b contract.Bundle, name string) contract.Rule {
	return func() *contract.Violation {
		var sizes []int
		switch v := b.Value(name).(type) {
		case []int:
			sizes = v
		default:
			n, ok := b.Value(name).(int)
			if !ok {
				return contract.Typef(name, "must be an integer or a list of integers, got %T", b.Value(name))
			}
			sizes = []int{n}
			b.Set(name, sizes)
		}
		if len(sizes) == 0 {
			return contract.Valuef(name, "must contain at least one gram size")
		}
		for _, n := range sizes {
			if n <= 0 || n > contract.IntMax {
				return contract.Valuef(name, "gram size must be a positive 32-bit integer, got %d", n)
			}
		}
		return nil
	}
}

// Pad is the fill applied to one side of the token sequence before grams are
// taken: Width copies of Token.
type Pad struct {
	Token string
	Width int
}

func (p Pad) pair() []any {
	return []any{p.Token, p.Width}
}

// NGram produces n-grams over a token sequence. Several gram sizes may be
// requested at once; the output concatenates the grams of each size in
// order.
type NGram struct {
	sizes     []int
	leftPad   Pad
	rightPad  Pad
	separator string
}

// New builds a guarded n-gram generator. n is a single gram size or a list
// of sizes ([]int).
func New(n any, leftPad, rightPad Pad, separator string) (*NGram, error) {
	b, err := contract.Guard(opNew, []any{n}, map[string]any{
		"left_pad":  leftPad.pair(),
		"right_pad": rightPad.pair(),
		"separator": separator,
	})
	if err != nil {
		return nil, err
	}
	return &NGram{
		sizes:     b.IntSlice("n"),
		leftPad:   leftPad,
		rightPad:  rightPad,
		separator: b.String("separator"),
	}, nil
}

// Apply generates grams over tokens. Pads are attached to both ends first;
// a gram size larger than the padded sequence yields a single empty string
// for that size.
func (g *NGram) Apply(tokens []string) []string {
	padded := make([]string, 0, g.leftPad.Width+len(tokens)+g.rightPad.Width)
	for i := 0; i < g.leftPad.Width; i++ {
		padded = append(padded, g.leftPad.Token)
	}
	padded = append(padded, tokens...)
	for i := 0; i < g.rightPad.Width; i++ {
		padded = append(padded, g.rightPad.Token)
	}

	var out []string
	for _, n := range g.sizes {
		if n > len(padded) {
			out = append(out, "")
			continue
		}
		for i := 0; i+n <= len(padded); i++ {
			out = append(out, strings.Join(padded[i:i+n], g.separator))
		}
	}
	return out
}
