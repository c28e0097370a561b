package vocab

import "github.com/dmitrymomot/textkit/core/contract"

// Guarded operation names owned by this package.
const (
	opLookup      = "vocab.lookup"
	opFromList    = "vocab.from_list"
	opFromFile    = "vocab.from_file"
	opFromDict    = "vocab.from_dict"
	opFromDataset = "vocab.from_dataset"
)

func init() {
	contract.Register(contract.Descriptor{
		Op: opLookup,
		Params: []contract.Param{
			{Name: "vocab", Required: true},
			{Name: "unknown_token"},
		},
	}, func(b contract.Bundle) error {
		return contract.Apply(
			HandleRule(b, "vocab"),
			contract.Present(b, "unknown_token", contract.IsString(b, "unknown_token")),
		)
	})

	contract.Register(contract.Descriptor{
		Op: opFromList,
		Params: []contract.Param{
			{Name: "word_list", Required: true},
			{Name: "special_tokens"},
			{Name: "special_first", Default: true},
		},
	}, func(b contract.Bundle) error {
		return contract.Apply(
			contract.UniqueStrings(b, "word_list"),
			contract.Present(b, "special_tokens", contract.UniqueStrings(b, "special_tokens")),
			contract.Present(b, "special_tokens", contract.Disjoint(b, "word_list", "special_tokens")),
			contract.IsBool(b, "special_first"),
		)
	})

	contract.Register(contract.Descriptor{
		Op: opFromFile,
		Params: []contract.Param{
			{Name: "file_path", Required: true},
			{Name: "delimiter", Default: ""},
			{Name: "vocab_size", Default: -1},
			{Name: "special_tokens"},
			{Name: "special_first", Default: true},
		},
	}, func(b contract.Bundle) error {
		return contract.Apply(
			contract.IsString(b, "file_path"),
			contract.IsString(b, "delimiter"),
			contract.InRange(b, "vocab_size", -1, contract.IntMax),
			contract.Present(b, "special_tokens", contract.UniqueStrings(b, "special_tokens")),
			contract.IsBool(b, "special_first"),
		)
	})

	contract.Register(contract.Descriptor{
		Op: opFromDict,
		Params: []contract.Param{
			{Name: "word_dict", Required: true},
		},
	}, func(b contract.Bundle) error {
		return contract.Apply(wordDictRule(b, "word_dict"))
	})

	contract.Register(contract.Descriptor{
		Op: opFromDataset,
		Params: []contract.Param{
			{Name: "columns"},
			{Name: "freq_range"},
			{Name: "top_k"},
			{Name: "special_tokens"},
			{Name: "special_first", Default: true},
		},
	}, func(b contract.Bundle) error {
		// Scalar column name is coerced to a single-element list so the
		// engine always sees a sequence.
		if col, ok := b.Value("columns").(string); ok {
			b.Set("columns", []string{col})
		}
		return contract.Apply(
			contract.Present(b, "columns", contract.IsStringSlice(b, "columns")),
			contract.Present(b, "freq_range", contract.FreqRangeRule(b, "freq_range")),
			contract.Present(b, "top_k", contract.Positive(b, "top_k")),
			contract.Present(b, "special_tokens", contract.UniqueStrings(b, "special_tokens")),
			contract.IsBool(b, "special_first"),
		)
	})
}

// HandleRule requires the bound value to be a non-nil *Vocab. It is shared
// with the tokenizer contracts that take a vocabulary handle.
func HandleRule(b contract.Bundle, name string) contract.Rule {
	return func() *contract.Violation {
		v, ok := b.Value(name).(*Vocab)
		if !ok || v == nil {
			return contract.Typef(name, "must be a Vocab handle")
		}
		return nil
	}
}

// wordDictRule requires a map of string tokens to ids within [0, IntMax].
func wordDictRule(b contract.Bundle, name string) contract.Rule {
	return func() *contract.Violation {
		m, ok := b.Value(name).(map[string]int)
		if !ok {
			return contract.Typef(name, "must be a mapping of string to int")
		}
		for word, id := range m {
			if id < 0 || id > contract.IntMax {
				return contract.Valuef(name, "id for %q must be within [0, %d], got %d", word, contract.IntMax, id)
			}
		}
		return nil
	}
}
