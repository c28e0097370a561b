package tokenizer

import (
	"github.com/dmitrymomot/textkit/core/contract"
	"github.com/dmitrymomot/textkit/core/vocab"
)

// Guarded operation names owned by this package.
const (
	opWhitespace    = "tokenizer.whitespace"
	opUnicodeChar   = "tokenizer.unicode_char"
	opUnicodeScript = "tokenizer.unicode_script"
	opRegex         = "tokenizer.regex"
	opBasic         = "tokenizer.basic"
	opWordPiece     = "tokenizer.wordpiece"
	opBert          = "tokenizer.bert"
	opFunc          = "tokenizer.func"
	opTruncatePair  = "tokenizer.truncate_pair"
)

func init() {
	contract.Register(contract.Descriptor{
		Op:     opWhitespace,
		Params: []contract.Param{{Name: "with_offsets", Default: false}},
	}, func(b contract.Bundle) error {
		return contract.Apply(contract.IsBool(b, "with_offsets"))
	})

	contract.Register(contract.Descriptor{
		Op:     opUnicodeChar,
		Params: []contract.Param{{Name: "with_offsets", Default: false}},
	}, func(b contract.Bundle) error {
		return contract.Apply(contract.IsBool(b, "with_offsets"))
	})

	contract.Register(contract.Descriptor{
		Op: opUnicodeScript,
		Params: []contract.Param{
			{Name: "keep_whitespace", Default: false},
			{Name: "with_offsets", Default: false},
		},
	}, func(b contract.Bundle) error {
		return contract.Apply(
			contract.IsBool(b, "keep_whitespace"),
			contract.IsBool(b, "with_offsets"),
		)
	})

	contract.Register(contract.Descriptor{
		Op: opRegex,
		Params: []contract.Param{
			{Name: "delim_pattern", Required: true},
			{Name: "keep_delim_pattern", Default: ""},
			{Name: "with_offsets", Default: false},
		},
	}, func(b contract.Bundle) error {
		return contract.Apply(
			contract.IsString(b, "delim_pattern"),
			contract.IsString(b, "keep_delim_pattern"),
			contract.IsBool(b, "with_offsets"),
		)
	})

	contract.Register(contract.Descriptor{
		Op: opBasic,
		Params: []contract.Param{
			{Name: "lower_case", Default: false},
			{Name: "keep_whitespace", Default: false},
			{Name: "normalization_form", Default: NormalizeNone},
			{Name: "preserve_unused_token", Default: true},
			{Name: "with_offsets", Default: false},
		},
	}, func(b contract.Bundle) error {
		return contract.Apply(
			contract.IsBool(b, "lower_case"),
			contract.IsBool(b, "keep_whitespace"),
			normalizeFormRule(b, "normalization_form"),
			contract.IsBool(b, "preserve_unused_token"),
			contract.IsBool(b, "with_offsets"),
		)
	})

	contract.Register(contract.Descriptor{
		Op:     opWordPiece,
		Params: wordPieceParams(),
	}, func(b contract.Bundle) error {
		return contract.Apply(wordPieceRules(b)...)
	})

	contract.Register(contract.Descriptor{
		Op: opBert,
		Params: append(wordPieceParams(),
			contract.Param{Name: "lower_case", Default: false},
			contract.Param{Name: "keep_whitespace", Default: false},
			contract.Param{Name: "normalization_form", Default: NormalizeNone},
			contract.Param{Name: "preserve_unused_token", Default: true},
		),
	}, func(b contract.Bundle) error {
		rules := wordPieceRules(b)
		rules = append(rules,
			contract.IsBool(b, "lower_case"),
			contract.IsBool(b, "keep_whitespace"),
			normalizeFormRule(b, "normalization_form"),
			contract.IsBool(b, "preserve_unused_token"),
		)
		return contract.Apply(rules...)
	})

	contract.Register(contract.Descriptor{
		Op:     opFunc,
		Params: []contract.Param{{Name: "tokenizer", Required: true}},
	}, func(b contract.Bundle) error {
		return contract.Apply(contract.IsCallable(b, "tokenizer"))
	})

	// Arity resolution only; the truncation engine has no field predicates.
	contract.Register(contract.Descriptor{
		Op:     opTruncatePair,
		Params: []contract.Param{{Name: "max_length", Required: true}},
	}, nil)
}

func wordPieceParams() []contract.Param {
	return []contract.Param{
		{Name: "vocab", Required: true},
		{Name: "suffix_indicator", Default: "##"},
		{Name: "max_bytes_per_token", Default: 100},
		{Name: "unknown_token", Default: "[UNK]"},
		{Name: "with_offsets", Default: false},
	}
}

func wordPieceRules(b contract.Bundle) []contract.Rule {
	return []contract.Rule{
		vocab.HandleRule(b, "vocab"),
		contract.IsString(b, "suffix_indicator"),
		contract.IsUint32(b, "max_bytes_per_token"),
		contract.IsString(b, "unknown_token"),
		contract.IsBool(b, "with_offsets"),
	}
}

// normalizeFormRule requires a recognized Unicode normalization mode.
func normalizeFormRule(b contract.Bundle, name string) contract.Rule {
	return func() *contract.Violation {
		form, ok := b.Value(name).(NormalizeForm)
		if !ok {
			return contract.Typef(name, "must be a normalization form")
		}
		switch form {
		case NormalizeNone, NormalizeNFC, NormalizeNFKC, NormalizeNFD, NormalizeNFKD:
			return nil
		default:
			return contract.Valuef(name, "unrecognized normalization form %q", string(form))
		}
	}
}
