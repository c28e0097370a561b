package jieba

import (
	"github.com/dmitrymomot/textkit/core/contract"
)

// Guarded operation names owned by this package.
const (
	opInit    = "jieba.init"
	opAddWord = "jieba.add_word"
	opAddDict = "jieba.add_dict"
)

func init() {
	contract.Register(contract.Descriptor{
		Op: opInit,
		Params: []contract.Param{
			{Name: "hmm_path", Required: true},
			{Name: "mp_path", Required: true},
			{Name: "mode", Default: ModeMix},
			{Name: "with_offsets", Default: false},
		},
	}, func(b contract.Bundle) error {
		return contract.Apply(
			dictPathRule(b, "hmm_path"),
			dictPathRule(b, "mp_path"),
			modeRule(b, "mode"),
			contract.IsBool(b, "with_offsets"),
		)
	})

	contract.Register(contract.Descriptor{
		Op: opAddWord,
		Params: []contract.Param{
			{Name: "word", Required: true},
			{Name: "freq"},
		},
	}, func(b contract.Bundle) error {
		return contract.Apply(
			contract.IsString(b, "word"),
			wordNotEmptyRule(b, "word"),
			contract.Present(b, "freq", contract.IsUint32(b, "freq")),
		)
	})

	// The dictionary value may be a path or a frequency table; beyond
	// presence it is shape-checked by the loader.
	contract.Register(contract.Descriptor{
		Op:     opAddDict,
		Params: []contract.Param{{Name: "user_dict", Required: true}},
	}, func(b contract.Bundle) error {
		return contract.Apply(contract.Required(b, "user_dict"))
	})
}

// dictPathRule requires a supplied, textual dictionary path. An absent path
// is a value violation so the message can say which model file is missing.
func dictPathRule(b contract.Bundle, name string) contract.Rule {
	return func() *contract.Violation {
		if b.IsNil(name) {
			return contract.Valuef(name, "the dictionary file is not provided")
		}
		if _, ok := b.Value(name).(string); !ok {
			return contract.Typef(name, "must be a file path string, got %T", b.Value(name))
		}
		return nil
	}
}

func modeRule(b contract.Bundle, name string) contract.Rule {
	return func() *contract.Violation {
		mode, ok := b.Value(name).(CutMode)
		if !ok {
			return contract.Typef(name, "must be a segmentation mode")
		}
		switch mode {
		case ModeMP, ModeHMM, ModeMix:
			return nil
		default:
			return contract.Valuef(name, "unrecognized segmentation mode %q", string(mode))
		}
	}
}

func wordNotEmptyRule(b contract.Bundle, name string) contract.Rule {
	return func() *contract.Violation {
		if b.String(name) == "" {
			return contract.Valuef(name, "must not be empty")
		}
		return nil
	}
}
