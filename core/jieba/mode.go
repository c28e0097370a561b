package jieba

import "fmt"

// CutMode selects the segmentation algorithm.
type CutMode string

const (
	// ModeMP segments by maximum-probability path over the dictionary.
	ModeMP CutMode = "mp"
	// ModeHMM segments out-of-dictionary runs with the hidden Markov
	// model.
	ModeHMM CutMode = "hmm"
	// ModeMix runs the dictionary pass first and the model pass over
	// whatever the dictionary could not resolve.
	ModeMix CutMode = "mix"
)

// ParseMode resolves a mode name from configuration. Matching is exact and
// lower-case.
func ParseMode(s string) (CutMode, error) {
	switch CutMode(s) {
	case ModeMP, ModeHMM, ModeMix:
		return CutMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
