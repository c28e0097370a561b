package tokenizer

import "errors"

// Error variables define tokenizer engine failures that occur after the
// argument contract has passed.
var (
	// ErrInvalidPattern indicates a delimiter pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid delimiter pattern")

	// ErrInvalidKeepPattern indicates a retained-delimiter pattern that does
	// not compile.
	ErrInvalidKeepPattern = errors.New("invalid retained-delimiter pattern")
)
