package vocab

import "errors"

// Error variables define vocabulary construction and lookup failures that
// occur after the argument contract has passed.
var (
	// ErrOpenFile indicates the vocabulary file could not be opened or read.
	ErrOpenFile = errors.New("failed to open vocabulary file")

	// ErrDuplicateToken indicates the vocabulary source assigns the same
	// token twice.
	ErrDuplicateToken = errors.New("duplicate token in vocabulary source")

	// ErrDuplicateID indicates a mapping assigns the same id to two tokens.
	ErrDuplicateID = errors.New("duplicate id in vocabulary mapping")

	// ErrEmptyVocab indicates construction produced no tokens at all.
	ErrEmptyVocab = errors.New("vocabulary is empty")

	// ErrUnknownNotInVocab indicates the configured unknown-token
	// placeholder is not itself a vocabulary entry.
	ErrUnknownNotInVocab = errors.New("unknown token is not part of the vocabulary")

	// ErrOutOfVocabulary indicates a lookup met a token with no id and no
	// unknown-token placeholder was configured.
	ErrOutOfVocabulary = errors.New("token not found in vocabulary")
)
