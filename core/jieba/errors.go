package jieba

import "errors"

var (
	// ErrDictNotFound is returned when a dictionary file cannot be opened.
	ErrDictNotFound = errors.New("dictionary file not found")
	// ErrDictFormat is returned when a dictionary line does not parse as
	// "word frequency [tag]".
	ErrDictFormat = errors.New("malformed dictionary entry")
	// ErrUnknownMode is returned when a segmentation mode name does not
	// match any declared mode.
	ErrUnknownMode = errors.New("unknown segmentation mode")
)
