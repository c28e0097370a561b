// Package logger provides slog attribute helpers for structured logging
// across the text-processing packages. Helpers follow the empty Attr
// pattern: passing a nil error or an empty string yields an attribute that
// slog silently drops, so call sites never need nil checks.
//
// # Usage
//
//	log.Info("dictionary loaded",
//		logger.Component("jieba"),
//		logger.Path(dictPath),
//		logger.TokenCount(entries),
//		logger.Elapsed(start),
//	)
//
//	log.Warn("construction rejected",
//		logger.Error(err),
//		logger.Op("vocab.from_file"),
//	)
package logger
