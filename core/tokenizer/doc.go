// Package tokenizer provides guarded text tokenization engines. Every
// constructor runs its argument contract before building the engine:
// boolean flags must be booleans, patterns and indicator strings must be
// text, byte budgets must fit in 32 bits, and vocabulary handles must be
// real vocabularies. A failed contract aborts construction with a
// Violation; the engine is never built.
//
// # Engines
//
//   - WhitespaceTokenizer: split on runs of Unicode whitespace
//   - UnicodeCharTokenizer: one token per code point
//   - UnicodeScriptTokenizer: split on Unicode script boundaries
//   - RegexTokenizer: split on a delimiter pattern, optionally retaining
//     matching delimiters
//   - BasicTokenizer: BERT-style cleanup (normalization, lower-casing with
//     accent stripping, CJK isolation, punctuation splitting)
//   - WordPieceTokenizer: greedy longest-match-first sub-word splitting
//     against a vocabulary
//   - BertTokenizer: BasicTokenizer then WordPieceTokenizer
//   - FuncTokenizer: user-supplied tokenization function
//   - TruncateSequencePair: fit two token sequences into a length budget
//
// # Usage
//
//	t, err := tokenizer.NewWhitespace(true)
//	if err != nil { ... }
//	tokens := t.Tokenize("hello world")
//
//	wp, err := tokenizer.NewWordPiece(v, "##", 100, "[UNK]", false)
//	if err != nil { ... }
//	pieces := wp.Tokenize([]string{"unaffable"})
//
// Offset reporting is opt-in per tokenizer. Engines that normalize text
// (BasicTokenizer, BertTokenizer) report offsets relative to the normalized
// text they scanned.
package tokenizer
