// Package textkit is a collection of text-processing building blocks with
// guarded construction: vocabularies, tokenizers, a Chinese word
// segmenter, n-gram generation, and text-to-number conversion. Every
// constructor validates its full argument set against a declared contract
// before any work happens, so a misconfigured component is rejected with a
// precise violation instead of failing later mid-pipeline.
//
// The packages under core/ are independent and composable:
//
//   - core/contract: operation descriptors, argument binding, and the
//     violation taxonomy shared by every guarded constructor
//   - core/vocab: vocabulary construction from lists, files, mappings, and
//     datasets, plus token/id lookup
//   - core/tokenizer: whitespace, character, script, regex, basic,
//     WordPiece, and BERT tokenization, sequence-pair truncation
//   - core/jieba: dictionary and model based Chinese word segmentation
//   - core/ngram: padded n-gram generation
//   - core/numconv: decimal text to fixed-width numeric conversion
//   - core/logger: slog attribute helpers
//   - core/config: environment configuration loading
package textkit
