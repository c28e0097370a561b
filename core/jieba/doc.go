// Package jieba segments Chinese text into words. The segmenter combines
// two models loaded from files at construction time: a unigram frequency
// dictionary driving a maximum-probability path search, and a BEMS hidden
// Markov model that resolves runs the dictionary does not cover.
//
// # Modes
//
//   - ModeMP: dictionary path search only
//   - ModeHMM: model decoding only
//   - ModeMix: dictionary first, the model over unresolved single-rune runs
//
// # Usage
//
//	seg, err := jieba.New(hmmPath, mpPath, jieba.ModeMix, false)
//	if err != nil { ... }
//	words := seg.CutStrings("今天天气很好")
//
// The dictionary can be extended at runtime with AddWord, AddDict, and
// AddDictFile. A segmenter may also be built from environment variables
// with NewFromEnv; see Config for the variable names.
//
// # File formats
//
// The dictionary is line-oriented: "word frequency [tag]", with blank
// lines and '#' comments ignored. The model file carries emission
// probabilities as "state rune log_prob" lines, where state is one of
// B, E, M, S.
package jieba
