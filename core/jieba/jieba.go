package jieba

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"
	"unicode"

	"github.com/dmitrymomot/textkit/core/contract"
	"github.com/dmitrymomot/textkit/core/logger"
	"github.com/dmitrymomot/textkit/core/tokenizer"
)

// Segmenter cuts Chinese text into words using a unigram dictionary, a
// BEMS segmentation model, or both. Construction is guarded: both model
// files must be supplied and loadable, and the mode must be one of the
// declared CutMode values.
type Segmenter struct {
	mu          sync.RWMutex
	dict        *dict
	model       *hmmModel
	mode        CutMode
	withOffsets bool
	log         *slog.Logger
}

// New builds a guarded segmenter from the segmentation model file at
// hmmPath and the frequency dictionary at mpPath.
func New(hmmPath, mpPath string, mode CutMode, withOffsets bool) (*Segmenter, error) {
	b, err := contract.Guard(opInit, []any{pathArg(hmmPath), pathArg(mpPath)}, map[string]any{
		"mode":         mode,
		"with_offsets": withOffsets,
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	d, err := loadDictFile(b.String("mp_path"))
	if err != nil {
		return nil, err
	}
	m, err := loadModel(b.String("hmm_path"))
	if err != nil {
		return nil, err
	}

	s := &Segmenter{
		dict:        d,
		model:       m,
		mode:        b.Value("mode").(CutMode),
		withOffsets: b.Bool("with_offsets"),
		log:         slog.Default(),
	}
	s.log.Debug("segmenter ready",
		logger.Component("jieba"),
		logger.Path(mpPath),
		logger.TokenCount(d.entries),
		logger.Mode(string(s.mode)),
		logger.Elapsed(start),
	)
	return s, nil
}

// pathArg converts an unset path into an absent argument so the contract
// reports it as not provided rather than as an empty string.
func pathArg(path string) any {
	if path == "" {
		return nil
	}
	return path
}

// Mode reports the configured segmentation mode.
func (s *Segmenter) Mode() CutMode {
	return s.mode
}

// AddWord inserts word into the dictionary so later cuts keep it whole.
// A freq of zero picks a frequency automatically; negative frequencies
// fail the contract.
func (s *Segmenter) AddWord(word string, freq int) error {
	var freqArg any
	if freq != 0 {
		freqArg = freq
	}
	b, err := contract.Guard(opAddWord, []any{word}, map[string]any{"freq": freqArg})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	f := b.Int("freq")
	if b.IsNil("freq") {
		f = s.suggestFreq(b.String("word"))
	}
	s.dict.add(b.String("word"), f)
	return nil
}

// suggestFreq derives a frequency high enough for word to win against the
// segmentation the dictionary would otherwise produce: the probability of
// the competing path, converted back to a count, plus one. An existing
// entry is never lowered.
func (s *Segmenter) suggestFreq(word string) int {
	total := float64(max(s.dict.total, 1))
	p := 1.0
	for _, seg := range s.cutMP([]rune(word), false) {
		freq, ok := s.dict.lookup(seg)
		if !ok {
			freq = 1
		}
		p *= float64(max(freq, 1)) / total
	}
	freq := int(p*total) + 1
	if prev, ok := s.dict.lookup(word); ok && prev+1 > freq {
		freq = prev + 1
	}
	return freq
}

// AddDict merges a user frequency table into the dictionary.
func (s *Segmenter) AddDict(words map[string]int) error {
	if _, err := contract.Guard(opAddDict, []any{words}, nil); err != nil {
		return err
	}
	for word, freq := range words {
		if word == "" || freq < 0 {
			return fmt.Errorf("%w: %q=%d", ErrDictFormat, word, freq)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for word, freq := range words {
		s.dict.add(word, freq)
	}
	return nil
}

// AddDictFile merges the dictionary file at path, in the same "word
// frequency [tag]" format as the main dictionary.
func (s *Segmenter) AddDictFile(path string) error {
	if _, err := contract.Guard(opAddDict, []any{pathArg(path)}, nil); err != nil {
		return err
	}
	extra, err := loadDictFile(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for word, freq := range extra.freqs {
		s.dict.add(word, freq)
	}
	s.log.Debug("user dictionary merged",
		logger.Component("jieba"),
		logger.Path(path),
		logger.TokenCount(extra.entries),
	)
	return nil
}

// Cut segments text into word tokens. Whitespace separates segments and
// is never emitted; other non-word runes become single-rune tokens.
// Offsets are byte positions in text, populated only when the segmenter
// was built with offset reporting.
func (s *Segmenter) Cut(text string) []tokenizer.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tokens []tokenizer.Token
	emit := func(word string, start int) {
		tok := tokenizer.Token{Text: word}
		if s.withOffsets {
			tok.Start = start
			tok.End = start + len(word)
		}
		tokens = append(tokens, tok)
	}

	segStart := -1
	flush := func(end int) {
		if segStart < 0 {
			return
		}
		pos := segStart
		for _, word := range s.cutSegment([]rune(text[segStart:end])) {
			emit(word, pos)
			pos += len(word)
		}
		segStart = -1
	}

	for i, r := range text {
		switch {
		case isWordRune(r):
			if segStart < 0 {
				segStart = i
			}
		case unicode.IsSpace(r):
			flush(i)
		default:
			flush(i)
			emit(string(r), i)
		}
	}
	flush(len(text))
	return tokens
}

// CutStrings is Cut flattened to plain words.
func (s *Segmenter) CutStrings(text string) []string {
	return tokenizer.Texts(s.Cut(text))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// cutSegment segments one run of word runes according to the configured
// mode.
func (s *Segmenter) cutSegment(runes []rune) []string {
	switch s.mode {
	case ModeHMM:
		return s.model.cut(runes)
	case ModeMP:
		return s.cutMP(runes, false)
	default:
		return s.cutMP(runes, true)
	}
}

// cutMP finds the maximum-probability path through the dictionary DAG.
// With the model pass enabled, runs of adjacent single-rune pieces are
// re-segmented by the BEMS model, the treatment of words the dictionary
// does not know.
func (s *Segmenter) cutMP(runes []rune, withModel bool) []string {
	n := len(runes)
	if n == 0 {
		return nil
	}

	logTotal := math.Log(float64(max(s.dict.total, 1)))
	route := make([]float64, n+1)
	next := make([]int, n+1)
	maxLen := max(s.dict.maxLen, 1)

	for i := n - 1; i >= 0; i-- {
		best := math.Inf(-1)
		bestJ := i + 1
		for j := i + 1; j <= min(n, i+maxLen); j++ {
			freq, ok := s.dict.lookup(string(runes[i:j]))
			if !ok {
				if j != i+1 {
					continue
				}
				freq = 1
			}
			score := math.Log(float64(max(freq, 1))) - logTotal + route[j]
			if score > best {
				best = score
				bestJ = j
			}
		}
		route[i] = best
		next[i] = bestJ
	}

	var (
		words []string
		buf   []rune
	)
	flushBuf := func() {
		switch {
		case len(buf) == 0:
		case len(buf) == 1:
			words = append(words, string(buf))
		default:
			if _, ok := s.dict.lookup(string(buf)); ok {
				for _, r := range buf {
					words = append(words, string(r))
				}
			} else {
				words = append(words, s.model.cut(buf)...)
			}
		}
		buf = buf[:0]
	}

	for i := 0; i < n; i = next[i] {
		piece := runes[i:next[i]]
		if withModel && len(piece) == 1 {
			buf = append(buf, piece[0])
			continue
		}
		flushBuf()
		words = append(words, string(piece))
	}
	flushBuf()
	return words
}
