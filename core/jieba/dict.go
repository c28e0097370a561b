package jieba

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// dict is the unigram frequency table driving the maximum-probability
// pass. Entries come from the dictionary file plus any words added at
// runtime.
type dict struct {
	freqs   map[string]int
	total   int
	maxLen  int // longest entry, in runes
	entries int
}

func newDict() *dict {
	return &dict{freqs: make(map[string]int)}
}

// loadDictFile reads a dictionary in the "word frequency [tag]" line
// format. Blank lines and lines starting with '#' are skipped; the
// trailing part-of-speech tag, when present, is ignored.
func loadDictFile(path string) (*dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDictNotFound, path)
	}
	defer f.Close()

	d := newDict()
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %s:%d", ErrDictFormat, path, line)
		}
		freq, err := strconv.Atoi(fields[1])
		if err != nil || freq < 0 {
			return nil, fmt.Errorf("%w: %s:%d", ErrDictFormat, path, line)
		}
		d.add(fields[0], freq)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return d, nil
}

func (d *dict) add(word string, freq int) {
	if prev, ok := d.freqs[word]; ok {
		d.total -= prev
	} else {
		d.entries++
	}
	d.freqs[word] = freq
	d.total += freq
	if n := utf8.RuneCountInString(word); n > d.maxLen {
		d.maxLen = n
	}
}

func (d *dict) lookup(word string) (int, bool) {
	f, ok := d.freqs[word]
	return f, ok
}
