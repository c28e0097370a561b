package jieba

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// BEMS hidden states: a rune begins a word, ends it, sits in the middle,
// or forms a single-rune word.
const (
	stateB = iota
	stateE
	stateM
	stateS
	stateCount
)

// minProb stands in for log(0) when a transition or emission is
// impossible or unobserved.
const minProb = -3.14e100

// Start and transition log probabilities of the segmentation model.
var (
	hmmStart = [stateCount]float64{
		stateB: -0.26268660809250016,
		stateE: minProb,
		stateM: minProb,
		stateS: -1.4652633398537678,
	}

	hmmTrans = [stateCount][stateCount]float64{
		stateB: {stateB: minProb, stateE: -0.51082562376599, stateM: -0.916290731874155, stateS: minProb},
		stateE: {stateB: -0.5897149736854513, stateE: minProb, stateM: minProb, stateS: -0.8085250474669937},
		stateM: {stateB: minProb, stateE: -0.33344856811948514, stateM: -1.2603623820268226, stateS: minProb},
		stateS: {stateB: -0.7211965654669841, stateE: minProb, stateM: minProb, stateS: -0.6658631448798212},
	}

	// hmmPrev lists the states that may precede each state.
	hmmPrev = [stateCount][]int{
		stateB: {stateE, stateS},
		stateE: {stateB, stateM},
		stateM: {stateM, stateB},
		stateS: {stateS, stateE},
	}
)

// hmmModel holds per-state emission log probabilities keyed by rune.
type hmmModel struct {
	emit [stateCount]map[rune]float64
}

// stateIndex maps a model-file state label to its index.
func stateIndex(label string) (int, bool) {
	switch label {
	case "B":
		return stateB, true
	case "E":
		return stateE, true
	case "M":
		return stateM, true
	case "S":
		return stateS, true
	default:
		return 0, false
	}
}

// loadModel reads emission probabilities in the "state rune log_prob" line
// format. Blank lines and '#' comments are skipped. A file with no
// emission entries is still a valid model; unobserved runes fall back to
// the floor probability.
func loadModel(path string) (*hmmModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDictNotFound, path)
	}
	defer f.Close()

	m := &hmmModel{}
	for i := range m.emit {
		m.emit[i] = make(map[rune]float64)
	}

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %s:%d", ErrDictFormat, path, line)
		}
		state, ok := stateIndex(fields[0])
		if !ok {
			return nil, fmt.Errorf("%w: %s:%d", ErrDictFormat, path, line)
		}
		runes := []rune(fields[1])
		if len(runes) != 1 {
			return nil, fmt.Errorf("%w: %s:%d", ErrDictFormat, path, line)
		}
		prob, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d", ErrDictFormat, path, line)
		}
		m.emit[state][runes[0]] = prob
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	return m, nil
}

func (m *hmmModel) emission(state int, r rune) float64 {
	if p, ok := m.emit[state][r]; ok {
		return p
	}
	return minProb
}

// cut segments a run of runes by Viterbi decoding over the BEMS states.
func (m *hmmModel) cut(runes []rune) []string {
	if len(runes) == 0 {
		return nil
	}
	if len(runes) == 1 {
		return []string{string(runes)}
	}

	v := make([][stateCount]float64, len(runes))
	path := make([][stateCount]int, len(runes))
	for s := 0; s < stateCount; s++ {
		v[0][s] = hmmStart[s] + m.emission(s, runes[0])
	}

	for i := 1; i < len(runes); i++ {
		for s := 0; s < stateCount; s++ {
			best := minProb * 2
			bestPrev := hmmPrev[s][0]
			for _, p := range hmmPrev[s] {
				score := v[i-1][p] + hmmTrans[p][s]
				if score > best {
					best = score
					bestPrev = p
				}
			}
			v[i][s] = best + m.emission(s, runes[i])
			path[i][s] = bestPrev
		}
	}

	// A segmentation must end in E or S.
	last := stateE
	if v[len(runes)-1][stateS] > v[len(runes)-1][stateE] {
		last = stateS
	}
	states := make([]int, len(runes))
	states[len(runes)-1] = last
	for i := len(runes) - 1; i > 0; i-- {
		states[i-1] = path[i][states[i]]
	}

	var (
		words []string
		begin int
	)
	for i, s := range states {
		switch s {
		case stateE:
			words = append(words, string(runes[begin:i+1]))
			begin = i + 1
		case stateS:
			words = append(words, string(runes[i:i+1]))
			begin = i + 1
		}
	}
	if begin < len(runes) {
		words = append(words, string(runes[begin:]))
	}
	return words
}
