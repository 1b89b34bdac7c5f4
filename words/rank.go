package words

import (
	"bufio"
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/npillmayer/treap"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// WordFrequency is a word together with the number of its occurrences.
type WordFrequency struct {
	Word      string
	Frequency int
}

// Ranker ranks the words of texts by frequency.
type Ranker struct {
	top int
}

// NewRanker creates a ranker reporting the top most frequent words.
// A value of top <= 0 reports all words.
func NewRanker(top int) *Ranker {
	return &Ranker{top: top}
}

// Rank returns the most frequent words of text, most frequent first.
// Words of equal frequency are ordered alphabetically.
func (r *Ranker) Rank(text string) []WordFrequency {
	counts := Counts(text)
	ranking := make([]WordFrequency, 0, counts.Len())
	for w, n := range counts.All() { // alphabetical
		ranking = append(ranking, WordFrequency{Word: w, Frequency: n})
	}
	slices.SortStableFunc(ranking, func(a, b WordFrequency) int {
		return cmp.Compare(b.Frequency, a.Frequency)
	})
	if r.top > 0 && len(ranking) > r.top {
		ranking = ranking[:r.top]
	}
	tracer().Debugf("ranked %d words", len(ranking))
	return ranking
}

// Counts returns a map from the (lower-cased) words of text to the number of
// their occurrences.
func Counts(text string) treap.Map[string, int] {
	var counts treap.Map[string, int]
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	for segmenter.Next() {
		for _, w := range letterRuns(string(segmenter.Bytes())) {
			n, _ := counts.Get(w) // zero if w is new
			counts.Set(w, n+1)
		}
	}
	return counts
}

// letterRuns returns the maximal runs of letters in s, lower-cased.
func letterRuns(s string) []string {
	var runs []string
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, strings.ToLower(s[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, strings.ToLower(s[start:]))
	}
	return runs
}
