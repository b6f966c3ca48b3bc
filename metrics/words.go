package metrics

import (
	"unicode"

	"github.com/npillmayer/edittree"
)

// WordsValue is the result of a word-materialization pass.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of recognized words.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// WordsMetric is a materialized word metric.
type WordsMetric struct{}

// Words creates a materialized word metric.
func Words() WordsMetric {
	return WordsMetric{}
}

// Apply scans [i,j) for words and returns word spans plus a materialized tree.
//
// Materialization concatenates all recognized words in logical order and omits
// non-word separators.
func (WordsMetric) Apply(text *edittree.Tree, i, j int) (WordsValue, *edittree.Tree, error) {
	if text.IsEmpty() && i == 0 && j == 0 {
		return WordsValue{}, edittree.New(), nil
	}
	content, err := textRange(text, i, j)
	if err != nil {
		return WordsValue{}, nil, err
	}
	runes := []rune(content)
	value := WordsValue{
		Spans: spansFromBytes(content, Words().Locations(content), i),
	}
	b := edittree.NewBuilder()
	for _, span := range value.Spans {
		start := span.Pos - i
		for _, r := range runes[start : start+span.Len] {
			if err = b.AppendRune(r); err != nil {
				return value, nil, err
			}
		}
	}
	return value, b.Tree(), nil
}

// Locations is part of interface ScanningMetric, returning byte ranges of
// words.
func (WordsMetric) Locations(text string) [][]int {
	locs := make([][]int, 0, 8)
	start := -1
	for pos, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				locs = append(locs, []int{start, pos})
				start = -1
			}
		} else if start < 0 {
			start = pos
		}
	}
	if start >= 0 {
		locs = append(locs, []int{start, len(text)})
	}
	return locs
}
