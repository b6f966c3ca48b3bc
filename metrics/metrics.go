package metrics

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/edittree"
)

// Span is a range of characters inside a tree.
//
// Pos is the position of the first character, Len is the span length in
// characters.
type Span struct {
	Pos int
	Len int
}

// End returns the position after the last character of the span.
func (s Span) End() int {
	return s.Pos + s.Len
}

// CountingMetric is a type for metrics that count items in text. Possible
// items may be lines, words, emojis, …
type CountingMetric interface {
	Count(text string) int
}

// Count applies a counting metric to the characters [i,j) of a text.
func Count(text *edittree.Tree, i, j int, metric CountingMetric) (int, error) {
	content, err := textRange(text, i, j)
	if err != nil {
		return -1, fmt.Errorf("metrics.Count could not be applied: %w", err)
	}
	return metric.Count(content), nil
}

// ---------------------------------------------------------------------------

// A ScanningMetric searches a text for items (such as lines, words, emojis, …)
// and returns their locations as byte ranges [from,to) of text.
type ScanningMetric interface {
	Locations(text string) [][]int
}

// Find applies a scanning metric to the characters [i,j) of a text. The
// locations found are returned as spans of character positions within the
// tree.
func Find(text *edittree.Tree, i, j int, metric ScanningMetric) ([]Span, error) {
	content, err := textRange(text, i, j)
	if err != nil {
		return []Span{}, fmt.Errorf("metrics.Find could not be applied: %w", err)
	}
	return spansFromBytes(content, metric.Locations(content), i), nil
}

// ---------------------------------------------------------------------------

func textRange(text *edittree.Tree, i, j int) (string, error) {
	if text == nil {
		return "", edittree.ErrIllegalArguments
	}
	if i < 0 || j > text.Size() || j < i {
		return "", fmt.Errorf("%w: range [%d,%d) with size %d", edittree.ErrIndexOutOfBounds,
			i, j, text.Size())
	}
	return text.GetRange(i, j-i)
}

// spansFromBytes converts ascending, non-overlapping byte ranges of s into
// spans of character positions, offset by base.
func spansFromBytes(s string, locs [][]int, base int) []Span {
	spans := make([]Span, 0, len(locs))
	bytepos, runepos := 0, 0
	for _, loc := range locs {
		runepos += utf8.RuneCountInString(s[bytepos:loc[0]])
		length := utf8.RuneCountInString(s[loc[0]:loc[1]])
		spans = append(spans, Span{Pos: base + runepos, Len: length})
		runepos += length
		bytepos = loc[1]
	}
	return spans
}
