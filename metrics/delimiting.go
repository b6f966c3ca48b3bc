package metrics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/edittree"
)

// --- Line count metric -----------------------------------------------------

// lineCount is a CountingMetric that counts the lines of a text, delimited by
// newline characters.
type lineCount struct {
	delimiterMetric
}

// LineCount is a metric that counts the lines of a text, delimited by newline
// characters. Multiple consecutive newlines will be counted as multiple empty
// lines. A newline at the very end of a text does not start another line.
// The empty text has no lines.
func LineCount() CountingMetric {
	m, _ := makeDelimiterMetric("\n")
	return &lineCount{*m}
}

// Count is part of interface CountingMetric.
func (cnt *lineCount) Count(text string) int {
	if text == "" {
		return 0
	}
	n := len(cnt.Locations(text)) + 1
	if strings.HasSuffix(text, "\n") {
		n--
	}
	return n
}

// --- Delimiter Metric ------------------------------------------------------

type delimiterMetric struct {
	pattern *regexp.Regexp
}

// Delimiter creates a scanning metric which finds all (non-overlapping)
// matches of a regular expression. The pattern must not match the empty string.
func Delimiter(pattern string) (ScanningMetric, error) {
	return makeDelimiterMetric(pattern)
}

func makeDelimiterMetric(pattern string) (*delimiterMetric, error) {
	r, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("delimiter metric: cannot compile regular expression input")
		return nil, fmt.Errorf("%w: illegal delimiter: %v", edittree.ErrIllegalArguments, err)
	}
	if r.MatchString("") {
		tracer().Errorf("delimiter metric: regular expression matches empty string")
		return nil, fmt.Errorf("%w: delimiter pattern matches empty string", edittree.ErrIllegalArguments)
	}
	return &delimiterMetric{pattern: r}, nil
}

// Locations is part of interface ScanningMetric.
func (dm *delimiterMetric) Locations(text string) [][]int {
	return delimit(text, dm.pattern)
}

func delimit(frag string, pattern *regexp.Regexp) (parts [][]int) {
	parts = pattern.FindAllStringIndex(frag, -1)
	if len(parts) == 0 {
		parts = [][]int{} // no boundary in fragment
	}
	return
}
