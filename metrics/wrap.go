package metrics

import (
	"bufio"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/edittree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

/*
WrapFirstFit breaks a text into lines of at most linewidth ‘en’s, using a
first-fit strategy. Line break opportunities are determined by the Unicode
line breaking algorithm (UAX #14), widths of text by UAX #11 within the given
context. A nil context selects uax11.LatinContext.

Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)

Trailing white space of a segment does not count against the line width.
Newline characters force a line break. WrapFirstFit returns the end
positions of all lines; the last one is the size of the text. A segment wider
than linewidth will get a line of its own, overflowing it.
*/
func WrapFirstFit(text *edittree.Tree, linewidth int, context *uax11.Context) ([]int, error) {
	if text == nil || linewidth <= 0 {
		return nil, edittree.ErrIllegalArguments
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(func() {
		grapheme.SetupGraphemeClasses()
	})
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(text.Reader()))
	breaks := make([]int, 0, 20)
	spaceleft := linewidth
	pos, linestart := 0, 0
	for segmenter.Next() {
		p1, _ := segmenter.Penalties()
		frag := string(segmenter.Bytes())
		fraglen := stringWidth(frag, context)
		visible := stringWidth(strings.TrimRightFunc(frag, unicode.IsSpace), context)
		tracer().Debugf("next segment (p=%d): %q (len=%d|%d)", p1, frag, fraglen, spaceleft)
		if visible > spaceleft && pos > linestart {
			breaks = append(breaks, pos)
			tracer().Debugf("break @ %d", pos)
			linestart, spaceleft = pos, linewidth
		}
		spaceleft -= fraglen
		pos += utf8.RuneCountInString(frag)
		if strings.HasSuffix(frag, "\n") {
			breaks = append(breaks, pos)
			linestart, spaceleft = pos, linewidth
		}
	}
	if pos > linestart {
		breaks = append(breaks, pos)
	}
	return breaks, nil
}

// Lines returns the lines of a text, given the end positions of lines as
// returned by WrapFirstFit.
func Lines(text *edittree.Tree, breaks []int) ([]string, error) {
	lines := make([]string, 0, len(breaks))
	start := 0
	for _, end := range breaks {
		line, err := textRange(text, start, end)
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
		start = end
	}
	return lines, nil
}

func stringWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}
