package metrics

import (
	"bufio"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/edittree"
)

// ScanWords returns a scanner over the text of a tree. The scanner yields
// words and runs of white space, alternately. The text is streamed from the
// tree, which must not be modified while scanning.
func ScanWords(text *edittree.Tree) *bufio.Scanner {
	scnr := bufio.NewScanner(text.Reader())
	scnr.Split(splitWords)
	return scnr
}

// CountWords counts the words of a text in a single pass.
func CountWords(text *edittree.Tree) (int, error) {
	if text == nil {
		return 0, edittree.ErrIllegalArguments
	}
	s := ScanWords(text)
	cnt := 0
	for s.Scan() {
		r, _ := utf8.DecodeRune(s.Bytes())
		if !unicode.IsSpace(r) {
			cnt++
		}
	}
	if err := s.Err(); err != nil {
		tracer().Errorf("word count: scanner returned error: %s", err)
		return cnt, err
	}
	return cnt, nil
}

// splitWords is a bufio.SplitFunc which splits a text into words and runs of
// white space.
func splitWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if !atEOF && !utf8.FullRune(data) {
		return 0, nil, nil // incomplete; get more bytes
	}
	r, pos := utf8.DecodeRune(data)
	if r == utf8.RuneError && pos <= 1 {
		return 1, errorRune, nil
	}
	spaces := unicode.IsSpace(r)
	for {
		if pos == len(data) {
			if !atEOF {
				return 0, nil, nil // token may continue; get more bytes
			}
			return pos, data[0:pos], nil
		}
		r, width := utf8.DecodeRune(data[pos:])
		if r == utf8.RuneError && width <= 1 {
			// Is the error because there wasn't a full rune to be decoded?
			// FullRune distinguishes correctly between erroneous and incomplete encodings.
			if !atEOF && !utf8.FullRune(data[pos:]) {
				return 0, nil, nil
			}
			// We have a real UTF-8 encoding error, which ends the current token.
			return pos, data[0:pos], nil
		}
		if unicode.IsSpace(r) != spaces {
			return pos, data[0:pos], nil
		}
		pos += width
	}
}

var errorRune = []byte(string(utf8.RuneError))
