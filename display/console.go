package display

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/edittree"
	"golang.org/x/term"
)

// Console draws trees sideways, one node per line. A node's line reads
//
//	element rank balance
//
// e.g. "b 1=". Characters which are not printable are shown quoted.
type Console struct {
	// Palette maps balance tags ("/", "=", "\") to colors. Tags without an
	// entry are printed uncolored. A nil palette disables colors.
	Palette map[string]*color.Color
	// Width truncates lines to a maximum number of characters. 0 means no limit.
	Width int
}

// DefaultPalette returns the colors used by Print on terminals.
func DefaultPalette() map[string]*color.Color {
	return map[string]*color.Color{
		"/":  color.New(color.FgYellow),
		"=":  color.New(color.FgGreen),
		"\\": color.New(color.FgRed),
	}
}

// ConsoleFromTerminal is a simple helper for creating a console. It checks
// whether stdout is a terminal, and if so it enables colors and reads the
// terminal's width for truncating lines.
func ConsoleFromTerminal() *Console {
	c := &Console{}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return c
	}
	c.Palette = DefaultPalette()
	if w, _, err := term.GetSize(fd); err == nil && w > 10 {
		c.Width = w
	}
	tracer().Debugf("console: width %d", c.Width)
	return c
}

// Print outputs a tree to stdout, colored if stdout is a terminal.
func Print(tree edittree.DisplayableTree) error {
	c := ConsoleFromTerminal()
	if _, err := fmt.Fprintf(os.Stdout, "edit tree: %d characters, height %d\n",
		tree.Size(), tree.Height()); err != nil {
		return err
	}
	return c.Fprint(os.Stdout, tree)
}

// Fprint outputs a tree to w, without colors and without truncating lines.
//
// For a tree holding "abc", with 'b' at the root, Fprint writes
//
//	    ┌───┤ c 0=
//	────┤ b 1=
//	    └───┤ a 0=
func Fprint(w io.Writer, tree edittree.DisplayableTree) error {
	c := &Console{}
	return c.Fprint(w, tree)
}

// Fprint outputs a tree to w.
func (c *Console) Fprint(w io.Writer, tree edittree.DisplayableTree) error {
	if tree == nil || tree.RootNode() == nil {
		_, err := io.WriteString(w, "────┤ empty\n")
		return err
	}
	cp := &consolePrinter{c: c, w: w}
	cp.node(tree.RootNode(), "", false, true)
	return cp.err
}

type consolePrinter struct {
	c   *Console
	w   io.Writer
	err error // first write error
}

func (cp *consolePrinter) node(n edittree.Displayable, prefix string, tail bool, isRoot bool) {
	if n.HasRight() {
		cp.node(n.Right(), rightNodePrefix(prefix, tail), false, false)
	}
	cp.line(branch(prefix, isRoot, tail), n)
	if n.HasLeft() {
		cp.node(n.Left(), leftNodePrefix(prefix, tail, isRoot), true, false)
	}
}

func (cp *consolePrinter) line(branch string, n edittree.Displayable) {
	if cp.err != nil {
		return
	}
	plain := fmt.Sprintf("%s─┤ %s %s", branch, printable(n.ElementString()), n.RankString())
	bal := n.BalanceString()
	balwidth := utf8.RuneCountInString(bal)
	if width := cp.c.Width; width > 0 && utf8.RuneCountInString(plain)+balwidth > width {
		if width <= balwidth {
			_, cp.err = fmt.Fprintln(cp.w, truncate(plain+bal, width))
			return
		}
		plain = truncate(plain, width-balwidth)
	}
	out := plain + bal
	if col, ok := cp.c.Palette[bal]; ok {
		out = plain + col.Sprint(bal)
	}
	_, cp.err = fmt.Fprintln(cp.w, out)
}

func branch(prefix string, isRoot bool, tail bool) string {
	if isRoot {
		return prefix + "───"
	} else if tail {
		return prefix + "└──"
	}
	return prefix + "┌──"
}

func rightNodePrefix(prefix string, tail bool) string {
	if tail {
		return prefix + "│   "
	}
	return prefix + "    "
}

func leftNodePrefix(prefix string, tail bool, isRoot bool) string {
	if tail || isRoot {
		return prefix + "    "
	}
	return prefix + "│   "
}

// printable quotes an element if it contains anything but printable
// characters, e.g. a newline.
func printable(s string) string {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return strconv.Quote(s)
		}
	}
	return s
}

// truncate cuts s to width characters, the last one being an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	var sb strings.Builder
	sb.WriteString(string(runes[:width-1]))
	sb.WriteRune('…')
	return sb.String()
}
