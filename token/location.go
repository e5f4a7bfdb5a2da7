package token

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Location is a snapshot of where a token sits in its source file. Line and
// Col are 0-indexed. PrevLine, CurLine and NextLine hold surrounding source
// text and exist only for error rendering; nil means the line does not exist.
type Location struct {
	File  string
	Line  int
	Col   int
	Width int

	PrevLine *string
	CurLine  *string
	NextLine *string
}

var (
	arrowColor  = color.New(color.FgCyan, color.Bold)
	pathColor   = color.New(color.FgGreen, color.Underline)
	gutterColor = color.New(color.FgCyan, color.Bold)
	caretColor  = color.New(color.FgYellow)
)

// Render formats the location as a rustc-style source excerpt: a
// file:line:col header, the offending line with one line of context above and
// below when available, and a caret run under the token's span.
func (l *Location) Render() string {
	var b strings.Builder

	path := fmt.Sprintf("%s:%d:%d", l.File, l.Line+1, l.Col+1)
	fmt.Fprintf(&b, "  %s %s\n", arrowColor.Sprint("-->"), pathColor.Sprint(path))

	// The gutter must fit the largest displayed line number.
	gutterWidth := len(fmt.Sprint(l.Line + 1))
	if l.NextLine != nil {
		gutterWidth = len(fmt.Sprint(l.Line + 2))
	}
	pad := strings.Repeat(" ", gutterWidth)
	bar := gutterColor.Sprint("|")

	caret := strings.Repeat(" ", l.Col) + strings.Repeat("^", max(l.Width, 1))

	for i, line := range []*string{l.PrevLine, l.CurLine, l.NextLine} {
		if line == nil {
			continue
		}
		if i == 0 {
			fmt.Fprintf(&b, "%s %s\n", pad, bar)
		}
		num := gutterColor.Sprintf("%*d", gutterWidth, l.Line+i)
		fmt.Fprintf(&b, "%s %s %s\n", num, bar, *line)
		if i == 1 {
			fmt.Fprintf(&b, "%s %s %s\n", pad, bar, caretColor.Sprint(caret))
		}
		if i == 2 {
			fmt.Fprintf(&b, "%s %s\n", pad, bar)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
