package schema

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/simplebuffers/simplebuffers-go/token"
)

// errInternal marks "cannot happen" tree-shape faults: the builder only
// produces well-formed trees, so these are logic errors, not user errors.
var errInternal = errors.New("internal error")

var (
	errColor  = color.New(color.FgRed, color.Bold)
	nameColor = color.New(color.FgCyan, color.Bold)
)

// Error is a semantic compilation error. Tok, when present, locates the
// offending declaration for rendering; it is a snapshot and stays valid
// after the syntax tree is gone.
type Error struct {
	Msg string
	Tok *token.Token
}

func newError(tok *token.Token, msg string) *Error {
	return &Error{Msg: msg, Tok: tok}
}

func (e *Error) Error() string {
	head := fmt.Sprintf("%s %s", errColor.Sprint("ERROR:"), e.Msg)
	if e.Tok == nil {
		return head
	}
	return head + "\n" + e.Tok.Loc.Render()
}

// quote colorizes an identifier for use inside error messages.
func quote(name string) string {
	return "\"" + nameColor.Sprint(name) + "\""
}
