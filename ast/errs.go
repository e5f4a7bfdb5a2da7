package ast

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/simplebuffers/simplebuffers-go/token"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEOF   = errors.New("unexpected end of file")
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	tokColor  = color.New(color.FgBlue, color.Bold)
	fileColor = color.New(color.FgGreen, color.Underline)
)

// UnexpectedTokenError reports a concrete token where a different kind was
// required. Hint, when non-empty, names what would have been accepted.
type UnexpectedTokenError struct {
	Tok  token.Token
	Hint string
}

func (e *UnexpectedTokenError) Unwrap() error {
	return ErrUnexpectedToken
}

func (e *UnexpectedTokenError) Error() string {
	head := fmt.Sprintf("%s Unexpected token `%s`",
		errColor.Sprint("ERROR:"), tokColor.Sprint(e.Tok.Text))
	if e.Hint != "" {
		head += fmt.Sprintf(" (%s)", e.Hint)
	}
	return head + "\n" + e.Tok.Loc.Render()
}

// EOFError reports input exhausted mid-production. There is no token to
// attach a location to, only the file.
type EOFError struct {
	File string
}

func (e *EOFError) Unwrap() error {
	return ErrUnexpectedEOF
}

func (e *EOFError) Error() string {
	return fmt.Sprintf("%s Unexpected end of file in %s",
		errColor.Sprint("ERROR:"), fileColor.Sprint(e.File))
}
