package token

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
)

var ErrInvalidToken = errors.New("invalid token")

var (
	errColor  = color.New(color.FgRed, color.Bold)
	nameColor = color.New(color.FgBlue, color.Bold)
)

// TokenizeError reports a span of input that matches no token rule. It owns a
// Location snapshot, so it stays valid after the source buffer is gone.
type TokenizeError struct {
	Loc Location
}

func NewTokenizeError(loc *Location) *TokenizeError {
	return &TokenizeError{Loc: *loc}
}

func (e *TokenizeError) Unwrap() error {
	return ErrInvalidToken
}

func (e *TokenizeError) Error() string {
	if e.Loc.CurLine != nil {
		// Col and Width count runes, so the line must be sliced by rune
		// index, not bytes.
		line := []rune(*e.Loc.CurLine)
		start := min(e.Loc.Col, len(line))
		bad := string(line[start:min(e.Loc.Col+e.Loc.Width, len(line))])
		return fmt.Sprintf("%s Invalid character `%s`\n%s",
			errColor.Sprint("ERROR:"), nameColor.Sprint(bad), e.Loc.Render())
	}
	return fmt.Sprintf("%s Invalid character\n%s",
		errColor.Sprint("ERROR:"), e.Loc.Render())
}
