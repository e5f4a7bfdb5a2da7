// Package token tokenizes SimpleBuffers schema text.
package token

import "fmt"

type Kind int

const (
	KwSequence Kind = iota
	KwEnum
	KwOneOf
	LBrace
	RBrace
	LBracket
	RBracket
	Colon
	Semicolon
	Equals
	Number
	Ident
)

func (k Kind) String() string {
	return map[Kind]string{
		KwSequence: "sequence",
		KwEnum:     "enum",
		KwOneOf:    "oneof",
		LBrace:     "{",
		RBrace:     "}",
		LBracket:   "[",
		RBracket:   "]",
		Colon:      ":",
		Semicolon:  ";",
		Equals:     "=",
		Number:     "Number",
		Ident:      "Identifier",
	}[k]
}

// Token is a classified span of schema text. Text is the raw lexeme; for
// Number tokens it is kept unparsed so the semantic phase can validate it
// against the width required by context.
type Token struct {
	Kind Kind
	Text string
	Loc  Location
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s:%d:%d", t.Kind, t.Loc.File, t.Loc.Line+1, t.Loc.Col+1)
}

func (t *Token) String() string {
	return t.Text
}
