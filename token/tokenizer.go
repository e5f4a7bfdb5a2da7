package token

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// rule is one entry of the lexical spec. Rules are tried in order against the
// unconsumed input and the first match wins; ordering encodes precedence, so
// keyword rules sit ahead of the identifier rule. Rules with skip set consume
// input without producing a token.
type rule struct {
	re   *regexp.Regexp
	kind Kind
	skip bool
}

var spec = []rule{
	{re: regexp.MustCompile(`^\s+`), skip: true},
	{re: regexp.MustCompile(`^//[^\n]*`), skip: true},
	{re: regexp.MustCompile(`^sequence\b`), kind: KwSequence},
	{re: regexp.MustCompile(`^oneof\b`), kind: KwOneOf},
	{re: regexp.MustCompile(`^enum\b`), kind: KwEnum},
	{re: regexp.MustCompile(`^\{`), kind: LBrace},
	{re: regexp.MustCompile(`^\}`), kind: RBrace},
	{re: regexp.MustCompile(`^\[`), kind: LBracket},
	{re: regexp.MustCompile(`^\]`), kind: RBracket},
	{re: regexp.MustCompile(`^:`), kind: Colon},
	{re: regexp.MustCompile(`^;`), kind: Semicolon},
	{re: regexp.MustCompile(`^=`), kind: Equals},
	{re: regexp.MustCompile(`^[0-9_]+(?:\.[0-9_]+)?`), kind: Number},
	{re: regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`), kind: Ident},
}

// Tokenizer lazily classifies schema source into tokens. It is single-use:
// once input is exhausted or a span fails to match, it cannot be rewound; a
// fresh Tokenizer must be constructed to re-scan.
type Tokenizer struct {
	source string
	file   string

	cursor int
	line   int
	col    int

	lines []string

	err error
}

func New(source, file string) *Tokenizer {
	return &Tokenizer{
		source: source,
		file:   file,
		lines:  strings.Split(source, "\n"),
	}
}

// Next returns the next token, or (nil, nil) once input is exhausted. After a
// tokenization error every subsequent call returns that same error.
func (t *Tokenizer) Next() (*Token, error) {
	if t.err != nil {
		return nil, t.err
	}
	for t.cursor < len(t.source) {
		rest := t.source[t.cursor:]
		matched := false
		for i := range spec {
			r := &spec[i]
			m := r.re.FindString(rest)
			if m == "" {
				continue
			}
			matched = true
			loc := t.location(utf8.RuneCountInString(m))
			t.consume(m)
			if r.skip {
				break
			}
			return &Token{Kind: r.kind, Text: m, Loc: *loc}, nil
		}
		if !matched {
			t.err = NewTokenizeError(t.location(1))
			t.cursor = len(t.source)
			return nil, t.err
		}
	}
	return nil, nil
}

// location snapshots the current position together with its 3-line context
// window.
func (t *Tokenizer) location(width int) *Location {
	loc := &Location{
		File:  t.file,
		Line:  t.line,
		Col:   t.col,
		Width: width,
	}
	if t.line > 0 {
		loc.PrevLine = &t.lines[t.line-1]
	}
	if t.line < len(t.lines) {
		loc.CurLine = &t.lines[t.line]
	}
	if t.line+1 < len(t.lines) {
		loc.NextLine = &t.lines[t.line+1]
	}
	return loc
}

func (t *Tokenizer) consume(text string) {
	t.cursor += len(text)
	for _, c := range text {
		if c == '\n' {
			t.line++
			t.col = 0
		} else {
			t.col++
		}
	}
}
