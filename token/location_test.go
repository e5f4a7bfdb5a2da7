package token

import (
	"strings"
	"testing"
)

func TestLocationRender(t *testing.T) {
	prev := "sequence Point {"
	cur := "  coord: vec2;"
	next := "}"
	loc := &Location{
		File:     "point.sb",
		Line:     1,
		Col:      9,
		Width:    4,
		PrevLine: &prev,
		CurLine:  &cur,
		NextLine: &next,
	}

	got := loc.Render()
	want := strings.Join([]string{
		"  --> point.sb:2:10",
		"  |",
		"1 | sequence Point {",
		"2 |   coord: vec2;",
		"  |          ^^^^",
		"3 | }",
		"  |",
	}, "\n")
	if got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestLocationRenderNoContext(t *testing.T) {
	loc := &Location{File: "empty.sb", Line: 0, Col: 0, Width: 1}
	got := loc.Render()
	if !strings.Contains(got, "empty.sb:1:1") {
		t.Errorf("Render without context lines = %q, want file:line:col header", got)
	}
	if strings.Contains(got, "^") {
		t.Errorf("Render without a current line should not draw carets: %q", got)
	}
}

func TestTokenizeErrorMessage(t *testing.T) {
	tz := New("x: $;", "err.sb")
	tz.Next() // x
	tz.Next() // :
	_, err := tz.Next()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"Invalid character `$`", "err.sb:1:4", "^"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q:\n%s", want, msg)
		}
	}
}

func TestTokenizeErrorMessageMultibyte(t *testing.T) {
	// Col counts runes; a multibyte offender must render whole, not as a
	// partial byte.
	tz := New("id: λ;", "err.sb")
	tz.Next() // id
	tz.Next() // :
	_, err := tz.Next()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"Invalid character `λ`", "err.sb:1:5"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q:\n%s", want, msg)
		}
	}
}
