package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/iancoleman/strcase"

	"github.com/simplebuffers/simplebuffers-go/schema"
)

var ErrReserved = errors.New("reserved identifier")

type reservedTarget int

const (
	targetSequence reservedTarget = iota
	targetEnum
	targetEnumVar
	targetField
)

func (t reservedTarget) String() string {
	return map[reservedTarget]string{
		targetSequence: "Sequence",
		targetEnum:     "Enum",
		targetEnumVar:  "Enum variant",
		targetField:    "Field",
	}[t]
}

var (
	errColor     = color.New(color.FgRed, color.Bold)
	nameColor    = color.New(color.FgCyan)
	matchedColor = color.New(color.FgBlue, color.Italic)
)

// ReservedError reports a declared name colliding with a target-language
// reserved word. Path holds the enclosing names, outermost first.
type ReservedError struct {
	Target  reservedTarget
	Path    []string
	Name    string
	Matched string
}

func (e *ReservedError) Unwrap() error {
	return ErrReserved
}

func (e *ReservedError) Error() string {
	full := e.Name
	if len(e.Path) > 0 {
		full = strings.Join(e.Path, "::") + "::" + e.Name
	}
	return fmt.Sprintf("%s %s `%s` matches reserved keyword `%s`",
		errColor.Sprint("ERROR:"), e.Target,
		nameColor.Sprint(full), matchedColor.Sprint(e.Matched))
}

// bubble prepends an enclosing name while the error propagates outward.
func (e *ReservedError) bubble(name string) *ReservedError {
	e.Path = append([]string{name}, e.Path...)
	return e
}

// findMatch compares name against each reserved word case-insensitively
// after normalizing both to snake case, so `myField` collides with
// `my_field` and `MY_FIELD` alike.
func findMatch(name string, reserved []string) (string, bool) {
	norm := strcase.ToSnake(name)
	for _, r := range reserved {
		if norm == strcase.ToSnake(r) {
			return r, true
		}
	}
	return "", false
}

// CheckReserved verifies that no declared name in the schema coincides with
// a reserved word. It runs after resolution and before generation, once per
// generator. The first collision fails with the fully qualified path.
func CheckReserved(s *schema.Schema, reserved []string) error {
	for i := range s.Enums {
		enm := &s.Enums[i]
		if matched, ok := findMatch(enm.Name, reserved); ok {
			return &ReservedError{Target: targetEnum, Name: enm.Name, Matched: matched}
		}
		for _, v := range enm.Variants {
			if matched, ok := findMatch(v.Name, reserved); ok {
				err := &ReservedError{Target: targetEnumVar, Name: v.Name, Matched: matched}
				return err.bubble(enm.Name)
			}
		}
	}
	for i := range s.Sequences {
		seq := &s.Sequences[i]
		if matched, ok := findMatch(seq.Name, reserved); ok {
			return &ReservedError{Target: targetSequence, Name: seq.Name, Matched: matched}
		}
		for j := range seq.Fields {
			if err := checkField(&seq.Fields[j], reserved); err != nil {
				return err.bubble(seq.Name)
			}
		}
	}
	return nil
}

// checkField checks a field and, for oneofs, its subfields recursively.
func checkField(f *schema.Field, reserved []string) *ReservedError {
	if matched, ok := findMatch(f.Name, reserved); ok {
		return &ReservedError{Target: targetField, Name: f.Name, Matched: matched}
	}
	if f.Type.Kind == schema.OneOfType {
		for i := range f.Type.Fields {
			if err := checkField(&f.Type.Fields[i], reserved); err != nil {
				return err.bubble(f.Name)
			}
		}
	}
	return nil
}
