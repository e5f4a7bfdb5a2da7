// Package schema compiles syntax trees into resolved SimpleBuffers schemas:
// every field type checked, byte offsets computed, and enum storage widths
// inferred and backfilled.
package schema

import (
	"fmt"
	"strings"
)

type Primitive int

const (
	Bool Primitive = iota
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
)

// Size returns the primitive's width in bytes.
func (p Primitive) Size() int {
	return map[Primitive]int{
		Bool: 1,
		I8:   1, I16: 2, I32: 4, I64: 8,
		U8: 1, U16: 2, U32: 4, U64: 8,
		F32: 4, F64: 8,
	}[p]
}

func (p Primitive) String() string {
	return map[Primitive]string{
		Bool: "bool",
		I8:   "i8", I16: "i16", I32: "i32", I64: "i64",
		U8: "u8", U16: "u16", U32: "u32", U64: "u64",
		F32: "f32", F64: "f64",
	}[p]
}

// primitives maps reserved type names to their internal representation. The
// table also serves as the reserved-name list for declarations.
var primitives = []struct {
	name string
	prim Primitive
}{
	{"bool", Bool},
	{"i8", I8},
	{"i16", I16},
	{"i32", I32},
	{"i64", I64},
	{"u8", U8},
	{"u16", U16},
	{"u32", U32},
	{"u64", U64},
	{"f32", F32},
	{"f64", F64},
}

type TypeKind int

const (
	PrimitiveType TypeKind = iota
	StringType
	SequenceType
	EnumType
	ArrayType
	OneOfType
)

// Type is a resolved field type. Kind selects which of the remaining fields
// are meaningful: Primitive for PrimitiveType, Name for SequenceType and
// EnumType, EnumSize for EnumType, Elem for ArrayType, Fields for OneOfType.
type Type struct {
	Kind      TypeKind  `yaml:"kind"`
	Primitive Primitive `yaml:"primitive,omitempty"`
	Name      string    `yaml:"name,omitempty"`
	EnumSize  int       `yaml:"enum_size,omitempty"`
	Elem      *Type     `yaml:"elem,omitempty"`
	Fields    []Field   `yaml:"fields,omitempty"`
}

// FixedSize returns the number of bytes the type occupies inline in a
// sequence. Dynamic payloads (strings, arrays, referenced sequences, oneof
// bodies) live behind offsets appended after the static region and do not
// count here. An unresolved enum reference reports its placeholder size 0
// until backfilled.
func (t *Type) FixedSize() int {
	switch t.Kind {
	case PrimitiveType:
		return t.Primitive.Size()
	case StringType:
		return 2 // 16-bit offset
	case SequenceType:
		return 2 // 16-bit offset to the referenced sequence
	case EnumType:
		return t.EnumSize
	case ArrayType:
		return 4 // 16-bit count + 16-bit offset
	case OneOfType:
		return 3 // 8-bit discriminant + 16-bit offset
	}
	return 0
}

func (t *Type) String() string {
	switch t.Kind {
	case PrimitiveType:
		return t.Primitive.String()
	case StringType:
		return "string"
	case SequenceType, EnumType:
		return t.Name
	case ArrayType:
		return "[" + t.Elem.String() + "]"
	case OneOfType:
		names := make([]string, len(t.Fields))
		for i := range t.Fields {
			names[i] = t.Fields[i].Name
		}
		return "oneof { " + strings.Join(names, ", ") + " }"
	}
	return fmt.Sprintf("Type(%d)", t.Kind)
}

// Field is a named, typed slot. Offset is the byte offset from the start of
// the enclosing sequence; for oneof subfields it is the ordinal index within
// the oneof, used as the wire discriminant.
type Field struct {
	Name   string `yaml:"name"`
	Type   Type   `yaml:"type"`
	Offset int    `yaml:"offset"`
}

type Sequence struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// StaticSize is the total fixed-layout size of the sequence in bytes: the sum
// of all field fixed sizes. Write cursors compare against this value
// exclusively (a cursor equal to StaticSize is one past the last static
// byte).
func (s *Sequence) StaticSize() int {
	size := 0
	for i := range s.Fields {
		size += s.Fields[i].Type.FixedSize()
	}
	return size
}

type EnumVariant struct {
	Name  string `yaml:"name"`
	Value uint64 `yaml:"value"`
}

// Enum is a named set of integer variants. Size is the storage width in
// bytes, the smallest of 1, 2, 4 or 8 that holds every variant value.
type Enum struct {
	Name     string        `yaml:"name"`
	Size     int           `yaml:"size"`
	Variants []EnumVariant `yaml:"variants"`
}

// Schema is the fully resolved output of compilation, a flat self-contained
// value with no references back into the syntax tree.
type Schema struct {
	Sequences []Sequence `yaml:"sequences"`
	Enums     []Enum     `yaml:"enums"`
}
