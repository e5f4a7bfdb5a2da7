// Package ast builds syntax trees from SimpleBuffers schema text using
// recursive descent, one function per grammar production:
//
//	file       := (sequence | enum)* EOF
//	sequence   := "sequence" IDENT "{" (field ";")* "}"
//	field      := IDENT ":" type
//	enum       := "enum" IDENT "{" (enum_entry ";")* "}"
//	enum_entry := IDENT "=" NUMBER
//	type       := IDENT | array | oneof
//	array      := "[" type "]"
//	oneof      := "oneof" "{" (field ";")* "}"
package ast

import "github.com/simplebuffers/simplebuffers-go/token"

type Kind int

const (
	FileNode Kind = iota
	SequenceNode
	FieldNode
	EnumNode
	EnumEntryNode
	TypeNode
	ArrayNode
	OneOfNode
)

func (k Kind) String() string {
	return map[Kind]string{
		FileNode:      "File",
		SequenceNode:  "Sequence",
		FieldNode:     "Field",
		EnumNode:      "Enum",
		EnumEntryNode: "EnumEntry",
		TypeNode:      "Type",
		ArrayNode:     "Array",
		OneOfNode:     "OneOf",
	}[k]
}

// Node is a syntax tree node. The kind fixes which fields are meaningful and
// the child arity: File, Sequence, Enum and OneOf carry ordered Children;
// Field and Array carry exactly one child; EnumEntry and Type are leaves.
// Name is set for Sequence, Field, Enum, EnumEntry and Type nodes. Value
// holds an EnumEntry's raw literal text; numeric interpretation is deferred
// to the semantic phase.
//
// Tok is the token that best represents the node's origin, kept for
// diagnostics only. It may be nil for synthesized nodes such as the root.
type Node struct {
	Kind     Kind
	Name     string
	Value    string
	Children []*Node

	Tok *token.Token
}
