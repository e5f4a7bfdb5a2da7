package schema

import (
	"fmt"
	"math"
	"strconv"

	"github.com/simplebuffers/simplebuffers-go/ast"
)

type declKind int

const (
	declSequence declKind = iota
	declEnum
)

// symbols records every declared sequence and enum name with its kind. It is
// filled completely before any field resolution so that declarations may
// reference each other regardless of file order.
type symbols map[string]declKind

// Compile resolves a syntax tree into a schema in three phases: name
// collection, per-declaration resolution, and enum-size backfill.
func Compile(root *ast.Node) (*Schema, error) {
	if root.Kind != ast.FileNode {
		return nil, fmt.Errorf("%w: root node is not a file", errInternal)
	}

	// Phase 1: collect declaration names. Duplicates and reserved names are
	// reported at the point of duplication.
	syms := symbols{}
	for node := range root.DepthFirst() {
		if node.Kind != ast.SequenceNode && node.Kind != ast.EnumNode {
			continue
		}
		if err := verifyDeclName(node.Name, syms); err != nil {
			return nil, newError(node.Tok, err.Error())
		}
		if node.Kind == ast.SequenceNode {
			syms[node.Name] = declSequence
		} else {
			syms[node.Name] = declEnum
		}
	}

	// Phase 2: resolve declarations in file order. Enum references get a
	// placeholder size of 0 since the enum may not be resolved yet.
	res := &Schema{}
	for _, decl := range root.Children {
		switch decl.Kind {
		case ast.SequenceNode:
			seq, err := compileSequence(decl, syms)
			if err != nil {
				return nil, err
			}
			res.Sequences = append(res.Sequences, *seq)
		case ast.EnumNode:
			enm, err := compileEnum(decl)
			if err != nil {
				return nil, err
			}
			res.Enums = append(res.Enums, *enm)
		default:
			return nil, fmt.Errorf("%w: top level node is not a sequence or enum", errInternal)
		}
	}

	// Phase 3: backfill enum sizes and shift dependent offsets.
	for i := range res.Enums {
		enm := &res.Enums[i]
		for j := range res.Sequences {
			injectEnumSize(enm.Name, enm.Size, res.Sequences[j].Fields)
		}
	}
	return res, nil
}

// verifyDeclName checks a declaration name against the reserved primitive
// names and already-collected declarations.
func verifyDeclName(name string, syms symbols) error {
	if name == "string" {
		return fmt.Errorf("Name %s is reserved", quote(name))
	}
	for _, p := range primitives {
		if name == p.name {
			return fmt.Errorf("Name %s is reserved", quote(name))
		}
	}
	if _, ok := syms[name]; ok {
		return fmt.Errorf("A structure with the name %s already exists", quote(name))
	}
	return nil
}

// compileSequence resolves a sequence's fields, accumulating byte offsets in
// declaration order.
func compileSequence(node *ast.Node, syms symbols) (*Sequence, error) {
	fields := make([]Field, 0, len(node.Children))
	seen := make(map[string]bool, len(node.Children))

	offset := 0
	for _, fieldNode := range node.Children {
		if fieldNode.Kind != ast.FieldNode {
			return nil, fmt.Errorf("%w: sequence child is not a field", errInternal)
		}
		if seen[fieldNode.Name] {
			return nil, newError(fieldNode.Tok, fmt.Sprintf(
				"Field %s already exists in sequence %s",
				quote(fieldNode.Name), quote(node.Name)))
		}
		seen[fieldNode.Name] = true

		ty, err := compileType(fieldNode.Children[0], syms)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: fieldNode.Name, Type: *ty, Offset: offset})
		offset += ty.FixedSize()
	}
	return &Sequence{Name: node.Name, Fields: fields}, nil
}

// compileType resolves a type node. A bare identifier resolves, in order, as
// the string type, a declared sequence or enum, or a primitive.
func compileType(node *ast.Node, syms symbols) (*Type, error) {
	switch node.Kind {
	case ast.TypeNode:
		name := node.Name
		if name == "string" {
			return &Type{Kind: StringType}, nil
		}
		if kind, ok := syms[name]; ok {
			if kind == declSequence {
				return &Type{Kind: SequenceType, Name: name}, nil
			}
			// Placeholder size; the true width is injected once all
			// enums are resolved.
			return &Type{Kind: EnumType, Name: name, EnumSize: 0}, nil
		}
		for _, p := range primitives {
			if name == p.name {
				return &Type{Kind: PrimitiveType, Primitive: p.prim}, nil
			}
		}
		return nil, newError(node.Tok, fmt.Sprintf(
			"Type %s is not a valid type", quote(name)))

	case ast.ArrayNode:
		elem, err := compileType(node.Children[0], syms)
		if err != nil {
			return nil, err
		}
		return &Type{Kind: ArrayType, Elem: elem}, nil

	case ast.OneOfNode:
		fields := make([]Field, 0, len(node.Children))
		seen := make(map[string]bool, len(node.Children))
		for i, fieldNode := range node.Children {
			if fieldNode.Kind != ast.FieldNode {
				return nil, fmt.Errorf("%w: oneof child is not a field", errInternal)
			}
			if seen[fieldNode.Name] {
				return nil, newError(fieldNode.Tok, fmt.Sprintf(
					"Field %s already exists in oneof", quote(fieldNode.Name)))
			}
			seen[fieldNode.Name] = true

			ty, err := compileType(fieldNode.Children[0], syms)
			if err != nil {
				return nil, err
			}
			// A oneof field's offset is its ordinal index, used as the
			// wire discriminant, not a byte offset.
			fields = append(fields, Field{Name: fieldNode.Name, Type: *ty, Offset: i})
		}
		return &Type{Kind: OneOfType, Fields: fields}, nil
	}
	return nil, fmt.Errorf("%w: node %s is not a type", errInternal, node.Kind)
}

// widthCandidates pairs each legal enum storage width with the largest value
// it can hold. The resolved width is the smallest candidate accommodating
// every variant, and only ever grows as entries are scanned.
var widthCandidates = []struct {
	size int
	max  uint64
}{
	{1, math.MaxUint8},
	{2, math.MaxUint16},
	{4, math.MaxUint32},
	{8, math.MaxUint64},
}

// compileEnum validates an enum's entries and infers its storage width.
func compileEnum(node *ast.Node) (*Enum, error) {
	variants := make([]EnumVariant, 0, len(node.Children))

	size := 1
	for _, entry := range node.Children {
		if entry.Kind != ast.EnumEntryNode {
			return nil, fmt.Errorf("%w: enum child is not an entry", errInternal)
		}
		value, err := strconv.ParseUint(entry.Value, 10, 64)
		if err != nil {
			return nil, newError(entry.Tok, fmt.Sprintf(
				"Value %s for enum entry %s is not a valid integer",
				quote(entry.Value), quote(node.Name+":"+entry.Name)))
		}

		for _, v := range variants {
			if v.Name == entry.Name {
				return nil, newError(entry.Tok, fmt.Sprintf(
					"Enum entry %s already exists in enum %s",
					quote(entry.Name), quote(node.Name)))
			}
			if v.Value == value {
				return nil, newError(entry.Tok, fmt.Sprintf(
					"Enum entries %s and %s have the same value",
					quote(node.Name+":"+v.Name), quote(node.Name+":"+entry.Name)))
			}
		}

		for _, c := range widthCandidates {
			if size > c.size {
				continue
			}
			if value <= c.max {
				size = c.size
				break
			}
		}

		variants = append(variants, EnumVariant{Name: entry.Name, Value: value})
	}
	return &Enum{Name: node.Name, Size: size, Variants: variants}, nil
}

// injectEnumSize replaces the placeholder size of every reference to the
// named enum within fields, descending into arrays and oneofs. Offsets were
// computed with placeholder width 0, so every field after an updated one is
// shifted by a running accumulator.
func injectEnumSize(enumName string, enumSize int, fields []Field) {
	adjust := 0
	for i := range fields {
		fields[i].Offset += adjust
		adjust += injectIntoType(enumName, enumSize, &fields[i].Type)
	}
}

// injectIntoType updates a single type in place and returns how many bytes
// the field grew by, to be folded into the caller's accumulator. Growth
// inside arrays and oneofs does not change the enclosing field's fixed size.
func injectIntoType(enumName string, enumSize int, ty *Type) int {
	switch ty.Kind {
	case EnumType:
		if ty.Name == enumName {
			ty.EnumSize = enumSize
			return enumSize
		}
	case ArrayType:
		injectIntoType(enumName, enumSize, ty.Elem)
	case OneOfType:
		// Oneof subfield offsets are ordinal discriminants, never byte
		// offsets, so they are left untouched.
		for i := range ty.Fields {
			injectIntoType(enumName, enumSize, &ty.Fields[i].Type)
		}
	}
	return 0
}
