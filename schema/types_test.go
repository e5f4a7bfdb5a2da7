package schema

import "testing"

func TestPrimitiveSizes(t *testing.T) {
	tests := []struct {
		prim Primitive
		want int
	}{
		{Bool, 1},
		{I8, 1}, {I16, 2}, {I32, 4}, {I64, 8},
		{U8, 1}, {U16, 2}, {U32, 4}, {U64, 8},
		{F32, 4}, {F64, 8},
	}
	for _, test := range tests {
		if got := test.prim.Size(); got != test.want {
			t.Errorf("%s size = %d, want %d", test.prim, got, test.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		ty   Type
		want string
	}{
		{Type{Kind: PrimitiveType, Primitive: U16}, "u16"},
		{Type{Kind: StringType}, "string"},
		{Type{Kind: SequenceType, Name: "Point"}, "Point"},
		{Type{Kind: EnumType, Name: "Color", EnumSize: 1}, "Color"},
		{
			Type{Kind: ArrayType, Elem: &Type{Kind: PrimitiveType, Primitive: F64}},
			"[f64]",
		},
		{
			Type{Kind: OneOfType, Fields: []Field{
				{Name: "a"}, {Name: "b"},
			}},
			"oneof { a, b }",
		},
	}
	for _, test := range tests {
		if got := test.ty.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestPlaceholderFixedSize(t *testing.T) {
	unresolved := Type{Kind: EnumType, Name: "E"}
	if got := unresolved.FixedSize(); got != 0 {
		t.Errorf("unresolved enum fixed size = %d, want placeholder 0", got)
	}
}
