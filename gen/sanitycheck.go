package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/simplebuffers/simplebuffers-go/schema"
)

func init() {
	Register("sanitycheck", func() Generator { return &sanityCheck{} })
}

// sanityCheck is a debugging generator: it writes a plain-text description
// of the resolved schema, with every computed offset and size, to
// <DestDir>/<FileStem>.txt.
type sanityCheck struct{}

func (g *sanityCheck) Reserved(p *Params) []string {
	return nil
}

func (g *sanityCheck) Generate(s *schema.Schema, p *Params) error {
	out := Describe(s)
	path := filepath.Join(p.DestDir, p.FileStem+".txt")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Describe renders a schema as human-readable text.
func Describe(s *schema.Schema) string {
	var b strings.Builder
	for i := range s.Enums {
		enm := &s.Enums[i]
		fmt.Fprintf(&b, "enum %s (%d byte", enm.Name, enm.Size)
		if enm.Size != 1 {
			b.WriteString("s")
		}
		b.WriteString(") {\n")
		for _, v := range enm.Variants {
			fmt.Fprintf(&b, "  %s = %d;\n", v.Name, v.Value)
		}
		b.WriteString("}\n\n")
	}
	for i := range s.Sequences {
		seq := &s.Sequences[i]
		fmt.Fprintf(&b, "sequence %s (static size %d) {\n", seq.Name, seq.StaticSize())
		for _, f := range seq.Fields {
			writeField(&b, &f, 1, "offset")
		}
		b.WriteString("}\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeField(b *strings.Builder, f *schema.Field, depth int, offsetLabel string) {
	indent := strings.Repeat("  ", depth)
	if f.Type.Kind == schema.OneOfType {
		fmt.Fprintf(b, "%s%s: oneof (%s %d, size %d) {\n",
			indent, f.Name, offsetLabel, f.Offset, f.Type.FixedSize())
		for i := range f.Type.Fields {
			writeField(b, &f.Type.Fields[i], depth+1, "index")
		}
		fmt.Fprintf(b, "%s}\n", indent)
		return
	}
	fmt.Fprintf(b, "%s%s: %s (%s %d, size %d);\n",
		indent, f.Name, f.Type.String(), offsetLabel, f.Offset, f.Type.FixedSize())
}
