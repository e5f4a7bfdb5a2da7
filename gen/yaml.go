package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/simplebuffers/simplebuffers-go/schema"
)

func init() {
	Register("yaml", func() Generator { return &yamlDump{} })
}

// yamlDump writes the resolved schema as YAML to <DestDir>/<FileStem>.yaml,
// for consumption by external tooling that wants the computed layout without
// linking against the compiler.
type yamlDump struct{}

func (g *yamlDump) Reserved(p *Params) []string {
	return nil
}

func (g *yamlDump) Generate(s *schema.Schema, p *Params) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	path := filepath.Join(p.DestDir, p.FileStem+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
