package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func init() {
	color.NoColor = true
}

func writeSchema(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "robot.sb")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("writing schema: %v", err)
	}
	return path
}

// Every option must be registered on the command so Parse consumes it before
// the positional <generator> <file> arguments.
func TestMainCommandOpts(t *testing.T) {
	cmd := MainCommand()
	want := map[string]bool{"lib": false, "dstdir": false, "color": false}
	for _, opt := range cmd.Opts {
		if _, ok := want[opt.Name]; ok {
			want[opt.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("option --%s is not registered on the command", name)
		}
	}
}

func TestExecuteWritesToDestDir(t *testing.T) {
	schemaPath := writeSchema(t, "sequence Robot { id: u32; name: string; }")
	out := t.TempDir()

	cfg := &sbcConfig{DstDir: out}
	if err := cfg.execute([]string{"sanitycheck", schemaPath}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "robot.txt"))
	if err != nil {
		t.Fatalf("output not written to --dstdir: %v", err)
	}
	if !strings.Contains(string(data), "sequence Robot") {
		t.Errorf("output does not describe the schema:\n%s", data)
	}
}

func TestExecuteTooFewArgs(t *testing.T) {
	cfg := &sbcConfig{}
	err := cfg.execute([]string{"sanitycheck"})
	if err == nil {
		t.Fatal("expected a usage error without a schema file")
	}
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("error = %v, want to wrap cli.ErrUsage", err)
	}
}

func TestExecuteUnknownGenerator(t *testing.T) {
	schemaPath := writeSchema(t, "sequence Robot { id: u32; }")
	cfg := &sbcConfig{DstDir: t.TempDir()}
	err := cfg.execute([]string{"cobol", schemaPath})
	if err == nil || !strings.Contains(err.Error(), "no generators found") {
		t.Errorf("error = %v, want unknown-generator error", err)
	}
}

func TestExecuteCompileErrorSurfaces(t *testing.T) {
	schemaPath := writeSchema(t, "sequence Robot { id: Missing; }")
	cfg := &sbcConfig{DstDir: t.TempDir()}
	err := cfg.execute([]string{"sanitycheck", schemaPath})
	if err == nil || !strings.Contains(err.Error(), "is not a valid type") {
		t.Errorf("error = %v, want compile error", err)
	}
}
