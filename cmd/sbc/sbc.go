package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/simplebuffers/simplebuffers-go/ast"
	"github.com/simplebuffers/simplebuffers-go/gen"
	"github.com/simplebuffers/simplebuffers-go/schema"
)

const usageText = `sbc - compile a SimpleBuffers schema into your chosen language

Usage:
  sbc [--lib <plugin.so>] [--dstdir <dir>] <generator> <file> [generator args...]

The schema file is compiled to a fully resolved description, checked against
the generator's reserved identifiers, and handed to the generator. Trailing
arguments are passed through to the generator unchanged.

Examples:
  sbc sanitycheck robot.sb
  sbc --dstdir out yaml robot.sb
  sbc --lib ./sbgen_rust.so rust robot.sb --edition=2021`

type sbcConfig struct {
	*cli.Command
	Lib    string `cli:"name=lib aliases=l desc='load a generator from a Go plugin (.so)'"`
	DstDir string `cli:"name=dstdir aliases=d desc='directory to write generated files to'"`
	Color  bool   `cli:"name=color desc='force colorized diagnostics'"`
}

func MainCommand() *cli.Command {
	cfg := &sbcConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "sbc").
		WithSynopsis("sbc [opts] <generator> <file> [generator args...]").
		WithDescription(usageText + "\n\nBuilt-in generators: " +
			strings.Join(gen.Names(), ", ")).
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *sbcConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if !cfg.Color && !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
	return cfg.execute(args)
}

// execute runs the compile pipeline over the positional arguments left after
// option parsing: <generator> <file> [generator args...].
func (cfg *sbcConfig) execute(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: expected <generator> <file>", cli.ErrUsage)
	}
	genName, file := args[0], args[1]

	// The generator's argument string starts with its own name, followed
	// by everything after the schema file.
	additional := strings.Join(append([]string{genName}, args[2:]...), " ")

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", file, err)
	}
	resolved, err := compileSchema(string(data), file)
	if err != nil {
		return err
	}

	dstDir := cfg.DstDir
	if dstDir == "" {
		dstDir = "."
	}
	params := &gen.Params{
		FileStem:       strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
		DestDir:        dstDir,
		AdditionalArgs: additional,
	}

	var g gen.Generator
	if cfg.Lib != "" {
		g, err = loadPluginGenerator(cfg.Lib, genName)
		if err != nil {
			return err
		}
	} else {
		var ok bool
		g, ok = gen.Lookup(genName)
		if !ok {
			return fmt.Errorf("no generators found for target %q (built-in: %s)",
				genName, strings.Join(gen.Names(), ", "))
		}
	}

	if err := gen.CheckReserved(resolved, g.Reserved(params)); err != nil {
		return err
	}
	if err := g.Generate(resolved, params); err != nil {
		return fmt.Errorf("GENERATOR ERROR: %w", err)
	}
	return nil
}

func compileSchema(source, file string) (*schema.Schema, error) {
	b, err := ast.NewBuilder(source, file)
	if err != nil {
		return nil, err
	}
	root, err := b.Parse()
	if err != nil {
		return nil, err
	}
	return schema.Compile(root)
}
