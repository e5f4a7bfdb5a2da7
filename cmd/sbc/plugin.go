package main

import (
	"fmt"
	"plugin"

	"github.com/simplebuffers/simplebuffers-go/gen"
)

// loadPluginGenerator opens a Go plugin and looks up a generator
// constructor exported under the generator's name:
//
//	func Rust() gen.Generator { return &rustGenerator{} }
//
// built with `go build -buildmode=plugin`. The symbol name is matched
// case-insensitively on its first letter since exported Go symbols must be
// capitalized.
func loadPluginGenerator(path, name string) (gen.Generator, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load library at %q: %w", path, err)
	}
	sym, err := p.Lookup(exportedName(name))
	if err != nil {
		return nil, fmt.Errorf("failed to load generator %q from %q: %w", name, path, err)
	}
	ctor, ok := sym.(func() gen.Generator)
	if !ok {
		return nil, fmt.Errorf("symbol %q in %q is not a func() gen.Generator", name, path)
	}
	return ctor(), nil
}

func exportedName(name string) string {
	if name == "" {
		return name
	}
	c := name[0]
	if c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + name[1:]
	}
	return name
}
