// Package gen defines the code generator contract and the built-in
// generators. A generator consumes the immutable resolved schema plus a
// parameter bundle and independently emits output for one target; the
// compiler asks it for reserved identifiers before generation.
package gen

import (
	"fmt"
	"sort"

	"github.com/simplebuffers/simplebuffers-go/schema"
)

// Params is the parameter bundle handed to a generator.
type Params struct {
	// FileStem is the desired name of generated files, without extension.
	FileStem string

	// DestDir is the directory to write generated files to.
	DestDir string

	// AdditionalArgs is the raw generator-specific argument string. It
	// begins with the name of the generator being invoked.
	AdditionalArgs string
}

// Generator emits code for one target language.
type Generator interface {
	// Reserved returns identifiers that must not appear anywhere in the
	// schema. The compiler checks them before calling Generate.
	Reserved(p *Params) []string

	// Generate writes output for the schema. Errors are human-readable
	// and reported to the user verbatim.
	Generate(s *schema.Schema, p *Params) error
}

var registry = map[string]func() Generator{}

// Register adds a built-in generator constructor under name. It panics on a
// duplicate name, as registrations happen at init time.
func Register(name string, fn func() Generator) {
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("gen: generator %q registered twice", name))
	}
	registry[name] = fn
}

// Lookup constructs the built-in generator with the given name.
func Lookup(name string) (Generator, bool) {
	fn, ok := registry[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Names lists registered generator names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
