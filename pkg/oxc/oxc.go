// Package oxc is the public, stable entry point for embedding the
// toolchain in another Go program: parse-and-check a program, run it,
// or lower it to C, without reaching into internal/.
package oxc

import (
	"bytes"
	"io"

	"github.com/oxlang/oxc/internal/driver"
)

// Program is a parsed and type-checked source program, ready to be
// interpreted or lowered to C.
type Program struct {
	result *driver.ParseResult
}

// Load reads, parses, resolves imports for, and type-checks source.
// Type errors are reported via Program.TypeErrors rather than as a
// returned error; a non-nil error here means a lex/parse/import
// failure.
func Load(source string) (*Program, error) {
	result, err := driver.Load(source)
	if err != nil {
		return nil, err
	}
	return &Program{result: result}, nil
}

// TypeErrors returns every diagnostic the type checker collected. An
// empty slice means the program is well-typed.
func (p *Program) TypeErrors() []error {
	errs := p.result.Checked.Errors.Errors()
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// String renders the type-checked Program's AST.
func (p *Program) String() string {
	return p.result.Program.String()
}

// Run interprets p, writing `print` output to stdout.
func (p *Program) Run(stdout io.Writer) error {
	return driver.Interpret(p.result, stdout)
}

// RunCapturingOutput interprets p and returns everything it printed.
func (p *Program) RunCapturingOutput() (string, error) {
	var buf bytes.Buffer
	err := p.Run(&buf)
	return buf.String(), err
}

// CompileToC lowers p to a single self-contained C translation unit.
func (p *Program) CompileToC() (string, error) {
	return driver.CompileToC(p.result)
}
