// Package driver wires the pipeline end to end: reading source files,
// resolving standard-library imports against the filesystem, running
// the lexer/parser/checker/interpreter pipeline, and invoking an
// external C toolchain for compile mode.
package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oxlang/oxc/internal/ast"
	"github.com/oxlang/oxc/internal/ccodegen"
	"github.com/oxlang/oxc/internal/errors"
	"github.com/oxlang/oxc/internal/interp"
	"github.com/oxlang/oxc/internal/parser"
	"github.com/oxlang/oxc/internal/semantic"
)

// stdPathEnv overrides the standard-library search root.
const stdPathEnv = "OXC_STD_PATH"

// ParseResult bundles the type-checked program with its checker
// results, shared by the Interpret and CompileToC entry points so
// callers can dump the AST or report type errors before execution.
type ParseResult struct {
	Program *ast.Program
	Checked *semantic.Result
	Source  string
}

// Load reads source, parses it, resolves its imports (prepending
// <module>.0x for every imported module and unconditionally for
// "math"), and type-checks the combined program.
func Load(source string) (*ParseResult, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	if err := resolveImports(program); err != nil {
		return nil, err
	}

	checked := semantic.Check(program, source)
	return &ParseResult{Program: program, Checked: checked, Source: source}, nil
}

// resolveImports prepends the top-level statements of every imported
// module's source file to program "math" is always
// resolved, whether or not the program imports it explicitly.
func resolveImports(program *ast.Program) error {
	seen := map[string]bool{"math": true}
	order := []string{"math"}
	for _, stmt := range program.Statements {
		imp, ok := stmt.(*ast.ImportStatement)
		if !ok {
			continue
		}
		if !seen[imp.Module] {
			seen[imp.Module] = true
			order = append(order, imp.Module)
		}
	}

	root, err := stdRoot()
	if err != nil {
		return err
	}

	var prelude []ast.Statement
	for _, module := range order {
		path := filepath.Join(root, module+".0x")
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("resolving import %q: %w", module, err)
		}
		modProgram, err := parser.Parse(string(data))
		if err != nil {
			return err
		}
		prelude = append(prelude, modProgram.Statements...)
	}

	program.Statements = append(prelude, program.Statements...)
	return nil
}

func stdRoot() (string, error) {
	if root := os.Getenv(stdPathEnv); root != "" {
		return root, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving standard library path: %w", err)
	}
	return filepath.Join(cwd, "src", "std"), nil
}

// Interpret runs a loaded program to completion, writing `print`
// output to stdout.
func Interpret(result *ParseResult, stdout io.Writer) error {
	if result.Checked.Errors.HasErrors() {
		return fmt.Errorf("%s", result.Checked.Errors.Format(true))
	}
	ev := interp.New(stdout)
	if err := ev.Run(result.Program); err != nil {
		return err
	}
	return nil
}

// CompileToC lowers a loaded program to a C translation unit. It
// returns a type error if the program failed checking.
func CompileToC(result *ParseResult) (string, error) {
	if result.Checked.Errors.HasErrors() {
		return "", fmt.Errorf("%s", result.Checked.Errors.Format(true))
	}
	return ccodegen.Emit(result.Program), nil
}

// DefaultCOutputPath implements the compile-mode default:
// the source path's basename with its extension replaced by .c.
func DefaultCOutputPath(sourcePath string) string {
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)] + ".c"
}

// DefaultExePath returns the executable name derived from a C file
// path: its basename without extension.
func DefaultExePath(cPath string) string {
	base := filepath.Base(cPath)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}

// FormatError renders err for stderr: a *errors.CompileError uses its
// located template, anything else (a driver I/O error) is printed
// plainly
func FormatError(err error) string {
	if ce, ok := err.(*errors.CompileError); ok {
		return ce.Format(true)
	}
	return "error: " + err.Error()
}
