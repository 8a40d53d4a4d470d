package semantic

import (
	"fmt"

	"github.com/oxlang/oxc/internal/ast"
	"github.com/oxlang/oxc/internal/errors"
	"github.com/oxlang/oxc/internal/token"
)

// Result is the output of Check: the populated class table plus every
// error found. Zero errors means the Program is well-typed for the
// purposes of later passes
type Result struct {
	Classes *ClassTable
	Errors  *errors.Collector
}

// Check runs the three-pass type checker described in  over
// program. Unlike the lexer and parser, the checker never stops at
// the first error: it accumulates every error it finds into a single
// Collector and reports them together
func Check(program *ast.Program, source string) *Result {
	res := &Result{Classes: newClassTable(), Errors: &errors.Collector{}}

	headerCollection(program, res)
	memberPopulation(program, res)
	validation(program, res, source)

	return res
}

// headerCollection is Pass 1: register a ClassInfo entry for every
// ClassDeclaration. A repeated class name is a "Duplicate class <name>"
// error.
func headerCollection(program *ast.Program, res *Result) {
	for _, stmt := range program.Statements {
		decl, ok := stmt.(*ast.ClassDeclaration)
		if !ok {
			continue
		}
		if res.Classes.Lookup(decl.Name) != nil {
			res.Errors.Add(errors.New(decl.Pos(), "", fmt.Sprintf("Duplicate class %s", decl.Name)))
			continue
		}
		res.Classes.add(&ClassInfo{
			Name:       decl.Name,
			SuperName:  decl.SuperName,
			FieldTypes: make(map[string]string),
			Methods:    make(map[string]MethodInfo),
		})
	}
}

// memberPopulation is Pass 2: record each class's fields, methods
// (parameter types and return type), and constructor signature. This
// never recurses into method or constructor bodies
func memberPopulation(program *ast.Program, res *Result) {
	populated := map[string]bool{}
	for _, stmt := range program.Statements {
		decl, ok := stmt.(*ast.ClassDeclaration)
		if !ok {
			continue
		}
		info := res.Classes.Lookup(decl.Name)
		if info == nil || populated[decl.Name] {
			// Pass 1 rejected this as a duplicate; skip it here too.
			continue
		}
		populated[decl.Name] = true
		for _, member := range decl.Members {
			switch m := member.(type) {
			case *ast.FieldDeclaration:
				if _, exists := info.FieldTypes[m.Name]; !exists {
					info.FieldNames = append(info.FieldNames, m.Name)
				}
				info.FieldTypes[m.Name] = m.TypeName
			case *ast.MethodDeclaration:
				info.Methods[m.Name] = MethodInfo{
					ParamTypes: paramTypes(m.Params),
					ReturnType: m.ReturnType,
				}
			case *ast.ConstructorDeclaration:
				ctor := MethodInfo{ParamTypes: paramTypes(m.Params)}
				info.Constructor = &ctor
			}
		}
	}
}

func paramTypes(params []ast.Parameter) []string {
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = p.TypeName
	}
	return types
}

// validation is Pass 3: verify every SuperName resolves to a known
// class, verify the inheritance graph has no cycles, and verify every
// top-level VariableDeclaration's type name resolves
func validation(program *ast.Program, res *Result, source string) {
	for _, info := range res.Classes.Classes() {
		if info.SuperName == "" {
			continue
		}
		if res.Classes.Lookup(info.SuperName) == nil {
			res.Errors.Add(errors.New(
				classPos(program, info.Name), source,
				fmt.Sprintf("Class %s extends unknown %s", info.Name, info.SuperName),
			))
		}
	}

	for _, info := range res.Classes.Classes() {
		if cyclic(res.Classes, info.Name) {
			res.Errors.Add(errors.New(
				classPos(program, info.Name), source,
				fmt.Sprintf("Cyclic inheritance involving class %s", info.Name),
			))
		}
	}

	for _, stmt := range program.Statements {
		varDecl, ok := stmt.(*ast.VariableDeclaration)
		if !ok {
			continue
		}
		if !res.Classes.TypeExists(varDecl.TypeName) {
			res.Errors.Add(errors.New(
				varDecl.Pos(), source,
				fmt.Sprintf("Unknown type %s in var %s", varDecl.TypeName, varDecl.Name),
			))
		}
	}
}

// cyclic reports whether walking SuperName links from className ever
// revisits a class already seen, i.e. the inheritance graph is not a
// tree rooted away from className. Unresolvable SuperNames (already
// reported above) end the walk rather than looping.
func cyclic(classes *ClassTable, className string) bool {
	seen := map[string]bool{}
	cur := className
	for {
		if seen[cur] {
			return true
		}
		seen[cur] = true
		info := classes.Lookup(cur)
		if info == nil || info.SuperName == "" {
			return false
		}
		cur = info.SuperName
	}
}

// classPos finds the declaration position of the class named
// className, for attaching a location to a validation error.
func classPos(program *ast.Program, className string) token.Position {
	for _, stmt := range program.Statements {
		if decl, ok := stmt.(*ast.ClassDeclaration); ok && decl.Name == className {
			return decl.Pos()
		}
	}
	return token.Position{}
}
