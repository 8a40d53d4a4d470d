// Package ccodegen lowers a type-checked Program to a single
// self-contained C translation unit Translation is
// purely structural: it does not implement virtual dispatch, so the
// emitted code is only guaranteed to agree with the interpreter on
// programs whose only observable effect is printing integer
// expressions, string literals, or boolean literals. String values
// held in identifiers or built with `+` are not printed the same way:
// print formats identifiers and binary operations with %d.
package ccodegen

import (
	"fmt"
	"strings"

	"github.com/oxlang/oxc/internal/ast"
)

const preamble = `#include <stdio.h>
#include <stdlib.h>
#include <string.h>

static int ox_abs(int x) { return x < 0 ? -x : x; }
static int ox_max(int a, int b) { return a > b ? a : b; }
static int ox_min(int a, int b) { return a < b ? a : b; }

static char* ox_strcat(const char* a, const char* b) {
  char* result = malloc(strlen(a) + strlen(b) + 1);
  strcpy(result, a);
  strcat(result, b);
  return result;
}

static char* ox_strlen_str(const char* s) {
  char buf[32];
  sprintf(buf, "%zu", strlen(s));
  char* result = malloc(strlen(buf) + 1);
  strcpy(result, buf);
  return result;
}

static int ox_array_sum(int* arr, int n) {
  int total = 0;
  for (int i = 0; i < n; i++) total += arr[i];
  return total;
}

static int ox_array_max(int* arr, int n) {
  int best = arr[0];
  for (int i = 1; i < n; i++) if (arr[i] > best) best = arr[i];
  return best;
}

static int ox_array_min(int* arr, int n) {
  int best = arr[0];
  for (int i = 1; i < n; i++) if (arr[i] < best) best = arr[i];
  return best;
}
`

// emitter accumulates the translation unit in a single strings.Builder
// and tracks nesting depth for two-space indentation, mirroring the
// section-accumulator code generators elsewhere in the example pack.
type emitter struct {
	out     strings.Builder
	depth   int
	classes []*ast.ClassDeclaration
}

// Emit translates program into a complete C source file.
func Emit(program *ast.Program) string {
	e := &emitter{}
	for _, stmt := range program.Statements {
		if c, ok := stmt.(*ast.ClassDeclaration); ok {
			e.classes = append(e.classes, c)
		}
	}

	e.out.WriteString(preamble)
	e.out.WriteString("\n")

	for _, c := range e.classes {
		e.writeLine("struct %s;", c.Name)
	}
	e.out.WriteString("\n")

	for _, c := range e.classes {
		e.writeStructDef(c)
	}

	for _, c := range e.classes {
		e.writeMethodForwardDecls(c)
	}
	e.out.WriteString("\n")

	for _, c := range e.classes {
		e.writeMethodDefs(c)
		e.writeConstructor(c)
	}

	e.writeMain(program)

	return e.out.String()
}

func (e *emitter) indent() string { return strings.Repeat("  ", e.depth) }

func (e *emitter) writeLine(format string, args ...any) {
	e.out.WriteString(e.indent())
	e.out.WriteString(fmt.Sprintf(format, args...))
	e.out.WriteString("\n")
}

// cType implements the case-insensitive type mapping
func cType(typeName string) string {
	switch strings.ToLower(typeName) {
	case "int":
		return "int"
	case "bool":
		return "int"
	case "void":
		return "void"
	case "string":
		return "char*"
	default:
		return "struct " + typeName + "*"
	}
}

func (e *emitter) writeStructDef(c *ast.ClassDeclaration) {
	e.writeLine("struct %s {", c.Name)
	e.depth++
	for _, m := range c.Members {
		if f, ok := m.(*ast.FieldDeclaration); ok {
			e.writeLine("%s %s;", cType(f.TypeName), f.Name)
		}
	}
	e.depth--
	e.writeLine("};")
	e.out.WriteString("\n")
}

func methodSignature(className string, m *ast.MethodDeclaration) string {
	params := []string{"struct " + className + "* this"}
	for _, p := range m.Params {
		params = append(params, cType(p.TypeName)+" "+p.Name)
	}
	return fmt.Sprintf("%s %s_%s(%s)", cType(m.ReturnType), className, m.Name, strings.Join(params, ", "))
}

func (e *emitter) writeMethodForwardDecls(c *ast.ClassDeclaration) {
	for _, m := range c.Members {
		if md, ok := m.(*ast.MethodDeclaration); ok {
			e.writeLine("%s;", methodSignature(c.Name, md))
		}
	}
}

func (e *emitter) writeMethodDefs(c *ast.ClassDeclaration) {
	for _, m := range c.Members {
		md, ok := m.(*ast.MethodDeclaration)
		if !ok {
			continue
		}
		e.writeLine("%s {", methodSignature(c.Name, md))
		e.depth++
		e.writeBlockStatements(md.Body)
		e.depth--
		e.writeLine("}")
		e.out.WriteString("\n")
	}
}

func (e *emitter) writeConstructor(c *ast.ClassDeclaration) {
	var ctor *ast.ConstructorDeclaration
	for _, m := range c.Members {
		if cd, ok := m.(*ast.ConstructorDeclaration); ok {
			ctor = cd
			break
		}
	}
	params := []string{}
	if ctor != nil {
		for _, p := range ctor.Params {
			params = append(params, cType(p.TypeName)+" "+p.Name)
		}
	}
	e.writeLine("struct %s* %s_new(%s) {", c.Name, c.Name, strings.Join(params, ", "))
	e.depth++
	e.writeLine("struct %s* obj = malloc(sizeof(struct %s));", c.Name, c.Name)
	if ctor != nil {
		e.writeBlockStatements(ctor.Body)
	}
	e.writeLine("return obj;")
	e.depth--
	e.writeLine("}")
	e.out.WriteString("\n")
}

func (e *emitter) writeMain(program *ast.Program) {
	e.writeLine("int main() {")
	e.depth++
	for _, stmt := range program.Statements {
		switch stmt.(type) {
		case *ast.VariableDeclaration, *ast.ExpressionStatement:
			e.writeStatement(stmt)
		}
	}
	e.writeLine("return 0;")
	e.depth--
	e.writeLine("}")
}

func (e *emitter) writeBlockStatements(block *ast.Block) {
	for _, stmt := range block.Statements {
		e.writeStatement(stmt)
	}
}

func (e *emitter) writeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ImportStatement:
		// no output

	case *ast.VariableDeclaration:
		if s.Initializer != nil {
			e.writeLine("%s %s = %s;", cType(s.TypeName), s.Name, exprText(s.Initializer))
		} else {
			e.writeLine("%s %s;", cType(s.TypeName), s.Name)
		}

	case *ast.ExpressionStatement:
		e.writeLine("%s;", exprText(s.Expr))

	case *ast.ReturnStatement:
		if s.Expr != nil {
			e.writeLine("return %s;", exprText(s.Expr))
		} else {
			e.writeLine("return;")
		}

	case *ast.IfStatement:
		e.writeLine("if (%s) {", exprText(s.Condition))
		e.depth++
		e.writeBlockStatements(s.ThenBody)
		e.depth--
		if s.ElseBody != nil {
			e.writeLine("} else {")
			e.depth++
			e.writeBlockStatements(s.ElseBody)
			e.depth--
		}
		e.writeLine("}")

	default:
		e.writeLine("/* unsupported statement */")
	}
}

// exprText translates expr to its C source text.
func exprText(expr ast.Expression) string {
	switch ex := expr.(type) {
	case *ast.IntegerLiteral:
		return fmt.Sprintf("%d", ex.Value)

	case *ast.StringLiteral:
		return "\"" + strings.ReplaceAll(ex.Value, "\"", "\\\"") + "\""

	case *ast.BooleanLiteral:
		if ex.Value {
			return "1"
		}
		return "0"

	case *ast.Identifier:
		return ex.Name

	case *ast.BinaryOp:
		return "(" + exprText(ex.Left) + " " + ex.Op + " " + exprText(ex.Right) + ")"

	case *ast.UnaryOp:
		return "(" + ex.Op + exprText(ex.Expr) + ")"

	case *ast.FieldAccess:
		return exprText(ex.Object) + "." + ex.Field

	case *ast.New:
		args := make([]string, len(ex.Args))
		for i, a := range ex.Args {
			args[i] = exprText(a)
		}
		return ex.ClassName + "_new(" + strings.Join(args, ", ") + ")"

	case *ast.This:
		return "this"

	case *ast.Super:
		return "super"

	case *ast.Assignment:
		return "(" + exprText(ex.Target) + " = " + exprText(ex.Value) + ")"

	case *ast.Call:
		return callText(ex)

	default:
		return "/* unsupported expression */"
	}
}

func callText(call *ast.Call) string {
	if id, ok := call.Callee.(*ast.Identifier); ok && id.Name == "print" {
		return printText(call)
	}

	if fa, ok := call.Callee.(*ast.FieldAccess); ok {
		obj := "obj"
		if id, ok := fa.Object.(*ast.Identifier); ok {
			obj = id.Name
		}
		args := make([]string, len(call.Args))
		for i, a := range call.Args {
			args[i] = exprText(a)
		}
		return fmt.Sprintf("%s_%s(%s)", obj, fa.Field, strings.Join(args, ", "))
	}

	args := make([]string, len(call.Args))
	for i, a := range call.Args {
		args[i] = exprText(a)
	}
	return exprText(call.Callee) + "(" + strings.Join(args, ", ") + ")"
}

// printText implements the best-effort format-string inference from
// : identifiers are assumed to format as %d. Boolean literals are
// passed as the strings "true"/"false", matching the interpreter.
func printText(call *ast.Call) string {
	if len(call.Args) == 0 {
		return `printf("\n")`
	}
	specs := make([]string, len(call.Args))
	args := make([]string, len(call.Args))
	for i, a := range call.Args {
		specs[i] = formatSpec(a)
		args[i] = exprText(a)
		if bl, ok := a.(*ast.BooleanLiteral); ok {
			args[i] = fmt.Sprintf("\"%t\"", bl.Value)
		}
	}
	format := strings.Join(specs, " ") + "\\n"
	return fmt.Sprintf(`printf("%s", %s)`, format, strings.Join(args, ", "))
}

func formatSpec(expr ast.Expression) string {
	switch expr.(type) {
	case *ast.StringLiteral:
		return "%s"
	case *ast.IntegerLiteral, *ast.BinaryOp, *ast.UnaryOp, *ast.Call, *ast.Identifier:
		return "%d"
	default:
		return "%s"
	}
}
