package parser

import (
	"testing"

	"github.com/oxlang/oxc/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return prog
}

func TestParseFlatPrecedence(t *testing.T) {
	// With the flat-precedence rule, "1 + 2 * 3" is parsed strictly
	// left-to-right, i.e. as (1 + 2) * 3.
	prog := mustParse(t, "print(1 + 2 * 3);")
	stmt, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement type = %T, want *ast.ExpressionStatement", prog.Statements[0])
	}
	call, ok := stmt.Expr.(*ast.Call)
	if !ok {
		t.Fatalf("expr type = %T, want *ast.Call", stmt.Expr)
	}
	outer, ok := call.Args[0].(*ast.BinaryOp)
	if !ok {
		t.Fatalf("arg type = %T, want *ast.BinaryOp", call.Args[0])
	}
	if outer.Op != "*" {
		t.Fatalf("outer operator = %q, want %q", outer.Op, "*")
	}
	inner, ok := outer.Left.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("outer.Left type = %T, want *ast.BinaryOp", outer.Left)
	}
	if inner.Op != "+" {
		t.Fatalf("inner operator = %q, want %q", inner.Op, "+")
	}
}

func TestParseClassWithFieldsAndMethods(t *testing.T) {
	src := `
		class Animal {
			name: string;
			constructor(name: string) {
				this.name = name;
			}
			speak(): string {
				return this.name;
			}
		}
	`
	prog := mustParse(t, src)
	decl, ok := prog.Statements[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("statement type = %T, want *ast.ClassDeclaration", prog.Statements[0])
	}
	if decl.Name != "Animal" {
		t.Errorf("class name = %q, want %q", decl.Name, "Animal")
	}
	if len(decl.Members) != 3 {
		t.Fatalf("member count = %d, want 3", len(decl.Members))
	}
	if _, ok := decl.Members[0].(*ast.FieldDeclaration); !ok {
		t.Errorf("member[0] type = %T, want *ast.FieldDeclaration", decl.Members[0])
	}
	if _, ok := decl.Members[1].(*ast.ConstructorDeclaration); !ok {
		t.Errorf("member[1] type = %T, want *ast.ConstructorDeclaration", decl.Members[1])
	}
	if _, ok := decl.Members[2].(*ast.MethodDeclaration); !ok {
		t.Errorf("member[2] type = %T, want *ast.MethodDeclaration", decl.Members[2])
	}
}

func TestParseClassExtends(t *testing.T) {
	prog := mustParse(t, "class Dog extends Animal {}")
	decl := prog.Statements[0].(*ast.ClassDeclaration)
	if decl.SuperName != "Animal" {
		t.Errorf("super name = %q, want %q", decl.SuperName, "Animal")
	}
}

func TestParseSemicolonsOptional(t *testing.T) {
	// Trailing semicolons are accepted but never required.
	withSemis := mustParse(t, "let x: int = 1; let y: int = 2;")
	withoutSemis := mustParse(t, "let x: int = 1\nlet y: int = 2")
	if len(withSemis.Statements) != 2 || len(withoutSemis.Statements) != 2 {
		t.Fatalf("statement counts = %d/%d, want 2/2", len(withSemis.Statements), len(withoutSemis.Statements))
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := Parse("1 + 2 = 3;")
	if err == nil {
		t.Fatal("expected a syntax error for an invalid assignment target")
	}
}

func TestParseNewExpression(t *testing.T) {
	prog := mustParse(t, `let a: Animal = new Animal("Rex");`)
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	newExpr, ok := decl.Initializer.(*ast.New)
	if !ok {
		t.Fatalf("initializer type = %T, want *ast.New", decl.Initializer)
	}
	if newExpr.ClassName != "Animal" {
		t.Errorf("class name = %q, want %q", newExpr.ClassName, "Animal")
	}
	if len(newExpr.Args) != 1 {
		t.Fatalf("arg count = %d, want 1", len(newExpr.Args))
	}
}

func TestParseFieldAccessAndCallChain(t *testing.T) {
	prog := mustParse(t, "a.b.c(1, 2);")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expr.(*ast.Call)
	if !ok {
		t.Fatalf("expr type = %T, want *ast.Call", stmt.Expr)
	}
	fa, ok := call.Callee.(*ast.FieldAccess)
	if !ok {
		t.Fatalf("callee type = %T, want *ast.FieldAccess", call.Callee)
	}
	if fa.Field != "c" {
		t.Errorf("field = %q, want %q", fa.Field, "c")
	}
	if len(call.Args) != 2 {
		t.Errorf("arg count = %d, want 2", len(call.Args))
	}
}

func TestParseSuperCall(t *testing.T) {
	prog := mustParse(t, "super.speak();")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	call := stmt.Expr.(*ast.Call)
	fa, ok := call.Callee.(*ast.FieldAccess)
	if !ok {
		t.Fatalf("callee type = %T, want *ast.FieldAccess", call.Callee)
	}
	if _, ok := fa.Object.(*ast.Super); !ok {
		t.Errorf("receiver type = %T, want *ast.Super", fa.Object)
	}
}

func TestParseIfElse(t *testing.T) {
	// `if` is a block statement, not a top-level one, so it is parsed
	// inside a method body.
	prog := mustParse(t, `
		class C {
			m(x: int): void {
				if (x < 1) {
					print(1);
				} else {
					print(2);
				}
			}
		}
	`)
	method := prog.Statements[0].(*ast.ClassDeclaration).Members[0].(*ast.MethodDeclaration)
	stmt, ok := method.Body.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("statement type = %T, want *ast.IfStatement", method.Body.Statements[0])
	}
	if stmt.ElseBody == nil {
		t.Fatal("else body = nil, want non-nil")
	}
}

func TestParseUnexpectedTokenError(t *testing.T) {
	_, err := Parse("let x: int = ;")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestParseUnclosedBlockError(t *testing.T) {
	_, err := Parse("class A { ")
	if err == nil {
		t.Fatal("expected a syntax error for an unterminated class body")
	}
}
