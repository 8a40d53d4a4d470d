package ast_test

import (
	"strings"
	"testing"

	"github.com/oxlang/oxc/internal/parser"
)

func TestProgramStringRendersStatements(t *testing.T) {
	src := `let x: int = 1 + 2;`
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	got := prog.String()
	if !strings.Contains(got, "let x: int = (1 + 2);") {
		t.Errorf("Program.String() = %q, missing the rendered declaration", got)
	}
}

func TestClassDeclarationString(t *testing.T) {
	prog, err := parser.Parse(`class Dog extends Animal { name: string; }`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	got := prog.Statements[0].String()
	if !strings.HasPrefix(got, "class Dog extends Animal") {
		t.Errorf("ClassDeclaration.String() = %q, want it to start with %q", got, "class Dog extends Animal")
	}
	if !strings.Contains(got, "name: string;") {
		t.Errorf("ClassDeclaration.String() = %q, missing the field", got)
	}
}

func TestBinaryOpStringIsFullyParenthesized(t *testing.T) {
	prog, err := parser.Parse(`print(1 + 2 * 3);`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	got := prog.String()
	if !strings.Contains(got, "((1 + 2) * 3)") {
		t.Errorf("rendered expression = %q, want the flat left-to-right grouping to show", got)
	}
}

func TestPosReturnsLeadingTokenPosition(t *testing.T) {
	prog, err := parser.Parse("\n\nlet x: int = 1;")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	pos := prog.Statements[0].Pos()
	if pos.Line != 3 {
		t.Errorf("Pos().Line = %d, want 3", pos.Line)
	}
}

func TestEmptyProgramPosDefaultsToOneOne(t *testing.T) {
	prog, err := parser.Parse("")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	pos := prog.Pos()
	if pos.Line != 1 || pos.Column != 1 {
		t.Errorf("empty Program.Pos() = %v, want {1 1}", pos)
	}
}

func TestReturnStatementStringWithoutExpr(t *testing.T) {
	prog, err := parser.Parse(`
		class Foo {
			bar(): void {
				return;
			}
		}
	`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	got := prog.Statements[0].String()
	if !strings.Contains(got, "return;") {
		t.Errorf("rendered class = %q, missing bare %q", got, "return;")
	}
}
