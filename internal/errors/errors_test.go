package errors

import (
	"strings"
	"testing"

	"github.com/oxlang/oxc/internal/token"
)

func TestFormatUnlocated(t *testing.T) {
	err := NewUnlocated("no C compiler found")
	got := err.Format(false)
	if !strings.HasPrefix(got, "error:") {
		t.Errorf("Format() = %q, want it to start with %q", got, "error:")
	}
	if !strings.Contains(got, "no C compiler found") {
		t.Errorf("Format() = %q, want it to contain the message", got)
	}
}

func TestFormatLocatedWithSourceLine(t *testing.T) {
	src := "let x: int = ;\n"
	err := New(token.Position{Line: 1, Column: 14}, src, "unexpected token")
	got := err.Format(false)
	if !strings.Contains(got, "error at line 1, column 14:") {
		t.Errorf("Format() header missing, got %q", got)
	}
	if !strings.Contains(got, "1 | let x: int = ;") {
		t.Errorf("Format() source line missing, got %q", got)
	}
	if !strings.Contains(got, "^") {
		t.Errorf("Format() caret missing, got %q", got)
	}
	if !strings.Contains(got, "unexpected token") {
		t.Errorf("Format() message missing, got %q", got)
	}
}

func TestFormatWithHint(t *testing.T) {
	err := NewUnlocated("boom").WithHint("try again")
	got := err.Format(false)
	if !strings.Contains(got, "hint: try again") {
		t.Errorf("Format() = %q, want it to contain the hint", got)
	}
}

func TestFormatMissingSourceLineOmitsGutter(t *testing.T) {
	err := New(token.Position{Line: 99, Column: 1}, "only one line\n", "oops")
	got := err.Format(false)
	if strings.Contains(got, "99 |") {
		t.Errorf("Format() = %q, should not render a gutter for an out-of-range line", got)
	}
}

func TestErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = NewUnlocated("boom")
	if err.Error() != "error:\n  boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "error:\n  boom")
	}
}

func TestCollectorAccumulatesInOrder(t *testing.T) {
	var c Collector
	if c.HasErrors() {
		t.Fatal("new Collector should report no errors")
	}
	c.Add(NewUnlocated("first"))
	c.Add(NewUnlocated("second"))
	if !c.HasErrors() {
		t.Fatal("Collector should report errors after Add")
	}
	errs := c.Errors()
	if len(errs) != 2 || errs[0].Message != "first" || errs[1].Message != "second" {
		t.Fatalf("Errors() = %+v, want [first, second] in order", errs)
	}
}

func TestCollectorFormatJoinsWithBlankLine(t *testing.T) {
	var c Collector
	c.Add(NewUnlocated("first"))
	c.Add(NewUnlocated("second"))
	got := c.Format(false)
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Fatalf("Format() = %q, want both messages present", got)
	}
	if !strings.Contains(got, "\n\n") {
		t.Errorf("Format() = %q, want a blank line between entries", got)
	}
}
