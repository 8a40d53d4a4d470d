// Package errors implements the shared diagnostic type used by the
// lexer, parser, and type checker: a CompileError with a
// source location, the full original source text, and an optional
// hint, plus a pretty formatter and a multi-error Collector.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/oxlang/oxc/internal/token"
)

// CompileError carries a diagnostic message with enough context to
// render a full report: an optional location, the full source text it
// was found in, and an optional hint.
type CompileError struct {
	Message string
	Source  string // full original source text; "" when unavailable
	HasPos  bool
	Pos     token.Position
	HasEnd  bool
	End     token.Position
	Hint    string // "" when there is no hint
}

func (e *CompileError) Error() string { return e.Format(false) }

// New creates a located CompileError.
func New(pos token.Position, source, message string) *CompileError {
	return &CompileError{Message: message, Source: source, HasPos: true, Pos: pos}
}

// NewUnlocated creates a CompileError with no source location, used
// for driver-level failures (I/O, missing C compiler) that have no
// single offending token.
func NewUnlocated(message string) *CompileError {
	return &CompileError{Message: message}
}

// WithHint returns a copy of e carrying the given hint text.
func (e *CompileError) WithHint(hint string) *CompileError {
	cp := *e
	cp.Hint = hint
	return &cp
}

// WithEnd returns a copy of e with an end position recorded.
func (e *CompileError) WithEnd(end token.Position) *CompileError {
	cp := *e
	cp.HasEnd = true
	cp.End = end
	return &cp
}

// Format renders the error using the template:
//
//	error at line L, column C:
//	  L | <that source line>
//	    |     ^
//	  <message>
//	  hint: <hint>        (omitted when absent)
//
// When no location is present, the first line is just "error:". When
// color is true, the header and caret are highlighted using
// github.com/fatih/color instead of hand-rolled ANSI escapes.
func (e *CompileError) Format(useColor bool) string {
	var b strings.Builder

	headerColor := color.New(color.FgRed, color.Bold)
	caretColor := color.New(color.FgRed, color.Bold)
	plain := func(c *color.Color, s string) string {
		if !useColor {
			return s
		}
		return c.Sprint(s)
	}

	if !e.HasPos {
		b.WriteString(plain(headerColor, "error:"))
		b.WriteString("\n  ")
		b.WriteString(e.Message)
		e.writeHint(&b, plain, headerColor)
		return b.String()
	}

	b.WriteString(plain(headerColor, fmt.Sprintf("error at line %d, column %d:", e.Pos.Line, e.Pos.Column)))
	b.WriteString("\n")

	if line := e.sourceLine(e.Pos.Line); line != "" {
		b.WriteString(fmt.Sprintf("  %d | %s\n", e.Pos.Line, line))
		gutter := fmt.Sprintf("  %d | ", e.Pos.Line)
		b.WriteString(strings.Repeat(" ", len(gutter)+max(e.Pos.Column-1, 0)))
		b.WriteString(plain(caretColor, "^"))
		b.WriteString("\n")
	}

	b.WriteString("  ")
	b.WriteString(e.Message)
	e.writeHint(&b, plain, headerColor)

	return b.String()
}

func (e *CompileError) writeHint(b *strings.Builder, plain func(*color.Color, string) string, c *color.Color) {
	if e.Hint == "" {
		return
	}
	b.WriteString("\n  ")
	b.WriteString(plain(c, "hint: "+e.Hint))
}

func (e *CompileError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Collector aggregates diagnostics produced across a single pass (the
// type checker reports all of its errors together).
type Collector struct {
	errors []*CompileError
}

// Add appends an error to the collector.
func (c *Collector) Add(err *CompileError) {
	c.errors = append(c.errors, err)
}

// Errors returns the accumulated errors in the order they were added.
func (c *Collector) Errors() []*CompileError { return c.errors }

// HasErrors reports whether any error has been collected.
func (c *Collector) HasErrors() bool { return len(c.errors) > 0 }

// Format renders every collected error, each per Format, separated by
// blank lines
func (c *Collector) Format(useColor bool) string {
	parts := make([]string, len(c.errors))
	for i, e := range c.errors {
		parts[i] = e.Format(useColor)
	}
	return strings.Join(parts, "\n\n")
}
