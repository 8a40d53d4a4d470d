// Package ast defines the Abstract Syntax Tree produced by the parser
// and consumed by the type checker, interpreter, and C emitter.
//
// Nodes are created once by the parser and never mutated afterward;
// they are shared read-only by every later pass
package ast

import (
	"strings"

	"github.com/oxlang/oxc/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// Pos returns the source location of the node's leading token.
	Pos() token.Position
	// String renders the node for debugging and golden-file tests.
	String() string
}

// Statement is a node that performs an action but does not itself
// produce a value.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that evaluates to a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root AST node: an ordered sequence of top-level
// statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Parameter is a single {name, typeName} entry in a parameter list.
type Parameter struct {
	Name     string
	TypeName string
}

func (p Parameter) String() string { return p.Name + ": " + p.TypeName }
