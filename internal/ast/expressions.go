package ast

import (
	"strings"

	"github.com/oxlang/oxc/internal/token"
)

// IntegerLiteral is a decimal integer literal, e.g. 42.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()        {}
func (il *IntegerLiteral) Pos() token.Position     { return il.Token.Pos() }
func (il *IntegerLiteral) String() string          { return il.Token.Lexeme }

// StringLiteral is a decoded string literal (escapes already processed
// by the lexer).
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()    {}
func (sl *StringLiteral) Pos() token.Position { return sl.Token.Pos() }
func (sl *StringLiteral) String() string      { return "\"" + sl.Value + "\"" }

// BooleanLiteral is the `true` or `false` keyword used as a value.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()    {}
func (bl *BooleanLiteral) Pos() token.Position { return bl.Token.Pos() }
func (bl *BooleanLiteral) String() string      { return bl.Token.Lexeme }

// Identifier is a bare name reference: a variable, parameter, class,
// or the special free function "print".
type Identifier struct {
	Token token.Token
	Name  string
}

func (id *Identifier) expressionNode()    {}
func (id *Identifier) Pos() token.Position { return id.Token.Pos() }
func (id *Identifier) String() string      { return id.Name }

// This is the `this` keyword used as an expression.
type This struct {
	Token token.Token
}

func (t *This) expressionNode()    {}
func (t *This) Pos() token.Position { return t.Token.Pos() }
func (t *This) String() string      { return "this" }

// Super is the `super` keyword used as a primary expression. Method
// dispatch against it (`super.greet()`) is expressed the same way as
// any other receiver: the parser's suffix chain wraps a bare Super in
// a FieldAccess and then a Call, so Method is always empty here; the
// field exists to match the Super(method?) variant in the data model
// for callers that prefer a single node over unwinding the chain.
type Super struct {
	Token  token.Token
	Method string
}

func (s *Super) expressionNode()    {}
func (s *Super) Pos() token.Position { return s.Token.Pos() }
func (s *Super) String() string {
	if s.Method == "" {
		return "super"
	}
	return "super." + s.Method
}

// BinaryOp is a binary operator application. All operators share a
// single precedence tier and associate left-to-right.
type BinaryOp struct {
	Token token.Token
	Op    string
	Left  Expression
	Right Expression
}

func (b *BinaryOp) expressionNode()    {}
func (b *BinaryOp) Pos() token.Position { return b.Token.Pos() }
func (b *BinaryOp) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}

// UnaryOp is a prefix `+` or `-` applied to an expression.
type UnaryOp struct {
	Token token.Token
	Op    string
	Expr  Expression
}

func (u *UnaryOp) expressionNode()    {}
func (u *UnaryOp) Pos() token.Position { return u.Token.Pos() }
func (u *UnaryOp) String() string      { return "(" + u.Op + u.Expr.String() + ")" }

// Call is a function, method, or static-method invocation: Callee(Args...).
type Call struct {
	Token  token.Token // the '(' token
	Callee Expression
	Args   []Expression
}

func (c *Call) expressionNode()    {}
func (c *Call) Pos() token.Position { return c.Token.Pos() }
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// New allocates an instance of ClassName, invoking its constructor
// (if any) with Args.
type New struct {
	Token     token.Token // the 'new' keyword
	ClassName string
	Args      []Expression
}

func (n *New) expressionNode()    {}
func (n *New) Pos() token.Position { return n.Token.Pos() }
func (n *New) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return "new " + n.ClassName + "(" + strings.Join(args, ", ") + ")"
}

// FieldAccess is `Object.FieldName`.
type FieldAccess struct {
	Token  token.Token // the '.' token
	Object Expression
	Field  string
}

func (f *FieldAccess) expressionNode()    {}
func (f *FieldAccess) Pos() token.Position { return f.Token.Pos() }
func (f *FieldAccess) String() string      { return f.Object.String() + "." + f.Field }

// Assignment is `Target = Value`; Target must be an Identifier or a
// FieldAccess (enforced by the parser).
type Assignment struct {
	Token  token.Token // the '=' token
	Target Expression
	Value  Expression
}

func (a *Assignment) expressionNode()    {}
func (a *Assignment) Pos() token.Position { return a.Token.Pos() }
func (a *Assignment) String() string {
	return "(" + a.Target.String() + " = " + a.Value.String() + ")"
}
