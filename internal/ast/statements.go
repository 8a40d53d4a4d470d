package ast

import (
	"strings"

	"github.com/oxlang/oxc/internal/token"
)

// ImportStatement names a module to prepend to the Program before
// type checking The driver resolves it; the statement
// itself has no runtime effect.
type ImportStatement struct {
	Token  token.Token // the 'import' keyword
	Module string
	Alias  string // "" when no `as` clause was given
}

func (is *ImportStatement) statementNode()    {}
func (is *ImportStatement) Pos() token.Position { return is.Token.Pos() }
func (is *ImportStatement) String() string {
	if is.Alias == "" {
		return "import " + is.Module + ";"
	}
	return "import " + is.Module + " as " + is.Alias + ";"
}

// FieldDeclaration is a class field: `name: typeName`.
type FieldDeclaration struct {
	Token    token.Token // the field name token
	Name     string
	TypeName string
}

func (fd *FieldDeclaration) classMemberNode() {}
func (fd *FieldDeclaration) Pos() token.Position { return fd.Token.Pos() }
func (fd *FieldDeclaration) String() string       { return fd.Name + ": " + fd.TypeName + ";" }

// MethodDeclaration is an instance method: `name(params): returnType { body }`.
type MethodDeclaration struct {
	Token      token.Token // the method name token
	Name       string
	Params     []Parameter
	ReturnType string
	Body       *Block
}

func (md *MethodDeclaration) classMemberNode() {}
func (md *MethodDeclaration) Pos() token.Position { return md.Token.Pos() }
func (md *MethodDeclaration) String() string {
	params := make([]string, len(md.Params))
	for i, p := range md.Params {
		params[i] = p.String()
	}
	return md.Name + "(" + strings.Join(params, ", ") + "): " + md.ReturnType + " " + md.Body.String()
}

// ConstructorDeclaration is a class's constructor: `constructor(params) { body }`.
type ConstructorDeclaration struct {
	Token  token.Token // the 'constructor' keyword
	Params []Parameter
	Body   *Block
}

func (cd *ConstructorDeclaration) classMemberNode() {}
func (cd *ConstructorDeclaration) Pos() token.Position { return cd.Token.Pos() }
func (cd *ConstructorDeclaration) String() string {
	params := make([]string, len(cd.Params))
	for i, p := range cd.Params {
		params[i] = p.String()
	}
	return "constructor(" + strings.Join(params, ", ") + ") " + cd.Body.String()
}

// ClassMember is one of FieldDeclaration, MethodDeclaration, or
// ConstructorDeclaration.
type ClassMember interface {
	Node
	classMemberNode()
}

// ClassDeclaration declares a class with optional single inheritance
// and an ordered sequence of members.
type ClassDeclaration struct {
	Token     token.Token // the 'class' keyword
	Name      string
	SuperName string // "" when there is no `extends` clause
	Members   []ClassMember
}

func (cd *ClassDeclaration) statementNode()    {}
func (cd *ClassDeclaration) Pos() token.Position { return cd.Token.Pos() }
func (cd *ClassDeclaration) String() string {
	var b strings.Builder
	b.WriteString("class ")
	b.WriteString(cd.Name)
	if cd.SuperName != "" {
		b.WriteString(" extends ")
		b.WriteString(cd.SuperName)
	}
	b.WriteString(" {\n")
	for _, m := range cd.Members {
		b.WriteString("  ")
		b.WriteString(strings.ReplaceAll(m.String(), "\n", "\n  "))
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// VariableDeclaration is `let name: typeName = initializer;`, used
// both at top level and inside bodies. The initializer is optional.
type VariableDeclaration struct {
	Token       token.Token // the 'let' keyword
	Name        string
	TypeName    string
	Initializer Expression // nil when absent
}

func (vd *VariableDeclaration) statementNode()    {}
func (vd *VariableDeclaration) Pos() token.Position { return vd.Token.Pos() }
func (vd *VariableDeclaration) String() string {
	s := "let " + vd.Name + ": " + vd.TypeName
	if vd.Initializer != nil {
		s += " = " + vd.Initializer.String()
	}
	return s + ";"
}

// FunctionDeclaration is a top-level named function:
// `name(params): returnType { body }`. The source language's class
// methods are MethodDeclaration members instead. The parser never
// produces this node: the grammar has no free-function declarations.
type FunctionDeclaration struct {
	Token      token.Token // the function name token
	Name       string
	Params     []Parameter
	ReturnType string
	Body       *Block
}

func (fd *FunctionDeclaration) statementNode()    {}
func (fd *FunctionDeclaration) Pos() token.Position { return fd.Token.Pos() }
func (fd *FunctionDeclaration) String() string {
	params := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = p.String()
	}
	return fd.Name + "(" + strings.Join(params, ", ") + "): " + fd.ReturnType + " " + fd.Body.String()
}

// ExpressionStatement is an expression evaluated for its side effects;
// the result is discarded.
type ExpressionStatement struct {
	Token token.Token // the expression's first token
	Expr  Expression
}

func (es *ExpressionStatement) statementNode()    {}
func (es *ExpressionStatement) Pos() token.Position { return es.Token.Pos() }
func (es *ExpressionStatement) String() string {
	if es.Expr == nil {
		return ""
	}
	return es.Expr.String() + ";"
}

// ReturnStatement transitions the enclosing method/constructor frame
// to Returned, carrying Expr's value (or Null if Expr is nil).
type ReturnStatement struct {
	Token token.Token // the 'return' keyword
	Expr  Expression  // nil when no value is given
}

func (rs *ReturnStatement) statementNode()    {}
func (rs *ReturnStatement) Pos() token.Position { return rs.Token.Pos() }
func (rs *ReturnStatement) String() string {
	if rs.Expr == nil {
		return "return;"
	}
	return "return " + rs.Expr.String() + ";"
}

// IfStatement executes ThenBody when Condition is truthy, else
// ElseBody (if present). Exactly one branch runs.
type IfStatement struct {
	Token     token.Token // the 'if' keyword
	Condition Expression
	ThenBody  *Block
	ElseBody  *Block // nil when there is no `else`
}

func (is *IfStatement) statementNode()    {}
func (is *IfStatement) Pos() token.Position { return is.Token.Pos() }
func (is *IfStatement) String() string {
	s := "if (" + is.Condition.String() + ") " + is.ThenBody.String()
	if is.ElseBody != nil {
		s += " else " + is.ElseBody.String()
	}
	return s
}

// Block is an ordered sequence of statements enclosed in `{ }`.
type Block struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (b *Block) Pos() token.Position { return b.Token.Pos() }
func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Statements {
		sb.WriteString("  ")
		sb.WriteString(strings.ReplaceAll(s.String(), "\n", "\n  "))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}
