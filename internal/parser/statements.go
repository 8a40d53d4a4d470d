package parser

import (
	"github.com/oxlang/oxc/internal/ast"
	"github.com/oxlang/oxc/internal/token"
)

// ParseProgram consumes the entire token stream and returns a
// Program, or the first syntax error encountered.
//
//	Program := TopLevel*
//	TopLevel := Import | Class | VarDecl | ExprStmt
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.cur().Category != token.EOF {
		stmt, err := p.parseTopLevel()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) parseTopLevel() (ast.Statement, error) {
	switch {
	case p.atKeyword("import"):
		return p.parseImport()
	case p.atKeyword("class"):
		return p.parseClass()
	case p.atKeyword("let"):
		return p.parseVarDecl()
	default:
		return p.parseExprStmt()
	}
}

// parseImport parses `import Ident ('as' Ident)? ';'?`.
func (p *Parser) parseImport() (ast.Statement, error) {
	tok, err := p.expectKeyword("import")
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ImportStatement{Token: tok, Module: name.Lexeme}
	if p.atKeyword("as") {
		p.advance()
		alias, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		stmt.Alias = alias.Lexeme
	}
	p.optionalSemicolon()
	return stmt, nil
}

// parseClass parses `class Ident ('extends' Ident)? '{' Member* '}'`.
func (p *Parser) parseClass() (ast.Statement, error) {
	tok, err := p.expectKeyword("class")
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	decl := &ast.ClassDeclaration{Token: tok, Name: name.Lexeme}

	if p.atKeyword("extends") {
		p.advance()
		super, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		decl.SuperName = super.Lexeme
	}

	if _, err := p.expectSymbol("{"); err != nil {
		return nil, err
	}
	for !p.atSymbol("}") {
		if p.cur().Category == token.EOF {
			return nil, p.errorf(p.cur(), "expected %q, found %s", "}", p.describe(p.cur()))
		}
		member, err := p.parseClassMember()
		if err != nil {
			return nil, err
		}
		decl.Members = append(decl.Members, member)
	}
	if _, err := p.expectSymbol("}"); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseClassMember parses `Constructor | Field | Method`.
func (p *Parser) parseClassMember() (ast.ClassMember, error) {
	if p.atKeyword("constructor") {
		return p.parseConstructor()
	}

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if p.atSymbol("(") {
		return p.parseMethod(name)
	}
	return p.parseField(name)
}

// parseField parses `Ident ':' Ident ';'?` with the name already
// consumed.
func (p *Parser) parseField(name token.Token) (ast.ClassMember, error) {
	if _, err := p.expectSymbol(":"); err != nil {
		return nil, err
	}
	typeName, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	p.optionalSemicolon()
	return &ast.FieldDeclaration{Token: name, Name: name.Lexeme, TypeName: typeName.Lexeme}, nil
}

// parseMethod parses `Ident '(' Params ')' ':' Ident Block` with the
// name already consumed.
func (p *Parser) parseMethod(name token.Token) (ast.ClassMember, error) {
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(":"); err != nil {
		return nil, err
	}
	retType, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.MethodDeclaration{
		Token: name, Name: name.Lexeme, Params: params,
		ReturnType: retType.Lexeme, Body: body,
	}, nil
}

// parseConstructor parses `'constructor' '(' Params ')' Block`.
func (p *Parser) parseConstructor() (ast.ClassMember, error) {
	tok, err := p.expectKeyword("constructor")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ConstructorDeclaration{Token: tok, Params: params, Body: body}, nil
}

// parseParams parses `'(' (Param (',' Param)*)? ')'`.
func (p *Parser) parseParams() ([]ast.Parameter, error) {
	if _, err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	var params []ast.Parameter
	if !p.atSymbol(")") {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.consumeSymbol(",") {
				break
			}
		}
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseParam parses `Ident ':' Ident`.
func (p *Parser) parseParam() (ast.Parameter, error) {
	name, err := p.expectIdent()
	if err != nil {
		return ast.Parameter{}, err
	}
	if _, err := p.expectSymbol(":"); err != nil {
		return ast.Parameter{}, err
	}
	typeName, err := p.expectIdent()
	if err != nil {
		return ast.Parameter{}, err
	}
	return ast.Parameter{Name: name.Lexeme, TypeName: typeName.Lexeme}, nil
}

// parseBlock parses `'{' Stmt* '}'`.
func (p *Parser) parseBlock() (*ast.Block, error) {
	tok, err := p.expectSymbol("{")
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Token: tok}
	for !p.atSymbol("}") {
		if p.cur().Category == token.EOF {
			return nil, p.errorf(p.cur(), "expected %q, found %s", "}", p.describe(p.cur()))
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expectSymbol("}"); err != nil {
		return nil, err
	}
	return block, nil
}

// parseStmt parses `VarDecl | If | Return | ExprStmt`.
func (p *Parser) parseStmt() (ast.Statement, error) {
	switch {
	case p.atKeyword("let"):
		return p.parseVarDecl()
	case p.atKeyword("if"):
		return p.parseIf()
	case p.atKeyword("return"):
		return p.parseReturn()
	default:
		return p.parseExprStmt()
	}
}

// parseVarDecl parses `'let' Ident ':' Ident ('=' Expr)? ';'?`.
func (p *Parser) parseVarDecl() (ast.Statement, error) {
	tok, err := p.expectKeyword("let")
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(":"); err != nil {
		return nil, err
	}
	typeName, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	decl := &ast.VariableDeclaration{Token: tok, Name: name.Lexeme, TypeName: typeName.Lexeme}
	if p.consumeSymbol("=") {
		init, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		decl.Initializer = init
	}
	p.optionalSemicolon()
	return decl, nil
}

// parseIf parses `'if' '(' Expr ')' Block ('else' Block)?`.
func (p *Parser) parseIf() (ast.Statement, error) {
	tok, err := p.expectKeyword("if")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	thenBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Token: tok, Condition: cond, ThenBody: thenBody}
	if p.atKeyword("else") {
		p.advance()
		elseBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.ElseBody = elseBody
	}
	return stmt, nil
}

// parseReturn parses `'return' Expr? ';'?`.
func (p *Parser) parseReturn() (ast.Statement, error) {
	tok, err := p.expectKeyword("return")
	if err != nil {
		return nil, err
	}
	stmt := &ast.ReturnStatement{Token: tok}
	if !p.atSymbol(";") && !p.atSymbol("}") && p.cur().Category != token.EOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Expr = expr
	}
	p.optionalSemicolon()
	return stmt, nil
}

// parseExprStmt parses `Expr ';'?`.
func (p *Parser) parseExprStmt() (ast.Statement, error) {
	tok := p.cur()
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.optionalSemicolon()
	return &ast.ExpressionStatement{Token: tok, Expr: expr}, nil
}
