package parser

import (
	"strconv"

	"github.com/oxlang/oxc/internal/ast"
	"github.com/oxlang/oxc/internal/token"
)

// binaryOps is the single-tier operator set: every
// entry is equal precedence, parsed left-to-right as written.
var binaryOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
}

// parseExpr parses the lowest precedence level: Assignment.
func (p *Parser) parseExpr() (ast.Expression, error) {
	return p.parseAssignment()
}

// parseAssignment parses `Binary ( '=' Assignment )?`, right-
// associative. If the left-hand side is not an Identifier or
// FieldAccess, a syntax error is raised at the '=' token.
func (p *Parser) parseAssignment() (ast.Expression, error) {
	left, err := p.parseBinary()
	if err != nil {
		return nil, err
	}

	if !p.atSymbol("=") {
		return left, nil
	}
	eqTok := p.advance()

	switch left.(type) {
	case *ast.Identifier, *ast.FieldAccess:
		// valid assignment target
	default:
		return nil, p.errorf(eqTok, "invalid assignment target")
	}

	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Token: eqTok, Target: left, Value: value}, nil
}

// parseBinary parses the single flat-precedence binary tier:
// `+ - * / == != < > <= >=`, left-associative, evaluated strictly
// left-to-right as written (not split into conventional tiers).
func (p *Parser) parseBinary() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur().Category == token.SYMBOL && binaryOps[p.cur().Lexeme] {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Token: opTok, Op: opTok.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary parses prefix `+`/`-` applied to Unary.
func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.atSymbol("+") || p.atSymbol("-") {
		opTok := p.advance()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Token: opTok, Op: opTok.Lexeme, Expr: expr}, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses a literal, this, super, new, or identifier
// (`print` is not a keyword; the lexer yields it as an ordinary
// identifier), followed by a zero-or-more suffix chain of field
// access and call for the this/super/identifier forms
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()

	switch {
	case tok.Category == token.NUMBER:
		p.advance()
		val, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorf(tok, "invalid integer literal %q", tok.Lexeme)
		}
		return &ast.IntegerLiteral{Token: tok, Value: val}, nil

	case tok.Category == token.STRING:
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Lexeme}, nil

	case tok.IsKeyword("true"):
		p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: true}, nil

	case tok.IsKeyword("false"):
		p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: false}, nil

	case tok.IsKeyword("this"):
		p.advance()
		return p.parseSuffixChain(&ast.This{Token: tok})

	case tok.IsKeyword("super"):
		p.advance()
		return p.parseSuffixChain(&ast.Super{Token: tok})

	case tok.IsKeyword("new"):
		return p.parseNew(tok)

	case tok.Category == token.IDENT:
		p.advance()
		return p.parseSuffixChain(&ast.Identifier{Token: tok, Name: tok.Lexeme})

	default:
		return nil, p.errorf(tok, "unexpected token %s", p.describe(tok))
	}
}

// parseNew parses `'new' Ident '(' Args ')'`. The result does not
// accept a suffix chain
func (p *Parser) parseNew(tok token.Token) (ast.Expression, error) {
	p.advance() // 'new'
	className, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return &ast.New{Token: tok, ClassName: className.Lexeme, Args: args}, nil
}

// parseSuffixChain accepts zero or more `. Ident` or `( Args )`
// suffixes following a this/super/identifier/print primary.
func (p *Parser) parseSuffixChain(expr ast.Expression) (ast.Expression, error) {
	for {
		switch {
		case p.atSymbol("."):
			dotTok := p.advance()
			field, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			expr = &ast.FieldAccess{Token: dotTok, Object: expr, Field: field.Lexeme}

		case p.atSymbol("("):
			parenTok := p.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectSymbol(")"); err != nil {
				return nil, err
			}
			expr = &ast.Call{Token: parenTok, Callee: expr, Args: args}

		default:
			return expr, nil
		}
	}
}

// parseArgs parses a possibly-empty comma-separated list of
// expressions, with the opening '(' already consumed.
func (p *Parser) parseArgs() ([]ast.Expression, error) {
	var args []ast.Expression
	if p.atSymbol(")") {
		return args, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.consumeSymbol(",") {
			break
		}
	}
	return args, nil
}
