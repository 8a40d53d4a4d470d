// Package parser implements a recursive-descent parser: single-token
// lookahead, consuming the whole token stream or failing with the
// first syntax error.
package parser

import (
	"fmt"

	"github.com/oxlang/oxc/internal/ast"
	"github.com/oxlang/oxc/internal/errors"
	"github.com/oxlang/oxc/internal/lexer"
	"github.com/oxlang/oxc/internal/token"
)

// Parser consumes a fixed token slice (already lexed in full) and
// produces a Program.
type Parser struct {
	tokens []token.Token
	pos    int
	source string
}

// New creates a Parser over tokens. source is the original text the
// tokens were lexed from, kept only so syntax errors can render a
// source line
func New(tokens []token.Token, source string) *Parser {
	return &Parser{tokens: tokens, source: source}
}

// Parse lexes input and parses it into a Program in one step. This is
// the entry point external callers (the driver, the CLI) use.
func Parse(input string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		if lerr, ok := err.(*lexer.Error); ok {
			return nil, errors.New(lerr.Pos, input, lerr.Message)
		}
		return nil, errors.NewUnlocated(err.Error())
	}
	return New(tokens, input).ParseProgram()
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if t.Category != token.EOF {
		p.pos++
	}
	return t
}

// atSymbol reports whether the current token is the given symbol.
func (p *Parser) atSymbol(sym string) bool { return p.cur().IsSymbol(sym) }

// atKeyword reports whether the current token is the given keyword.
func (p *Parser) atKeyword(word string) bool { return p.cur().IsKeyword(word) }

// consumeSymbol advances past the given symbol if present, and
// reports whether it did. Used for the optional trailing semicolons.
func (p *Parser) consumeSymbol(sym string) bool {
	if p.atSymbol(sym) {
		p.advance()
		return true
	}
	return false
}

// expectSymbol consumes the given symbol or returns a syntax error
// naming what was expected and what was seen.
func (p *Parser) expectSymbol(sym string) (token.Token, error) {
	if p.atSymbol(sym) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorf(p.cur(), "expected %q, found %s", sym, p.describe(p.cur()))
}

// expectKeyword consumes the given keyword or returns a syntax error.
func (p *Parser) expectKeyword(word string) (token.Token, error) {
	if p.atKeyword(word) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorf(p.cur(), "expected keyword %q, found %s", word, p.describe(p.cur()))
}

// expectIdent consumes an identifier token or returns a syntax error.
func (p *Parser) expectIdent() (token.Token, error) {
	if p.cur().Category == token.IDENT {
		return p.advance(), nil
	}
	return token.Token{}, p.errorf(p.cur(), "expected identifier, found %s", p.describe(p.cur()))
}

// describe renders a token for a diagnostic message, naming EOF as
// "EOF"
func (p *Parser) describe(t token.Token) string {
	return t.String()
}

// errorf builds a syntax error located at tok's position.
func (p *Parser) errorf(tok token.Token, format string, args ...any) error {
	return errors.New(tok.Pos(), p.source, fmt.Sprintf(format, args...))
}

// optionalSemicolon consumes a trailing ';' if present. Semicolons
// are accepted but never required anywhere a statement ends.
func (p *Parser) optionalSemicolon() {
	p.consumeSymbol(";")
}
