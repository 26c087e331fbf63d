// Package parser implements the Lox recursive-descent parser (§4.2):
// tokens in, a statement list out, with operator-precedence climbing for
// expressions and panic-mode recovery at statement boundaries.
package parser

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/diagnostics"
	"github.com/loxlang/golox/internal/token"
)

// maxArgs is the argument/parameter count above which the parser reports
// (but does not fail on) an over-long argument list (§4.2).
const maxArgs = 255

// Parser consumes a token slice and produces a statement list.
type Parser struct {
	tokens  []token.Token
	errs    *diagnostics.Sink
	current int
}

// New creates a Parser over tokens, reporting errors to errs.
func New(tokens []token.Token, errs *diagnostics.Sink) *Parser {
	return &Parser{tokens: tokens, errs: errs}
}

// Parse parses the whole token stream into a program: a list of top-level
// statements.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// --- token cursor ---

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past a token of type t, or reports message at the
// current token and raises a parseError for panic-mode recovery.
func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.newError(p.peek(), message))
}
