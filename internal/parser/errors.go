package parser

import "github.com/loxlang/golox/internal/token"

// parseError is the panic-mode sentinel (§4.2, §5): raised on mismatched
// consumption, caught at statement granularity in declaration().
type parseError struct{}

func (parseError) Error() string { return "parse error" }

func (p *Parser) newError(tok token.Token, message string) parseError {
	p.errs.ErrorAtToken(tok, message)
	return parseError{}
}

// synchronize discards tokens until it reaches a likely statement boundary:
// just past a `;`, or just before one of the statement-starting keywords.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}

		p.advance()
	}
}
