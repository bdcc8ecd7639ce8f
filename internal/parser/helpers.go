package parser

import "github.com/golox-lang/golox/internal/lexer"

// parseError is panicked by consume (and by primary on "Expect expression.")
// to unwind to the nearest declaration
// boundary; it is never returned as a Go error value. Recovering from it is
// exactly panic-mode recovery: discard tokens until a synchronisation point,
// then resume parsing the next declaration.
type parseError struct{}

// match advances past the current token and returns true if it is one of
// the given types; otherwise the cursor does not move.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// check reports whether the current token has the given type without
// consuming it. EOF never matches anything.
func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

// consume advances past the current token if it has the expected type, or
// reports message at the current token and aborts this declaration via
// parseError.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.reportAtCurrent(message)
	panic(parseError{})
}

// reportAtCurrent records a non-fatal error at the current token without
// unwinding. Call sites that should keep parsing past the problem (extra
// arguments, extra parameters) use this directly, as breakStatement does
// with reportAtPrevious; consume uses it followed by a panic to make the
// error fatal for the current declaration.
func (p *Parser) reportAtCurrent(message string) {
	p.report(p.peek(), message)
}

func (p *Parser) reportAtPrevious(message string) {
	p.report(p.previous(), message)
}

func (p *Parser) report(token lexer.Token, message string) {
	p.errors = append(p.errors, Error{Token: token, Message: message})
}

// synchronize discards tokens until it reaches a likely statement boundary:
// just past a semicolon, or just before a keyword that starts a new
// declaration or statement. This bounds the damage of a single syntax error
// to the one declaration it occurred in.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}

		p.advance()
	}
}
