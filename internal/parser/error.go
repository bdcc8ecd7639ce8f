package parser

import "github.com/golox-lang/golox/internal/lexer"

// Error is a single parse diagnostic, carrying the token at which parsing
// went wrong so the caller can render "at 'LEXEME'" or "at end" per
// spec.md's wire format.
type Error struct {
	Token   lexer.Token
	Message string
}
