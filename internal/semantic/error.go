package semantic

import "github.com/golox-lang/golox/internal/lexer"

// Error is a single resolver diagnostic.
type Error struct {
	Token   lexer.Token
	Message string
}
