package lexer

import "fmt"

// Token is a single lexical unit produced by the Lexer: its type, the exact
// source text it was scanned from, an optional literal value (populated only
// for STRING and NUMBER tokens), and the 1-based source line it started on.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any // string for STRING tokens, float64 for NUMBER tokens, nil otherwise
	Line    int
}

// String renders the token for debug output, such as %v/%+v formatting in
// diagnostics and test failures.
func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s %q %v", t.Type, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}
