// Package errors renders golox diagnostics to golox's three wire formats:
// a general message, a message anchored to a specific token (used by both
// the parser and the resolver, which share the same "at 'LEXEME'"/"at end"
// shape), and a runtime error, whose message and location are printed in the
// opposite order from the other two.
package errors

import (
	"fmt"
	"io"

	"github.com/golox-lang/golox/internal/lexer"
)

// ReportGeneral writes "[line L] Error: MSG\n". Used for diagnostics with no
// specific token to anchor to, such as lexical errors.
func ReportGeneral(w io.Writer, line int, message string) {
	fmt.Fprintf(w, "[line %d] Error: %s\n", line, message)
}

// ReportAtToken writes "[line L] Error at 'LEXEME': MSG\n", or "at end"
// in place of the lexeme when token is EOF. Parser and resolver errors both
// carry a token and use this form.
func ReportAtToken(w io.Writer, token lexer.Token, message string) {
	where := "at end"
	if token.Type != lexer.EOF {
		where = "at '" + token.Lexeme + "'"
	}
	fmt.Fprintf(w, "[line %d] Error %s: %s\n", token.Line, where, message)
}

// ReportRuntime writes "MSG\n[line L]\n", per spec.md's runtime-error wire
// format: message first, location on its own line below it.
func ReportRuntime(w io.Writer, token lexer.Token, message string) {
	fmt.Fprintf(w, "%s\n[line %d]\n", message, token.Line)
}
