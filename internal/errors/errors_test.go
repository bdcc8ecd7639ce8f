package errors

import (
	"bytes"
	"testing"

	"github.com/golox-lang/golox/internal/lexer"
)

func TestReportGeneral(t *testing.T) {
	var buf bytes.Buffer
	ReportGeneral(&buf, 3, "Unexpected character.")
	want := "[line 3] Error: Unexpected character.\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestReportAtTokenWithLexeme(t *testing.T) {
	var buf bytes.Buffer
	ReportAtToken(&buf, lexer.Token{Type: lexer.IDENTIFIER, Lexeme: "foo", Line: 5}, "Expect ';' after value.")
	want := "[line 5] Error at 'foo': Expect ';' after value.\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestReportAtTokenAtEOF(t *testing.T) {
	var buf bytes.Buffer
	ReportAtToken(&buf, lexer.Token{Type: lexer.EOF, Lexeme: "", Line: 9}, "Expect expression.")
	want := "[line 9] Error at end: Expect expression.\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestReportRuntime(t *testing.T) {
	var buf bytes.Buffer
	ReportRuntime(&buf, lexer.Token{Line: 7}, "Undefined variable 'x'.")
	want := "Undefined variable 'x'.\n[line 7]\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
