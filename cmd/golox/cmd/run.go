package cmd

import (
	"os"

	"github.com/golox-lang/golox/internal/errors"
	"github.com/golox-lang/golox/internal/interp"
	"github.com/golox-lang/golox/internal/lexer"
	"github.com/golox-lang/golox/internal/parser"
	"github.com/golox-lang/golox/internal/semantic"
)

// runFile executes a whole script file: lex, parse, resolve, interpret, in
// that order, stopping at the first stage that reports any error. This is
// the one-argument branch of golox's CLI contract.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	interpreter := interp.New(os.Stdout)
	return runSource(interpreter, string(source))
}

// runSource drives one full pass of the pipeline over source using an
// already-constructed Interpreter, so the REPL can reuse the same globals
// and locals table across lines. It reports diagnostics to stderr itself and
// returns an *ExitError with the exit code spec.md assigns to whichever
// stage failed; a nil return means the source ran without error.
func runSource(interpreter *interp.Interpreter, source string) error {
	l := lexer.New(source)
	tokens := l.ScanTokens()
	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		for _, e := range lexErrs {
			errors.ReportGeneral(os.Stderr, e.Line, e.Message)
		}
		return &ExitError{Code: 65}
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HadError() {
		for _, e := range p.Errors() {
			errors.ReportAtToken(os.Stderr, e.Token, e.Message)
		}
		return &ExitError{Code: 65}
	}

	resolver := semantic.New()
	locals, resolveErrs := resolver.Resolve(stmts)
	if len(resolveErrs) > 0 {
		for _, e := range resolveErrs {
			errors.ReportAtToken(os.Stderr, e.Token, e.Message)
		}
		return &ExitError{Code: 65}
	}

	if err := interpreter.Interpret(stmts, locals); err != nil {
		if rtErr, ok := err.(*interp.RuntimeError); ok {
			errors.ReportRuntime(os.Stderr, rtErr.Token, rtErr.Message)
			return &ExitError{Code: 70}
		}
		return err
	}

	return nil
}
