package cmd

import (
	"fmt"
	"os"

	"github.com/golox-lang/golox/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Lox file and print the resulting tokens",
	Long: `Tokenize (lex) a Lox program and print the resulting tokens, one per
line, in the form TYPE "lexeme" @line. Useful for debugging the lexer.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	l := lexer.New(string(source))
	for _, tok := range l.ScanTokens() {
		fmt.Printf("%-12s %-20q @%d\n", tok.Type, tok.Lexeme, tok.Line)
	}

	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", e.Line, e.Message)
		}
		return &ExitError{Code: 65}
	}
	return nil
}
