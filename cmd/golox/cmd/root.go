// Package cmd implements golox's command-line interface: the root command
// runs golox's CLI contract directly (zero args starts the REPL, one arg
// runs a script, more is a usage error), with lex/parse/version as
// additional debugging subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ExitError carries the process exit code spec.md assigns to each pipeline
// stage's failure: 64 usage, 65 scan/parse/resolve error, 70 runtime error.
// cobra has no first-class notion of an exit code distinct from "an error
// occurred", so Execute checks for this type after rootCmd.Execute returns.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

var rootCmd = &cobra.Command{
	Use:     "golox [script]",
	Short:   "golox is a tree-walking interpreter for Lox",
	Version: Version,
	Long: `golox is a tree-walking interpreter for the Lox language described
in Crafting Interpreters: a lexer, a recursive-descent parser with panic-mode
error recovery, a static resolver that computes lexical-scope distances, and
an AST-walking evaluator with closures and classes.

With no arguments, golox starts an interactive REPL. With one argument, it
runs that file as a script. More than one argument is a usage error.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	SilenceErrors: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, err)
	return 1
}

func runRoot(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return runREPL()
	case 1:
		return runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		return &ExitError{Code: 64}
	}
}
