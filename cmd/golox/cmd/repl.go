package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/golox-lang/golox/internal/interp"
)

var (
	replErrorColor  = color.New(color.FgRed)
	replChromeColor = color.New(color.FgCyan)
)

// runREPL implements golox's interactive mode: prompt "> ", read one line,
// run it through the full pipeline against a single persistent Interpreter.
// Two inputs are special per spec.md §6: "!" exits cleanly, "@" dumps the
// current global environment for debugging. EOF (Ctrl-D) or a read error
// also terminates, matching a plain file-mode exit.
func runREPL() error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	interpreter := interp.New(os.Stdout)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, or a read error
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "!" {
			return nil
		}
		if line == "@" {
			dumpEnvironment(os.Stdout, interpreter.Globals())
			continue
		}

		rl.SaveHistory(line)

		// A REPL line's errors never abort the session: report them and
		// loop back for the next line instead of propagating an *ExitError.
		if runErr := runSource(interpreter, line); runErr != nil {
			if _, ok := runErr.(*ExitError); !ok {
				replErrorColor.Fprintln(os.Stderr, runErr)
			}
		}
	}
}

// dumpEnvironment prints every binding directly in the global scope, sorted
// by name, as "name = value". The format is not specified beyond "dumps the
// interpreter's environment state for debugging", so this is the
// straightforward reading of that contract.
func dumpEnvironment(w io.Writer, globals *interp.Environment) {
	names := globals.Names()
	sort.Strings(names)
	replChromeColor.Fprintf(w, "-- environment (%d bindings) --\n", len(names))
	for _, name := range names {
		value, _ := globals.Lookup(name)
		fmt.Fprintf(w, "%s = %s\n", name, interp.Stringify(value))
	}
}
