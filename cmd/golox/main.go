// Command golox is a tree-walking interpreter for the Lox language.
package main

import (
	"os"

	"github.com/golox-lang/golox/cmd/golox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
