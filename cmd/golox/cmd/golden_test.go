package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/golox-lang/golox/internal/interp"
)

// TestExampleScriptsGolden runs every sample script under examples/ through
// the full lex-parse-resolve-interpret pipeline and snapshots its stdout,
// following the teacher's fixture-driven snapshot approach
// (internal/interp/fixture_test.go) but over golox's own .lox corpus rather
// than DWScript's .pas/.txt fixture pairs: golox has no separate expected-
// output files, so go-snaps owns the expected value entirely.
func TestExampleScriptsGolden(t *testing.T) {
	scripts, err := filepath.Glob(filepath.Join("..", "..", "..", "examples", "*.lox"))
	if err != nil {
		t.Fatalf("failed to glob examples: %v", err)
	}
	if len(scripts) == 0 {
		t.Fatal("no example scripts found")
	}

	for _, script := range scripts {
		script := script
		name := strings.TrimSuffix(filepath.Base(script), ".lox")

		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(script)
			if err != nil {
				t.Fatalf("failed to read %s: %v", script, err)
			}

			var out bytes.Buffer
			interpreter := interp.New(&out)
			if err := runSource(interpreter, string(source)); err != nil {
				t.Fatalf("unexpected error running %s: %v", script, err)
			}

			snaps.MatchSnapshot(t, out.String())
		})
	}
}
