package cmd

import (
	"fmt"
	"os"

	"github.com/golox-lang/golox/internal/ast"
	"github.com/golox-lang/golox/internal/errors"
	"github.com/golox-lang/golox/internal/lexer"
	"github.com/golox-lang/golox/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lox file and dump its statement tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	l := lexer.New(string(source))
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()

	if p.HadError() {
		for _, e := range p.Errors() {
			errors.ReportAtToken(os.Stderr, e.Token, e.Message)
		}
		return &ExitError{Code: 65}
	}

	for _, stmt := range stmts {
		dumpStmt(stmt, 0)
	}
	return nil
}

func indent(depth int) string {
	s := ""
	for i := 0; i < depth; i++ {
		s += "  "
	}
	return s
}

func dumpStmt(stmt ast.Stmt, depth int) {
	switch s := stmt.(type) {
	case *ast.Block:
		fmt.Printf("%sBlock\n", indent(depth))
		for _, inner := range s.Statements {
			dumpStmt(inner, depth+1)
		}
	case *ast.Class:
		fmt.Printf("%sClass %s\n", indent(depth), s.Name.Lexeme)
		for _, m := range s.Methods {
			dumpStmt(m, depth+1)
		}
	case *ast.Function:
		fmt.Printf("%sFunction %s\n", indent(depth), s.Name.Lexeme)
		for _, inner := range s.Body {
			dumpStmt(inner, depth+1)
		}
	case *ast.If:
		fmt.Printf("%sIf\n", indent(depth))
		dumpStmt(s.ThenBranch, depth+1)
		if s.ElseBranch != nil {
			dumpStmt(s.ElseBranch, depth+1)
		}
	case *ast.Print:
		fmt.Printf("%sPrint %s\n", indent(depth), dumpExpr(s.Expression))
	case *ast.Return:
		fmt.Printf("%sReturn %s\n", indent(depth), dumpExpr(s.Value))
	case *ast.Var:
		fmt.Printf("%sVar %s = %s\n", indent(depth), s.Name.Lexeme, dumpExpr(s.Initializer))
	case *ast.While:
		fmt.Printf("%sWhile %s\n", indent(depth), dumpExpr(s.Condition))
		dumpStmt(s.Body, depth+1)
	case *ast.Expression:
		fmt.Printf("%sExpr %s\n", indent(depth), dumpExpr(s.Expression))
	case *ast.Break:
		fmt.Printf("%sBreak\n", indent(depth))
	default:
		fmt.Printf("%s%T\n", indent(depth), stmt)
	}
}

func dumpExpr(expr ast.Expr) string {
	if expr == nil {
		return "<nil>"
	}
	switch e := expr.(type) {
	case *ast.Literal:
		return fmt.Sprintf("%v", e.Value)
	case *ast.Variable:
		return e.Name.Lexeme
	case *ast.Binary:
		return fmt.Sprintf("(%s %s %s)", dumpExpr(e.Left), e.Operator.Lexeme, dumpExpr(e.Right))
	case *ast.Unary:
		return fmt.Sprintf("(%s%s)", e.Operator.Lexeme, dumpExpr(e.Right))
	case *ast.Grouping:
		return fmt.Sprintf("(group %s)", dumpExpr(e.Expression))
	case *ast.Call:
		return fmt.Sprintf("%s(...)", dumpExpr(e.Callee))
	default:
		return fmt.Sprintf("%T", expr)
	}
}
