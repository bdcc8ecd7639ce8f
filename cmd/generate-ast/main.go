// Command generate-ast regenerates internal/ast/expr.go and
// internal/ast/stmt.go from the table-driven node definitions below.
//
// This is a direct port of the tree-generation tool that ships with the
// language golox implements: a short table of "Name : Type field, Type
// field, ..." definitions expands into one struct plus constructor per
// entry, rather than deriving node shape by reflecting over existing Go
// types the way a general-purpose AST visitor generator would.
//
// Usage:
//
//	go run ./cmd/generate-ast internal/ast
package main

import (
	"fmt"
	"os"
	"strings"
)

// treeType describes one generated node: its Go name and its
// "Type Name" field list in declaration order.
type treeType struct {
	name   string
	fields []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: generate-ast <output directory>")
		os.Exit(64)
	}
	outDir := os.Args[1]

	if err := defineAST(outDir, "Expr", exprTypes); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := defineAST(outDir, "Stmt", stmtTypes); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var exprTypes = []string{
	"Assign   : Name Token, Value Expr",
	"Binary   : Left Expr, Operator Token, Right Expr",
	"Call     : Callee Expr, Paren Token, Arguments []Expr",
	"Get      : Object Expr, Name Token",
	"Grouping : Expression Expr",
	"Literal  : Value any",
	"Logical  : Left Expr, Operator Token, Right Expr",
	"Set      : Object Expr, Name Token, Value Expr",
	"Super    : Keyword Token, Method Token",
	"This     : Keyword Token",
	"Unary    : Operator Token, Right Expr",
	"Variable : Name Token",
}

var stmtTypes = []string{
	"Block      : Statements []Stmt",
	"Break      : Keyword Token",
	"Class      : Name Token, Superclass *Variable, Methods []*Function",
	"Expression : Expression Expr",
	"Function   : Name Token, Params []Token, Body []Stmt",
	"If         : Condition Expr, ThenBranch Stmt, ElseBranch Stmt",
	"Print      : Expression Expr",
	"Return     : Keyword Token, Value Expr",
	"Var        : Name Token, Initializer Expr",
	"While      : Condition Expr, Body Stmt",
}

func defineAST(outDir, baseName string, types []string) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "// Code generated by cmd/generate-ast. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package ast\n\n")

	var parsed []treeType
	for _, t := range types {
		nameAndFields := strings.SplitN(t, ":", 2)
		name := strings.TrimSpace(nameAndFields[0])
		fields := strings.Split(strings.TrimSpace(nameAndFields[1]), ", ")
		parsed = append(parsed, treeType{name: name, fields: fields})
	}

	lowerBase := strings.ToLower(baseName)
	fmt.Fprintf(&sb, "// %sVisitor dispatches over every concrete %s node.\n", baseName, baseName)
	fmt.Fprintf(&sb, "type %sVisitor interface {\n", baseName)
	for _, tt := range parsed {
		fmt.Fprintf(&sb, "\tVisit%s%s(%s *%s) (any, error)\n", tt.name, baseName, lowerBase, tt.name)
	}
	sb.WriteString("}\n\n")

	for _, tt := range parsed {
		writeType(&sb, baseName, tt)
	}

	return os.WriteFile(fmt.Sprintf("%s/%s.go", outDir, lowerBase), []byte(sb.String()), 0o644)
}

func writeType(sb *strings.Builder, baseName string, tt treeType) {
	fmt.Fprintf(sb, "// %s is a %s node: %s.\n", tt.name, baseName, strings.Join(tt.fields, ", "))
	fmt.Fprintf(sb, "type %s struct {\n", tt.name)
	if baseName == "Expr" {
		sb.WriteString("\tbase\n")
	}
	for _, f := range tt.fields {
		parts := strings.SplitN(f, " ", 2)
		fmt.Fprintf(sb, "\t%s %s\n", parts[0], parts[1])
	}
	sb.WriteString("}\n\n")

	args := make([]string, len(tt.fields))
	params := make([]string, len(tt.fields))
	for i, f := range tt.fields {
		parts := strings.SplitN(f, " ", 2)
		params[i] = strings.ToLower(parts[0][:1]) + parts[0][1:] + " " + parts[1]
		args[i] = fmt.Sprintf("%s: %s", parts[0], strings.ToLower(parts[0][:1])+parts[0][1:])
	}

	fmt.Fprintf(sb, "// New%s constructs a %s.\n", tt.name, tt.name)
	fmt.Fprintf(sb, "func New%s(%s) *%s {\n", tt.name, strings.Join(params, ", "), tt.name)
	if baseName == "Expr" {
		fmt.Fprintf(sb, "\treturn &%s{base: newBase(), %s}\n", tt.name, strings.Join(args, ", "))
	} else {
		fmt.Fprintf(sb, "\treturn &%s{%s}\n", tt.name, strings.Join(args, ", "))
	}
	sb.WriteString("}\n\n")

	if baseName == "Expr" {
		fmt.Fprintf(sb, "func (e *%s) exprNode() {}\n\n", tt.name)
	} else {
		fmt.Fprintf(sb, "func (s *%s) stmtNode() {}\n\n", tt.name)
	}

	fmt.Fprintf(sb, "// Accept dispatches to the visitor's Visit%s%s method.\n", tt.name, baseName)
	if baseName == "Expr" {
		fmt.Fprintf(sb, "func (e *%s) Accept(v ExprVisitor) (any, error) {\n\treturn v.Visit%s%s(e)\n}\n\n", tt.name, tt.name, baseName)
	} else {
		fmt.Fprintf(sb, "func (s *%s) Accept(v StmtVisitor) (any, error) {\n\treturn v.Visit%s%s(s)\n}\n\n", tt.name, tt.name, baseName)
	}
}
