// Package ast defines golox's expression and statement tree. Nodes are
// produced by the parser, annotated by the resolver, and walked by the
// interpreter.
package ast

import "github.com/golox-lang/golox/internal/lexer"

// Expr is any expression node. Every concrete expression type is a pointer
// type so that it satisfies the node-identity invariant described on NodeID:
// two syntactically identical expressions occurring at different source
// positions are different Expr values, comparable with ==.
type Expr interface {
	exprNode()
	// ID returns a stable identity for this expression node, used by the
	// resolver and interpreter to key the variable-resolution side table.
	// It never changes for the lifetime of the node and is independent of
	// the node's content, so structurally identical expressions at
	// different source positions never collide.
	ID() NodeID
	// Accept dispatches this node to the matching ExprVisitor method.
	Accept(v ExprVisitor) (any, error)
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
	// Accept dispatches this node to the matching StmtVisitor method.
	Accept(v StmtVisitor) (any, error)
}

// NodeID is a stable per-expression-node identity, assigned once at
// construction time. Implementations elsewhere that need a hashable key for
// a *Variable, *Assign, *This, or *Super use node ID equality, never
// structural equality: "print a; print a;" contains two distinct Variable
// nodes that must resolve independently even though they have identical
// lexemes.
type NodeID uint64

var nextNodeID NodeID

// newNodeID hands out the next globally unique node identity. It is called
// exactly once per expression node, from that node's constructor.
func newNodeID() NodeID {
	nextNodeID++
	return nextNodeID
}

// base is embedded by every Expr implementation to supply ID().
type base struct {
	id NodeID
}

// ID implements Expr.
func (b *base) ID() NodeID { return b.id }

func newBase() base { return base{id: newNodeID()} }

// Token is re-exported for convenience so callers of this package rarely
// need to import internal/lexer directly just to hold a Token field.
type Token = lexer.Token
