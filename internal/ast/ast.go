// Package ast models the output-language (Swift) syntax tree: expressions,
// statements, and patterns, each carrying an optional resolved SwiftType.
//
// Every sum type here follows the same shape as the teacher's internal/ast
// package: a small interface with an unexported marker method per kind, and
// one struct per variant rather than a class hierarchy. Equality is always
// structural and ignores resolved types, source positions, and parent
// pointers (spec §3/§9); Copy always produces a disjoint parent chain.
package ast

import (
	"github.com/objc2swift/transpiler/internal/source"
	"github.com/objc2swift/transpiler/internal/swifttype"
)

// Node is the common surface implemented by every Expression, Statement,
// and Pattern.
type Node interface {
	Pos() source.Position
	String() string
}

// Expression is the sum type for Swift expressions (spec §3).
type Expression interface {
	Node
	expressionNode()

	// Parent returns the non-owning back-reference set when this
	// expression is attached as a child of another node, or nil if
	// detached/root.
	Parent() Node
	setParent(Node)

	// ResolvedType is filled in by the type-annotation pass; nil until then.
	ResolvedType() swifttype.Type
	SetResolvedType(swifttype.Type)

	// Equal compares structurally, ignoring resolved type, position, and
	// parent pointers.
	Equal(other Expression) bool

	// Copy produces a deep copy with disjoint parent pointers.
	Copy() Expression
}

// Statement is the sum type for Swift statements (spec §3).
type Statement interface {
	Node
	statementNode()
	Parent() Node
	setParent(Node)
	Equal(other Statement) bool
	Copy() Statement
}

// Pattern is the sum type for switch-case / if-let binding patterns.
type Pattern interface {
	Node
	patternNode()
	Equal(other Pattern) bool
	Copy() Pattern
}

// Attach sets child's parent to p, first detaching child from wherever it
// was attached (per the "reparenting nulls the old parent" invariant, §5/§9).
func Attach(p Node, child Expression) {
	if child == nil {
		return
	}
	child.setParent(p)
}

// Detach clears child's parent pointer.
func Detach(child Expression) {
	if child == nil {
		return
	}
	child.setParent(nil)
}

// AttachStmt/DetachStmt mirror Attach/Detach for Statement children.
func AttachStmt(p Node, child Statement) {
	if child == nil {
		return
	}
	child.setParent(p)
}

func DetachStmt(child Statement) {
	if child == nil {
		return
	}
	child.setParent(nil)
}

// base holds the fields common to every Expression variant: source
// position, the non-owning parent pointer, and the resolved type filled in
// during type annotation. It is embedded, never used standalone.
type base struct {
	pos          source.Position
	parent       Node
	resolvedType swifttype.Type
}

func (b *base) Pos() source.Position                 { return b.pos }
func (b *base) Parent() Node                         { return b.parent }
func (b *base) setParent(p Node)                     { b.parent = p }
func (b *base) ResolvedType() swifttype.Type         { return b.resolvedType }
func (b *base) SetResolvedType(t swifttype.Type)     { b.resolvedType = t }

// stmtBase is the statement analog of base (statements have no resolved type).
type stmtBase struct {
	pos    source.Position
	parent Node
}

func (b *stmtBase) Pos() source.Position { return b.pos }
func (b *stmtBase) Parent() Node         { return b.parent }
func (b *stmtBase) setParent(p Node)     { b.parent = p }
