package ast

import (
	"strings"

	"github.com/objc2swift/transpiler/internal/source"
	"github.com/objc2swift/transpiler/internal/swifttype"
)

func (*CompoundStatement) statementNode()   {}
func (*IfStatement) statementNode()         {}
func (*WhileStatement) statementNode()      {}
func (*DoWhileStatement) statementNode()    {}
func (*ForStatement) statementNode()        {}
func (*SwitchStatement) statementNode()     {}
func (*DoStatement) statementNode()         {}
func (*DeferStatement) statementNode()      {}
func (*ReturnStatement) statementNode()     {}
func (*BreakStatement) statementNode()      {}
func (*ContinueStatement) statementNode()   {}
func (*ExpressionStatement) statementNode() {}
func (*VariableDeclStatement) statementNode() {}
func (*UnknownStatement) statementNode()    {}

func copyStmtChild(newParent Node, s Statement) Statement {
	if s == nil {
		return nil
	}
	c := s.Copy()
	AttachStmt(newParent, c)
	return c
}

func copyBody(newParent Node, body []Statement) []Statement {
	out := make([]Statement, len(body))
	for i, s := range body {
		out[i] = copyStmtChild(newParent, s)
	}
	return out
}

func bodyEqual(a, b []Statement) bool {
	if len(a) != len(b) {
		return false
	}
	for i, s := range a {
		if !s.Equal(b[i]) {
			return false
		}
	}
	return true
}

func bodyString(body []Statement) string {
	parts := make([]string, len(body))
	for i, s := range body {
		parts[i] = s.String()
	}
	return strings.Join(parts, "; ")
}

// CompoundStatement is a braced block of statements — used as method,
// function, and closure bodies (spec §3: Intention.body).
type CompoundStatement struct {
	stmtBase
	Statements []Statement
}

func NewCompoundStatement(pos source.Position, stmts []Statement) *CompoundStatement {
	c := &CompoundStatement{stmtBase: stmtBase{pos: pos}, Statements: stmts}
	for _, s := range stmts {
		AttachStmt(c, s)
	}
	return c
}

func (c *CompoundStatement) String() string { return "{ " + bodyString(c.Statements) + " }" }

func (c *CompoundStatement) Equal(other Statement) bool {
	o, ok := other.(*CompoundStatement)
	return ok && bodyEqual(c.Statements, o.Statements)
}

func (c *CompoundStatement) Copy() Statement {
	cp := &CompoundStatement{stmtBase: stmtBase{pos: c.pos}}
	cp.Statements = copyBody(cp, c.Statements)
	return cp
}

// IfStatement is "if cond { then } else { els }", optionally binding a
// pattern from an "if let"/"if case" condition (Pattern is nil otherwise).
type IfStatement struct {
	stmtBase
	Condition Expression
	Binding   Pattern
	Then      []Statement
	Else      []Statement
}

func NewIfStatement(pos source.Position, cond Expression, binding Pattern, then, els []Statement) *IfStatement {
	s := &IfStatement{stmtBase: stmtBase{pos: pos}, Condition: cond, Binding: binding, Then: then, Else: els}
	Attach(s, cond)
	for _, st := range then {
		AttachStmt(s, st)
	}
	for _, st := range els {
		AttachStmt(s, st)
	}
	return s
}

func (s *IfStatement) String() string {
	return "if " + s.Condition.String() + " { " + bodyString(s.Then) + " } else { " + bodyString(s.Else) + " }"
}

func (s *IfStatement) Equal(other Statement) bool {
	o, ok := other.(*IfStatement)
	if !ok || !exprEqual(s.Condition, o.Condition) || !bodyEqual(s.Then, o.Then) || !bodyEqual(s.Else, o.Else) {
		return false
	}
	if s.Binding == nil || o.Binding == nil {
		return s.Binding == nil && o.Binding == nil
	}
	return s.Binding.Equal(o.Binding)
}

func (s *IfStatement) Copy() Statement {
	cp := &IfStatement{stmtBase: stmtBase{pos: s.pos}}
	cp.Condition = copyChild(cp, s.Condition)
	if s.Binding != nil {
		cp.Binding = s.Binding.Copy()
	}
	cp.Then = copyBody(cp, s.Then)
	cp.Else = copyBody(cp, s.Else)
	return cp
}

// WhileStatement is "while cond { body }".
type WhileStatement struct {
	stmtBase
	Condition Expression
	Body      []Statement
}

func NewWhileStatement(pos source.Position, cond Expression, body []Statement) *WhileStatement {
	s := &WhileStatement{stmtBase: stmtBase{pos: pos}, Condition: cond, Body: body}
	Attach(s, cond)
	for _, st := range body {
		AttachStmt(s, st)
	}
	return s
}

func (s *WhileStatement) String() string {
	return "while " + s.Condition.String() + " { " + bodyString(s.Body) + " }"
}

func (s *WhileStatement) Equal(other Statement) bool {
	o, ok := other.(*WhileStatement)
	return ok && exprEqual(s.Condition, o.Condition) && bodyEqual(s.Body, o.Body)
}

func (s *WhileStatement) Copy() Statement {
	cp := &WhileStatement{stmtBase: stmtBase{pos: s.pos}}
	cp.Condition = copyChild(cp, s.Condition)
	cp.Body = copyBody(cp, s.Body)
	return cp
}

// DoWhileStatement is "repeat { body } while cond" (Swift's repeat-while,
// the target for Objective-C's do/while).
type DoWhileStatement struct {
	stmtBase
	Body      []Statement
	Condition Expression
}

func NewDoWhileStatement(pos source.Position, body []Statement, cond Expression) *DoWhileStatement {
	s := &DoWhileStatement{stmtBase: stmtBase{pos: pos}, Body: body, Condition: cond}
	for _, st := range body {
		AttachStmt(s, st)
	}
	Attach(s, cond)
	return s
}

func (s *DoWhileStatement) String() string {
	return "repeat { " + bodyString(s.Body) + " } while " + s.Condition.String()
}

func (s *DoWhileStatement) Equal(other Statement) bool {
	o, ok := other.(*DoWhileStatement)
	return ok && bodyEqual(s.Body, o.Body) && exprEqual(s.Condition, o.Condition)
}

func (s *DoWhileStatement) Copy() Statement {
	cp := &DoWhileStatement{stmtBase: stmtBase{pos: s.pos}}
	cp.Body = copyBody(cp, s.Body)
	cp.Condition = copyChild(cp, s.Condition)
	return cp
}

// ForKind distinguishes a classic C-style for loop (carried over from the
// Objective-C source before rewriting) from a Swift "for-in" loop.
type ForKind int

const (
	ForClassic ForKind = iota
	ForIn
)

// ForStatement covers both classic and for-in loop shapes (spec §3: "for").
type ForStatement struct {
	stmtBase
	Kind ForKind

	// ForClassic fields.
	Init      Statement
	Condition Expression
	Post      Statement

	// ForIn fields.
	Binding    Pattern
	Collection Expression

	Body []Statement
}

func NewClassicForStatement(pos source.Position, init Statement, cond Expression, post Statement, body []Statement) *ForStatement {
	s := &ForStatement{stmtBase: stmtBase{pos: pos}, Kind: ForClassic, Init: init, Condition: cond, Post: post, Body: body}
	AttachStmt(s, init)
	Attach(s, cond)
	AttachStmt(s, post)
	for _, st := range body {
		AttachStmt(s, st)
	}
	return s
}

func NewForInStatement(pos source.Position, binding Pattern, collection Expression, body []Statement) *ForStatement {
	s := &ForStatement{stmtBase: stmtBase{pos: pos}, Kind: ForIn, Binding: binding, Collection: collection, Body: body}
	Attach(s, collection)
	for _, st := range body {
		AttachStmt(s, st)
	}
	return s
}

func (s *ForStatement) String() string {
	if s.Kind == ForIn {
		return "for " + s.Binding.String() + " in " + s.Collection.String() + " { " + bodyString(s.Body) + " }"
	}
	return "for (...) { " + bodyString(s.Body) + " }"
}

func (s *ForStatement) Equal(other Statement) bool {
	o, ok := other.(*ForStatement)
	if !ok || s.Kind != o.Kind || !bodyEqual(s.Body, o.Body) {
		return false
	}
	if s.Kind == ForIn {
		return s.Binding.Equal(o.Binding) && exprEqual(s.Collection, o.Collection)
	}
	if (s.Init == nil) != (o.Init == nil) || (s.Post == nil) != (o.Post == nil) {
		return false
	}
	if s.Init != nil && !s.Init.Equal(o.Init) {
		return false
	}
	if s.Post != nil && !s.Post.Equal(o.Post) {
		return false
	}
	return exprEqual(s.Condition, o.Condition)
}

func (s *ForStatement) Copy() Statement {
	cp := &ForStatement{stmtBase: stmtBase{pos: s.pos}, Kind: s.Kind}
	if s.Kind == ForIn {
		cp.Binding = s.Binding.Copy()
		cp.Collection = copyChild(cp, s.Collection)
	} else {
		cp.Init = copyStmtChild(cp, s.Init)
		cp.Condition = copyChild(cp, s.Condition)
		cp.Post = copyStmtChild(cp, s.Post)
	}
	cp.Body = copyBody(cp, s.Body)
	return cp
}

// SwitchCase is one "case pattern, pattern: body" arm, or the "default" arm.
type SwitchCase struct {
	Patterns  []Pattern
	Body      []Statement
	IsDefault bool
}

// SwitchStatement is "switch subject { cases }".
type SwitchStatement struct {
	stmtBase
	Subject Expression
	Cases   []SwitchCase
}

func NewSwitchStatement(pos source.Position, subject Expression, cases []SwitchCase) *SwitchStatement {
	s := &SwitchStatement{stmtBase: stmtBase{pos: pos}, Subject: subject, Cases: cases}
	Attach(s, subject)
	for _, c := range cases {
		for _, st := range c.Body {
			AttachStmt(s, st)
		}
	}
	return s
}

func (s *SwitchStatement) String() string {
	var sb strings.Builder
	sb.WriteString("switch ")
	sb.WriteString(s.Subject.String())
	sb.WriteString(" { ")
	for _, c := range s.Cases {
		if c.IsDefault {
			sb.WriteString("default: ")
		} else {
			sb.WriteString("case ...: ")
		}
		sb.WriteString(bodyString(c.Body))
		sb.WriteString("; ")
	}
	sb.WriteString("}")
	return sb.String()
}

func (s *SwitchStatement) Equal(other Statement) bool {
	o, ok := other.(*SwitchStatement)
	if !ok || !exprEqual(s.Subject, o.Subject) || len(s.Cases) != len(o.Cases) {
		return false
	}
	for i, c := range s.Cases {
		oc := o.Cases[i]
		if c.IsDefault != oc.IsDefault || len(c.Patterns) != len(oc.Patterns) || !bodyEqual(c.Body, oc.Body) {
			return false
		}
		for j, p := range c.Patterns {
			if !p.Equal(oc.Patterns[j]) {
				return false
			}
		}
	}
	return true
}

func (s *SwitchStatement) Copy() Statement {
	cp := &SwitchStatement{stmtBase: stmtBase{pos: s.pos}}
	cp.Subject = copyChild(cp, s.Subject)
	cases := make([]SwitchCase, len(s.Cases))
	for i, c := range s.Cases {
		patterns := make([]Pattern, len(c.Patterns))
		for j, p := range c.Patterns {
			patterns[j] = p.Copy()
		}
		cases[i] = SwitchCase{Patterns: patterns, Body: copyBody(cp, c.Body), IsDefault: c.IsDefault}
	}
	cp.Cases = cases
	return cp
}

// CatchClause is one "catch pattern { body }" arm of a DoStatement.
type CatchClause struct {
	Binding Pattern // nil for a bare "catch"
	Body    []Statement
}

// DoStatement is Swift's "do { body } catch ... { ... }".
type DoStatement struct {
	stmtBase
	Body    []Statement
	Catches []CatchClause
}

func NewDoStatement(pos source.Position, body []Statement, catches []CatchClause) *DoStatement {
	s := &DoStatement{stmtBase: stmtBase{pos: pos}, Body: body, Catches: catches}
	for _, st := range body {
		AttachStmt(s, st)
	}
	for _, c := range catches {
		for _, st := range c.Body {
			AttachStmt(s, st)
		}
	}
	return s
}

func (s *DoStatement) String() string {
	return "do { " + bodyString(s.Body) + " }"
}

func (s *DoStatement) Equal(other Statement) bool {
	o, ok := other.(*DoStatement)
	if !ok || !bodyEqual(s.Body, o.Body) || len(s.Catches) != len(o.Catches) {
		return false
	}
	for i, c := range s.Catches {
		oc := o.Catches[i]
		if !bodyEqual(c.Body, oc.Body) {
			return false
		}
		if (c.Binding == nil) != (oc.Binding == nil) {
			return false
		}
		if c.Binding != nil && !c.Binding.Equal(oc.Binding) {
			return false
		}
	}
	return true
}

func (s *DoStatement) Copy() Statement {
	cp := &DoStatement{stmtBase: stmtBase{pos: s.pos}}
	cp.Body = copyBody(cp, s.Body)
	catches := make([]CatchClause, len(s.Catches))
	for i, c := range s.Catches {
		var binding Pattern
		if c.Binding != nil {
			binding = c.Binding.Copy()
		}
		catches[i] = CatchClause{Binding: binding, Body: copyBody(cp, c.Body)}
	}
	cp.Catches = catches
	return cp
}

// DeferStatement is "defer { body }".
type DeferStatement struct {
	stmtBase
	Body []Statement
}

func NewDeferStatement(pos source.Position, body []Statement) *DeferStatement {
	s := &DeferStatement{stmtBase: stmtBase{pos: pos}, Body: body}
	for _, st := range body {
		AttachStmt(s, st)
	}
	return s
}

func (s *DeferStatement) String() string { return "defer { " + bodyString(s.Body) + " }" }

func (s *DeferStatement) Equal(other Statement) bool {
	o, ok := other.(*DeferStatement)
	return ok && bodyEqual(s.Body, o.Body)
}

func (s *DeferStatement) Copy() Statement {
	cp := &DeferStatement{stmtBase: stmtBase{pos: s.pos}}
	cp.Body = copyBody(cp, s.Body)
	return cp
}

// ReturnStatement is "return [value]"; Value is nil for a bare return.
type ReturnStatement struct {
	stmtBase
	Value Expression
}

func NewReturnStatement(pos source.Position, value Expression) *ReturnStatement {
	s := &ReturnStatement{stmtBase: stmtBase{pos: pos}, Value: value}
	Attach(s, value)
	return s
}

func (s *ReturnStatement) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

func (s *ReturnStatement) Equal(other Statement) bool {
	o, ok := other.(*ReturnStatement)
	return ok && exprEqual(s.Value, o.Value)
}

func (s *ReturnStatement) Copy() Statement {
	cp := &ReturnStatement{stmtBase: stmtBase{pos: s.pos}}
	cp.Value = copyChild(cp, s.Value)
	return cp
}

// BreakStatement is "break [label]".
type BreakStatement struct {
	stmtBase
	Label string
}

func NewBreakStatement(pos source.Position, label string) *BreakStatement {
	return &BreakStatement{stmtBase: stmtBase{pos: pos}, Label: label}
}

func (s *BreakStatement) String() string {
	if s.Label == "" {
		return "break"
	}
	return "break " + s.Label
}

func (s *BreakStatement) Equal(other Statement) bool {
	o, ok := other.(*BreakStatement)
	return ok && o.Label == s.Label
}

func (s *BreakStatement) Copy() Statement {
	return &BreakStatement{stmtBase: stmtBase{pos: s.pos}, Label: s.Label}
}

// ContinueStatement is "continue [label]".
type ContinueStatement struct {
	stmtBase
	Label string
}

func NewContinueStatement(pos source.Position, label string) *ContinueStatement {
	return &ContinueStatement{stmtBase: stmtBase{pos: pos}, Label: label}
}

func (s *ContinueStatement) String() string {
	if s.Label == "" {
		return "continue"
	}
	return "continue " + s.Label
}

func (s *ContinueStatement) Equal(other Statement) bool {
	o, ok := other.(*ContinueStatement)
	return ok && o.Label == s.Label
}

func (s *ContinueStatement) Copy() Statement {
	return &ContinueStatement{stmtBase: stmtBase{pos: s.pos}, Label: s.Label}
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	stmtBase
	Expr Expression
}

func NewExpressionStatement(pos source.Position, expr Expression) *ExpressionStatement {
	s := &ExpressionStatement{stmtBase: stmtBase{pos: pos}, Expr: expr}
	Attach(s, expr)
	return s
}

func (s *ExpressionStatement) String() string { return s.Expr.String() }

func (s *ExpressionStatement) Equal(other Statement) bool {
	o, ok := other.(*ExpressionStatement)
	return ok && exprEqual(s.Expr, o.Expr)
}

func (s *ExpressionStatement) Copy() Statement {
	cp := &ExpressionStatement{stmtBase: stmtBase{pos: s.pos}}
	cp.Expr = copyChild(cp, s.Expr)
	return cp
}

// VariableDeclStatement is "let/var name: Type = initializer".
type VariableDeclStatement struct {
	stmtBase
	IsConst      bool
	Name         string
	DeclaredType swifttype.Type
	Initializer  Expression
}

func NewVariableDeclStatement(pos source.Position, isConst bool, name string, declaredType swifttype.Type, init Expression) *VariableDeclStatement {
	s := &VariableDeclStatement{stmtBase: stmtBase{pos: pos}, IsConst: isConst, Name: name, DeclaredType: declaredType, Initializer: init}
	Attach(s, init)
	return s
}

func (s *VariableDeclStatement) String() string {
	kw := "var"
	if s.IsConst {
		kw = "let"
	}
	out := kw + " " + s.Name
	if s.DeclaredType != nil {
		out += ": " + s.DeclaredType.String()
	}
	if s.Initializer != nil {
		out += " = " + s.Initializer.String()
	}
	return out
}

func (s *VariableDeclStatement) Equal(other Statement) bool {
	o, ok := other.(*VariableDeclStatement)
	if !ok || s.IsConst != o.IsConst || s.Name != o.Name || !exprEqual(s.Initializer, o.Initializer) {
		return false
	}
	return swifttype.Equal(s.DeclaredType, o.DeclaredType)
}

func (s *VariableDeclStatement) Copy() Statement {
	cp := &VariableDeclStatement{stmtBase: stmtBase{pos: s.pos}, IsConst: s.IsConst, Name: s.Name, DeclaredType: s.DeclaredType}
	cp.Initializer = copyChild(cp, s.Initializer)
	return cp
}

// UnknownStatement represents a construct the driver could not classify;
// Context carries a human-readable description for diagnostics.
type UnknownStatement struct {
	stmtBase
	Context string
}

func NewUnknownStatement(pos source.Position, context string) *UnknownStatement {
	return &UnknownStatement{stmtBase: stmtBase{pos: pos}, Context: context}
}

func (s *UnknownStatement) String() string { return "<unknown: " + s.Context + ">" }

func (s *UnknownStatement) Equal(other Statement) bool {
	o, ok := other.(*UnknownStatement)
	return ok && o.Context == s.Context
}

func (s *UnknownStatement) Copy() Statement {
	return &UnknownStatement{stmtBase: stmtBase{pos: s.pos}, Context: s.Context}
}
