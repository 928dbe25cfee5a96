package ast

import (
	"fmt"
	"strings"

	"github.com/objc2swift/transpiler/internal/source"
	"github.com/objc2swift/transpiler/internal/swifttype"
)

func (*Identifier) expressionNode()           {}
func (*Literal) expressionNode()              {}
func (*BinaryExpression) expressionNode()     {}
func (*UnaryExpression) expressionNode()      {}
func (*PrefixExpression) expressionNode()     {}
func (*PostfixExpression) expressionNode()    {}
func (*TernaryExpression) expressionNode()    {}
func (*CastExpression) expressionNode()       {}
func (*AssignmentExpression) expressionNode() {}
func (*Parenthesized) expressionNode()        {}
func (*BlockLiteral) expressionNode()         {}
func (*TypeCheckExpression) expressionNode()  {}
func (*ConstantExpression) expressionNode()   {}
func (*SizeofExpression) expressionNode()     {}

// copyChild deep-copies a (possibly nil) child expression and attaches it
// to newParent, returning the copy.
func copyChild(newParent Node, e Expression) Expression {
	if e == nil {
		return nil
	}
	c := e.Copy()
	Attach(newParent, c)
	return c
}

func exprEqual(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Identifier is a bare name reference, e.g. "x" or "self.count".
type Identifier struct {
	base
	Name string
}

func NewIdentifier(pos source.Position, name string) *Identifier {
	return &Identifier{base: base{pos: pos}, Name: name}
}

func (i *Identifier) String() string { return i.Name }

func (i *Identifier) Equal(other Expression) bool {
	o, ok := other.(*Identifier)
	return ok && o.Name == i.Name
}

func (i *Identifier) Copy() Expression {
	return &Identifier{base: base{pos: i.pos}, Name: i.Name}
}

// LiteralKind enumerates the kinds of literal expressions (spec §3).
type LiteralKind int

const (
	LiteralInteger LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralBoolean
	LiteralNil
	LiteralArray
	LiteralDictionary
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralInteger:
		return "integer"
	case LiteralFloat:
		return "float"
	case LiteralString:
		return "string"
	case LiteralBoolean:
		return "boolean"
	case LiteralNil:
		return "nil"
	case LiteralArray:
		return "array"
	case LiteralDictionary:
		return "dictionary"
	default:
		return "unknown"
	}
}

// KeyValuePair is one entry of a dictionary literal.
type KeyValuePair struct {
	Key   Expression
	Value Expression
}

// Literal models integer/float/string/boolean/nil/array/dictionary literals.
// Text holds the raw textual form for scalar kinds (e.g. "42", "3.14",
// "\"hi\"", "true"); Elements/Pairs hold the children for array/dictionary.
type Literal struct {
	base
	Kind     LiteralKind
	Text     string
	Elements []Expression
	Pairs    []KeyValuePair
}

func NewScalarLiteral(pos source.Position, kind LiteralKind, text string) *Literal {
	return &Literal{base: base{pos: pos}, Kind: kind, Text: text}
}

func NewArrayLiteral(pos source.Position, elements []Expression) *Literal {
	l := &Literal{base: base{pos: pos}, Kind: LiteralArray, Elements: elements}
	for _, e := range elements {
		Attach(l, e)
	}
	return l
}

func NewDictionaryLiteral(pos source.Position, pairs []KeyValuePair) *Literal {
	l := &Literal{base: base{pos: pos}, Kind: LiteralDictionary, Pairs: pairs}
	for _, p := range pairs {
		Attach(l, p.Key)
		Attach(l, p.Value)
	}
	return l
}

func (l *Literal) String() string {
	switch l.Kind {
	case LiteralArray:
		parts := make([]string, len(l.Elements))
		for i, e := range l.Elements {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case LiteralDictionary:
		if len(l.Pairs) == 0 {
			return "[:]"
		}
		parts := make([]string, len(l.Pairs))
		for i, p := range l.Pairs {
			parts[i] = p.Key.String() + ": " + p.Value.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return l.Text
	}
}

func (l *Literal) Equal(other Expression) bool {
	o, ok := other.(*Literal)
	if !ok || o.Kind != l.Kind {
		return false
	}
	switch l.Kind {
	case LiteralArray:
		if len(l.Elements) != len(o.Elements) {
			return false
		}
		for i, e := range l.Elements {
			if !exprEqual(e, o.Elements[i]) {
				return false
			}
		}
		return true
	case LiteralDictionary:
		if len(l.Pairs) != len(o.Pairs) {
			return false
		}
		for i, p := range l.Pairs {
			if !exprEqual(p.Key, o.Pairs[i].Key) || !exprEqual(p.Value, o.Pairs[i].Value) {
				return false
			}
		}
		return true
	default:
		return l.Text == o.Text
	}
}

func (l *Literal) Copy() Expression {
	switch l.Kind {
	case LiteralArray:
		elems := make([]Expression, len(l.Elements))
		cp := &Literal{base: base{pos: l.pos}, Kind: l.Kind}
		for i, e := range l.Elements {
			elems[i] = copyChild(cp, e)
		}
		cp.Elements = elems
		return cp
	case LiteralDictionary:
		cp := &Literal{base: base{pos: l.pos}, Kind: l.Kind}
		pairs := make([]KeyValuePair, len(l.Pairs))
		for i, p := range l.Pairs {
			pairs[i] = KeyValuePair{Key: copyChild(cp, p.Key), Value: copyChild(cp, p.Value)}
		}
		cp.Pairs = pairs
		return cp
	default:
		return &Literal{base: base{pos: l.pos}, Kind: l.Kind, Text: l.Text}
	}
}

// BinaryExpression is "lhs operator rhs", e.g. "a + b".
type BinaryExpression struct {
	base
	Operator string
	Left     Expression
	Right    Expression
}

func NewBinaryExpression(pos source.Position, op string, left, right Expression) *BinaryExpression {
	e := &BinaryExpression{base: base{pos: pos}, Operator: op, Left: left, Right: right}
	Attach(e, left)
	Attach(e, right)
	return e
}

func (b *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Operator, b.Right.String())
}

func (b *BinaryExpression) Equal(other Expression) bool {
	o, ok := other.(*BinaryExpression)
	return ok && o.Operator == b.Operator && exprEqual(b.Left, o.Left) && exprEqual(b.Right, o.Right)
}

func (b *BinaryExpression) Copy() Expression {
	cp := &BinaryExpression{base: base{pos: b.pos}, Operator: b.Operator}
	cp.Left = copyChild(cp, b.Left)
	cp.Right = copyChild(cp, b.Right)
	return cp
}

// UnaryExpression is a prefix unary operator applied to an operand, e.g. "!x", "-x".
type UnaryExpression struct {
	base
	Operator string
	Operand  Expression
}

func NewUnaryExpression(pos source.Position, op string, operand Expression) *UnaryExpression {
	e := &UnaryExpression{base: base{pos: pos}, Operator: op, Operand: operand}
	Attach(e, operand)
	return e
}

func (u *UnaryExpression) String() string { return u.Operator + u.Operand.String() }

func (u *UnaryExpression) Equal(other Expression) bool {
	o, ok := other.(*UnaryExpression)
	return ok && o.Operator == u.Operator && exprEqual(u.Operand, o.Operand)
}

func (u *UnaryExpression) Copy() Expression {
	cp := &UnaryExpression{base: base{pos: u.pos}, Operator: u.Operator}
	cp.Operand = copyChild(cp, u.Operand)
	return cp
}

// PrefixExpression models a pre-increment/decrement style prefix operator
// carried over from the Objective-C source ("++x", "--x"), kept distinct
// from UnaryExpression per the data model (spec §3).
type PrefixExpression struct {
	base
	Operator string
	Operand  Expression
}

func NewPrefixExpression(pos source.Position, op string, operand Expression) *PrefixExpression {
	e := &PrefixExpression{base: base{pos: pos}, Operator: op, Operand: operand}
	Attach(e, operand)
	return e
}

func (p *PrefixExpression) String() string { return p.Operator + p.Operand.String() }

func (p *PrefixExpression) Equal(other Expression) bool {
	o, ok := other.(*PrefixExpression)
	return ok && o.Operator == p.Operator && exprEqual(p.Operand, o.Operand)
}

func (p *PrefixExpression) Copy() Expression {
	cp := &PrefixExpression{base: base{pos: p.pos}, Operator: p.Operator}
	cp.Operand = copyChild(cp, p.Operand)
	return cp
}

// SuffixKind distinguishes the three postfix operators a PostfixExpression
// chains: member access, call, and subscript/index.
type SuffixKind int

const (
	SuffixMember SuffixKind = iota
	SuffixCall
	SuffixIndex
)

// Argument is one labeled-or-not argument in a call suffix.
type Argument struct {
	Label    string
	HasLabel bool
	Value    Expression
}

// PostfixSuffix is one link in a PostfixExpression's trailing operator chain.
type PostfixSuffix struct {
	Kind      SuffixKind
	Member    string     // SuffixMember
	Arguments []Argument // SuffixCall
	Index     Expression // SuffixIndex
}

func (s PostfixSuffix) String() string {
	switch s.Kind {
	case SuffixMember:
		return "." + s.Member
	case SuffixIndex:
		return "[" + s.Index.String() + "]"
	case SuffixCall:
		parts := make([]string, len(s.Arguments))
		for i, a := range s.Arguments {
			if a.HasLabel {
				parts[i] = a.Label + ": " + a.Value.String()
			} else {
				parts[i] = a.Value.String()
			}
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return ""
	}
}

func (s PostfixSuffix) equal(o PostfixSuffix) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case SuffixMember:
		return s.Member == o.Member
	case SuffixIndex:
		return exprEqual(s.Index, o.Index)
	case SuffixCall:
		if len(s.Arguments) != len(o.Arguments) {
			return false
		}
		for i, a := range s.Arguments {
			b := o.Arguments[i]
			if a.HasLabel != b.HasLabel || (a.HasLabel && a.Label != b.Label) || !exprEqual(a.Value, b.Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (s PostfixSuffix) copy(newParent Node) PostfixSuffix {
	switch s.Kind {
	case SuffixMember:
		return s
	case SuffixIndex:
		return PostfixSuffix{Kind: SuffixIndex, Index: copyChild(newParent, s.Index)}
	case SuffixCall:
		args := make([]Argument, len(s.Arguments))
		for i, a := range s.Arguments {
			args[i] = Argument{Label: a.Label, HasLabel: a.HasLabel, Value: copyChild(newParent, a.Value)}
		}
		return PostfixSuffix{Kind: SuffixCall, Arguments: args}
	default:
		return s
	}
}

// PostfixExpression is a base expression followed by a chain of
// member-access / call / index suffixes — the central shape the
// invocation transformer (§4.5) pattern-matches against.
type PostfixExpression struct {
	base
	Base     Expression
	Suffixes []PostfixSuffix
}

func NewPostfixExpression(pos source.Position, baseExpr Expression, suffixes []PostfixSuffix) *PostfixExpression {
	e := &PostfixExpression{base: base{pos: pos}, Base: baseExpr, Suffixes: suffixes}
	Attach(e, baseExpr)
	for _, s := range suffixes {
		switch s.Kind {
		case SuffixIndex:
			Attach(e, s.Index)
		case SuffixCall:
			for _, a := range s.Arguments {
				Attach(e, a.Value)
			}
		}
	}
	return e
}

func (p *PostfixExpression) String() string {
	var sb strings.Builder
	sb.WriteString(p.Base.String())
	for _, s := range p.Suffixes {
		sb.WriteString(s.String())
	}
	return sb.String()
}

func (p *PostfixExpression) Equal(other Expression) bool {
	o, ok := other.(*PostfixExpression)
	if !ok || !exprEqual(p.Base, o.Base) || len(p.Suffixes) != len(o.Suffixes) {
		return false
	}
	for i, s := range p.Suffixes {
		if !s.equal(o.Suffixes[i]) {
			return false
		}
	}
	return true
}

func (p *PostfixExpression) Copy() Expression {
	cp := &PostfixExpression{base: base{pos: p.pos}}
	cp.Base = copyChild(cp, p.Base)
	suffixes := make([]PostfixSuffix, len(p.Suffixes))
	for i, s := range p.Suffixes {
		suffixes[i] = s.copy(cp)
	}
	cp.Suffixes = suffixes
	return cp
}

// TernaryExpression is "cond ? then : else".
type TernaryExpression struct {
	base
	Condition Expression
	Then      Expression
	Else      Expression
}

func NewTernaryExpression(pos source.Position, cond, then, els Expression) *TernaryExpression {
	e := &TernaryExpression{base: base{pos: pos}, Condition: cond, Then: then, Else: els}
	Attach(e, cond)
	Attach(e, then)
	Attach(e, els)
	return e
}

func (t *TernaryExpression) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", t.Condition.String(), t.Then.String(), t.Else.String())
}

func (t *TernaryExpression) Equal(other Expression) bool {
	o, ok := other.(*TernaryExpression)
	return ok && exprEqual(t.Condition, o.Condition) && exprEqual(t.Then, o.Then) && exprEqual(t.Else, o.Else)
}

func (t *TernaryExpression) Copy() Expression {
	cp := &TernaryExpression{base: base{pos: t.pos}}
	cp.Condition = copyChild(cp, t.Condition)
	cp.Then = copyChild(cp, t.Then)
	cp.Else = copyChild(cp, t.Else)
	return cp
}

// CastKind distinguishes Swift's three cast forms.
type CastKind int

const (
	CastAs CastKind = iota
	CastConditional
	CastForced
)

func (k CastKind) String() string {
	switch k {
	case CastConditional:
		return "as?"
	case CastForced:
		return "as!"
	default:
		return "as"
	}
}

// CastExpression is "expr as[?|!] Type".
type CastExpression struct {
	base
	Expr       Expression
	TargetType swifttype.Type
	Kind       CastKind
}

func NewCastExpression(pos source.Position, expr Expression, target swifttype.Type, kind CastKind) *CastExpression {
	e := &CastExpression{base: base{pos: pos}, Expr: expr, TargetType: target, Kind: kind}
	Attach(e, expr)
	return e
}

func (c *CastExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Expr.String(), c.Kind.String(), c.TargetType.String())
}

func (c *CastExpression) Equal(other Expression) bool {
	o, ok := other.(*CastExpression)
	if !ok || c.Kind != o.Kind || !exprEqual(c.Expr, o.Expr) {
		return false
	}
	return swifttype.Equal(c.TargetType, o.TargetType)
}

func (c *CastExpression) Copy() Expression {
	cp := &CastExpression{base: base{pos: c.pos}, TargetType: c.TargetType, Kind: c.Kind}
	cp.Expr = copyChild(cp, c.Expr)
	return cp
}

// AssignmentExpression is "target op= value" (op is "" for plain "=").
type AssignmentExpression struct {
	base
	Operator string
	Target   Expression
	Value    Expression
}

func NewAssignmentExpression(pos source.Position, op string, target, value Expression) *AssignmentExpression {
	e := &AssignmentExpression{base: base{pos: pos}, Operator: op, Target: target, Value: value}
	Attach(e, target)
	Attach(e, value)
	return e
}

func (a *AssignmentExpression) String() string {
	op := a.Operator
	if op == "" {
		op = "="
	}
	return fmt.Sprintf("%s %s %s", a.Target.String(), op, a.Value.String())
}

func (a *AssignmentExpression) Equal(other Expression) bool {
	o, ok := other.(*AssignmentExpression)
	return ok && a.Operator == o.Operator && exprEqual(a.Target, o.Target) && exprEqual(a.Value, o.Value)
}

func (a *AssignmentExpression) Copy() Expression {
	cp := &AssignmentExpression{base: base{pos: a.pos}, Operator: a.Operator}
	cp.Target = copyChild(cp, a.Target)
	cp.Value = copyChild(cp, a.Value)
	return cp
}

// Parenthesized wraps an expression in "(...)" , e.g. to preserve grouping
// that the parser saw explicitly. Not the same as a 1-ary tuple (spec §4.1).
type Parenthesized struct {
	base
	Inner Expression
}

func NewParenthesized(pos source.Position, inner Expression) *Parenthesized {
	e := &Parenthesized{base: base{pos: pos}, Inner: inner}
	Attach(e, inner)
	return e
}

func (p *Parenthesized) String() string { return "(" + p.Inner.String() + ")" }

func (p *Parenthesized) Equal(other Expression) bool {
	o, ok := other.(*Parenthesized)
	return ok && exprEqual(p.Inner, o.Inner)
}

func (p *Parenthesized) Copy() Expression {
	cp := &Parenthesized{base: base{pos: p.pos}}
	cp.Inner = copyChild(cp, p.Inner)
	return cp
}

// ClosureParam is one parameter of a BlockLiteral.
type ClosureParam struct {
	Name string
	Type swifttype.Type // may be nil if inferred
}

// BlockLiteral is a Swift closure expression: "{ (params) -> Ret in body }".
type BlockLiteral struct {
	base
	Parameters []ClosureParam
	ReturnType swifttype.Type // nil if omitted/inferred
	Body       []Statement
}

func NewBlockLiteral(pos source.Position, params []ClosureParam, ret swifttype.Type, body []Statement) *BlockLiteral {
	e := &BlockLiteral{base: base{pos: pos}, Parameters: params, ReturnType: ret, Body: body}
	for _, s := range body {
		AttachStmt(e, s)
	}
	return e
}

func (b *BlockLiteral) String() string {
	parts := make([]string, len(b.Parameters))
	for i, p := range b.Parameters {
		parts[i] = p.Name
	}
	return "{ (" + strings.Join(parts, ", ") + ") in ... }"
}

func (b *BlockLiteral) Equal(other Expression) bool {
	o, ok := other.(*BlockLiteral)
	if !ok || len(b.Parameters) != len(o.Parameters) || len(b.Body) != len(o.Body) {
		return false
	}
	for i, p := range b.Parameters {
		op := o.Parameters[i]
		if p.Name != op.Name || !swifttype.Equal(p.Type, op.Type) {
			return false
		}
	}
	if !swifttype.Equal(b.ReturnType, o.ReturnType) {
		return false
	}
	for i, s := range b.Body {
		if !s.Equal(o.Body[i]) {
			return false
		}
	}
	return true
}

func (b *BlockLiteral) Copy() Expression {
	cp := &BlockLiteral{base: base{pos: b.pos}, Parameters: append([]ClosureParam(nil), b.Parameters...), ReturnType: b.ReturnType}
	body := make([]Statement, len(b.Body))
	for i, s := range b.Body {
		sc := s.Copy()
		AttachStmt(cp, sc)
		body[i] = sc
	}
	cp.Body = body
	return cp
}

// TypeCheckExpression is "expr is Type".
type TypeCheckExpression struct {
	base
	Expr        Expression
	CheckedType swifttype.Type
}

func NewTypeCheckExpression(pos source.Position, expr Expression, checked swifttype.Type) *TypeCheckExpression {
	e := &TypeCheckExpression{base: base{pos: pos}, Expr: expr, CheckedType: checked}
	Attach(e, expr)
	return e
}

func (t *TypeCheckExpression) String() string {
	return fmt.Sprintf("(%s is %s)", t.Expr.String(), t.CheckedType.String())
}

func (t *TypeCheckExpression) Equal(other Expression) bool {
	o, ok := other.(*TypeCheckExpression)
	return ok && exprEqual(t.Expr, o.Expr) && swifttype.Equal(t.CheckedType, o.CheckedType)
}

func (t *TypeCheckExpression) Copy() Expression {
	cp := &TypeCheckExpression{base: base{pos: t.pos}, CheckedType: t.CheckedType}
	cp.Expr = copyChild(cp, t.Expr)
	return cp
}

// ConstantExpression models special keyword-identity expressions that are
// not ordinary identifiers — "self" and "super" — since they resolve by
// fixed rule rather than intention-graph lookup.
type ConstantExpression struct {
	base
	Name string
}

func NewConstantExpression(pos source.Position, name string) *ConstantExpression {
	return &ConstantExpression{base: base{pos: pos}, Name: name}
}

func (c *ConstantExpression) String() string { return c.Name }

func (c *ConstantExpression) Equal(other Expression) bool {
	o, ok := other.(*ConstantExpression)
	return ok && o.Name == c.Name
}

func (c *ConstantExpression) Copy() Expression {
	return &ConstantExpression{base: base{pos: c.pos}, Name: c.Name}
}

// SizeofExpression models Objective-C's "sizeof(expr)" / "sizeof(Type)".
// Exactly one of Operand/OperandType is set.
type SizeofExpression struct {
	base
	Operand     Expression
	OperandType swifttype.Type
}

func NewSizeofExprOperand(pos source.Position, operand Expression) *SizeofExpression {
	e := &SizeofExpression{base: base{pos: pos}, Operand: operand}
	Attach(e, operand)
	return e
}

func NewSizeofTypeOperand(pos source.Position, t swifttype.Type) *SizeofExpression {
	return &SizeofExpression{base: base{pos: pos}, OperandType: t}
}

func (s *SizeofExpression) String() string {
	if s.Operand != nil {
		return "sizeof(" + s.Operand.String() + ")"
	}
	return "sizeof(" + s.OperandType.String() + ")"
}

func (s *SizeofExpression) Equal(other Expression) bool {
	o, ok := other.(*SizeofExpression)
	if !ok {
		return false
	}
	if s.Operand != nil || o.Operand != nil {
		return exprEqual(s.Operand, o.Operand)
	}
	return swifttype.Equal(s.OperandType, o.OperandType)
}

func (s *SizeofExpression) Copy() Expression {
	if s.Operand != nil {
		cp := &SizeofExpression{base: base{pos: s.pos}}
		cp.Operand = copyChild(cp, s.Operand)
		return cp
	}
	return &SizeofExpression{base: base{pos: s.pos}, OperandType: s.OperandType}
}
