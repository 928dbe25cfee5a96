package ast

import (
	"strings"

	"github.com/objc2swift/transpiler/internal/source"
)

func (*IdentifierPattern) patternNode()       {}
func (*WildcardPattern) patternNode()         {}
func (*ExpressionPattern) patternNode()       {}
func (*OptionalBindingPattern) patternNode()  {}
func (*TuplePattern) patternNode()            {}

type patternBase struct {
	pos source.Position
}

func (p patternBase) Pos() source.Position { return p.pos }

// IdentifierPattern binds the matched value to a name, e.g. "case let x:".
type IdentifierPattern struct {
	patternBase
	Name string
}

func NewIdentifierPattern(pos source.Position, name string) *IdentifierPattern {
	return &IdentifierPattern{patternBase: patternBase{pos: pos}, Name: name}
}

func (p *IdentifierPattern) String() string { return p.Name }

func (p *IdentifierPattern) Equal(other Pattern) bool {
	o, ok := other.(*IdentifierPattern)
	return ok && o.Name == p.Name
}

func (p *IdentifierPattern) Copy() Pattern {
	return &IdentifierPattern{patternBase: patternBase{pos: p.pos}, Name: p.Name}
}

// WildcardPattern is "_", matching anything without binding.
type WildcardPattern struct {
	patternBase
}

func NewWildcardPattern(pos source.Position) *WildcardPattern {
	return &WildcardPattern{patternBase: patternBase{pos: pos}}
}

func (p *WildcardPattern) String() string { return "_" }

func (p *WildcardPattern) Equal(other Pattern) bool {
	_, ok := other.(*WildcardPattern)
	return ok
}

func (p *WildcardPattern) Copy() Pattern {
	return &WildcardPattern{patternBase: patternBase{pos: p.pos}}
}

// ExpressionPattern matches a case value against a literal/constant expression.
type ExpressionPattern struct {
	patternBase
	Expr Expression
}

func NewExpressionPattern(pos source.Position, expr Expression) *ExpressionPattern {
	return &ExpressionPattern{patternBase: patternBase{pos: pos}, Expr: expr}
}

func (p *ExpressionPattern) String() string { return p.Expr.String() }

func (p *ExpressionPattern) Equal(other Pattern) bool {
	o, ok := other.(*ExpressionPattern)
	return ok && exprEqual(p.Expr, o.Expr)
}

func (p *ExpressionPattern) Copy() Pattern {
	return &ExpressionPattern{patternBase: patternBase{pos: p.pos}, Expr: p.Expr.Copy()}
}

// OptionalBindingPattern models "if let x = ..." / "if var x = ...".
type OptionalBindingPattern struct {
	patternBase
	Name  string
	IsVar bool
}

func NewOptionalBindingPattern(pos source.Position, name string, isVar bool) *OptionalBindingPattern {
	return &OptionalBindingPattern{patternBase: patternBase{pos: pos}, Name: name, IsVar: isVar}
}

func (p *OptionalBindingPattern) String() string {
	kw := "let"
	if p.IsVar {
		kw = "var"
	}
	return kw + " " + p.Name
}

func (p *OptionalBindingPattern) Equal(other Pattern) bool {
	o, ok := other.(*OptionalBindingPattern)
	return ok && o.Name == p.Name && o.IsVar == p.IsVar
}

func (p *OptionalBindingPattern) Copy() Pattern {
	return &OptionalBindingPattern{patternBase: patternBase{pos: p.pos}, Name: p.Name, IsVar: p.IsVar}
}

// TuplePattern destructures a tuple value element-by-element.
type TuplePattern struct {
	patternBase
	Elements []Pattern
}

func NewTuplePattern(pos source.Position, elements []Pattern) *TuplePattern {
	return &TuplePattern{patternBase: patternBase{pos: pos}, Elements: elements}
}

func (p *TuplePattern) String() string {
	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p *TuplePattern) Equal(other Pattern) bool {
	o, ok := other.(*TuplePattern)
	if !ok || len(p.Elements) != len(o.Elements) {
		return false
	}
	for i, e := range p.Elements {
		if !e.Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

func (p *TuplePattern) Copy() Pattern {
	elems := make([]Pattern, len(p.Elements))
	for i, e := range p.Elements {
		elems[i] = e.Copy()
	}
	return &TuplePattern{patternBase: patternBase{pos: p.pos}, Elements: elems}
}
