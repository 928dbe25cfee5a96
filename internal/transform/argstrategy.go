// Package transform implements the function invocation transformer engine
// (spec §4.5) and the expression-pass fixpoint pipeline (spec §4.6).
//
// ArgStrategy is modelled the way other_examples/martianoff-gala's postfix
// transformer builds new call expressions from a resolved-type-aware
// source tree (dispatch by suffix kind, rebuild a call node arg-by-arg),
// and the pipeline's ordered-pass shape is grounded on the teacher's
// internal/semantic.PassManager (see pipeline.go).
package transform

import "github.com/objc2swift/transpiler/internal/ast"

// produced is what one ArgStrategy yields for one target-argument slot.
type produced struct {
	expr     ast.Expression
	label    string
	hasLabel bool
	omit     bool
}

// ArgStrategy is the spec §4.5 sum type describing how one target argument
// is produced from the source call's arguments.
type ArgStrategy interface {
	argStrategy()

	// consumeCount is how many positional source arguments this strategy
	// advances the cursor by (0 for strategies that reference an argument
	// index explicitly rather than positionally).
	consumeCount() int

	// maxIndexReferenced is the highest source-argument index this
	// strategy reads directly, or -1 if none (used to derive
	// requiredArgumentCount).
	maxIndexReferenced() int

	produce(sourceArgs []ast.Expression, cursor int) produced
}

// AsIs consumes one source argument in positional order, unlabeled.
type AsIs struct{}

func (AsIs) argStrategy()          {}
func (AsIs) consumeCount() int      { return 1 }
func (AsIs) maxIndexReferenced() int { return -1 }
func (AsIs) produce(src []ast.Expression, cursor int) produced {
	return produced{expr: src[cursor]}
}

// FromArgIndex references source argument i directly without advancing
// the positional cursor.
type FromArgIndex struct{ Index int }

func (FromArgIndex) argStrategy() {}
func (f FromArgIndex) consumeCount() int      { return 0 }
func (f FromArgIndex) maxIndexReferenced() int { return f.Index }
func (f FromArgIndex) produce(src []ast.Expression, cursor int) produced {
	return produced{expr: src[f.Index]}
}

// Fixed synthesizes an expression without consuming any source argument.
type Fixed struct{ Make func() ast.Expression }

func (Fixed) argStrategy() {}
func (Fixed) consumeCount() int      { return 0 }
func (Fixed) maxIndexReferenced() int { return -1 }
func (f Fixed) produce(src []ast.Expression, cursor int) produced {
	return produced{expr: f.Make()}
}

// MergingArguments picks source arguments i and j (not necessarily the
// next two positional slots) and combines them with Combine, but occupies
// two positional slots per spec §4.5 ("2 positional slots, but picks from
// source indices i, j").
type MergingArguments struct {
	I, J    int
	Combine func(a, b ast.Expression) ast.Expression
}

func (MergingArguments) argStrategy() {}
func (m MergingArguments) consumeCount() int { return 2 }
func (m MergingArguments) maxIndexReferenced() int {
	if m.I > m.J {
		return m.I
	}
	return m.J
}
func (m MergingArguments) produce(src []ast.Expression, cursor int) produced {
	return produced{expr: m.Combine(src[m.I], src[m.J])}
}

// Transformed wraps Inner's produced expression with Fn.
type Transformed struct {
	Fn    func(ast.Expression) ast.Expression
	Inner ArgStrategy
}

func (Transformed) argStrategy() {}
func (t Transformed) consumeCount() int      { return t.Inner.consumeCount() }
func (t Transformed) maxIndexReferenced() int { return t.Inner.maxIndexReferenced() }
func (t Transformed) produce(src []ast.Expression, cursor int) produced {
	p := t.Inner.produce(src, cursor)
	if p.omit {
		return p
	}
	p.expr = t.Fn(p.expr)
	return p
}

// OmitIf drops the argument entirely when Inner's produced expression is
// structurally equal to Expr (spec §4.5's omitIf(e, inner)). Per the
// resolved open question (spec §9), a merging strategy wrapped in OmitIf
// still consumes its two source indices regardless of whether the result
// is omitted.
type OmitIf struct {
	Expr  ast.Expression
	Inner ArgStrategy
}

func (OmitIf) argStrategy() {}
func (o OmitIf) consumeCount() int      { return o.Inner.consumeCount() }
func (o OmitIf) maxIndexReferenced() int { return o.Inner.maxIndexReferenced() }
func (o OmitIf) produce(src []ast.Expression, cursor int) produced {
	p := o.Inner.produce(src, cursor)
	if !p.omit && p.expr.Equal(o.Expr) {
		p.omit = true
	}
	return p
}

// Labeled sets the destination argument's label.
type Labeled struct {
	Label string
	Inner ArgStrategy
}

func (Labeled) argStrategy() {}
func (l Labeled) consumeCount() int      { return l.Inner.consumeCount() }
func (l Labeled) maxIndexReferenced() int { return l.Inner.maxIndexReferenced() }
func (l Labeled) produce(src []ast.Expression, cursor int) produced {
	p := l.Inner.produce(src, cursor)
	if !p.omit {
		p.label = l.Label
		p.hasLabel = true
	}
	return p
}

// labeled is a small convenience constructor matching the lower-case
// notation used by spec §8.3's concrete scenarios, e.g. labeled("x", asIs).
func labeled(label string, inner ArgStrategy) ArgStrategy {
	return Labeled{Label: label, Inner: inner}
}

// mergingArguments mirrors the scenario notation mergingArguments(i, j, f).
func mergingArguments(i, j int, combine func(a, b ast.Expression) ast.Expression) ArgStrategy {
	return MergingArguments{I: i, J: j, Combine: combine}
}
