package transform

import "github.com/objc2swift/transpiler/internal/ast"

// TargetKind distinguishes the three idiomatic rewrite shapes (spec §4.5).
type TargetKind int

const (
	TargetMethod TargetKind = iota
	TargetPropertyGetter
	TargetPropertySetter
)

// Target is the spec §4.5 sum type: Method | PropertyGetter | PropertySetter.
type Target struct {
	Kind TargetKind

	// TargetMethod fields.
	Name                  string
	FirstArgBecomesReceiver bool
	Args                  []ArgStrategy

	// TargetPropertyGetter / TargetPropertySetter share Name for the
	// property name being accessed.
}

// NewMethodTarget builds a Method target.
func NewMethodTarget(name string, firstArgBecomesReceiver bool, args ...ArgStrategy) Target {
	return Target{Kind: TargetMethod, Name: name, FirstArgBecomesReceiver: firstArgBecomesReceiver, Args: args}
}

// NewPropertyGetterTarget builds a PropertyGetter target.
func NewPropertyGetterTarget(name string) Target {
	return Target{Kind: TargetPropertyGetter, Name: name}
}

// NewPropertySetterTarget builds a PropertySetter target.
func NewPropertySetterTarget(name string) Target {
	return Target{Kind: TargetPropertySetter, Name: name}
}

// requiredArgumentCount derives the call arity a matching postfix
// expression must have (spec §4.5 "Derived requiredArgumentCount").
func (t Target) requiredArgumentCount() int {
	switch t.Kind {
	case TargetPropertyGetter:
		return 1
	case TargetPropertySetter:
		return 2
	default:
		sum := 0
		maxRef := -1
		for _, a := range t.Args {
			sum += a.consumeCount()
			if m := a.maxIndexReferenced(); m > maxRef {
				maxRef = m
			}
		}
		count := sum
		if maxRef+1 > count {
			count = maxRef + 1
		}
		if t.FirstArgBecomesReceiver {
			count++
		}
		return count
	}
}

// Transformer is a declarative invocation rewrite: recognize a free
// function call named ObjcFunctionName and rewrite it per Target
// (spec §4.5).
type Transformer struct {
	ObjcFunctionName string
	Target           Target
}

// RequiredArgumentCount exposes the derived arity (spec §4.5).
func (t *Transformer) RequiredArgumentCount() int { return t.Target.requiredArgumentCount() }

// CanApply reports whether p is Identifier(ObjcFunctionName) followed by
// exactly one function-call postfix suffix whose argument count equals
// RequiredArgumentCount (spec §4.5 "Matching predicate canApply").
func (t *Transformer) CanApply(p *ast.PostfixExpression) bool {
	id, ok := p.Base.(*ast.Identifier)
	if !ok || id.Name != t.ObjcFunctionName {
		return false
	}
	if len(p.Suffixes) != 1 || p.Suffixes[0].Kind != ast.SuffixCall {
		return false
	}
	return len(p.Suffixes[0].Arguments) == t.RequiredArgumentCount()
}

// Apply rewrites p per Target, returning the new expression and true, or
// (nil, false) if CanApply(p) is false. The returned expression carries
// the same ResolvedType as p (spec §4.5/§8: "the returned expression's
// resolvedType equals the original postfix's resolvedType").
func (t *Transformer) Apply(p *ast.PostfixExpression) (ast.Expression, bool) {
	if !t.CanApply(p) {
		return nil, false
	}
	sourceArgs := make([]ast.Expression, len(p.Suffixes[0].Arguments))
	for i, a := range p.Suffixes[0].Arguments {
		sourceArgs[i] = a.Value
	}

	var result ast.Expression
	switch t.Target.Kind {
	case TargetPropertyGetter:
		result = ast.NewPostfixExpression(p.Pos(), sourceArgs[0], []ast.PostfixSuffix{
			{Kind: ast.SuffixMember, Member: t.Target.Name},
		})
	case TargetPropertySetter:
		member := ast.NewPostfixExpression(p.Pos(), sourceArgs[0], []ast.PostfixSuffix{
			{Kind: ast.SuffixMember, Member: t.Target.Name},
		})
		result = ast.NewAssignmentExpression(p.Pos(), "", member, sourceArgs[1])
	default:
		result = t.applyMethod(p, sourceArgs)
	}
	result.SetResolvedType(p.ResolvedType())
	return result, true
}

func (t *Transformer) applyMethod(p *ast.PostfixExpression, sourceArgs []ast.Expression) ast.Expression {
	remaining := sourceArgs
	var receiver ast.Expression
	if t.Target.FirstArgBecomesReceiver {
		receiver = sourceArgs[0]
		remaining = sourceArgs[1:]
	}

	arguments := make([]ast.Argument, 0, len(t.Target.Args))
	cursor := 0
	for _, strategy := range t.Target.Args {
		pr := strategy.produce(remaining, cursor)
		cursor += strategy.consumeCount()
		if pr.omit {
			continue
		}
		arguments = append(arguments, ast.Argument{Label: pr.label, HasLabel: pr.hasLabel, Value: pr.expr})
	}

	callSuffix := ast.PostfixSuffix{Kind: ast.SuffixCall, Arguments: arguments}
	if receiver != nil {
		return ast.NewPostfixExpression(p.Pos(), receiver, []ast.PostfixSuffix{
			{Kind: ast.SuffixMember, Member: t.Target.Name},
			callSuffix,
		})
	}
	return ast.NewPostfixExpression(p.Pos(), ast.NewIdentifier(p.Pos(), t.Target.Name), []ast.PostfixSuffix{callSuffix})
}
