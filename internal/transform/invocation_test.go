package transform

import (
	"testing"

	"github.com/objc2swift/transpiler/internal/ast"
	"github.com/objc2swift/transpiler/internal/source"
)

var zeroPos = source.Position{Line: 1, Column: 1}

func call(name string, args ...ast.Expression) *ast.PostfixExpression {
	arguments := make([]ast.Argument, len(args))
	for i, a := range args {
		arguments[i] = ast.Argument{Value: a}
	}
	return ast.NewPostfixExpression(zeroPos, ast.NewIdentifier(zeroPos, name), []ast.PostfixSuffix{
		{Kind: ast.SuffixCall, Arguments: arguments},
	})
}

// Scenario 1 (spec §8.3): CGPointMake(1, 2) -> CGPoint(x: 1, y: 2).
func TestApplyCGPointMake(t *testing.T) {
	tr := &Transformer{
		ObjcFunctionName: "CGPointMake",
		Target: NewMethodTarget("CGPoint", false,
			labeled("x", AsIs{}),
			labeled("y", AsIs{}),
		),
	}

	one := ast.NewScalarLiteral(zeroPos, ast.LiteralInteger, "1")
	two := ast.NewScalarLiteral(zeroPos, ast.LiteralInteger, "2")
	p := call("CGPointMake", one, two)

	if !tr.CanApply(p) {
		t.Fatalf("expected transformer to apply to CGPointMake(1, 2)")
	}
	result, ok := tr.Apply(p)
	if !ok {
		t.Fatalf("expected Apply to succeed")
	}
	if got, want := result.String(), "CGPoint(x: 1, y: 2)"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

// Scenario 2 (spec §8.3): CGPathMoveToPoint(path, transform, x, y) ->
// path.move(to: CGPoint(x: x, y: y)), discarding the transform argument.
func TestApplyCGPathMoveToPoint(t *testing.T) {
	tr := &Transformer{
		ObjcFunctionName: "CGPathMoveToPoint",
		Target: NewMethodTarget("move", true,
			labeled("to", mergingArguments(1, 2, func(x, y ast.Expression) ast.Expression {
				return call("CGPoint", x, y)
			})),
		),
	}

	path := ast.NewIdentifier(zeroPos, "path")
	transform := ast.NewIdentifier(zeroPos, "transform")
	x := ast.NewIdentifier(zeroPos, "x")
	y := ast.NewIdentifier(zeroPos, "y")
	p := call("CGPathMoveToPoint", path, transform, x, y)

	if !tr.CanApply(p) {
		t.Fatalf("expected transformer to apply to CGPathMoveToPoint with 4 args")
	}
	result, ok := tr.Apply(p)
	if !ok {
		t.Fatalf("expected Apply to succeed")
	}
	if got, want := result.String(), "path.move(to: CGPoint(x, y))"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRequiredArgumentCountAddsReceiverSlot(t *testing.T) {
	tr := &Transformer{
		ObjcFunctionName: "CGPathMoveToPoint",
		Target: NewMethodTarget("move", true,
			mergingArguments(0, 1, func(a, b ast.Expression) ast.Expression { return a }),
		),
	}
	if got, want := tr.RequiredArgumentCount(), 3; got != want {
		t.Fatalf("got %d want %d", got, want)
	}
}

func TestPropertyGetterAndSetter(t *testing.T) {
	getter := &Transformer{ObjcFunctionName: "CGRectGetWidth", Target: NewPropertyGetterTarget("width")}
	rect := ast.NewIdentifier(zeroPos, "rect")
	p := call("CGRectGetWidth", rect)
	if !getter.CanApply(p) {
		t.Fatalf("expected getter to apply")
	}
	result, ok := getter.Apply(p)
	if !ok || result.String() != "rect.width" {
		t.Fatalf("got %q", result.String())
	}

	setter := &Transformer{ObjcFunctionName: "CGRectSetWidth", Target: NewPropertySetterTarget("width")}
	newWidth := ast.NewScalarLiteral(zeroPos, ast.LiteralInteger, "5")
	sp := call("CGRectSetWidth", rect, newWidth)
	if !setter.CanApply(sp) {
		t.Fatalf("expected setter to apply")
	}
	sresult, ok := setter.Apply(sp)
	if !ok || sresult.String() != "rect.width = 5" {
		t.Fatalf("got %q", sresult.String())
	}
}

func TestRegistryFirstRegisteredWins(t *testing.T) {
	r := NewRegistry()
	first := &Transformer{ObjcFunctionName: "Foo", Target: NewMethodTarget("first", false, AsIs{})}
	second := &Transformer{ObjcFunctionName: "Foo", Target: NewMethodTarget("second", false, AsIs{})}
	r.Register(first)
	r.Register(second)

	arg := ast.NewIdentifier(zeroPos, "a")
	p := call("Foo", arg)
	result, ok := r.Apply(p)
	if !ok {
		t.Fatalf("expected registry to apply a matching transformer")
	}
	if got, want := result.String(), "first(a)"; got != want {
		t.Fatalf("got %q want %q — first-registered transformer must win on ambiguous match", got, want)
	}
}
