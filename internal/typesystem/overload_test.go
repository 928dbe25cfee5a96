package typesystem

import (
	"testing"

	"github.com/objc2swift/transpiler/internal/ast"
	"github.com/objc2swift/transpiler/internal/intention"
	"github.com/objc2swift/transpiler/internal/swifttype"
)

func sigF(paramType swifttype.Type) swifttype.FunctionSignature {
	return swifttype.FunctionSignature{
		Name:       "f",
		Parameters: []swifttype.Parameter{{Label: "", Name: "x", Type: paramType}},
	}
}

// Scenario 3 (spec §8.3): integer literal prefers Int over Double; float
// literal rejects Int and prefers Double.
func TestOverloadLiteralKindPromotion(t *testing.T) {
	sys := NewDefaultSystem(intention.NewGraph())
	r := NewOverloadResolver(sys)
	sigs := []swifttype.FunctionSignature{sigF(swifttype.NewTypeName("Int")), sigF(swifttype.NewTypeName("Double"))}

	idx, ok := r.Resolve(sigs, []Argument{{IsLiteral: true, LiteralKind: ast.LiteralInteger}})
	if !ok || idx != 0 {
		t.Fatalf("expected integer literal to resolve to index 0, got (%d, %v)", idx, ok)
	}

	idx, ok = r.Resolve(sigs, []Argument{{IsLiteral: true, LiteralKind: ast.LiteralFloat}})
	if !ok || idx != 1 {
		t.Fatalf("expected float literal to resolve to index 1, got (%d, %v)", idx, ok)
	}
}

// Scenario 4 (spec §8.3): exact match pass picks NSString over NSString?
// for a concretely-typed NSString argument, and vice versa.
func TestOverloadExactMatchPass(t *testing.T) {
	sys := NewDefaultSystem(intention.NewGraph())
	r := NewOverloadResolver(sys)
	nsstring := swifttype.NewTypeName("NSString")
	sigs := []swifttype.FunctionSignature{sigF(nsstring), sigF(swifttype.NewOptional(nsstring))}

	idx, ok := r.Resolve(sigs, []Argument{{Type: nsstring}})
	if !ok || idx != 0 {
		t.Fatalf("expected exact match on non-optional NSString to pick index 0, got (%d, %v)", idx, ok)
	}

	idx, ok = r.Resolve(sigs, []Argument{{Type: swifttype.NewOptional(nsstring)}})
	if !ok || idx != 1 {
		t.Fatalf("expected exact match on optional NSString to pick index 1, got (%d, %v)", idx, ok)
	}
}

func TestOverloadEmptySignaturesReturnsNone(t *testing.T) {
	sys := NewDefaultSystem(intention.NewGraph())
	r := NewOverloadResolver(sys)
	if _, ok := r.Resolve(nil, []Argument{{Type: swifttype.NewTypeName("Int")}}); ok {
		t.Fatalf("expected no resolution for an empty signature list")
	}
}

func TestOverloadNoArityMatchReturnsNone(t *testing.T) {
	sys := NewDefaultSystem(intention.NewGraph())
	r := NewOverloadResolver(sys)
	sigs := []swifttype.FunctionSignature{sigF(swifttype.NewTypeName("Int"))}
	if _, ok := r.Resolve(sigs, []Argument{{Type: swifttype.NewTypeName("Int")}, {Type: swifttype.NewTypeName("Int")}}); ok {
		t.Fatalf("expected no resolution when no candidate's arity matches")
	}
}

func TestOverloadCacheReturnsIdenticalResultsAndCanBeEnabled(t *testing.T) {
	sys := NewDefaultSystem(intention.NewGraph())
	r := NewOverloadResolver(sys)
	sigs := []swifttype.FunctionSignature{sigF(swifttype.NewTypeName("Int")), sigF(swifttype.NewTypeName("Double"))}
	args := []Argument{{IsLiteral: true, LiteralKind: ast.LiteralInteger}}

	idxBefore, okBefore := r.Resolve(sigs, args)

	r.Cache().Enable()
	idxFirst, okFirst := r.Resolve(sigs, args)
	idxSecond, okSecond := r.Resolve(sigs, args)

	if idxBefore != idxFirst || okBefore != okFirst {
		t.Fatalf("enabling the cache changed observable results: (%d,%v) vs (%d,%v)", idxBefore, okBefore, idxFirst, okFirst)
	}
	if idxFirst != idxSecond || okFirst != okSecond {
		t.Fatalf("cached resolution differs across calls: (%d,%v) vs (%d,%v)", idxFirst, okFirst, idxSecond, okSecond)
	}
}

func TestOverloadCacheEnableTeardownIdempotent(t *testing.T) {
	c := NewResolutionCache()
	c.Enable()
	c.Enable()
	if !c.Enabled() {
		t.Fatalf("expected cache to be enabled")
	}
	c.Teardown()
	c.Teardown()
	if c.Enabled() {
		t.Fatalf("expected cache to be disabled after teardown")
	}
}

func TestOverloadCacheCachesNegativeResults(t *testing.T) {
	c := NewResolutionCache()
	c.Enable()
	c.Insert("k", -1, false)
	idx, found, ok := c.Lookup("k")
	if !found || ok || idx != -1 {
		t.Fatalf("expected a cached negative result, got (%d,%v,%v)", idx, found, ok)
	}
}
