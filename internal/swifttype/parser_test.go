package swifttype

import "testing"

func TestParseSimpleNominal(t *testing.T) {
	ty, err := Parse("Int")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty.Key() != NewTypeName("Int").Key() {
		t.Fatalf("got %s", ty.String())
	}
}

func TestParseOptionalAndIUO(t *testing.T) {
	ty, err := Parse("String?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty.String() != "String?" {
		t.Fatalf("got %s", ty.String())
	}

	ty2, err := Parse("String!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty2.String() != "String!" {
		t.Fatalf("got %s", ty2.String())
	}
}

func TestParseDoubleOptionalCollapses(t *testing.T) {
	ty, err := Parse("Int??")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty.String() != "Int?" {
		t.Fatalf("expected Int?? to collapse to Int?, got %s", ty.String())
	}
}

func TestParseGeneric(t *testing.T) {
	ty, err := Parse("Array<Int>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewGeneric("Array", NewTypeName("Int"))
	if ty.Key() != want.Key() {
		t.Fatalf("got %s", ty.String())
	}
}

func TestParseNestedGeneric(t *testing.T) {
	ty, err := Parse("Dictionary<String, Array<Int>>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewGeneric("Dictionary", NewTypeName("String"), NewGeneric("Array", NewTypeName("Int")))
	if ty.Key() != want.Key() {
		t.Fatalf("got %s", ty.String())
	}
}

func TestParseArray(t *testing.T) {
	ty, err := Parse("[Int]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty.Key() != (Array{Element: NewTypeName("Int")}).Key() {
		t.Fatalf("got %s", ty.String())
	}
}

func TestParseDictionary(t *testing.T) {
	ty, err := Parse("[String: Int]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Dictionary{Key_: NewTypeName("String"), Value: NewTypeName("Int")}
	if ty.Key() != want.Key() {
		t.Fatalf("got %s", ty.String())
	}
}

func TestParseVoid(t *testing.T) {
	ty, err := Parse("Void")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsVoid(ty) {
		t.Fatalf("expected Void to parse as the empty tuple, got %s", ty.String())
	}
}

func TestParseEmptyTuple(t *testing.T) {
	ty, err := Parse("()")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsVoid(ty) {
		t.Fatalf("expected () to parse as Void, got %s", ty.String())
	}
}

func TestParseParenthesizedSingleIsNotATuple(t *testing.T) {
	ty, err := Parse("(Int)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty.Key() != NewTypeName("Int").Key() {
		t.Fatalf("expected (Int) to unwrap to Int, got %s", ty.String())
	}
}

func TestParseTuple(t *testing.T) {
	ty, err := Parse("(Int, String)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Tuple{Elements: []Type{NewTypeName("Int"), NewTypeName("String")}}
	if ty.Key() != want.Key() {
		t.Fatalf("got %s", ty.String())
	}
}

// TestParseBlockScenario covers the scenario named in the spec:
// "(A, B) -> C?" -> block(return: optional(nominal("C")), params: [A, B]).
func TestParseBlockScenario(t *testing.T) {
	ty, err := Parse("(A, B) -> C?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	block, ok := ty.(Block)
	if !ok {
		t.Fatalf("expected Block, got %T (%s)", ty, ty.String())
	}
	if len(block.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(block.Parameters))
	}
	if block.Parameters[0].Key() != NewTypeName("A").Key() || block.Parameters[1].Key() != NewTypeName("B").Key() {
		t.Fatalf("unexpected parameter types: %v", block.Parameters)
	}
	wantRet := NewOptional(NewTypeName("C"))
	if block.ReturnType.Key() != wantRet.Key() {
		t.Fatalf("unexpected return type: %s", block.ReturnType.String())
	}
}

func TestParseBlockWithLabelsAndAttributes(t *testing.T) {
	ty, err := Parse("(_ x: Int, y: @escaping (Int) -> Void) -> Bool")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	block, ok := ty.(Block)
	if !ok {
		t.Fatalf("expected Block, got %T", ty)
	}
	if len(block.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(block.Parameters))
	}
	if block.Parameters[0].Key() != NewTypeName("Int").Key() {
		t.Fatalf("expected first parameter Int, got %s", block.Parameters[0].String())
	}
	inner, ok := block.Parameters[1].(Block)
	if !ok {
		t.Fatalf("expected second parameter to be a block type, got %s", block.Parameters[1].String())
	}
	if !IsVoid(inner.ReturnType) {
		t.Fatalf("expected inner block to return Void, got %s", inner.ReturnType.String())
	}
}

func TestParseVariadicRequiresArrow(t *testing.T) {
	_, err := Parse("(Int...)")
	if err == nil {
		t.Fatalf("expected error: variadic tuple without arrow should fail")
	}
}

func TestParseVariadicBecomesArray(t *testing.T) {
	ty, err := Parse("(Int...) -> Void")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	block, ok := ty.(Block)
	if !ok {
		t.Fatalf("expected Block, got %T", ty)
	}
	if len(block.Parameters) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(block.Parameters))
	}
	arr, ok := block.Parameters[0].(Array)
	if !ok {
		t.Fatalf("expected variadic parameter to become an array, got %s", block.Parameters[0].String())
	}
	if arr.Element.Key() != NewTypeName("Int").Key() {
		t.Fatalf("unexpected array element: %s", arr.Element.String())
	}
}

// TestParseProtocolCompositionScenario covers the scenario named in the spec:
// "A & B & C" -> protocolComposition([A, B, C]).
func TestParseProtocolCompositionScenario(t *testing.T) {
	ty, err := Parse("A & B & C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	comp, ok := ty.(ProtocolComposition)
	if !ok {
		t.Fatalf("expected ProtocolComposition, got %T", ty)
	}
	if len(comp.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(comp.Members))
	}
	names := []string{"A", "B", "C"}
	for i, n := range names {
		if comp.Members[i].Key() != NewTypeName(n).Key() {
			t.Fatalf("unexpected member %d: %s", i, comp.Members[i].String())
		}
	}
}

func TestParseMetatypes(t *testing.T) {
	ty, err := Parse("Foo.Type")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := ty.(Metatype)
	if !ok || m.Protocol {
		t.Fatalf("expected non-protocol metatype, got %#v", ty)
	}

	ty2, err := Parse("Foo.Protocol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, ok := ty2.(Metatype)
	if !ok || !m2.Protocol {
		t.Fatalf("expected protocol metatype, got %#v", ty2)
	}
}

func TestParseNestedQualifiedName(t *testing.T) {
	ty, err := Parse("Outer.Inner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nested, ok := ty.(Nested)
	if !ok {
		t.Fatalf("expected Nested, got %T", ty)
	}
	if len(nested.Components) != 2 || nested.Components[0].Name != "Outer" || nested.Components[1].Name != "Inner" {
		t.Fatalf("unexpected components: %v", nested.Components)
	}
}

func TestParseErrorReportsColumn(t *testing.T) {
	_, err := Parse("Array<")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if err.Column <= 0 {
		t.Fatalf("expected a positive column, got %d", err.Column)
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("Int garbage")
	if err == nil {
		t.Fatalf("expected trailing-input error")
	}
}

// TestParseRoundTrip checks Parse(t.String()) == t for representative values,
// as required by the round-trip invariant.
func TestParseRoundTrip(t *testing.T) {
	cases := []Type{
		NewTypeName("Int"),
		NewOptional(NewTypeName("String")),
		NewIUO(NewTypeName("Bool")),
		NewGeneric("Array", NewTypeName("Int")),
		NewGeneric("Dictionary", NewTypeName("String"), NewTypeName("Int")),
		Array{Element: NewTypeName("Int")},
		Dictionary{Key_: NewTypeName("String"), Value: NewTypeName("Int")},
		Tuple{Elements: []Type{NewTypeName("Int"), NewTypeName("String")}},
		Block{Parameters: []Type{NewTypeName("A"), NewTypeName("B")}, ReturnType: NewOptional(NewTypeName("C"))},
		ProtocolComposition{Members: []Type{NewTypeName("A"), NewTypeName("B")}},
		Metatype{Base: NewTypeName("Foo"), Protocol: false},
		Metatype{Base: NewTypeName("Foo"), Protocol: true},
	}

	for _, c := range cases {
		parsed, err := Parse(c.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", c.String(), err)
		}
		if parsed.Key() != c.Key() {
			t.Fatalf("round trip mismatch for %q: got %s", c.String(), parsed.String())
		}
	}
}
