package intention

import (
	"testing"

	"github.com/objc2swift/transpiler/internal/swifttype"
)

func TestAddAndLookup(t *testing.T) {
	g := NewGraph()
	cls := &Intention{Kind: KindClass, Name: "MyView"}
	if err := g.Add(cls); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := g.Lookup("MyView")
	if !ok || got != cls {
		t.Fatalf("expected to find MyView")
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	g := NewGraph()
	_ = g.Add(&Intention{Kind: KindClass, Name: "MyView"})
	if _, ok := g.Lookup("myview"); ok {
		t.Fatalf("expected case-sensitive lookup to miss")
	}
}

func TestMembersByParentName(t *testing.T) {
	g := NewGraph()
	_ = g.Add(&Intention{Kind: KindClass, Name: "MyView"})
	_ = g.Add(&Intention{Kind: KindMethod, Name: "draw", ParentName: "MyView"})
	_ = g.Add(&Intention{Kind: KindProperty, Name: "frame", ParentName: "MyView"})
	_ = g.Add(&Intention{Kind: KindMethod, Name: "other", ParentName: "OtherClass"})

	members := g.Members("MyView")
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
}

func TestMergeClassExtensionCategory(t *testing.T) {
	g := NewGraph()
	_ = g.Add(&Intention{Kind: KindClass, Name: "MyView", Protocols: []string{"NSCoding"}})
	err := g.Add(&Intention{Kind: KindClass, Name: "MyView", SuperName: "UIView", Protocols: []string{"UIGestureRecognizerDelegate"}})
	if err != nil {
		t.Fatalf("unexpected merge error: %v", err)
	}
	merged, _ := g.Lookup("MyView")
	if merged.SuperName != "UIView" {
		t.Fatalf("expected super name to be set by merge")
	}
	if len(merged.Protocols) != 2 {
		t.Fatalf("expected protocol lists to union, got %v", merged.Protocols)
	}
}

func TestMergeMethodKeepsAnnotatedSignature(t *testing.T) {
	g := NewGraph()
	annotated := swifttype.FunctionSignature{Name: "doThing", ReturnType: swifttype.NewOptional(swifttype.NewTypeName("NSString"))}
	_ = g.Add(&Intention{Kind: KindMethod, Name: "doThing", ParentName: "MyView", Signature: annotated})

	unannotated := swifttype.FunctionSignature{Name: "doThing"}
	if err := g.Add(&Intention{Kind: KindMethod, Name: "doThing", ParentName: "MyView", Signature: unannotated}); err != nil {
		t.Fatalf("unexpected merge error: %v", err)
	}
	merged, _ := g.Lookup("doThing")
	if merged.Signature.ReturnType == nil {
		t.Fatalf("expected the interface's annotated return type to survive the merge")
	}
}

func TestMergeConflictingKindsErrors(t *testing.T) {
	g := NewGraph()
	_ = g.Add(&Intention{Kind: KindClass, Name: "Foo"})
	if err := g.Add(&Intention{Kind: KindProtocol, Name: "Foo"}); err == nil {
		t.Fatalf("expected an error merging a protocol into a class of the same name")
	}
}

func TestFreezeRejectsFurtherAdds(t *testing.T) {
	g := NewGraph()
	_ = g.Add(&Intention{Kind: KindClass, Name: "Foo"})
	g.Freeze()
	if !g.Frozen() {
		t.Fatalf("expected graph to report frozen")
	}
	if err := g.Add(&Intention{Kind: KindClass, Name: "Bar"}); err == nil {
		t.Fatalf("expected Add to fail once frozen")
	}
}

func TestParentLookupByName(t *testing.T) {
	g := NewGraph()
	cls := &Intention{Kind: KindClass, Name: "MyView"}
	_ = g.Add(cls)
	method := &Intention{Kind: KindMethod, Name: "draw", ParentName: "MyView"}
	_ = g.Add(method)

	parent, ok := g.Parent(method)
	if !ok || parent != cls {
		t.Fatalf("expected parent lookup to find MyView by name")
	}
}
