package swifttype

import "testing"

func TestBridgePrimitives(t *testing.T) {
	if got := BridgeObjcType(ObjcStruct{Name: "NSInteger"}, true); got.String() != "Int" {
		t.Fatalf("got %q", got.String())
	}
	if got := BridgeObjcType(ObjcStruct{Name: "BOOL"}, true); got.String() != "Bool" {
		t.Fatalf("got %q", got.String())
	}
}

func TestBridgeNullablePointerBecomesOptional(t *testing.T) {
	t1 := ObjcPointer{Pointee: ObjcStruct{Name: "NSString"}}
	if got := BridgeObjcType(t1, true).String(); got != "String" {
		t.Fatalf("expected nonnull region to bridge without optional, got %q", got)
	}
	if got := BridgeObjcType(t1, false).String(); got != "String?" {
		t.Fatalf("expected default region to bridge to optional, got %q", got)
	}

	qualified := ObjcQualified{Base: ObjcPointer{Pointee: ObjcStruct{Name: "NSString"}}, Quals: []NullabilityQualifier{QualNullable}}
	if got := BridgeObjcType(qualified, true).String(); got != "String?" {
		t.Fatalf("expected explicit _Nullable to win over assumed-nonnull, got %q", got)
	}
}

func TestBridgeGenericArray(t *testing.T) {
	arr := ObjcGeneric{Name: "NSArray", Args: []ObjcType{ObjcPointer{Pointee: ObjcStruct{Name: "NSString"}}}}
	if got := BridgeObjcType(arr, true).String(); got != "[String]" {
		t.Fatalf("got %q", got)
	}
}

func TestBridgeIDWithProtocols(t *testing.T) {
	id := ObjcID{Protocols: []string{"NSCopying"}}
	if got := BridgeObjcType(id, true).String(); got != "NSCopying" {
		t.Fatalf("got %q", got)
	}
}
