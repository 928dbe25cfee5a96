package objcparse

import "testing"

func TestParseInterfaceWithPropertyAndMethod(t *testing.T) {
	src := `
@interface MyView : UIView <NSCoding>
@property (nonatomic, strong) NSString *title;
- (void)moveToPoint:(CGPoint)point;
@end
`
	f := NewParser(src).ParseFile()
	if len(f.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(f.Declarations))
	}
	iface, ok := f.Declarations[0].(*InterfaceDecl)
	if !ok {
		t.Fatalf("expected *InterfaceDecl, got %T", f.Declarations[0])
	}
	if iface.Name != "MyView" || iface.SuperName != "UIView" {
		t.Fatalf("got name=%q super=%q", iface.Name, iface.SuperName)
	}
	if len(iface.Protocols) != 1 || iface.Protocols[0] != "NSCoding" {
		t.Fatalf("got protocols %v", iface.Protocols)
	}
	if len(iface.Properties) != 1 || iface.Properties[0].Name != "title" {
		t.Fatalf("got properties %+v", iface.Properties)
	}
	if len(iface.Methods) != 1 || iface.Methods[0].Selector[0].Label != "moveToPoint" {
		t.Fatalf("got methods %+v", iface.Methods)
	}
}

func TestParseCategoryAndExtension(t *testing.T) {
	f := NewParser(`@interface MyView (Drawing)
- (void)draw;
@end`).ParseFile()
	iface := f.Declarations[0].(*InterfaceDecl)
	if !iface.IsCategory || iface.CategoryName != "Drawing" {
		t.Fatalf("expected category Drawing, got %+v", iface)
	}

	f2 := NewParser(`@interface MyView ()
@property (nonatomic) BOOL loaded;
@end`).ParseFile()
	iface2 := f2.Declarations[0].(*InterfaceDecl)
	if !iface2.IsExtension {
		t.Fatalf("expected class extension")
	}
}

func TestParseProtocolOptionalSection(t *testing.T) {
	src := `
@protocol MyDelegate <NSObject>
- (void)required1;
@optional
- (void)optional1;
@end
`
	f := NewParser(src).ParseFile()
	proto := f.Declarations[0].(*ProtocolDecl)
	if len(proto.RequiredMethods) != 1 || proto.RequiredMethods[0].Selector[0].Label != "required1" {
		t.Fatalf("got required %+v", proto.RequiredMethods)
	}
	if len(proto.OptionalMethods) != 1 || !proto.OptionalMethods[0].IsOptional {
		t.Fatalf("got optional %+v", proto.OptionalMethods)
	}
}

func TestParseNSEnum(t *testing.T) {
	src := `typedef NS_ENUM(NSInteger, MyStyle) {
  MyStyleNone,
  MyStyleBold
};`
	f := NewParser(src).ParseFile()
	e := f.Declarations[0].(*EnumDecl)
	if e.Name != "MyStyle" || e.IsOptionSet {
		t.Fatalf("got %+v", e)
	}
	if len(e.Cases) != 2 || e.Cases[0] != "MyStyleNone" {
		t.Fatalf("got cases %v", e.Cases)
	}
}

func TestParseNSOptions(t *testing.T) {
	f := NewParser(`typedef NS_OPTIONS(NSUInteger, MyOptions) { MyOptionA };`).ParseFile()
	e := f.Declarations[0].(*EnumDecl)
	if !e.IsOptionSet {
		t.Fatalf("expected option set")
	}
}

func TestParseIVarVisibilitySections(t *testing.T) {
	src := `
@interface MyView : UIView {
@private
  int _count;
@protected
  NSString *_name;
}
@end
`
	f := NewParser(src).ParseFile()
	iface := f.Declarations[0].(*InterfaceDecl)
	if len(iface.IVars) != 2 {
		t.Fatalf("got ivars %+v", iface.IVars)
	}
	if iface.IVars[0].Visibility != IVarPrivate || iface.IVars[1].Visibility != IVarProtected {
		t.Fatalf("got visibilities %v %v", iface.IVars[0].Visibility, iface.IVars[1].Visibility)
	}
}

func TestParseAssumeNonnullRegion(t *testing.T) {
	src := `
NS_ASSUME_NONNULL_BEGIN
@interface MyView : UIView
@property (nonatomic, strong) NSString *title;
@end
NS_ASSUME_NONNULL_END
`
	f := NewParser(src).ParseFile()
	iface := f.Declarations[0].(*InterfaceDecl)
	if !iface.Properties[0].AssumedNonnull {
		t.Fatalf("expected property to be inside assumed-nonnull region")
	}
}

func TestParseImplementationSkipsMethodBodies(t *testing.T) {
	src := `
@implementation MyView
- (void)draw {
  int x = 1;
  if (x) { x = 2; }
}
@end
`
	f := NewParser(src).ParseFile()
	impl := f.Declarations[0].(*ImplementationDecl)
	if len(impl.Methods) != 1 || impl.Methods[0].Selector[0].Label != "draw" {
		t.Fatalf("got methods %+v", impl.Methods)
	}
}

func TestParseGetterSetterAttributes(t *testing.T) {
	f := NewParser(`@interface MyView : UIView
@property (nonatomic, getter=isEnabled) BOOL enabled;
@end`).ParseFile()
	iface := f.Declarations[0].(*InterfaceDecl)
	if iface.Properties[0].GetterName != "isEnabled" {
		t.Fatalf("got getter %q", iface.Properties[0].GetterName)
	}
}
