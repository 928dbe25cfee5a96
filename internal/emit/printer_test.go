package emit

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/objc2swift/transpiler/internal/ast"
	"github.com/objc2swift/transpiler/internal/intention"
	"github.com/objc2swift/transpiler/internal/objcparse"
	"github.com/objc2swift/transpiler/internal/source"
)

func graphFromSource(t *testing.T, src string) *intention.Graph {
	t.Helper()
	f := objcparse.NewParser(src).ParseFile()
	g := intention.NewGraph()
	if errs := intention.NewCollector(g).CollectFile(f); len(errs) != 0 {
		t.Fatalf("unexpected collect errors: %v", errs)
	}
	return g
}

func TestPrintGraphRendersClassWithPropertyAndMethod(t *testing.T) {
	g := graphFromSource(t, `
@interface MyView : UIView <NSCoding>
@property (nonatomic, strong) NSString *title;
- (void)moveToPoint:(CGPoint)point;
@end
`)
	out := NewPrinter().PrintGraph(g)
	snaps.MatchSnapshot(t, "class_with_property_and_method", out)
}

func TestPrintGraphRendersProtocol(t *testing.T) {
	g := graphFromSource(t, `
@protocol MyDelegate <NSObject>
- (void)required1;
@optional
- (void)optional1;
@end
`)
	out := NewPrinter().PrintGraph(g)
	snaps.MatchSnapshot(t, "protocol_with_required_and_optional", out)
}

func TestPrintGraphRendersNSEnum(t *testing.T) {
	g := graphFromSource(t, `typedef NS_ENUM(NSInteger, MyStyle) {
  MyStyleNone,
  MyStyleBold
};`)
	out := NewPrinter().PrintGraph(g)
	snaps.MatchSnapshot(t, "ns_enum", out)
}

func TestPrintGraphRendersNSOptionsAsOptionSet(t *testing.T) {
	g := graphFromSource(t, `typedef NS_OPTIONS(NSUInteger, MyOptions) { MyOptionA };`)
	out := NewPrinter().PrintGraph(g)
	snaps.MatchSnapshot(t, "ns_options", out)
}

func sampleIfStatement() *ast.IfStatement {
	var zeroPos source.Position
	cond := ast.NewIdentifier(zeroPos, "loaded")
	then := []ast.Statement{
		ast.NewExpressionStatement(zeroPos, ast.NewIdentifier(zeroPos, "draw")),
	}
	els := []ast.Statement{
		ast.NewReturnStatement(zeroPos, nil),
	}
	return ast.NewIfStatement(zeroPos, cond, nil, then, els)
}

func TestWriteIfStatementWithElse(t *testing.T) {
	p := NewPrinter()
	p.Write(sampleIfStatement())
	snaps.MatchSnapshot(t, "if_else_statement", p.String())
}
