package objcswift

import (
	"strings"
	"testing"

	"github.com/objc2swift/transpiler/internal/config"
)

func TestTranspileRendersClassDeclaration(t *testing.T) {
	d, err := NewDriver(nil)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}

	result, err := d.Transpile(UnitSource{
		Name: "MyView.h",
		Source: `
@interface MyView : UIView
@property (nonatomic, strong) NSString *title;
- (void)moveToPoint:(CGPoint)point;
@end
`,
	})
	if err != nil {
		t.Fatalf("Transpile: %v", err)
	}
	if result.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
	if !strings.Contains(result.Swift, "class MyView: UIView") {
		t.Fatalf("missing class declaration in output:\n%s", result.Swift)
	}
	if !strings.Contains(result.Swift, "var title: String") {
		t.Fatalf("missing property declaration in output:\n%s", result.Swift)
	}
}

func TestTranspileReportsParseErrorsWithoutPanicking(t *testing.T) {
	d, err := NewDriver(nil)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}

	_, err = d.Transpile(UnitSource{Name: "bad.h", Source: "@interface"})
	if err == nil {
		t.Fatalf("expected an error for malformed input")
	}
}

func TestTranspileEchoesPreprocessorDirectivesAsComments(t *testing.T) {
	d, err := NewDriver(nil)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}

	result, err := d.Transpile(UnitSource{
		Name: "Foo.h",
		Source: `#import <Foundation/Foundation.h>

@interface Foo : NSObject
@end
`,
	})
	if err != nil {
		t.Fatalf("Transpile: %v", err)
	}
	if !strings.Contains(result.Swift, "// #import <Foundation/Foundation.h>") {
		t.Fatalf("expected echoed preprocessor directive, got:\n%s", result.Swift)
	}
}

func TestTranspileAllContinuesPastOneBadUnit(t *testing.T) {
	d, err := NewDriver(config.Default())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}

	results := d.TranspileAll([]UnitSource{
		{Name: "good.h", Source: "@interface Foo : NSObject\n@end\n"},
		{Name: "bad.h", Source: "@interface"},
	})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].HasErrors() {
		t.Fatalf("good.h unexpectedly has errors: %v", results[0].Diagnostics)
	}
	if !results[1].HasErrors() {
		t.Fatalf("bad.h should report an error")
	}
}
