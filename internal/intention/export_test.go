package intention

import (
	"testing"

	"github.com/objc2swift/transpiler/internal/objcparse"
)

func graphFromSourceForExport(t *testing.T, src string) *Graph {
	t.Helper()
	f := objcparse.NewParser(src).ParseFile()
	g := NewGraph()
	if errs := NewCollector(g).CollectFile(f); len(errs) != 0 {
		t.Fatalf("unexpected collect errors: %v", errs)
	}
	return g
}

func TestSortedNamesIsDeterministicAndAlphabetical(t *testing.T) {
	g := graphFromSourceForExport(t, `
@interface Zebra : NSObject
@end
@interface Apple : NSObject
@end
`)
	got := g.SortedNames()
	if len(got) != 2 || got[0] != "Apple" || got[1] != "Zebra" {
		t.Fatalf("got %v, want [Apple Zebra]", got)
	}
}

func TestExportJSONAndQueryRoundTrip(t *testing.T) {
	g := graphFromSourceForExport(t, `
@interface MyView : UIView
@property (nonatomic, strong) NSString *title;
@end
`)
	data, err := g.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	res := Query(data, `#(name=="MyView").superName`)
	if got, want := res.String(), "UIView"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
