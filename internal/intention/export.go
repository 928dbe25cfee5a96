package intention

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/objc2swift/transpiler/internal/swifttype"
)

// SortedNames returns every registered name in locale-aware collation order,
// rather than the graph's declaration order or a byte-wise string sort —
// diagnostic listings and JSON export both want a deterministic order a
// human reader finds alphabetical regardless of which script a class name
// happens to mix in (spec §9: export order must be reproducible across
// runs, independent of Go's map iteration).
func (g *Graph) SortedNames() []string {
	names := make([]string, 0, len(g.order))
	seen := make(map[string]bool, len(g.order))
	for _, n := range g.order {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	col := collate.New(language.Und)
	col.SortStrings(names)
	return names
}

// exportRecord is the JSON projection of one Intention, flattened to plain
// strings so swifttype.Type values (an interface) serialize as their
// rendered Swift spelling rather than needing their own marshaler.
type exportRecord struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	ParentName string `json:"parentName,omitempty"`
	Access     string `json:"access"`
	SuperName  string `json:"superName,omitempty"`
	ValueType  string `json:"valueType,omitempty"`
	RawType    string `json:"rawType,omitempty"`
	Signature  string `json:"signature,omitempty"`
}

// ExportJSON renders every intention in the graph as a JSON array, sorted
// by SortedNames, for external tooling (spec §9's "machine-readable export
// surface") and for Query below.
func (g *Graph) ExportJSON() ([]byte, error) {
	records := make([]exportRecord, 0, len(g.byName))
	for _, name := range g.SortedNames() {
		i := g.byName[name]
		rec := exportRecord{
			Name:       i.Name,
			Kind:       i.Kind.String(),
			ParentName: i.ParentName,
			Access:     i.Access.String(),
			SuperName:  i.SuperName,
		}
		if i.ValueType != nil {
			rec.ValueType = i.ValueType.String()
		}
		if i.RawType != nil {
			rec.RawType = i.RawType.String()
		}
		if i.Signature.ReturnType != nil || len(i.Signature.Parameters) != 0 {
			rec.Signature = signatureString(i.Signature)
		}
		records = append(records, rec)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("intention: export json: %w", err)
	}
	return data, nil
}

// signatureString renders a FunctionSignature for export; FunctionSignature
// itself has no String method (it's compared structurally via Equals, not
// displayed), so export builds the Swift-ish "name(label: Type, ...) -> Ret"
// form here rather than adding a display method the rest of the package
// never needs.
func signatureString(sig swifttype.FunctionSignature) string {
	parts := make([]string, len(sig.Parameters))
	for i, p := range sig.Parameters {
		label := p.Label
		if label == "" {
			label = p.Name
		}
		typeName := "_"
		if p.Type != nil {
			typeName = p.Type.String()
		}
		parts[i] = label + ": " + typeName
	}
	ret := "Void"
	if sig.ReturnType != nil {
		ret = sig.ReturnType.String()
	}
	return sig.Name + "(" + strings.Join(parts, ", ") + ") -> " + ret
}

// Query runs a gjson path expression against exported, e.g. "#(kind==class)#.name"
// to list every class name, or "0.signature" for the first record's
// signature text. It's the read side of the export surface ExportJSON
// produces — a CLI subcommand can expose this directly without writing its
// own JSON-path evaluator (spec §9).
func Query(exported []byte, path string) gjson.Result {
	return gjson.GetBytes(exported, path)
}
