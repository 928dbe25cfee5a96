package intention

import (
	"github.com/objc2swift/transpiler/internal/objcparse"
	"github.com/objc2swift/transpiler/internal/swifttype"
)

// Collector walks a (peripheral, externally-supplied) Objective-C parse
// tree and populates a Graph with one Intention per declaration, bridging
// every ObjcType it encounters to its Swift equivalent via
// swifttype.BridgeObjcType (spec §4.2).
type Collector struct {
	Graph *Graph
}

// NewCollector builds a Collector over the given (unfrozen) Graph.
func NewCollector(g *Graph) *Collector {
	return &Collector{Graph: g}
}

// CollectFile walks every top-level declaration in f, adding Intentions to
// the Collector's Graph, and returns any errors Graph.Add reported (e.g.
// conflicting redeclarations) in declaration order.
func (c *Collector) CollectFile(f *objcparse.File) []error {
	var errs []error
	add := func(i *Intention) {
		if err := c.Graph.Add(i); err != nil {
			errs = append(errs, err)
		}
	}

	for _, d := range f.Declarations {
		switch v := d.(type) {
		case *objcparse.InterfaceDecl:
			c.collectInterface(v, add)
		case *objcparse.ImplementationDecl:
			c.collectImplementation(v, add)
		case *objcparse.ProtocolDecl:
			c.collectProtocol(v, add)
		case *objcparse.EnumDecl:
			c.collectEnum(v, add)
		case *objcparse.TypedefDecl:
			c.collectTypedef(v, add)
		}
	}
	return errs
}

// collectInterface adds (or, for a category/extension, merges into) the
// named class. Categories and extensions carry no type of their own in
// Objective-C — they attach members to an existing class — so they are
// added under the same KindClass, letting Graph.mergeClass fold them
// together (spec §4.2 "class extension categories fold into the existing
// ClassIntention").
func (c *Collector) collectInterface(v *objcparse.InterfaceDecl, add func(*Intention)) {
	add(&Intention{
		Kind:      KindClass,
		Name:      v.Name,
		Access:    AccessInternal,
		SuperName: v.SuperName,
		Protocols: v.Protocols,
		Pos:       v.Pos,
	})
	c.collectMembers(v.Name, v.IVars, v.Properties, v.Methods, nil, add)
}

func (c *Collector) collectImplementation(v *objcparse.ImplementationDecl, add func(*Intention)) {
	add(&Intention{
		Kind:   KindClass,
		Name:   v.Name,
		Access: AccessInternal,
		Pos:    v.Pos,
	})
	c.collectMembers(v.Name, v.IVars, v.Properties, v.Methods, nil, add)
}

func (c *Collector) collectProtocol(v *objcparse.ProtocolDecl, add func(*Intention)) {
	add(&Intention{
		Kind:      KindProtocol,
		Name:      v.Name,
		Access:    AccessInternal,
		Protocols: v.Supers,
		Pos:       v.Pos,
	})
	c.collectMembers(v.Name, nil, v.Properties, v.RequiredMethods, v.OptionalMethods, add)
}

func (c *Collector) collectMembers(parentName string, ivars []*objcparse.IVarDecl, props []*objcparse.PropertyDecl, required, optional []*objcparse.MethodDecl, add func(*Intention)) {
	for _, iv := range ivars {
		add(&Intention{
			Kind:           KindIVar,
			Name:           iv.Name,
			ParentName:     parentName,
			ValueType:      swifttype.BridgeObjcType(iv.Type, iv.AssumedNonnull),
			Ownership:      ownershipForVisibility(iv.Visibility),
			AssumedNonnull: iv.AssumedNonnull,
			Pos:            iv.Pos,
		})
	}
	for _, p := range props {
		add(&Intention{
			Kind:           KindProperty,
			Name:           p.Name,
			ParentName:     parentName,
			ValueType:      swifttype.BridgeObjcType(p.Type, p.AssumedNonnull),
			Ownership:      ownershipForAttrs(p.Attrs),
			GetterName:     p.GetterName,
			SetterName:     p.SetterName,
			IsReadonly:     hasAttr(p.Attrs, objcparse.AttrReadonly),
			AssumedNonnull: p.AssumedNonnull,
			Pos:            p.Pos,
		})
	}
	for _, m := range required {
		add(c.methodIntention(parentName, m))
	}
	for _, m := range optional {
		add(c.methodIntention(parentName, m))
	}
}

func (c *Collector) methodIntention(parentName string, m *objcparse.MethodDecl) *Intention {
	return &Intention{
		Kind:           KindMethod,
		Name:           m.Selector[0].Label,
		ParentName:     parentName,
		Signature:      signatureFromSelector(m),
		IsOptional:     m.IsOptional,
		AssumedNonnull: m.AssumedNonnull,
		Pos:            m.Pos,
	}
}

func signatureFromSelector(m *objcparse.MethodDecl) swifttype.FunctionSignature {
	params := make([]swifttype.Parameter, 0, len(m.Selector))
	for _, piece := range m.Selector {
		if piece.ParamName == "" && len(m.Selector) == 1 {
			continue // zero-argument selector, e.g. "- (void)draw;"
		}
		params = append(params, swifttype.Parameter{
			Label: piece.Label,
			Name:  piece.ParamName,
			Type:  swifttype.BridgeObjcType(piece.ParamType, m.AssumedNonnull),
		})
	}
	return swifttype.FunctionSignature{
		Name:       m.Selector[0].Label,
		Parameters: params,
		ReturnType: swifttype.BridgeObjcType(m.ReturnType, m.AssumedNonnull),
		IsStatic:   m.IsClassMethod,
	}
}

func (c *Collector) collectEnum(v *objcparse.EnumDecl, add func(*Intention)) {
	add(&Intention{
		Kind:        KindEnum,
		Name:        v.Name,
		Access:      AccessInternal,
		IsOptionSet: v.IsOptionSet,
		RawType:     swifttype.BridgeObjcType(v.RawType, true),
		Pos:         v.Pos,
	})
	for _, caseName := range v.Cases {
		add(&Intention{
			Kind:       KindProperty,
			Name:       caseName,
			ParentName: v.Name,
			IsReadonly: true,
		})
	}
}

func (c *Collector) collectTypedef(v *objcparse.TypedefDecl, add func(*Intention)) {
	add(&Intention{
		Kind:        KindTypedef,
		Name:        v.Name,
		Access:      AccessInternal,
		AliasedType: swifttype.BridgeObjcType(v.Aliased, true),
		Pos:         v.Pos,
	})
}

func ownershipForVisibility(v objcparse.IVarVisibility) Ownership {
	return OwnershipStrong
}

func ownershipForAttrs(attrs []objcparse.PropertyAttr) Ownership {
	for _, a := range attrs {
		switch a {
		case objcparse.AttrWeak:
			return OwnershipWeak
		case objcparse.AttrUnsafeUnretained:
			return OwnershipUnownedUnsafe
		}
	}
	return OwnershipStrong
}

func hasAttr(attrs []objcparse.PropertyAttr, want objcparse.PropertyAttr) bool {
	for _, a := range attrs {
		if a == want {
			return true
		}
	}
	return false
}
