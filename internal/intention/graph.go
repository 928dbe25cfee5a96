package intention

import "fmt"

// Graph is the cross-file symbol table populated during intention
// collection (spec §3/§4.2). Unlike the teacher's SymbolTable, lookups are
// case-sensitive (Swift and Objective-C identifiers both are) and there is
// no scope nesting by enclosing pointer: every intention records its
// enclosing intention's name in ParentName and looks it up in the same flat
// Graph, so resolution never walks an owning-pointer chain (spec §9).
type Graph struct {
	byName map[string]*Intention
	order  []string // declaration order, used for deterministic iteration/diagnostics
	frozen bool
}

// NewGraph creates an empty, mutable Graph.
func NewGraph() *Graph {
	return &Graph{byName: make(map[string]*Intention)}
}

// Add registers an intention. If an intention with the same name already
// exists, Merge is attempted (spec §4.2 "signatures merge" rule for
// @interface/@implementation and class-extension categories); a non-nil
// error means the two intentions could not be merged (distinct kinds, or a
// true duplicate).
func (g *Graph) Add(i *Intention) error {
	if g.frozen {
		return fmt.Errorf("intention graph is frozen, cannot add %q", i.Name)
	}
	existing, ok := g.byName[i.Key()]
	if !ok {
		g.byName[i.Key()] = i
		g.order = append(g.order, i.Key())
		return nil
	}
	return mergeInto(existing, i)
}

// Lookup finds an intention by exact name. Returns (nil, false) if absent.
func (g *Graph) Lookup(name string) (*Intention, bool) {
	i, ok := g.byName[name]
	return i, ok
}

// Parent returns the enclosing intention of i, resolved by name, or
// (nil, false) if i has no parent or the parent is not (yet) registered.
func (g *Graph) Parent(i *Intention) (*Intention, bool) {
	if i.ParentName == "" {
		return nil, false
	}
	return g.Lookup(i.ParentName)
}

// Members returns every intention whose ParentName equals owner's name, in
// declaration order — e.g. a class's methods/properties/ivars.
func (g *Graph) Members(ownerName string) []*Intention {
	var out []*Intention
	for _, name := range g.order {
		m := g.byName[name]
		if m.ParentName == ownerName {
			out = append(out, m)
		}
	}
	return out
}

// All returns every intention in declaration order.
func (g *Graph) All() []*Intention {
	out := make([]*Intention, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.byName[name])
	}
	return out
}

// Freeze marks the graph read-only; subsequent Add calls return an error.
// Expression passes may run concurrently across translation units only
// once the graph they share is frozen (spec §5).
func (g *Graph) Freeze() { g.frozen = true }

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen }

// mergeInto applies the spec §4.2 merge rules when the same name is added
// twice: class extension categories fold into the existing ClassIntention;
// an @implementation's selector without nullability annotations loses to
// an @interface's annotated redeclaration ("nullability overrides").
func mergeInto(existing, incoming *Intention) error {
	switch {
	case existing.Kind == KindClass && incoming.Kind == KindClass:
		return mergeClass(existing, incoming)
	case existing.Kind == KindMethod && incoming.Kind == KindMethod:
		return mergeMethod(existing, incoming)
	case existing.Kind == KindProperty && incoming.Kind == KindProperty:
		// Re-declaration (interface + implementation): keep the more
		// specific (non-nil) value type, same "nullability overrides" rule.
		if incoming.ValueType != nil {
			existing.ValueType = incoming.ValueType
		}
		return nil
	default:
		return fmt.Errorf("cannot merge intention %q: kind %s does not match existing kind %s",
			incoming.Name, incoming.Kind, existing.Kind)
	}
}

func mergeClass(existing, incoming *Intention) error {
	if incoming.SuperName != "" {
		existing.SuperName = incoming.SuperName
	}
	existing.Protocols = mergeStrings(existing.Protocols, incoming.Protocols)
	if incoming.Body != nil {
		existing.Body = incoming.Body
	}
	return nil
}

// mergeMethod applies the "nullability overrides" rule: when the interface
// declares a selector with nullability annotations and the implementation
// redeclares it without them, the annotated (interface) version's
// parameter/return types win; the implementation's body is always kept
// since only the interface declares a signature without one.
func mergeMethod(existing, incoming *Intention) error {
	if incoming.Body != nil {
		existing.Body = incoming.Body
	}
	if !existing.Signature.Equals(incoming.Signature) {
		// Treat the interface declaration (the one with nullability info,
		// conventionally added first) as authoritative; only adopt the
		// incoming signature when the existing one looks unannotated
		// (nil return type) itself.
		if existing.Signature.ReturnType == nil {
			existing.Signature = incoming.Signature
		}
	}
	return nil
}

func mergeStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := append([]string(nil), a...)
	for _, s := range a {
		seen[s] = true
	}
	for _, s := range b {
		if !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	return out
}
