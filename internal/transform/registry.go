package transform

import "github.com/objc2swift/transpiler/internal/ast"

// Registry holds the set of known Transformers, keyed by the Objective-C
// function name they recognize. Multiple Transformers may share a name
// (distinguished only by their derived argument arity); when more than one
// registered for the same name matches a given call, the first one
// registered wins silently (spec §9 resolved open question).
type Registry struct {
	byName map[string][]*Transformer
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string][]*Transformer)}
}

// Register adds t, keeping registration order for the ambiguous-match
// tie-break.
func (r *Registry) Register(t *Transformer) {
	r.byName[t.ObjcFunctionName] = append(r.byName[t.ObjcFunctionName], t)
}

// Lookup returns the first registered Transformer for name whose CanApply
// matches p, or nil if none does.
func (r *Registry) Lookup(name string, p *ast.PostfixExpression) *Transformer {
	for _, t := range r.byName[name] {
		if t.CanApply(p) {
			return t
		}
	}
	return nil
}

// Apply finds and applies a matching Transformer for p, if p's base is a
// named identifier known to the registry. Returns (nil, false) when no
// Transformer applies.
func (r *Registry) Apply(p *ast.PostfixExpression) (ast.Expression, bool) {
	id, ok := p.Base.(*ast.Identifier)
	if !ok {
		return nil, false
	}
	t := r.Lookup(id.Name, p)
	if t == nil {
		return nil, false
	}
	return t.Apply(p)
}
