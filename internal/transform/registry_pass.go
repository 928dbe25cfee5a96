package transform

import "github.com/objc2swift/transpiler/internal/ast"

// RegistryPass adapts a Registry into a Pass: Pipeline.RunToFixpoint only
// knows how to re-run passes over a whole expression root, while Registry.
// Apply only knows how to match a single *ast.PostfixExpression. RegistryPass
// is the missing bottom-up walk that applies Registry.Apply at every
// PostfixExpression in the tree, innermost first, so a transformer rewriting
// an argument's call can itself be rewritten by an outer match.
type RegistryPass struct {
	reg *Registry
}

// NewRegistryPass builds a Pass that rewrites every call site in an
// expression tree through reg.
func NewRegistryPass(reg *Registry) *RegistryPass {
	return &RegistryPass{reg: reg}
}

func (p *RegistryPass) Name() string { return "registry" }

// Run implements Pass.
func (p *RegistryPass) Run(root ast.Expression) (ast.Expression, bool) {
	return p.rewrite(root)
}

func (p *RegistryPass) rewrite(e ast.Expression) (ast.Expression, bool) {
	if e == nil {
		return nil, false
	}

	changed := false
	switch n := e.(type) {
	case *ast.PostfixExpression:
		if newBase, ok := p.rewrite(n.Base); ok {
			n.Base = newBase
			ast.Attach(n, newBase)
			changed = true
		}
		for i := range n.Suffixes {
			s := &n.Suffixes[i]
			switch s.Kind {
			case ast.SuffixIndex:
				if newIdx, ok := p.rewrite(s.Index); ok {
					s.Index = newIdx
					ast.Attach(n, newIdx)
					changed = true
				}
			case ast.SuffixCall:
				for j := range s.Arguments {
					if newVal, ok := p.rewrite(s.Arguments[j].Value); ok {
						s.Arguments[j].Value = newVal
						ast.Attach(n, newVal)
						changed = true
					}
				}
			}
		}
		if applied, ok := p.reg.Apply(n); ok {
			return applied, true
		}
		return n, changed

	case *ast.BinaryExpression:
		if l, ok := p.rewrite(n.Left); ok {
			n.Left = l
			ast.Attach(n, l)
			changed = true
		}
		if r, ok := p.rewrite(n.Right); ok {
			n.Right = r
			ast.Attach(n, r)
			changed = true
		}
		return n, changed

	case *ast.UnaryExpression:
		if o, ok := p.rewrite(n.Operand); ok {
			n.Operand = o
			ast.Attach(n, o)
			changed = true
		}
		return n, changed

	case *ast.PrefixExpression:
		if o, ok := p.rewrite(n.Operand); ok {
			n.Operand = o
			ast.Attach(n, o)
			changed = true
		}
		return n, changed

	case *ast.TernaryExpression:
		if c, ok := p.rewrite(n.Condition); ok {
			n.Condition = c
			ast.Attach(n, c)
			changed = true
		}
		if t, ok := p.rewrite(n.Then); ok {
			n.Then = t
			ast.Attach(n, t)
			changed = true
		}
		if el, ok := p.rewrite(n.Else); ok {
			n.Else = el
			ast.Attach(n, el)
			changed = true
		}
		return n, changed

	case *ast.CastExpression:
		if x, ok := p.rewrite(n.Expr); ok {
			n.Expr = x
			ast.Attach(n, x)
			changed = true
		}
		return n, changed

	case *ast.AssignmentExpression:
		if t, ok := p.rewrite(n.Target); ok {
			n.Target = t
			ast.Attach(n, t)
			changed = true
		}
		if v, ok := p.rewrite(n.Value); ok {
			n.Value = v
			ast.Attach(n, v)
			changed = true
		}
		return n, changed

	case *ast.Parenthesized:
		if i, ok := p.rewrite(n.Inner); ok {
			n.Inner = i
			ast.Attach(n, i)
			changed = true
		}
		return n, changed

	case *ast.TypeCheckExpression:
		if x, ok := p.rewrite(n.Expr); ok {
			n.Expr = x
			ast.Attach(n, x)
			changed = true
		}
		return n, changed

	case *ast.SizeofExpression:
		if n.Operand != nil {
			if o, ok := p.rewrite(n.Operand); ok {
				n.Operand = o
				ast.Attach(n, o)
				changed = true
			}
		}
		return n, changed

	case *ast.Literal:
		switch n.Kind {
		case ast.LiteralArray:
			for i := range n.Elements {
				if el, ok := p.rewrite(n.Elements[i]); ok {
					n.Elements[i] = el
					ast.Attach(n, el)
					changed = true
				}
			}
		case ast.LiteralDictionary:
			for i := range n.Pairs {
				if k, ok := p.rewrite(n.Pairs[i].Key); ok {
					n.Pairs[i].Key = k
					ast.Attach(n, k)
					changed = true
				}
				if v, ok := p.rewrite(n.Pairs[i].Value); ok {
					n.Pairs[i].Value = v
					ast.Attach(n, v)
					changed = true
				}
			}
		}
		return n, changed

	default:
		// Identifier, ConstantExpression, BlockLiteral: no child expression
		// to descend into at this level. A BlockLiteral's statement bodies
		// are rewritten by RewriteBody, not here — Registry only matches
		// call-shaped postfix expressions, and a closure body is a list of
		// Statements, not a single Expression this pass can recurse through.
		return n, false
	}
}
