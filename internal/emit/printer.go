// Package emit renders the typed Swift AST (internal/ast) and intention
// graph (internal/intention) to Swift source text.
//
// This is kept separate from internal/ast's own String() methods
// (debug/structural-equality helpers, not pretty-printing) because the
// printer needs pass-aware formatting decisions — indentation depth,
// optional-chaining dots, access-level keyword ordering — that don't
// belong on the node itself. One writeX method per node kind, following
// the node-kind-dispatch idiom internal/ast's String() methods already
// use, just hosted on a Printer with a running indent level instead of
// inlined per type.
package emit

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/objc2swift/transpiler/internal/ast"
	"github.com/objc2swift/transpiler/internal/intention"
)

// Printer accumulates Swift source text with tracked indentation.
type Printer struct {
	sb     strings.Builder
	indent int
}

// NewPrinter returns an empty Printer.
func NewPrinter() *Printer { return &Printer{} }

// String returns everything written so far.
func (p *Printer) String() string { return p.sb.String() }

func (p *Printer) writeIndent() {
	p.sb.WriteString(strings.Repeat("    ", p.indent))
}

func (p *Printer) line(s string) {
	p.writeIndent()
	p.sb.WriteString(s)
	p.sb.WriteString("\n")
}

// PrintGraph renders every top-level Intention (classes, protocols, enums,
// typedefs — anything with no ParentName) as Swift declarations, in
// declaration order, followed by their members.
func (p *Printer) PrintGraph(g *intention.Graph) string {
	for _, i := range g.All() {
		if i.ParentName != "" {
			continue
		}
		p.writeTopLevel(g, i)
	}
	return p.String()
}

func (p *Printer) writeTopLevel(g *intention.Graph, i *intention.Intention) {
	switch i.Kind {
	case intention.KindClass:
		p.writeClass(g, i)
	case intention.KindProtocol:
		p.writeProtocol(g, i)
	case intention.KindEnum:
		p.writeEnum(g, i)
	case intention.KindTypedef:
		p.writeTypedef(i)
	case intention.KindGlobalFunc:
		p.writeMethod(i)
	case intention.KindGlobalVar:
		p.writeProperty(i)
	}
}

func (p *Printer) writeClass(g *intention.Graph, i *intention.Intention) {
	header := accessKeyword(i.Access) + "class " + i.Name
	header += inheritanceClause(i.SuperName, i.Protocols)
	p.line(header + " {")
	p.indent++
	p.writeMembers(g, i.Name)
	p.indent--
	p.line("}")
	p.sb.WriteString("\n")
}

func (p *Printer) writeProtocol(g *intention.Graph, i *intention.Intention) {
	header := accessKeyword(i.Access) + "protocol " + i.Name
	header += inheritanceClause("", i.Protocols)
	p.line(header + " {")
	p.indent++
	for _, m := range g.Members(i.Name) {
		switch m.Kind {
		case intention.KindMethod:
			p.line(funcSignatureString(m))
		case intention.KindProperty:
			p.line(propertyRequirementString(m))
		}
	}
	p.indent--
	p.line("}")
	p.sb.WriteString("\n")
}

func (p *Printer) writeMembers(g *intention.Graph, owner string) {
	for _, m := range g.Members(owner) {
		switch m.Kind {
		case intention.KindIVar:
			p.writeIVar(m)
		case intention.KindProperty:
			p.writeProperty(m)
		case intention.KindMethod:
			p.writeMethod(m)
		}
	}
}

func (p *Printer) writeIVar(i *intention.Intention) {
	kw := ownershipPrefix(i.Ownership)
	typ := "<error type>"
	if i.ValueType != nil {
		typ = i.ValueType.String()
	}
	p.line(kw + "private var " + i.Name + ": " + typ)
}

func (p *Printer) writeProperty(i *intention.Intention) {
	kw := "var"
	if i.IsReadonly {
		kw = "let"
	}
	typ := "<error type>"
	if i.ValueType != nil {
		typ = i.ValueType.String()
	}
	prefix := ownershipPrefix(i.Ownership)
	decl := prefix + kw + " " + i.Name + ": " + typ
	if i.Body != nil {
		p.line(decl + " {")
		p.indent++
		p.Write(i.Body)
		p.indent--
		p.line("}")
		return
	}
	p.line(decl)
}

func propertyRequirementString(i *intention.Intention) string {
	typ := "<error type>"
	if i.ValueType != nil {
		typ = i.ValueType.String()
	}
	access := "{ get }"
	if !i.IsReadonly {
		access = "{ get set }"
	}
	return "var " + i.Name + ": " + typ + " " + access
}

func (p *Printer) writeMethod(i *intention.Intention) {
	sig := funcSignatureString(i)
	if i.Body == nil {
		p.line(sig)
		return
	}
	p.line(sig + " {")
	p.indent++
	p.Write(i.Body)
	p.indent--
	p.line("}")
}

func funcSignatureString(i *intention.Intention) string {
	var sb strings.Builder
	if i.Signature.IsStatic {
		sb.WriteString("static ")
	}
	sb.WriteString("func ")
	sb.WriteString(i.Signature.Name)
	sb.WriteString("(")
	for idx, param := range i.Signature.Parameters {
		if idx > 0 {
			sb.WriteString(", ")
		}
		if param.Label != "" && param.Label != param.Name {
			sb.WriteString(param.Label)
			sb.WriteString(" ")
		} else if param.Label == "" {
			sb.WriteString("_ ")
		}
		sb.WriteString(param.Name)
		sb.WriteString(": ")
		if param.Type != nil {
			sb.WriteString(param.Type.String())
		} else {
			sb.WriteString("<error type>")
		}
	}
	sb.WriteString(")")
	if i.Signature.ReturnType != nil && i.Signature.ReturnType.String() != "()" {
		sb.WriteString(" -> ")
		sb.WriteString(i.Signature.ReturnType.String())
	}
	return sb.String()
}

func (p *Printer) writeEnum(g *intention.Graph, i *intention.Intention) {
	raw := "Int"
	if i.RawType != nil {
		raw = i.RawType.String()
	}
	header := accessKeyword(i.Access) + "enum " + i.Name + ": " + raw
	if i.IsOptionSet {
		header = accessKeyword(i.Access) + "struct " + i.Name + ": OptionSet"
	}
	p.line(header + " {")
	p.indent++
	for _, c := range g.Members(i.Name) {
		if i.IsOptionSet {
			p.line("static let " + c.Name + " = " + i.Name + "(rawValue: 1 << 0)")
		} else {
			p.line("case " + c.Name)
		}
	}
	p.indent--
	p.line("}")
	p.sb.WriteString("\n")
}

func (p *Printer) writeTypedef(i *intention.Intention) {
	aliased := "<error type>"
	if i.AliasedType != nil {
		aliased = i.AliasedType.String()
	}
	p.line("typealias " + i.Name + " = " + aliased)
}

func inheritanceClause(superName string, protocols []string) string {
	parts := make([]string, 0, 1+len(protocols))
	if superName != "" {
		parts = append(parts, superName)
	}
	parts = append(parts, protocols...)
	if len(parts) == 0 {
		return ""
	}
	return ": " + strings.Join(parts, ", ")
}

func accessKeyword(a intention.AccessLevel) string {
	if a == intention.AccessInternal {
		return ""
	}
	return a.String() + " "
}

func ownershipPrefix(o intention.Ownership) string {
	switch o {
	case intention.OwnershipWeak:
		return "weak "
	case intention.OwnershipUnownedUnsafe:
		return "unowned(unsafe) "
	default:
		return ""
	}
}

// WriteComment emits text as a "// "-prefixed line comment at the current
// indentation level, NFC-normalizing it first — a preprocessor directive
// carried verbatim from an Objective-C source file may have reached this
// printer in whatever normalization form its source file used, and two
// otherwise-identical directives that differ only by normalization form
// would otherwise print as visibly different comments.
func (p *Printer) WriteComment(text string) {
	p.line("// " + norm.NFC.String(text))
}

// Write renders a single Statement (and its children) at the current
// indentation level, dispatching on its concrete kind.
func (p *Printer) Write(s ast.Statement) {
	switch v := s.(type) {
	case *ast.CompoundStatement:
		for _, st := range v.Statements {
			p.Write(st)
		}
	case *ast.IfStatement:
		p.writeIf(v)
	case *ast.WhileStatement:
		p.line("while " + v.Condition.String() + " {")
		p.indent++
		p.writeBody(v.Body)
		p.indent--
		p.line("}")
	case *ast.DoWhileStatement:
		p.line("repeat {")
		p.indent++
		p.writeBody(v.Body)
		p.indent--
		p.line("} while " + v.Condition.String())
	case *ast.ForStatement:
		p.writeFor(v)
	case *ast.SwitchStatement:
		p.writeSwitch(v)
	case *ast.DoStatement:
		p.writeDo(v)
	case *ast.DeferStatement:
		p.line("defer {")
		p.indent++
		p.writeBody(v.Body)
		p.indent--
		p.line("}")
	case *ast.ReturnStatement:
		p.line(v.String())
	case *ast.BreakStatement:
		p.line(v.String())
	case *ast.ContinueStatement:
		p.line(v.String())
	case *ast.ExpressionStatement:
		p.line(v.String())
	case *ast.VariableDeclStatement:
		p.line(v.String())
	case *ast.UnknownStatement:
		p.line("// " + v.Context)
	default:
		p.line(s.String())
	}
}

func (p *Printer) writeBody(body []ast.Statement) {
	for _, s := range body {
		p.Write(s)
	}
}

func (p *Printer) writeIf(v *ast.IfStatement) {
	header := "if "
	if v.Binding != nil {
		header += v.Binding.String() + " = "
	}
	header += v.Condition.String() + " {"
	p.line(header)
	p.indent++
	p.writeBody(v.Then)
	p.indent--
	if len(v.Else) > 0 {
		p.line("} else {")
		p.indent++
		p.writeBody(v.Else)
		p.indent--
	}
	p.line("}")
}

func (p *Printer) writeFor(v *ast.ForStatement) {
	if v.Kind == ast.ForIn {
		p.line("for " + v.Binding.String() + " in " + v.Collection.String() + " {")
		p.indent++
		p.writeBody(v.Body)
		p.indent--
		p.line("}")
		return
	}
	init, post := "", ""
	if v.Init != nil {
		init = v.Init.String()
	}
	if v.Post != nil {
		post = v.Post.String()
	}
	cond := ""
	if v.Condition != nil {
		cond = v.Condition.String()
	}
	p.line("for " + init + "; " + cond + "; " + post + " {")
	p.indent++
	p.writeBody(v.Body)
	p.indent--
	p.line("}")
}

func (p *Printer) writeSwitch(v *ast.SwitchStatement) {
	p.line("switch " + v.Subject.String() + " {")
	for _, c := range v.Cases {
		if c.IsDefault {
			p.line("default:")
		} else {
			parts := make([]string, len(c.Patterns))
			for i, pat := range c.Patterns {
				parts[i] = pat.String()
			}
			p.line("case " + strings.Join(parts, ", ") + ":")
		}
		p.indent++
		p.writeBody(c.Body)
		p.indent--
	}
	p.line("}")
}

func (p *Printer) writeDo(v *ast.DoStatement) {
	p.line("do {")
	p.indent++
	p.writeBody(v.Body)
	p.indent--
	for _, c := range v.Catches {
		header := "} catch"
		if c.Binding != nil {
			header += " " + c.Binding.String()
		}
		header += " {"
		p.line(header)
		p.indent++
		p.writeBody(c.Body)
		p.indent--
	}
	p.line("}")
}
