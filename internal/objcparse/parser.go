package objcparse

import (
	"github.com/objc2swift/transpiler/internal/swifttype"
)

// Parser is a hand-rolled recursive-descent parser over the modeled
// Objective-C subset, following the teacher's curToken/peekToken lookahead
// idiom scaled down to a single small grammar and no Pratt precedence
// table (there are no expressions to parse, only declarations).
type Parser struct {
	l       *Lexer
	errors  []string
	cur     Token
	peek    Token

	assumedNonnull bool // true while inside NS_ASSUME_NONNULL_BEGIN/END
}

// NewParser builds a Parser over src.
func NewParser(src string) *Parser {
	p := &Parser{l: NewLexer(src)}
	p.next()
	p.next()
	return p
}

// Errors returns accumulated parse errors (lexer errors plus this parser's).
func (p *Parser) Errors() []string { return append(append([]string{}, p.l.Errors()...), p.errors...) }

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.Next()
}

func (p *Parser) errorf(msg string) {
	p.errors = append(p.errors, msg+" at "+p.cur.Pos.String())
}

func (p *Parser) curIsAt(kw string) bool { return p.cur.Kind == TokAtKeyword && p.cur.Literal == kw }
func (p *Parser) curIsIdent(name string) bool {
	return p.cur.Kind == TokIdent && p.cur.Literal == name
}

func (p *Parser) expect(k TokenKind) bool {
	if p.cur.Kind != k {
		p.errorf("unexpected token " + p.cur.Literal)
		return false
	}
	p.next()
	return true
}

// ParseFile parses the entire translation unit.
func (p *Parser) ParseFile() *File {
	f := &File{}
	for p.cur.Kind != TokEOF {
		start := p.cur
		if d := p.parseTopLevel(); d != nil {
			f.Declarations = append(f.Declarations, d)
		} else if p.cur == start {
			p.next() // skip anything unrecognized rather than loop forever
		}
	}
	return f
}

func (p *Parser) parseTopLevel() Decl {
	switch {
	case p.curIsIdent("NS_ASSUME_NONNULL_BEGIN"):
		p.assumedNonnull = true
		p.next()
		return nil
	case p.curIsIdent("NS_ASSUME_NONNULL_END"):
		p.assumedNonnull = false
		p.next()
		return nil
	case p.curIsIdent("typedef"):
		return p.parseTypedefOrEnum()
	case p.curIsAt("@interface"):
		return p.parseInterface()
	case p.curIsAt("@implementation"):
		return p.parseImplementation()
	case p.curIsAt("@protocol"):
		return p.parseProtocol()
	case p.curIsAt("@class"), p.curIsAt("@end"):
		p.next() // forward declarations carry no structure we need
		return nil
	case p.cur.Kind == TokPreprocessor:
		d := &PreprocessorDecl{Text: p.cur.Literal, Pos: p.cur.Pos}
		p.next()
		return d
	default:
		return nil
	}
}

// parseTypedefOrEnum handles both "typedef NS_ENUM(Raw, Name) { ... };" /
// "typedef NS_OPTIONS(...)" and a plain "typedef OldType NewName;".
func (p *Parser) parseTypedefOrEnum() Decl {
	pos := p.cur.Pos
	p.next() // consume "typedef"

	if p.curIsIdent("NS_ENUM") || p.curIsIdent("NS_OPTIONS") {
		isOptionSet := p.curIsIdent("NS_OPTIONS")
		p.next()
		p.expect(TokLParen)
		raw := p.parseObjcType()
		p.expect(TokComma)
		name := p.cur.Literal
		p.next()
		p.expect(TokRParen)

		e := &EnumDecl{Name: name, RawType: raw, IsOptionSet: isOptionSet, Pos: pos}
		if p.cur.Kind == TokLBrace {
			p.next()
			for p.cur.Kind != TokRBrace && p.cur.Kind != TokEOF {
				if p.cur.Kind == TokIdent {
					e.Cases = append(e.Cases, p.cur.Literal)
				}
				p.next()
			}
			p.expect(TokRBrace)
		}
		p.skipPast(TokSemi)
		return e
	}

	aliased := p.parseObjcType()
	name := p.cur.Literal
	p.next()
	p.skipPast(TokSemi)
	return &TypedefDecl{Name: name, Aliased: aliased, Pos: pos}
}

// skipPast advances until (and past) a token of kind k, or EOF.
func (p *Parser) skipPast(k TokenKind) {
	for p.cur.Kind != k && p.cur.Kind != TokEOF {
		p.next()
	}
	if p.cur.Kind == k {
		p.next()
	}
}

func (p *Parser) parseProtocolList() []string {
	var names []string
	if p.cur.Kind != TokLAngle {
		return nil
	}
	p.next()
	for p.cur.Kind != TokRAngle && p.cur.Kind != TokEOF {
		if p.cur.Kind == TokIdent {
			names = append(names, p.cur.Literal)
		}
		p.next()
		if p.cur.Kind == TokComma {
			p.next()
		}
	}
	p.expect(TokRAngle)
	return names
}

func (p *Parser) parseInterface() Decl {
	pos := p.cur.Pos
	p.next() // "@interface"
	if p.cur.Kind != TokIdent {
		p.errorf("expected interface name after @interface")
	}
	decl := &InterfaceDecl{Name: p.cur.Literal, Pos: pos}
	p.next()

	if p.cur.Kind == TokLParen {
		p.next()
		decl.IsCategory = true
		if p.cur.Kind != TokRParen {
			decl.CategoryName = p.cur.Literal
			p.next()
		} else {
			decl.IsExtension = true
		}
		p.expect(TokRParen)
	} else if p.cur.Kind == TokColon {
		p.next()
		decl.SuperName = p.cur.Literal
		p.next()
	}
	decl.Protocols = p.parseProtocolList()

	p.parseMemberSection(&decl.IVars, &decl.Properties, &decl.Methods, nil)
	return decl
}

func (p *Parser) parseImplementation() Decl {
	pos := p.cur.Pos
	p.next() // "@implementation"
	if p.cur.Kind != TokIdent {
		p.errorf("expected implementation name after @implementation")
	}
	decl := &ImplementationDecl{Name: p.cur.Literal, Pos: pos}
	p.next()

	if p.cur.Kind == TokLParen {
		p.next()
		decl.IsCategory = true
		decl.CategoryName = p.cur.Literal
		p.next()
		p.expect(TokRParen)
	}

	p.parseMemberSection(&decl.IVars, &decl.Properties, &decl.Methods, nil)
	return decl
}

func (p *Parser) parseProtocol() Decl {
	pos := p.cur.Pos
	p.next() // "@protocol"
	if p.cur.Kind != TokIdent {
		p.errorf("expected protocol name after @protocol")
	}
	decl := &ProtocolDecl{Name: p.cur.Literal, Pos: pos}
	p.next()
	decl.Supers = p.parseProtocolList()

	p.parseMemberSection(nil, &decl.Properties, &decl.RequiredMethods, &decl.OptionalMethods)
	return decl
}

// parseMemberSection consumes ivars/@property/methods until "@end",
// tracking @required/@optional toggling between requiredMethods and
// optionalMethods when both are supplied (protocol bodies); class/category
// bodies pass nil for optionalMethods and everything lands in
// requiredMethods.
func (p *Parser) parseMemberSection(ivars *[]*IVarDecl, props *[]*PropertyDecl, requiredMethods *[]*MethodDecl, optionalMethods *[]*MethodDecl) {
	inOptional := false
	targetMethods := func() *[]*MethodDecl {
		if inOptional && optionalMethods != nil {
			return optionalMethods
		}
		return requiredMethods
	}

	for p.cur.Kind != TokEOF {
		switch {
		case p.curIsAt("@end"):
			p.next()
			return
		case p.curIsAt("@optional"):
			inOptional = true
			p.next()
		case p.curIsAt("@required"):
			inOptional = false
			p.next()
		case p.curIsAt("@property"):
			*props = append(*props, p.parseProperty())
		case p.cur.Kind == TokLBrace && ivars != nil:
			p.parseIVarBlock(ivars)
		case p.cur.Kind == TokPlus || p.cur.Kind == TokMinus:
			m := p.parseMethodDecl()
			m.IsOptional = inOptional
			*targetMethods() = append(*targetMethods(), m)
		default:
			p.next()
		}
	}
	p.errorf("unexpected end of file, expected @end")
}

func (p *Parser) parseIVarBlock(ivars *[]*IVarDecl) {
	p.next() // "{"
	visibility := IVarDefault
	for p.cur.Kind != TokRBrace && p.cur.Kind != TokEOF {
		switch {
		case p.curIsAt("@private"):
			visibility = IVarPrivate
			p.next()
		case p.curIsAt("@protected"):
			visibility = IVarProtected
			p.next()
		case p.curIsAt("@public"):
			visibility = IVarPublic
			p.next()
		case p.curIsAt("@package"):
			visibility = IVarPackage
			p.next()
		default:
			pos := p.cur.Pos
			typ := p.parseObjcType()
			name := p.cur.Literal
			p.next()
			p.skipPast(TokSemi)
			*ivars = append(*ivars, &IVarDecl{Name: name, Type: typ, Visibility: visibility, AssumedNonnull: p.assumedNonnull, Pos: pos})
		}
	}
	p.expect(TokRBrace)
}

func (p *Parser) parseProperty() *PropertyDecl {
	pos := p.cur.Pos
	p.next() // "@property"
	decl := &PropertyDecl{Pos: pos, AssumedNonnull: p.assumedNonnull}

	if p.cur.Kind == TokLParen {
		p.next()
		for p.cur.Kind != TokRParen && p.cur.Kind != TokEOF {
			attr := p.cur.Literal
			p.next()
			switch attr {
			case "getter":
				p.skipEqualsIdent(&decl.GetterName)
			case "setter":
				p.skipEqualsIdent(&decl.SetterName)
			default:
				decl.Attrs = append(decl.Attrs, PropertyAttr(attr))
			}
			if p.cur.Kind == TokComma {
				p.next()
			}
		}
		p.expect(TokRParen)
	}

	decl.Type = p.parseObjcType()
	decl.Name = p.cur.Literal
	p.next()
	p.skipPast(TokSemi)
	return decl
}

// skipEqualsIdent consumes "= identifier" after a getter/setter attribute
// name, e.g. "getter=isEnabled".
func (p *Parser) skipEqualsIdent(dest *string) {
	for p.cur.Kind != TokComma && p.cur.Kind != TokRParen && p.cur.Kind != TokEOF {
		if p.cur.Kind == TokIdent {
			*dest = p.cur.Literal
		}
		p.next()
	}
}

func (p *Parser) parseMethodDecl() *MethodDecl {
	pos := p.cur.Pos
	isClass := p.cur.Kind == TokPlus
	p.next() // "+" or "-"

	m := &MethodDecl{IsClassMethod: isClass, Pos: pos, AssumedNonnull: p.assumedNonnull}
	if p.cur.Kind == TokLParen {
		p.next()
		m.ReturnType = p.parseObjcType()
		p.expect(TokRParen)
	}

	for {
		label := p.cur.Literal
		p.next()
		piece := SelectorPiece{Label: label}
		if p.cur.Kind == TokColon {
			p.next()
			if p.cur.Kind == TokLParen {
				p.next()
				piece.ParamType = p.parseObjcType()
				p.expect(TokRParen)
			}
			piece.ParamName = p.cur.Literal
			p.next()
		}
		m.Selector = append(m.Selector, piece)

		if p.cur.Kind == TokIdent && p.peek.Kind == TokColon {
			continue
		}
		break
	}

	if p.cur.Kind == TokLBrace {
		p.skipBraces()
	} else {
		p.skipPast(TokSemi)
	}
	return m
}

func (p *Parser) skipBraces() {
	depth := 0
	for {
		switch p.cur.Kind {
		case TokLBrace:
			depth++
		case TokRBrace:
			depth--
			if depth == 0 {
				p.next()
				return
			}
		case TokEOF:
			return
		}
		p.next()
	}
}

// parseObjcType parses a (possibly qualified/pointer/generic/block) type
// expression into a swifttype.ObjcType, stopping before the declarator name.
func (p *Parser) parseObjcType() swifttype.ObjcType {
	var specs []string
	for isSpecifier(p.cur.Literal) && p.cur.Kind == TokIdent {
		specs = append(specs, p.cur.Literal)
		p.next()
	}

	var base swifttype.ObjcType
	switch {
	case p.cur.Kind == TokIdent && p.cur.Literal == "id":
		p.next()
		var protocols []string
		if p.cur.Kind == TokLAngle {
			protocols = p.parseProtocolList()
		}
		base = swifttype.ObjcID{Protocols: protocols}
	case p.cur.Kind == TokIdent && p.cur.Literal == "instancetype":
		p.next()
		base = swifttype.ObjcInstancetype{}
	case p.cur.Kind == TokIdent && p.cur.Literal == "void":
		p.next()
		base = swifttype.ObjcVoid{}
	case p.cur.Kind == TokIdent:
		name := p.cur.Literal
		p.next()
		if p.cur.Kind == TokLAngle {
			args := p.parseGenericArgs()
			base = swifttype.ObjcGeneric{Name: name, Args: args}
		} else {
			base = swifttype.ObjcStruct{Name: name}
		}
	default:
		base = swifttype.ObjcVoid{}
	}

	for p.cur.Kind == TokStar {
		p.next()
		base = swifttype.ObjcPointer{Pointee: base}
		base = p.parseTrailingQualifiers(base)
	}
	if len(specs) > 0 {
		base = swifttype.ObjcSpecified{Specs: specs, Base: base}
	}
	return base
}

func (p *Parser) parseTrailingQualifiers(base swifttype.ObjcType) swifttype.ObjcType {
	var quals []swifttype.NullabilityQualifier
	for p.cur.Kind == TokIdent && isNullabilityQualifier(p.cur.Literal) {
		quals = append(quals, nullabilityFor(p.cur.Literal))
		p.next()
	}
	if len(quals) == 0 {
		return base
	}
	return swifttype.ObjcQualified{Base: base, Quals: quals}
}

func (p *Parser) parseGenericArgs() []swifttype.ObjcType {
	p.next() // "<"
	var args []swifttype.ObjcType
	for p.cur.Kind != TokRAngle && p.cur.Kind != TokEOF {
		args = append(args, p.parseObjcType())
		if p.cur.Kind == TokComma {
			p.next()
		}
	}
	p.expect(TokRAngle)
	return args
}

func isSpecifier(name string) bool {
	switch name {
	case "static", "const", "unsigned", "signed", "extern", "__weak", "__strong", "__unsafe_unretained":
		return true
	default:
		return false
	}
}

func isNullabilityQualifier(name string) bool {
	switch name {
	case "_Nonnull", "_Nullable", "_Null_unspecified", "__nonnull", "__nullable":
		return true
	default:
		return false
	}
}

func nullabilityFor(name string) swifttype.NullabilityQualifier {
	switch name {
	case "_Nullable", "__nullable":
		return swifttype.QualNullable
	case "_Null_unspecified":
		return swifttype.QualNullUnspecified
	default:
		return swifttype.QualNonnull
	}
}
