package objcparse

import (
	"github.com/objc2swift/transpiler/internal/source"
	"github.com/objc2swift/transpiler/internal/swifttype"
)

// File is the top-level parse result: every declaration in one translation
// unit, in source order.
type File struct {
	Declarations []Decl
}

// Directives returns every PreprocessorDecl in Declarations, in source
// order, filtered out of the symbol-bearing declarations the Collector
// walks (a "#import"/"#define"/"#if" line carries no Intention of its own).
func (f *File) Directives() []*PreprocessorDecl {
	var out []*PreprocessorDecl
	for _, d := range f.Declarations {
		if pp, ok := d.(*PreprocessorDecl); ok {
			out = append(out, pp)
		}
	}
	return out
}

// Decl is the sum of top-level declarations the modeled grammar produces.
type Decl interface{ declNode() }

// PreprocessorDecl is a verbatim "#..." line (import, define, conditional
// compilation, pragma) carried through unparsed — this grammar models
// declarations, not the C preprocessor — so it can be echoed back as a
// comment at emission time.
type PreprocessorDecl struct {
	Text string
	Pos  source.Position
}

func (*PreprocessorDecl) declNode() {}

// SelectorPiece is one ":"-delimited piece of a method selector, e.g. the
// "moveToPoint:" in "- (void)moveToPoint:(CGPoint)point".
type SelectorPiece struct {
	Label     string
	ParamName string
	ParamType swifttype.ObjcType
}

// MethodDecl models "- (RetType)sel:(T)a sel2:(T)b ..." or its "+" class form.
type MethodDecl struct {
	IsClassMethod bool
	ReturnType    swifttype.ObjcType
	Selector      []SelectorPiece
	IsOptional    bool // inside an @optional protocol section
	AssumedNonnull bool
	Pos           source.Position
}

func (*MethodDecl) declNode() {}

// PropertyAttr is one entry of a @property(...) attribute list.
type PropertyAttr string

const (
	AttrNonatomic PropertyAttr = "nonatomic"
	AttrAtomic    PropertyAttr = "atomic"
	AttrStrong    PropertyAttr = "strong"
	AttrWeak      PropertyAttr = "weak"
	AttrCopy      PropertyAttr = "copy"
	AttrAssign    PropertyAttr = "assign"
	AttrReadonly  PropertyAttr = "readonly"
	AttrReadwrite PropertyAttr = "readwrite"
	AttrUnsafeUnretained PropertyAttr = "unsafe_unretained"
)

// PropertyDecl models "@property (attrs) Type name;".
type PropertyDecl struct {
	Name           string
	Type           swifttype.ObjcType
	Attrs          []PropertyAttr
	GetterName     string
	SetterName     string
	AssumedNonnull bool
	Pos            source.Position
}

func (*PropertyDecl) declNode() {}

// IVarVisibility mirrors the @private/@protected/@public/@package sections
// inside an ivar block.
type IVarVisibility int

const (
	IVarDefault IVarVisibility = iota
	IVarPrivate
	IVarProtected
	IVarPublic
	IVarPackage
)

// IVarDecl models one instance-variable declaration.
type IVarDecl struct {
	Name           string
	Type           swifttype.ObjcType
	Visibility     IVarVisibility
	AssumedNonnull bool
	Pos            source.Position
}

func (*IVarDecl) declNode() {}

// InterfaceDecl models "@interface Name : Super <Protocols> ... @end", a
// category "@interface Name (CategoryName) ... @end", or a class extension
// "@interface Name () ... @end" (CategoryName == "" with IsExtension true).
type InterfaceDecl struct {
	Name         string
	SuperName    string
	Protocols    []string
	IsCategory   bool
	IsExtension  bool
	CategoryName string
	IVars        []*IVarDecl
	Properties   []*PropertyDecl
	Methods      []*MethodDecl
	Pos          source.Position
}

func (*InterfaceDecl) declNode() {}

// ImplementationDecl models "@implementation Name ... @end" or its
// category form "@implementation Name (CategoryName) ... @end". Method
// bodies are not parsed; their braces are skipped as opaque.
type ImplementationDecl struct {
	Name         string
	CategoryName string
	IsCategory   bool
	IVars        []*IVarDecl
	Properties   []*PropertyDecl
	Methods      []*MethodDecl
	Pos          source.Position
}

func (*ImplementationDecl) declNode() {}

// ProtocolDecl models "@protocol Name <Supers> ... @end", with methods
// split by @required/@optional sections (required is the default).
type ProtocolDecl struct {
	Name             string
	Supers           []string
	Properties       []*PropertyDecl
	RequiredMethods  []*MethodDecl
	OptionalMethods  []*MethodDecl
	Pos              source.Position
}

func (*ProtocolDecl) declNode() {}

// EnumDecl models "typedef NS_ENUM(RawType, Name) { ... }" or
// "typedef NS_OPTIONS(RawType, Name) { ... }" (IsOptionSet true for the
// latter). Case names are collected but their values are not evaluated.
type EnumDecl struct {
	Name        string
	RawType     swifttype.ObjcType
	IsOptionSet bool
	Cases       []string
	Pos         source.Position
}

func (*EnumDecl) declNode() {}

// TypedefDecl models a plain "typedef OldType NewName;", including block
// and function-pointer typedefs.
type TypedefDecl struct {
	Name    string
	Aliased swifttype.ObjcType
	Pos     source.Position
}

func (*TypedefDecl) declNode() {}
