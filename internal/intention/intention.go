// Package intention models the cross-file symbol table populated after
// parsing: every class, protocol, method, property, global, and typedef
// becomes an Intention node in a Graph, looked up by name rather than by
// owning pointer (spec §3/§9 — "children know their parents by name").
package intention

import (
	"github.com/objc2swift/transpiler/internal/ast"
	"github.com/objc2swift/transpiler/internal/source"
	"github.com/objc2swift/transpiler/internal/swifttype"
)

// AccessLevel mirrors Swift's access-control ladder (spec §3).
type AccessLevel int

const (
	AccessPrivate AccessLevel = iota
	AccessFileprivate
	AccessInternal
	AccessPublic
	AccessOpen
)

func (a AccessLevel) String() string {
	switch a {
	case AccessPrivate:
		return "private"
	case AccessFileprivate:
		return "fileprivate"
	case AccessPublic:
		return "public"
	case AccessOpen:
		return "open"
	default:
		return "internal"
	}
}

// Ownership models a property/ivar's reference-counting discipline.
type Ownership int

const (
	OwnershipStrong Ownership = iota
	OwnershipWeak
	OwnershipUnownedUnsafe
)

// Kind enumerates the Intention variants (spec §3).
type Kind int

const (
	KindClass Kind = iota
	KindProtocol
	KindExtension
	KindEnum
	KindStruct
	KindMethod
	KindInit
	KindDeinit
	KindProperty
	KindIVar
	KindGlobalVar
	KindGlobalFunc
	KindTypedef
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindProtocol:
		return "protocol"
	case KindExtension:
		return "extension"
	case KindEnum:
		return "enum"
	case KindStruct:
		return "struct"
	case KindMethod:
		return "method"
	case KindInit:
		return "init"
	case KindDeinit:
		return "deinit"
	case KindProperty:
		return "property"
	case KindIVar:
		return "ivar"
	case KindGlobalVar:
		return "globalVar"
	case KindGlobalFunc:
		return "globalFunc"
	case KindTypedef:
		return "typedef"
	default:
		return "unknown"
	}
}

// Intention is a source-derived declaration record that outlives parsing
// and drives emission (spec §3/glossary).
type Intention struct {
	Kind      Kind
	Name      string
	Access    AccessLevel
	Pos       source.Position
	ParentName string // name-based lookup into the owning Graph, not an owning pointer

	// ClassIntention / ExtensionIntention
	SuperName  string
	Protocols  []string

	// EnumIntention
	IsOptionSet bool
	RawType     swifttype.Type

	// MethodIntention / InitIntention / GlobalFuncIntention
	Signature swifttype.FunctionSignature
	IsOptional bool // @optional protocol requirement

	// PropertyIntention / IVarIntention / GlobalVarIntention
	ValueType    swifttype.Type
	Ownership    Ownership
	GetterName   string
	SetterName   string
	IsReadonly   bool

	// TypedefIntention
	AliasedType swifttype.Type

	Body              *ast.CompoundStatement
	AssumedNonnull    bool // true if declared inside NS_ASSUME_NONNULL_BEGIN/END
}

// Key returns the Graph lookup key: the bare, case-sensitive Name.
// ParentName is not part of the key, so members of different parents
// that share a name share one key, and Graph.Add merges or rejects the
// later one.
func (i *Intention) Key() string { return i.Name }
