// Package swifttype models Swift and Objective-C type signatures as closed
// sum types, plus the pure Swift-type grammar parser described by the
// language spec's type grammar (see Parse in parser.go).
//
// Every variant is a value type: two SwiftType values are equal iff their
// Key() strings match, which lets callers use SwiftType as a map key for
// memoization (the overload resolver's cache relies on this).
package swifttype

import "strings"

// Type is the sum type for Swift type signatures.
type Type interface {
	// swiftType is an unexported marker so only this package can add
	// variants; exhaustive switches over Type are safe to write elsewhere.
	swiftType()

	// String renders the type using Swift syntax, e.g. "[Int: String]?".
	String() string

	// Key returns a canonical string uniquely identifying this type,
	// used for structural equality and map-based memoization.
	Key() string
}

// Equal reports whether two types are structurally identical after
// normalization (see package doc and the Normalize invariants below).
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key() == b.Key()
}

// NominalKind distinguishes a plain named type from a generic instantiation.
type NominalKind int

const (
	NominalPlain NominalKind = iota
	NominalGeneric
)

// NominalType is a single component of a (possibly dotted) nominal type,
// e.g. the "Array<Element>" in "Foo.Array<Element>.Index".
type NominalType struct {
	Name     string
	Kind     NominalKind
	TypeArgs []Type // only meaningful when Kind == NominalGeneric
}

func (n NominalType) String() string {
	if n.Kind != NominalGeneric || len(n.TypeArgs) == 0 {
		return n.Name
	}
	parts := make([]string, len(n.TypeArgs))
	for i, a := range n.TypeArgs {
		parts[i] = a.String()
	}
	return n.Name + "<" + strings.Join(parts, ", ") + ">"
}

func (n NominalType) key() string {
	if n.Kind != NominalGeneric || len(n.TypeArgs) == 0 {
		return "N:" + n.Name
	}
	parts := make([]string, len(n.TypeArgs))
	for i, a := range n.TypeArgs {
		parts[i] = a.Key()
	}
	return "G:" + n.Name + "<" + strings.Join(parts, ",") + ">"
}

// Nominal is a single-component nominal type: typeName(String) | generic(String, []Type).
type Nominal struct {
	NominalType
}

func (Nominal) swiftType() {}
func (n Nominal) String() string { return n.NominalType.String() }
func (n Nominal) Key() string     { return n.NominalType.key() }

// NewTypeName builds a plain nominal type, e.g. "Int".
func NewTypeName(name string) Nominal {
	return Nominal{NominalType{Name: name, Kind: NominalPlain}}
}

// NewGeneric builds a generic nominal type, e.g. "Array<Int>".
func NewGeneric(name string, args ...Type) Nominal {
	return Nominal{NominalType{Name: name, Kind: NominalGeneric, TypeArgs: args}}
}

// Nested models a dotted qualified type, "Outer.Inner.Leaf".
type Nested struct {
	Components []NominalType
}

func (Nested) swiftType() {}

func (n Nested) String() string {
	parts := make([]string, len(n.Components))
	for i, c := range n.Components {
		parts[i] = c.String()
	}
	return strings.Join(parts, ".")
}

func (n Nested) Key() string {
	parts := make([]string, len(n.Components))
	for i, c := range n.Components {
		parts[i] = c.key()
	}
	return "NEST:" + strings.Join(parts, ".")
}

// ProtocolComposition models "A & B & C".
type ProtocolComposition struct {
	Members []Type // each is a Nominal or Nested
}

func (ProtocolComposition) swiftType() {}

func (p ProtocolComposition) String() string {
	parts := make([]string, len(p.Members))
	for i, m := range p.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " & ")
}

func (p ProtocolComposition) Key() string {
	parts := make([]string, len(p.Members))
	for i, m := range p.Members {
		parts[i] = m.Key()
	}
	return "COMP:" + strings.Join(parts, "&")
}

// Tuple models a tuple type. A 1-ary tuple normalizes to its element type
// (see NewTuple), and the empty tuple is interchangeable with Void.
type Tuple struct {
	Elements []Type // nil/empty means the empty tuple "()"
}

func (Tuple) swiftType() {}

func (t Tuple) String() string {
	if len(t.Elements) == 0 {
		return "()"
	}
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t Tuple) Key() string {
	if len(t.Elements) == 0 {
		return "TUP:"
	}
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.Key()
	}
	return "TUP:" + strings.Join(parts, ",")
}

// NewTuple constructs a tuple, normalizing a single element to itself and
// zero elements to Void per the invariant in the spec's data model.
func NewTuple(elems ...Type) Type {
	switch len(elems) {
	case 0:
		return Void
	case 1:
		return elems[0]
	default:
		return Tuple{Elements: elems}
	}
}

// Void is the empty tuple "()", interchangeable with the tuple(empty) variant.
var Void Type = Tuple{}

// Block models a Swift function/closure type: "(Params) -> Return".
type Block struct {
	Parameters []Type
	ReturnType Type
}

func (Block) swiftType() {}

func (b Block) String() string {
	parts := make([]string, len(b.Parameters))
	for i, p := range b.Parameters {
		parts[i] = p.String()
	}
	ret := "Void"
	if b.ReturnType != nil {
		ret = b.ReturnType.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + ret
}

func (b Block) Key() string {
	parts := make([]string, len(b.Parameters))
	for i, p := range b.Parameters {
		parts[i] = p.Key()
	}
	ret := ""
	if b.ReturnType != nil {
		ret = b.ReturnType.Key()
	}
	return "BLK:(" + strings.Join(parts, ",") + ")->" + ret
}

// Metatype models "T.Type" / "T.Protocol".
type Metatype struct {
	Base      Type
	Protocol  bool // true for ".Protocol", false for ".Type"
}

func (Metatype) swiftType() {}

func (m Metatype) String() string {
	suffix := ".Type"
	if m.Protocol {
		suffix = ".Protocol"
	}
	return m.Base.String() + suffix
}

func (m Metatype) Key() string {
	suffix := "Type"
	if m.Protocol {
		suffix = "Protocol"
	}
	return "META:" + suffix + ":" + m.Base.Key()
}

// Optional models "T?". Optionals never nest with themselves: Optional(Optional(T))
// normalizes (textually and by construction via NewOptional) to Optional(T).
type Optional struct {
	Wrapped Type
}

func (Optional) swiftType() {}
func (o Optional) String() string { return o.Wrapped.String() + "?" }
func (o Optional) Key() string     { return "OPT:" + o.Wrapped.Key() }

// NewOptional wraps t in an Optional, collapsing T?? to T?.
func NewOptional(t Type) Type {
	if o, ok := t.(Optional); ok {
		return o
	}
	return Optional{Wrapped: t}
}

// ImplicitlyUnwrappedOptional models "T!".
type ImplicitlyUnwrappedOptional struct {
	Wrapped Type
}

func (ImplicitlyUnwrappedOptional) swiftType() {}
func (i ImplicitlyUnwrappedOptional) String() string { return i.Wrapped.String() + "!" }
func (i ImplicitlyUnwrappedOptional) Key() string     { return "IUO:" + i.Wrapped.Key() }

// NewIUO wraps t in an implicitly-unwrapped optional, collapsing T!! to T!.
func NewIUO(t Type) Type {
	if i, ok := t.(ImplicitlyUnwrappedOptional); ok {
		return i
	}
	return ImplicitlyUnwrappedOptional{Wrapped: t}
}

// Array models "[T]".
type Array struct {
	Element Type
}

func (Array) swiftType() {}
func (a Array) String() string { return "[" + a.Element.String() + "]" }
func (a Array) Key() string     { return "ARR:" + a.Element.Key() }

// Dictionary models "[K: V]".
type Dictionary struct {
	Key_  Type
	Value Type
}

func (Dictionary) swiftType() {}
func (d Dictionary) String() string { return "[" + d.Key_.String() + ": " + d.Value.String() + "]" }
func (d Dictionary) Key() string     { return "DICT:" + d.Key_.Key() + ":" + d.Value.Key() }

// errorTypeSentinel is the sentinel for "type unknown".
type errorTypeSentinel struct{}

func (errorTypeSentinel) swiftType()      {}
func (errorTypeSentinel) String() string { return "<error type>" }
func (errorTypeSentinel) Key() string     { return "ERR" }

// ErrorType is the sentinel value meaning "type could not be resolved".
var ErrorType Type = errorTypeSentinel{}

// IsErrorType reports whether t is the error-type sentinel.
func IsErrorType(t Type) bool {
	_, ok := t.(errorTypeSentinel)
	return ok
}

// DeepUnwrapped strips outer Optional/ImplicitlyUnwrappedOptional layers
// repeatedly, per the type system's deepUnwrapped operation (spec §4.3).
func DeepUnwrapped(t Type) Type {
	for {
		switch v := t.(type) {
		case Optional:
			t = v.Wrapped
		case ImplicitlyUnwrappedOptional:
			t = v.Wrapped
		default:
			return t
		}
	}
}

// IsOptional reports whether t is Optional or ImplicitlyUnwrappedOptional.
func IsOptional(t Type) bool {
	switch t.(type) {
	case Optional, ImplicitlyUnwrappedOptional:
		return true
	default:
		return false
	}
}

// IsVoid reports whether t is Void or the structurally equivalent empty tuple.
func IsVoid(t Type) bool {
	tup, ok := t.(Tuple)
	return ok && len(tup.Elements) == 0
}
