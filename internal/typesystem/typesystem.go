// Package typesystem answers assignability/equivalence questions over
// SwiftType and resolves overloaded calls against a frozen intention graph
// (spec §4.3/§4.4), grounded on the teacher's internal/semantic analyze_*
// family of type-compatibility helpers.
package typesystem

import (
	"github.com/objc2swift/transpiler/internal/intention"
	"github.com/objc2swift/transpiler/internal/swifttype"
)

// System is the interface expression passes consult, so a stub
// implementation can drive unit tests without a real intention graph
// (spec §4.3: "consulted through an interface").
type System interface {
	IsAssignable(from, to swifttype.Type) bool
	TypesMatch(a, b swifttype.Type, ignoreNullability bool) bool
	IsNumeric(t swifttype.Type) bool
	IsFloat(t swifttype.Type) bool
	IsInteger(t swifttype.Type) bool
	ResolveMember(receiver swifttype.Type, name string) (*intention.Intention, bool)
}

var floatTypeNames = map[string]bool{
	"Float": true, "Double": true, "CGFloat": true, "Float80": true,
}

var integerTypeNames = map[string]bool{
	"Int": true, "Int8": true, "Int16": true, "Int32": true, "Int64": true,
	"UInt": true, "UInt8": true, "UInt16": true, "UInt32": true, "UInt64": true,
}

// DefaultSystem is the concrete System backed by a frozen intention.Graph.
type DefaultSystem struct {
	Graph *intention.Graph
}

// NewDefaultSystem builds a System over a (normally frozen, per spec §5)
// intention graph.
func NewDefaultSystem(g *intention.Graph) *DefaultSystem {
	return &DefaultSystem{Graph: g}
}

// IsInteger reports whether t names one of Swift's built-in integer types.
func (s *DefaultSystem) IsInteger(t swifttype.Type) bool {
	n, ok := swifttype.DeepUnwrapped(t).(swifttype.Nominal)
	return ok && integerTypeNames[n.Name]
}

// IsFloat reports whether t names one of Swift's built-in floating-point types.
func (s *DefaultSystem) IsFloat(t swifttype.Type) bool {
	n, ok := swifttype.DeepUnwrapped(t).(swifttype.Nominal)
	return ok && floatTypeNames[n.Name]
}

// IsNumeric reports whether t is an integer or floating-point type.
func (s *DefaultSystem) IsNumeric(t swifttype.Type) bool {
	return s.IsInteger(t) || s.IsFloat(t)
}

// TypesMatch reports type equivalence, optionally ignoring optional/IUO
// wrapping on both sides (spec §4.3: "ignores optional wrapping only when
// ignoreNullability=true").
func (s *DefaultSystem) TypesMatch(a, b swifttype.Type, ignoreNullability bool) bool {
	if ignoreNullability {
		a = swifttype.DeepUnwrapped(a)
		b = swifttype.DeepUnwrapped(b)
	}
	return swifttype.Equal(a, b)
}

// IsAssignable reports whether a value of type `from` can be assigned to a
// location of type `to`: exact match, numeric widening (Int -> Float-family
// is NOT implicit in Swift itself, so only identical-or-hierarchy matches
// here), or class/protocol hierarchy membership resolved via the intention
// graph.
func (s *DefaultSystem) IsAssignable(from, to swifttype.Type) bool {
	if swifttype.Equal(from, to) {
		return true
	}
	// `to` optional accepts a non-optional `from` of the wrapped type
	// (Swift implicitly promotes T to T?).
	switch toT := to.(type) {
	case swifttype.Optional:
		return s.IsAssignable(from, toT.Wrapped)
	case swifttype.ImplicitlyUnwrappedOptional:
		return s.IsAssignable(from, toT.Wrapped)
	}
	fromName, fromOK := nominalName(from)
	toName, toOK := nominalName(to)
	if !fromOK || !toOK {
		return false
	}
	return s.isSubtypeByName(fromName, toName)
}

func nominalName(t swifttype.Type) (string, bool) {
	switch v := swifttype.DeepUnwrapped(t).(type) {
	case swifttype.Nominal:
		return v.Name, true
	default:
		return "", false
	}
}

// isSubtypeByName walks the intention graph's class hierarchy (superclass
// chain) and conformed-protocol list looking for toName, mirroring the
// teacher's "class -> superclass -> conformed protocols" hierarchical
// lookup generalized to Swift's data model (spec §4.3).
func (s *DefaultSystem) isSubtypeByName(fromName, toName string) bool {
	if fromName == toName {
		return true
	}
	if s.Graph == nil {
		return false
	}
	visited := make(map[string]bool)
	cur, ok := s.Graph.Lookup(fromName)
	for ok && !visited[cur.Name] {
		visited[cur.Name] = true
		for _, p := range cur.Protocols {
			if p == toName {
				return true
			}
		}
		if cur.SuperName == toName {
			return true
		}
		cur, ok = s.Graph.Lookup(cur.SuperName)
	}
	return false
}

// ResolveMember looks up a member (method/property/ivar) named `name` on
// the nominal type `receiver`, walking the superclass chain the same way
// isSubtypeByName does (spec §4.3: "hierarchical lookup: class ->
// superclass -> conformed protocols").
func (s *DefaultSystem) ResolveMember(receiver swifttype.Type, name string) (*intention.Intention, bool) {
	if s.Graph == nil {
		return nil, false
	}
	typeName, ok := nominalName(receiver)
	if !ok {
		return nil, false
	}
	visited := make(map[string]bool)
	for typeName != "" && !visited[typeName] {
		visited[typeName] = true
		for _, m := range s.Graph.Members(typeName) {
			if m.Name == name {
				return m, true
			}
		}
		owner, ok := s.Graph.Lookup(typeName)
		if !ok {
			break
		}
		for _, proto := range owner.Protocols {
			for _, m := range s.Graph.Members(proto) {
				if m.Name == name {
					return m, true
				}
			}
		}
		typeName = owner.SuperName
	}
	return nil, false
}
