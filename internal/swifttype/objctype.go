package swifttype

import "strings"

// ObjcType is the sum type for Objective-C type signatures, as consumed by
// intention collection (spec §3, "ObjcType (sum type)").
type ObjcType interface {
	objcType()
	String() string
	Key() string
}

// ObjcID models "id" or "id<Protocol1, Protocol2>".
type ObjcID struct {
	Protocols []string
}

func (ObjcID) objcType() {}

func (o ObjcID) String() string {
	if len(o.Protocols) == 0 {
		return "id"
	}
	return "id<" + strings.Join(o.Protocols, ", ") + ">"
}

func (o ObjcID) Key() string { return "ID:" + strings.Join(o.Protocols, ",") }

// ObjcInstancetype models "instancetype".
type ObjcInstancetype struct{}

func (ObjcInstancetype) objcType()       {}
func (ObjcInstancetype) String() string { return "instancetype" }
func (ObjcInstancetype) Key() string     { return "INSTANCETYPE" }

// ObjcStruct models a named struct/class type, e.g. "NSString", "CGPoint".
type ObjcStruct struct {
	Name string
}

func (ObjcStruct) objcType()       {}
func (s ObjcStruct) String() string { return s.Name }
func (s ObjcStruct) Key() string     { return "STRUCT:" + s.Name }

// ObjcVoid models "void".
type ObjcVoid struct{}

func (ObjcVoid) objcType()       {}
func (ObjcVoid) String() string { return "void" }
func (ObjcVoid) Key() string     { return "VOID" }

// ObjcPointer models "T *".
type ObjcPointer struct {
	Pointee ObjcType
}

func (ObjcPointer) objcType()       {}
func (p ObjcPointer) String() string { return p.Pointee.String() + " *" }
func (p ObjcPointer) Key() string     { return "PTR:" + p.Pointee.Key() }

// ObjcGeneric models a lightweight-generic type, e.g. "NSArray<NSString *>".
type ObjcGeneric struct {
	Name string
	Args []ObjcType
}

func (ObjcGeneric) objcType() {}

func (g ObjcGeneric) String() string {
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.String()
	}
	return g.Name + "<" + strings.Join(parts, ", ") + ">"
}

func (g ObjcGeneric) Key() string {
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.Key()
	}
	return "GEN:" + g.Name + "<" + strings.Join(parts, ",") + ">"
}

// NullabilityQualifier enumerates the qualifiers recognized on ObjcType.Qualified.
type NullabilityQualifier int

const (
	QualNonnull NullabilityQualifier = iota
	QualNullable
	QualNullUnspecified
)

func (q NullabilityQualifier) String() string {
	switch q {
	case QualNonnull:
		return "_Nonnull"
	case QualNullable:
		return "_Nullable"
	default:
		return "_Null_unspecified"
	}
}

// ObjcQualified models a type with nullability/other qualifiers attached,
// e.g. "NSString * _Nullable". Normalization flattens nested qualified
// chains and drops empty qualifier lists (see Normalize).
type ObjcQualified struct {
	Base  ObjcType
	Quals []NullabilityQualifier
}

func (ObjcQualified) objcType() {}

func (q ObjcQualified) String() string {
	if len(q.Quals) == 0 {
		return q.Base.String()
	}
	parts := make([]string, len(q.Quals))
	for i, ql := range q.Quals {
		parts[i] = ql.String()
	}
	return q.Base.String() + " " + strings.Join(parts, " ")
}

func (q ObjcQualified) Key() string {
	if len(q.Quals) == 0 {
		return q.Base.Key()
	}
	parts := make([]string, len(q.Quals))
	for i, ql := range q.Quals {
		parts[i] = ql.String()
	}
	return "QUAL:" + q.Base.Key() + ":" + strings.Join(parts, ",")
}

// ObjcSpecified models a type with storage-class/type specifiers attached,
// e.g. "static const int". Normalization drops empty specifier lists.
type ObjcSpecified struct {
	Specs []string
	Base  ObjcType
}

func (ObjcSpecified) objcType() {}

func (s ObjcSpecified) String() string {
	if len(s.Specs) == 0 {
		return s.Base.String()
	}
	return strings.Join(s.Specs, " ") + " " + s.Base.String()
}

func (s ObjcSpecified) Key() string {
	if len(s.Specs) == 0 {
		return s.Base.Key()
	}
	return "SPEC:" + strings.Join(s.Specs, ",") + ":" + s.Base.Key()
}

// ObjcBlockType models a block type, "RetType (^name)(ParamTypes)".
type ObjcBlockType struct {
	Name       string // optional
	ReturnType ObjcType
	Parameters []ObjcType
}

func (ObjcBlockType) objcType() {}

func (b ObjcBlockType) String() string {
	parts := make([]string, len(b.Parameters))
	for i, p := range b.Parameters {
		parts[i] = p.String()
	}
	return b.ReturnType.String() + " (^" + b.Name + ")(" + strings.Join(parts, ", ") + ")"
}

func (b ObjcBlockType) Key() string {
	parts := make([]string, len(b.Parameters))
	for i, p := range b.Parameters {
		parts[i] = p.Key()
	}
	return "BLOCK:" + b.ReturnType.Key() + "(" + strings.Join(parts, ",") + ")"
}

// ObjcFunctionPointer models "RetType (*name)(ParamTypes)".
type ObjcFunctionPointer struct {
	Name       string // optional
	ReturnType ObjcType
	Parameters []ObjcType
}

func (ObjcFunctionPointer) objcType() {}

func (f ObjcFunctionPointer) String() string {
	parts := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		parts[i] = p.String()
	}
	return f.ReturnType.String() + " (*" + f.Name + ")(" + strings.Join(parts, ", ") + ")"
}

func (f ObjcFunctionPointer) Key() string {
	parts := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		parts[i] = p.Key()
	}
	return "FPTR:" + f.ReturnType.Key() + "(" + strings.Join(parts, ",") + ")"
}

// ObjcFixedArray models "T name[len]".
type ObjcFixedArray struct {
	Element ObjcType
	Length  int
}

func (ObjcFixedArray) objcType() {}

func (a ObjcFixedArray) String() string {
	return a.Element.String() + "[" + itoa(a.Length) + "]"
}

func (a ObjcFixedArray) Key() string {
	return "FIXARR:" + a.Element.Key() + ":" + itoa(a.Length)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// NormalizeObjc flattens nested ObjcQualified/ObjcSpecified chains and
// removes empty qualifier/specifier lists, per the ObjcType invariant.
func NormalizeObjc(t ObjcType) ObjcType {
	switch v := t.(type) {
	case ObjcQualified:
		base := NormalizeObjc(v.Base)
		quals := append([]NullabilityQualifier(nil), v.Quals...)
		if inner, ok := base.(ObjcQualified); ok {
			quals = append(inner.Quals, quals...)
			base = inner.Base
		}
		if len(quals) == 0 {
			return base
		}
		return ObjcQualified{Base: base, Quals: quals}
	case ObjcSpecified:
		base := NormalizeObjc(v.Base)
		specs := append([]string(nil), v.Specs...)
		if inner, ok := base.(ObjcSpecified); ok {
			specs = append(inner.Specs, specs...)
			base = inner.Base
		}
		if len(specs) == 0 {
			return base
		}
		return ObjcSpecified{Specs: specs, Base: base}
	case ObjcPointer:
		return ObjcPointer{Pointee: NormalizeObjc(v.Pointee)}
	default:
		return t
	}
}
