package swifttype

// primitiveBridge maps the fixed-width/primitive ObjC type names to their
// idiomatic Swift equivalents (spec §1 "idiomatic Objective-C patterns...
// rendered as idiomatic Swift").
var primitiveBridge = map[string]string{
	"NSInteger": "Int", "int": "Int", "long": "Int", "short": "Int",
	"NSUInteger": "UInt", "unsigned int": "UInt", "unsigned long": "UInt",
	"CGFloat": "Double", "float": "Float", "double": "Double",
	"BOOL": "Bool", "bool": "Bool", "_Bool": "Bool",
	"NSString": "String", "NSMutableString": "String",
}

// bridgedContainer maps an ObjC lightweight-generic container name to the
// Swift container it bridges to: "NSArray" -> Array, "NSDictionary" ->
// Dictionary/map, "NSSet" -> Set.
var bridgedContainer = map[string]string{
	"NSArray": "array", "NSMutableArray": "array",
	"NSDictionary": "dictionary", "NSMutableDictionary": "dictionary",
	"NSSet": "set", "NSMutableSet": "set",
}

// BridgeObjcType translates an Objective-C type signature into the Swift
// type it idiomatically bridges to (spec §1/§4.2). Nullability qualifiers
// become Optional; unannotated pointer types default to non-optional,
// matching an NS_ASSUME_NONNULL_BEGIN-style default (the caller supplies
// assumedNonnull — the ambient nullability context at the declaration site
// — so a bare, unqualified pointer outside such a region still bridges to
// an Optional per Objective-C's actual default).
func BridgeObjcType(t ObjcType, assumedNonnull bool) Type {
	switch v := NormalizeObjc(t).(type) {
	case ObjcVoid:
		return Void
	case ObjcInstancetype:
		return NewTypeName("Self")
	case ObjcID:
		if len(v.Protocols) == 0 {
			return NewTypeName("AnyObject")
		}
		members := make([]Type, len(v.Protocols))
		for i, p := range v.Protocols {
			members[i] = NewTypeName(p)
		}
		if len(members) == 1 {
			return members[0]
		}
		return ProtocolComposition{Members: members}
	case ObjcStruct:
		if swift, ok := primitiveBridge[v.Name]; ok {
			return NewTypeName(swift)
		}
		return NewTypeName(v.Name)
	case ObjcGeneric:
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = BridgeObjcType(a, assumedNonnull)
		}
		switch bridgedContainer[v.Name] {
		case "array":
			return Array{Element: args[0]}
		case "dictionary":
			if len(args) >= 2 {
				return Dictionary{Key_: args[0], Value: args[1]}
			}
		case "set":
			return NewGeneric("Set", args[0])
		}
		return NewGeneric(v.Name, args...)
	case ObjcPointer:
		base := BridgeObjcType(v.Pointee, assumedNonnull)
		if assumedNonnull {
			return base
		}
		return NewOptional(base)
	case ObjcQualified:
		base := BridgeObjcType(v.Base, assumedNonnull)
		for _, q := range v.Quals {
			switch q {
			case QualNullable, QualNullUnspecified:
				return NewOptional(base)
			case QualNonnull:
				return base
			}
		}
		return base
	case ObjcSpecified:
		base := BridgeObjcType(v.Base, assumedNonnull)
		for _, s := range v.Specs {
			if s == "unsigned" {
				if n, ok := base.(Nominal); ok && n.Name == "Int" {
					return NewTypeName("UInt")
				}
			}
		}
		return base
	case ObjcBlockType:
		params := make([]Type, len(v.Parameters))
		for i, p := range v.Parameters {
			params[i] = BridgeObjcType(p, assumedNonnull)
		}
		return Block{Parameters: params, ReturnType: BridgeObjcType(v.ReturnType, assumedNonnull)}
	case ObjcFunctionPointer:
		params := make([]Type, len(v.Parameters))
		for i, p := range v.Parameters {
			params[i] = BridgeObjcType(p, assumedNonnull)
		}
		return Block{Parameters: params, ReturnType: BridgeObjcType(v.ReturnType, assumedNonnull)}
	case ObjcFixedArray:
		return Array{Element: BridgeObjcType(v.Element, assumedNonnull)}
	default:
		return ErrorType
	}
}
