// Package sig models the decoded form of method signatures: the ordered
// parameter-type list embedded in a method's binary signature, plus the type
// nodes it references.
//
// The binary encoding and decoding of full type signatures lives with the
// metadata reader/writer; this package only models the decoded shape that
// higher layers edit in place.
package sig

// TypeSig is one node of a decoded type signature.
type TypeSig interface {
	// Name returns the display name of the type, e.g. "System.Int32".
	Name() string
}

// PrimitiveKind enumerates the built-in element types a Primitive can carry.
type PrimitiveKind uint8

const (
	KindVoid PrimitiveKind = iota
	KindBoolean
	KindChar
	KindSByte
	KindByte
	KindInt16
	KindUInt16
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindSingle
	KindDouble
	KindString
	KindObject
)

var primitiveNames = [...]string{
	KindVoid:    "System.Void",
	KindBoolean: "System.Boolean",
	KindChar:    "System.Char",
	KindSByte:   "System.SByte",
	KindByte:    "System.Byte",
	KindInt16:   "System.Int16",
	KindUInt16:  "System.UInt16",
	KindInt32:   "System.Int32",
	KindUInt32:  "System.UInt32",
	KindInt64:   "System.Int64",
	KindUInt64:  "System.UInt64",
	KindSingle:  "System.Single",
	KindDouble:  "System.Double",
	KindString:  "System.String",
	KindObject:  "System.Object",
}

// Primitive is a built-in element type.
type Primitive struct {
	Kind PrimitiveKind
}

func (p Primitive) Name() string {
	if int(p.Kind) < len(primitiveNames) {
		return primitiveNames[p.Kind]
	}

	return "Unknown"
}

// Named references a class or value type by its full name.
type Named struct {
	FullName string
}

func (n Named) Name() string {
	return n.FullName
}
