package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	Integer
	Boolean
	String
	Void // only valid as a function result
)

// Basic represents one of the language's scalar types.
type Basic struct {
	typ
	kind BasicKind
	name string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared basic types, indexed by BasicKind.
// Typ[Invalid] is nil, representing an invalid type.
var Typ = []*Basic{
	Invalid: nil,
	Integer: {kind: Integer, name: "Integer"},
	Boolean: {kind: Boolean, name: "Boolean"},
	String:  {kind: String, name: "String"},
	Void:    {kind: Void, name: "Void"},
}
