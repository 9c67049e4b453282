package mython

// ValueKind discriminates the runtime value variants.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindNumber
	KindString
	KindBool
	KindClass
	KindInstance
)

var valueKindNames = map[ValueKind]string{
	KindNone:     "None",
	KindNumber:   "number",
	KindString:   "string",
	KindBool:     "bool",
	KindClass:    "class",
	KindInstance: "instance",
}

func (k ValueKind) String() string {
	if name, ok := valueKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is a tagged variant. Number, String and Bool are value-semantic;
// Class and Instance share the referenced descriptor or object.
type Value struct {
	kind ValueKind
	data any
}
