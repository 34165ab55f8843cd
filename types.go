package typeinspect

// Kind classifies a Class for the list and array predicates.
type Kind int

const (
	// Plain class, neither list nor array.
	KindObject Kind = iota
	// List class, unwrapped as "List<...>".
	KindList
	// Array class, unwrapped as "Array<...>".
	KindArray
)

// Returns lower-case name of k as used in descriptor manifests.
func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindArray:
		return "array"
	default:
		return "object"
	}
}

// Erased runtime class of a type: no generic arguments.
type Class interface {
	// Returns unqualified name, e.g. "List".
	SimpleName() string
	// Returns fully qualified name, e.g. "kotlin.collections.List".
	QualifiedName() string
	// Returns Kind used by default list and array predicates.
	Kind() Kind
}

// Runtime descriptor of a type, possibly carrying generic arguments.
type Type interface {
	// Returns erasure of the type.
	Class() Class
	// Returns copy of ordered generic arguments, might be empty.
	Arguments() []Type
	// Returns diagnostic representation of the type.
	String() string
}

// Predicate classifies a Class.
type Predicate func(Class) bool
