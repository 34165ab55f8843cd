package typeinspect

var defaultIntrospector = New()

// Returns erased Class of t.
func ErasedClass(t Type) Class {
	return defaultIntrospector.ErasedClass(t)
}

// Returns first generic argument of t using default predicates.
func FirstTypeArgument(t Type) (Type, error) {
	return defaultIntrospector.FirstTypeArgument(t)
}

// Returns element type of t using default predicates.
func WrappedType(t Type) (Type, error) {
	return defaultIntrospector.WrappedType(t)
}

// Returns printable name of t using default predicates.
func WrappedName(t Type) (string, error) {
	return defaultIntrospector.WrappedName(t)
}

// Returns simple name of erased Class of t.
func SimpleName(t Type) string {
	return defaultIntrospector.SimpleName(t)
}

// Returns qualified name of erased Class of t.
func QualifiedName(t Type) string {
	return defaultIntrospector.QualifiedName(t)
}
