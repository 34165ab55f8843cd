package typeinspect

// Primitive array classes to their boxed element classes, keyed by qualified name.
// Read-only after package initialization.
var primitiveArrayTypes = map[string]Class{
	IntArray.QualifiedName():     Int,
	LongArray.QualifiedName():    Long,
	ShortArray.QualifiedName():   Short,
	FloatArray.QualifiedName():   Float,
	DoubleArray.QualifiedName():  Double,
	CharArray.QualifiedName():    Char,
	BooleanArray.QualifiedName(): Boolean,
}

// Returns boxed element Class of primitive array c.
// Returns false if c is not a primitive array.
func PrimitiveElement(c Class) (Class, bool) {
	element, ok := primitiveArrayTypes[c.QualifiedName()]
	return element, ok
}

// Returns true if c is one of the primitive array classes.
func IsPrimitiveArray(c Class) bool {
	_, ok := primitiveArrayTypes[c.QualifiedName()]
	return ok
}
