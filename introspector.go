package typeinspect

// Answers questions about Type erasure, wrapped type and names.
// Introspector holds no mutable state and is safe for concurrent use.
type Introspector struct {
	isList  Predicate
	isArray Predicate
}

// Option configures predicates used by Introspector.
type Option func(isList, isArray Predicate) (Predicate, Predicate)

// Option to use with New.
// nil predicate keeps the previous one.
func WithPredicates(isList, isArray Predicate) Option {
	return func(oldIsList, oldIsArray Predicate) (Predicate, Predicate) {
		if isList == nil {
			isList = oldIsList
		}

		if isArray == nil {
			isArray = oldIsArray
		}

		return isList, isArray
	}
}

// Option that specifies list predicate.
func WithListPredicate(isList Predicate) Option {
	return WithPredicates(isList, nil)
}

// Option that specifies array predicate.
func WithArrayPredicate(isArray Predicate) Option {
	return WithPredicates(nil, isArray)
}

// Returns new *Introspector.
// Without options classes are classified by their Kind.
func New(opts ...Option) *Introspector {
	isList, isArray := Predicate(IsList), Predicate(IsArray)

	for _, option := range opts {
		isList, isArray = option(isList, isArray)
	}

	return &Introspector{isList: isList, isArray: isArray}
}

// Default list predicate.
func IsList(c Class) bool {
	return c.Kind() == KindList
}

// Default array predicate.
func IsArray(c Class) bool {
	return c.Kind() == KindArray
}

// Returns erased Class of t.
func (i *Introspector) ErasedClass(t Type) Class {
	return t.Class()
}

// Returns first generic argument of t.
// Returns *InvalidListTypeError if t has no generic arguments.
func (i *Introspector) FirstTypeArgument(t Type) (Type, error) {
	args := t.Arguments()
	if len(args) == 0 {
		return nil, NewInvalidListTypeError(t)
	}

	return args[0], nil
}

// Returns element type of list, array or primitive array t.
// Primitive arrays unwrap to their boxed element with no arguments,
// everything else to the first generic argument.
func (i *Introspector) WrappedType(t Type) (Type, error) {
	if element, ok := PrimitiveElement(i.ErasedClass(t)); ok {
		return CreateType(element), nil
	}

	return i.FirstTypeArgument(t)
}

// Returns printable name of t.
// Primitive arrays keep their own name ("IntArray"),
// lists and arrays are rendered one level deep ("List<String>", "Array<Int>").
func (i *Introspector) WrappedName(t Type) (string, error) {
	c := i.ErasedClass(t)

	switch {
	case IsPrimitiveArray(c):
		return i.SimpleName(t), nil
	case i.isList(c):
		return i.wrap("List", t)
	case i.isArray(c):
		return i.wrap("Array", t)
	default:
		return i.SimpleName(t), nil
	}
}

func (i *Introspector) wrap(container string, t Type) (string, error) {
	wrapped, err := i.WrappedType(t)
	if err != nil {
		return "", err
	}

	return container + "<" + i.SimpleName(wrapped) + ">", nil
}

// Returns simple name of erased Class of t.
func (i *Introspector) SimpleName(t Type) string {
	return i.ErasedClass(t).SimpleName()
}

// Returns qualified name of erased Class of t.
func (i *Introspector) QualifiedName(t Type) string {
	return i.ErasedClass(t).QualifiedName()
}
