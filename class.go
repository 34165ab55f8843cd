package typeinspect

import "strings"

var (
	_ Class = class{}
	_ Type  = new(typeHandle)
)

const (
	corePackage        = "kotlin"
	collectionsPackage = "kotlin.collections"
)

// Built-in classes.
var (
	Int     Class = NewClass(corePackage, "Int", KindObject)
	Long    Class = NewClass(corePackage, "Long", KindObject)
	Short   Class = NewClass(corePackage, "Short", KindObject)
	Float   Class = NewClass(corePackage, "Float", KindObject)
	Double  Class = NewClass(corePackage, "Double", KindObject)
	Char    Class = NewClass(corePackage, "Char", KindObject)
	Boolean Class = NewClass(corePackage, "Boolean", KindObject)
	String  Class = NewClass(corePackage, "String", KindObject)

	IntArray     Class = NewClass(corePackage, "IntArray", KindObject)
	LongArray    Class = NewClass(corePackage, "LongArray", KindObject)
	ShortArray   Class = NewClass(corePackage, "ShortArray", KindObject)
	FloatArray   Class = NewClass(corePackage, "FloatArray", KindObject)
	DoubleArray  Class = NewClass(corePackage, "DoubleArray", KindObject)
	CharArray    Class = NewClass(corePackage, "CharArray", KindObject)
	BooleanArray Class = NewClass(corePackage, "BooleanArray", KindObject)

	List  Class = NewClass(collectionsPackage, "List", KindList)
	Map   Class = NewClass(collectionsPackage, "Map", KindObject)
	Array Class = NewClass(corePackage, "Array", KindArray)
)

var builtins = map[string]Class{}

func init() {
	for _, c := range []Class{
		Int, Long, Short, Float, Double, Char, Boolean, String,
		IntArray, LongArray, ShortArray, FloatArray, DoubleArray, CharArray, BooleanArray,
		List, Map, Array,
	} {
		builtins[c.QualifiedName()] = c
	}
}

// Returns built-in Class registered under qualifiedName.
func Builtin(qualifiedName string) (Class, bool) {
	c, ok := builtins[qualifiedName]
	return c, ok
}

// Returns new Class.
// Classes with equal pkg, name and kind are equal and can be used as map keys.
func NewClass(pkg, name string, kind Kind) Class {
	return class{pkg: pkg, name: name, kind: kind}
}

type class struct {
	pkg  string
	name string
	kind Kind
}

func (c class) SimpleName() string {
	return c.name
}

func (c class) QualifiedName() string {
	if c.pkg == "" {
		return c.name
	}

	return c.pkg + "." + c.name
}

func (c class) Kind() Kind {
	return c.kind
}

// Returns Type for c with no generic arguments.
func CreateType(c Class) Type {
	return &typeHandle{class: c}
}

// Returns Type for c parameterized with args.
// args are copied.
func TypeOf(c Class, args ...Type) Type {
	if len(args) == 0 {
		return CreateType(c)
	}

	return &typeHandle{class: c, args: append([]Type(nil), args...)}
}

type typeHandle struct {
	class Class
	args  []Type
}

func (t *typeHandle) Class() Class {
	return t.class
}

func (t *typeHandle) Arguments() []Type {
	if len(t.args) == 0 {
		return nil
	}

	return append([]Type(nil), t.args...)
}

func (t *typeHandle) String() string {
	if len(t.args) == 0 {
		return t.class.QualifiedName()
	}

	var sb strings.Builder

	sb.WriteString(t.class.QualifiedName())
	sb.WriteByte('<')

	for i, arg := range t.args {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(arg.String())
	}

	sb.WriteByte('>')

	return sb.String()
}
