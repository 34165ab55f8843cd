// This package is intended to help schema generators inspect list-like types.

// To install typeinspect:
// 	go get -u github.com/andriiyaremenko/typeinspect

// How to use:
//
// Descriptors:
// import (
// 	"github.com/andriiyaremenko/typeinspect"
// )
// func main() {
// 	names := typeinspect.TypeOf(typeinspect.List, typeinspect.CreateType(typeinspect.String))
//
// 	name, err := typeinspect.WrappedName(names) // "List<String>"
// 	// handle error
// 	if errors.Is(err, typeinspect.ErrInvalidListType) {
// 		// ...
// 	}
//
// 	element, err := typeinspect.WrappedType(typeinspect.CreateType(typeinspect.IntArray))
// 	// element.Class() == typeinspect.Int
// }
//
// Reflection:
// import (
// 	"github.com/andriiyaremenko/typeinspect"
// )
// type User struct{}
//
// func main() {
// 	t := typeinspect.Of[[]User]()
//
// 	name, _ := typeinspect.WrappedName(t) // "List<User>"
// 	typeinspect.QualifiedName(t)           // "kotlin.collections.List"
//
// 	ids := typeinspect.Of[[]int32](typeinspect.WithPrimitiveArrays())
// 	name, _ = typeinspect.WrappedName(ids) // "IntArray"
// }
//
// Custom predicates:
// import (
// 	"github.com/andriiyaremenko/typeinspect"
// )
// func main() {
// 	set := typeinspect.NewClass("kotlin.collections", "Set", typeinspect.KindObject)
// 	i := typeinspect.New(
// 		typeinspect.WithListPredicate(func(c typeinspect.Class) bool {
// 			return typeinspect.IsList(c) || c == set
// 		}),
// 	)
//
// 	name, _ := i.WrappedName(typeinspect.TypeOf(set, typeinspect.CreateType(typeinspect.Int))) // "List<Int>"
// }
package typeinspect
