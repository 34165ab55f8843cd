package internal

import (
	"reflect"
	"strings"
)

func ReflectType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Returns name of instantiated generic type without its argument list:
// "Page[int]" becomes "Page".
func BaseName(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}

	return name
}
