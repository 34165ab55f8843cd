package typeinspect

import (
	"reflect"

	"github.com/andriiyaremenko/typeinspect/internal"
)

const goPackage = "go"

var basicClasses = map[reflect.Kind]Class{
	reflect.Int32:   Int,
	reflect.Int64:   Long,
	reflect.Int:     Long,
	reflect.Int16:   Short,
	reflect.Float32: Float,
	reflect.Float64: Double,
	reflect.Bool:    Boolean,
	reflect.String:  String,
}

var primitiveSlices = map[reflect.Kind]Class{
	reflect.Int32:   IntArray,
	reflect.Int64:   LongArray,
	reflect.Int16:   ShortArray,
	reflect.Float32: FloatArray,
	reflect.Float64: DoubleArray,
	reflect.Bool:    BooleanArray,
}

// ReflectOption configures FromReflect.
type ReflectOption func(reflectConfig) reflectConfig

type reflectConfig struct {
	primitiveArrays bool
}

// Option that maps slices of int32, int64, int16, float32, float64 and bool
// to primitive array classes instead of List.
func WithPrimitiveArrays() ReflectOption {
	return func(c reflectConfig) reflectConfig {
		c.primitiveArrays = true
		return c
	}
}

// Returns Type describing T.
func Of[T any](opts ...ReflectOption) Type {
	return FromReflect(internal.ReflectType[T](), opts...)
}

// Returns Type describing rt.
// Pointers are dereferenced, slices become List, arrays become Array and maps become Map.
// Type arguments of instantiated generic Go types are not available through reflect,
// such types are described by their base name with no arguments.
func FromReflect(rt reflect.Type, opts ...ReflectOption) Type {
	var config reflectConfig
	for _, option := range opts {
		config = option(config)
	}

	return fromReflect(rt, config)
}

func fromReflect(rt reflect.Type, config reflectConfig) Type {
	// Named pointers keep their own name, "type P *P" never reaches a non-pointer.
	for rt.Kind() == reflect.Pointer && rt.Name() == "" {
		rt = rt.Elem()
	}

	if rt.Name() != "" && rt.PkgPath() != "" {
		return CreateType(NewClass(rt.PkgPath(), internal.BaseName(rt.Name()), KindObject))
	}

	switch rt.Kind() {
	case reflect.Slice:
		if config.primitiveArrays {
			if c, ok := primitiveSlices[rt.Elem().Kind()]; ok && rt.Elem().PkgPath() == "" {
				return CreateType(c)
			}
		}

		return TypeOf(List, fromReflect(rt.Elem(), config))
	case reflect.Array:
		return TypeOf(Array, fromReflect(rt.Elem(), config))
	case reflect.Map:
		return TypeOf(Map, fromReflect(rt.Key(), config), fromReflect(rt.Elem(), config))
	}

	if c, ok := basicClasses[rt.Kind()]; ok {
		return CreateType(c)
	}

	return CreateType(NewClass(goPackage, rt.Kind().String(), KindObject))
}
