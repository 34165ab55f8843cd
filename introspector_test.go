package typeinspect_test

import (
	"errors"
	"strings"

	"github.com/andriiyaremenko/typeinspect"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type hostClass struct {
	name    string
	aliases []string
}

func (c hostClass) SimpleName() string     { return c.name }
func (c hostClass) QualifiedName() string  { return "com.example.host." + c.name }
func (c hostClass) Kind() typeinspect.Kind { return typeinspect.KindObject }

var _ = Describe("Introspector", func() {
	intType := typeinspect.CreateType(typeinspect.Int)
	stringType := typeinspect.CreateType(typeinspect.String)

	DescribeTable("primitive arrays",
		func(array, element typeinspect.Class) {
			t := typeinspect.CreateType(array)

			wrapped, err := typeinspect.WrappedType(t)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(wrapped.Class()).To(Equal(element))
			Expect(wrapped.Arguments()).To(BeEmpty())

			name, err := typeinspect.WrappedName(t)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal(array.SimpleName()))
		},
		Entry("IntArray", typeinspect.IntArray, typeinspect.Int),
		Entry("LongArray", typeinspect.LongArray, typeinspect.Long),
		Entry("ShortArray", typeinspect.ShortArray, typeinspect.Short),
		Entry("FloatArray", typeinspect.FloatArray, typeinspect.Float),
		Entry("DoubleArray", typeinspect.DoubleArray, typeinspect.Double),
		Entry("CharArray", typeinspect.CharArray, typeinspect.Char),
		Entry("BooleanArray", typeinspect.BooleanArray, typeinspect.Boolean),
	)

	It("should report IntArray by its own name", func() {
		name, err := typeinspect.WrappedName(typeinspect.CreateType(typeinspect.IntArray))

		Expect(err).ShouldNot(HaveOccurred())
		Expect(name).To(Equal("IntArray"))
		Expect(name).NotTo(Equal("Int"))
	})

	It("should not find elements for classes that are not primitive arrays", func() {
		for _, c := range []typeinspect.Class{typeinspect.Int, typeinspect.List, typeinspect.Array, typeinspect.String} {
			_, ok := typeinspect.PrimitiveElement(c)
			Expect(ok).To(BeFalse(), c.QualifiedName())
			Expect(typeinspect.IsPrimitiveArray(c)).To(BeFalse(), c.QualifiedName())
		}
	})

	It("should resolve classes built with NewClass against the primitive array table", func() {
		c := typeinspect.NewClass("kotlin", "LongArray", typeinspect.KindObject)

		element, ok := typeinspect.PrimitiveElement(c)
		Expect(ok).To(BeTrue())
		Expect(element).To(Equal(typeinspect.Long))
	})

	It("should look up host classes that are not comparable", func() {
		host := hostClass{name: "Widget", aliases: []string{"Gadget"}}
		t := typeinspect.CreateType(host)

		Expect(typeinspect.IsPrimitiveArray(host)).To(BeFalse())

		_, ok := typeinspect.PrimitiveElement(host)
		Expect(ok).To(BeFalse())

		name, err := typeinspect.WrappedName(t)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(name).To(Equal("Widget"))

		_, err = typeinspect.WrappedType(t)
		Expect(err).To(MatchError(typeinspect.ErrInvalidListType))
	})

	Context("arguments", func() {
		It("should not change when caller changes the slice passed to TypeOf", func() {
			args := []typeinspect.Type{stringType}
			list := typeinspect.TypeOf(typeinspect.List, args...)

			args[0] = intType

			name, err := typeinspect.WrappedName(list)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("List<String>"))
		})

		It("should not change when caller changes the returned slice", func() {
			list := typeinspect.TypeOf(typeinspect.List, stringType)

			list.Arguments()[0] = typeinspect.CreateType(typeinspect.Long)

			name, err := typeinspect.WrappedName(list)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("List<String>"))
			Expect(list.Arguments()).To(HaveLen(1))
		})
	})

	Context("lists", func() {
		It("should wrap element name", func() {
			name, err := typeinspect.WrappedName(typeinspect.TypeOf(typeinspect.List, stringType))

			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("List<String>"))
		})

		It("should return first argument as wrapped type", func() {
			wrapped, err := typeinspect.WrappedType(typeinspect.TypeOf(typeinspect.List, intType))

			Expect(err).ShouldNot(HaveOccurred())
			Expect(wrapped).To(BeIdenticalTo(intType))
		})

		It("should unwrap only one level", func() {
			nested := typeinspect.TypeOf(typeinspect.List, typeinspect.TypeOf(typeinspect.List, intType))

			name, err := typeinspect.WrappedName(nested)

			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("List<List>"))
		})

		It("should fail for raw list", func() {
			raw := typeinspect.CreateType(typeinspect.List)

			_, err := typeinspect.WrappedName(raw)

			Expect(err).Should(HaveOccurred())
			Expect(err).To(MatchError(typeinspect.ErrInvalidListType))
		})
	})

	Context("arrays", func() {
		It("should wrap element name", func() {
			name, err := typeinspect.WrappedName(typeinspect.TypeOf(typeinspect.Array, intType))

			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("Array<Int>"))
		})

		It("should use simple name of a user class", func() {
			user := typeinspect.CreateType(typeinspect.NewClass("com.example.model", "User", typeinspect.KindObject))

			name, err := typeinspect.WrappedName(typeinspect.TypeOf(typeinspect.Array, user))

			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("Array<User>"))
		})
	})

	Context("plain types", func() {
		It("should use simple name", func() {
			for _, t := range []typeinspect.Type{
				intType,
				stringType,
				typeinspect.CreateType(typeinspect.NewClass("com.example", "Widget", typeinspect.KindObject)),
				typeinspect.TypeOf(typeinspect.Map, stringType, intType),
			} {
				name, err := typeinspect.WrappedName(t)

				Expect(err).ShouldNot(HaveOccurred())
				Expect(name).To(Equal(typeinspect.SimpleName(t)))
			}
		})
	})

	Context("FirstTypeArgument", func() {
		It("should return first of several arguments", func() {
			arg, err := typeinspect.FirstTypeArgument(typeinspect.TypeOf(typeinspect.Map, stringType, intType))

			Expect(err).ShouldNot(HaveOccurred())
			Expect(arg).To(BeIdenticalTo(stringType))
		})

		It("should return InvalidListTypeError referencing the type", func() {
			_, err := typeinspect.FirstTypeArgument(intType)

			Expect(err).Should(HaveOccurred())
			Expect(err).Should(BeAssignableToTypeOf(new(typeinspect.InvalidListTypeError)))
			Expect(err.(*typeinspect.InvalidListTypeError).Type).To(BeIdenticalTo(intType))
			Expect(err).To(MatchError("invalid list type: kotlin.Int has no type arguments"))
			Expect(errors.Is(err, typeinspect.ErrInvalidListType)).To(BeTrue())
		})

		It("should propagate InvalidListTypeError from WrappedType", func() {
			_, err := typeinspect.WrappedType(stringType)

			var target *typeinspect.InvalidListTypeError
			Expect(errors.As(err, &target)).To(BeTrue())
			Expect(target.Type).To(BeIdenticalTo(stringType))
		})
	})

	Context("names", func() {
		It("should end qualified name with simple name", func() {
			for _, t := range []typeinspect.Type{
				intType,
				typeinspect.TypeOf(typeinspect.List, intType),
				typeinspect.CreateType(typeinspect.BooleanArray),
				typeinspect.CreateType(typeinspect.NewClass("com.example.model", "User", typeinspect.KindObject)),
			} {
				qualified := typeinspect.QualifiedName(t)
				Expect(qualified[strings.LastIndex(qualified, ".")+1:]).To(Equal(typeinspect.SimpleName(t)))
			}
		})

		It("should use erasure for names", func() {
			t := typeinspect.TypeOf(typeinspect.List, intType)

			Expect(typeinspect.ErasedClass(t)).To(Equal(typeinspect.List))
			Expect(typeinspect.SimpleName(t)).To(Equal("List"))
			Expect(typeinspect.QualifiedName(t)).To(Equal("kotlin.collections.List"))
			Expect(t.String()).To(Equal("kotlin.collections.List<kotlin.Int>"))
		})

		It("should qualify classes without package by name only", func() {
			t := typeinspect.CreateType(typeinspect.NewClass("", "Local", typeinspect.KindObject))

			Expect(typeinspect.QualifiedName(t)).To(Equal("Local"))
		})
	})

	Context("custom predicates", func() {
		set := typeinspect.NewClass("kotlin.collections", "Set", typeinspect.KindObject)
		setOfInt := typeinspect.TypeOf(set, intType)

		It("should treat classes accepted by list predicate as lists", func() {
			i := typeinspect.New(
				typeinspect.WithListPredicate(func(c typeinspect.Class) bool {
					return typeinspect.IsList(c) || c == set
				}),
			)

			name, err := i.WrappedName(setOfInt)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("List<Int>"))

			name, err = i.WrappedName(typeinspect.TypeOf(typeinspect.Array, stringType))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("Array<String>"))
		})

		It("should treat classes accepted by array predicate as arrays", func() {
			i := typeinspect.New(
				typeinspect.WithArrayPredicate(func(c typeinspect.Class) bool { return c == set }),
			)

			name, err := i.WrappedName(setOfInt)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("Array<Int>"))

			name, err = i.WrappedName(typeinspect.TypeOf(typeinspect.Array, stringType))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("Array"))
		})

		It("should keep previous predicates for nil", func() {
			i := typeinspect.New(typeinspect.WithPredicates(nil, nil))

			name, err := i.WrappedName(typeinspect.TypeOf(typeinspect.List, intType))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("List<Int>"))
		})

		It("should check primitive arrays before predicates", func() {
			i := typeinspect.New(
				typeinspect.WithListPredicate(func(typeinspect.Class) bool { return true }),
			)

			name, err := i.WrappedName(typeinspect.CreateType(typeinspect.CharArray))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal("CharArray"))
		})
	})
})
