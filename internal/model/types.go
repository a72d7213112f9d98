package model

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ClassName identifies a nominal type by package and simple name.
// Nested classes keep their enclosing names in Simple, e.g. "Outer.Inner".
type ClassName struct {
	Package string // e.g., "rxhttp.wrapper.parse"
	Simple  string // e.g., "Parser"
}

// NewClassName creates a ClassName from its parts.
func NewClassName(pkg, simple string) ClassName {
	return ClassName{Package: pkg, Simple: simple}
}

// BestGuess splits a qualified name into package and simple name.
// Segments starting with a lower-case letter form the package, the first
// upper-case segment and everything after it form the simple name.
func BestGuess(qualified string) (ClassName, error) {
	if qualified == "" {
		return ClassName{}, errors.New("empty class name")
	}

	parts := strings.Split(qualified, ".")
	for i, part := range parts {
		if part == "" {
			return ClassName{}, errors.Newf("invalid class name %q: empty segment", qualified)
		}

		if isUpper(part[0]) {
			return ClassName{
				Package: strings.Join(parts[:i], "."),
				Simple:  strings.Join(parts[i:], "."),
			}, nil
		}
	}

	return ClassName{}, errors.Newf("invalid class name %q: no upper-case simple name", qualified)
}

// Qualified returns the fully qualified name.
func (c ClassName) Qualified() string {
	if c.Package == "" {
		return c.Simple
	}

	return c.Package + "." + c.Simple
}

// SimpleName returns the innermost simple name ("Inner" for "Outer.Inner").
func (c ClassName) SimpleName() string {
	if i := strings.LastIndexByte(c.Simple, '.'); i >= 0 {
		return c.Simple[i+1:]
	}

	return c.Simple
}

// TopLevel returns the outermost simple name, which is what gets imported.
func (c ClassName) TopLevel() string {
	if i := strings.IndexByte(c.Simple, '.'); i >= 0 {
		return c.Simple[:i]
	}

	return c.Simple
}

// IsZero returns true for the empty ClassName.
func (c ClassName) IsZero() bool {
	return c.Simple == ""
}

// String returns the qualified name.
func (c ClassName) String() string {
	return c.Qualified()
}

//go:generate go tool stringer -type=TypeKind -trimprefix=TypeKind -output=kind_string.go

// TypeKind is the shape of a TypeName.
type TypeKind int

const (
	TypeKindUnknown       TypeKind = iota
	TypeKindClass                  // plain nominal type, no type arguments
	TypeKindParameterized          // raw class with type arguments
	TypeKindArray                  // array of Elem
	TypeKindVariable               // generic type variable
	TypeKindWildcard               // type argument projection: *, out Elem or in Elem
)

// Variance of a projected type argument.
type Variance string

const (
	VarianceOut Variance = "out"
	VarianceIn  Variance = "in"
)

// TypeName is an immutable reference to a type.
type TypeName struct {
	Kind     TypeKind
	Class    ClassName   // Class and Parameterized: the (raw) class
	Args     []*TypeName // Parameterized: type arguments
	Elem     *TypeName   // Array: element type; Wildcard: projected type, nil for *
	Name     string      // Variable: type variable name
	Variance Variance    // Wildcard with a non-nil Elem
	Nullable bool
}

// ClassType returns a TypeName for a plain class.
func ClassType(c ClassName) *TypeName {
	return &TypeName{Kind: TypeKindClass, Class: c}
}

// Parameterized returns raw<args...>. With no arguments it is a plain class.
func Parameterized(raw ClassName, args ...*TypeName) *TypeName {
	if len(args) == 0 {
		return ClassType(raw)
	}

	return &TypeName{
		Kind:  TypeKindParameterized,
		Class: raw,
		Args:  append([]*TypeName(nil), args...),
	}
}

// ArrayOf returns elem[].
func ArrayOf(elem *TypeName) *TypeName {
	return &TypeName{Kind: TypeKindArray, Elem: elem}
}

// Var returns a type variable reference.
func Var(name string) *TypeName {
	return &TypeName{Kind: TypeKindVariable, Name: name}
}

// Star returns the star projection.
func Star() *TypeName {
	return &TypeName{Kind: TypeKindWildcard}
}

// Projection returns "out t" or "in t".
func Projection(v Variance, t *TypeName) *TypeName {
	return &TypeName{Kind: TypeKindWildcard, Variance: v, Elem: t}
}

// OrNull returns a nullable copy of t.
func (t *TypeName) OrNull() *TypeName {
	n := *t
	n.Nullable = true

	return &n
}

// RawClass returns the nominal class of a class or parameterized type.
func (t *TypeName) RawClass() (ClassName, bool) {
	if t == nil {
		return ClassName{}, false
	}

	switch t.Kind {
	case TypeKindClass, TypeKindParameterized:
		return t.Class, true
	default:
		return ClassName{}, false
	}
}

// Is returns true if t is c or c<...>.
func (t *TypeName) Is(c ClassName) bool {
	raw, ok := t.RawClass()
	return ok && raw == c
}

// Equal reports structural equality.
func (t *TypeName) Equal(o *TypeName) bool {
	if t == nil || o == nil {
		return t == o
	}

	if t.Kind != o.Kind || t.Nullable != o.Nullable {
		return false
	}

	switch t.Kind {
	case TypeKindClass:
		return t.Class == o.Class
	case TypeKindParameterized:
		if t.Class != o.Class || len(t.Args) != len(o.Args) {
			return false
		}

		for i := range t.Args {
			if !t.Args[i].Equal(o.Args[i]) {
				return false
			}
		}

		return true
	case TypeKindArray:
		return t.Elem.Equal(o.Elem)
	case TypeKindVariable:
		return t.Name == o.Name
	case TypeKindWildcard:
		return t.Variance == o.Variance && t.Elem.Equal(o.Elem)
	default:
		return true
	}
}

// Walk calls fn for every class referenced by t, depth first, left to right.
func (t *TypeName) Walk(fn func(ClassName)) {
	if t == nil {
		return
	}

	switch t.Kind {
	case TypeKindClass:
		fn(t.Class)
	case TypeKindParameterized:
		fn(t.Class)

		for _, a := range t.Args {
			a.Walk(fn)
		}
	case TypeKindArray, TypeKindWildcard:
		t.Elem.Walk(fn)
	}
}

// String returns the qualified form, e.g. "kotlin.collections.List<out T>?" or
// "java.lang.reflect.Type[]".
func (t *TypeName) String() string {
	return t.Format(ClassName.Qualified)
}

// Format renders t using name to spell each class.
func (t *TypeName) Format(name func(ClassName) string) string {
	if t == nil {
		return "<nil>"
	}

	if t.Nullable {
		n := *t
		n.Nullable = false

		return n.Format(name) + "?"
	}

	switch t.Kind {
	case TypeKindClass:
		return name(t.Class)
	case TypeKindParameterized:
		var sb strings.Builder

		sb.WriteString(name(t.Class))
		sb.WriteString("<")

		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(a.Format(name))
		}

		sb.WriteString(">")

		return sb.String()
	case TypeKindArray:
		return t.Elem.Format(name) + "[]"
	case TypeKindVariable:
		return t.Name
	case TypeKindWildcard:
		if t.Elem == nil {
			return "*"
		}

		return string(t.Variance) + " " + t.Elem.Format(name)
	default:
		return "<unknown>"
	}
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
