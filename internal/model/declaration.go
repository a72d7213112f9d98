package model

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"parser-generator/internal/common"
)

// Visibility of a declaration, constructor or method.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityProtected
	VisibilityPackage // package-private / internal
	VisibilityPrivate
)

// String returns the source keyword for the visibility.
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	case VisibilityPackage:
		return "package"
	case VisibilityPrivate:
		return "private"
	default:
		return common.UnknownStr
	}
}

// ParseVisibility parses a visibility keyword. Empty means public.
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "public":
		return VisibilityPublic, nil
	case "protected":
		return VisibilityProtected, nil
	case "package", "package-private", "internal":
		return VisibilityPackage, nil
	case "private":
		return VisibilityPrivate, nil
	default:
		return 0, errors.Newf("unknown visibility %q", s)
	}
}

// Location is a source position a diagnostic can be attached to.
type Location struct {
	File string
	Line int
}

// String returns "file:line", "file", or "".
func (l Location) String() string {
	if l.File == "" {
		return ""
	}

	if l.Line <= 0 {
		return l.File
	}

	return l.File + ":" + strconv.Itoa(l.Line)
}

// TypeParameter is a formal generic parameter of a declaration.
type TypeParameter struct {
	Name   string
	Bounds []*TypeName
}

// Parameter is a formal parameter of a constructor or method.
type Parameter struct {
	Name   string
	Type   *TypeName
	Vararg bool
}

// Constructor is a declared constructor.
type Constructor struct {
	Visibility Visibility
	Parameters []Parameter
}

// Method is a declared (or inherited) member function.
type Method struct {
	Name       string
	Visibility Visibility
	Static     bool
	Parameters []Parameter
	Returns    *TypeName
}

// Annotation holds the values of the parser annotation.
type Annotation struct {
	// Name is the alias; blank means the declaration's simple name.
	Name string
	// Wrappers are extra container types to re-wrap the result type with.
	Wrappers []ClassName
}

// Declaration is a candidate parser class as delivered by the host.
type Declaration struct {
	Name           ClassName
	Location       Location
	Visibility     Visibility
	Abstract       bool
	Final          bool
	TypeParameters []TypeParameter
	// Supertypes lists every nominal supertype, direct or inherited.
	Supertypes   []*TypeName
	Constructors []Constructor
	// Methods lists all member functions, inherited ones included.
	Methods    []Method
	Annotation *Annotation
}

// IsGeneric returns true if the declaration has type parameters.
func (d *Declaration) IsGeneric() bool {
	return len(d.TypeParameters) > 0
}

// TypeVariables returns the type parameters as type variable references.
func (d *Declaration) TypeVariables() []*TypeName {
	vars := make([]*TypeName, 0, len(d.TypeParameters))
	for _, tp := range d.TypeParameters {
		vars = append(vars, Var(tp.Name))
	}

	return vars
}

// SelfType returns Name<T...> for generic declarations, Name otherwise.
func (d *Declaration) SelfType() *TypeName {
	return Parameterized(d.Name, d.TypeVariables()...)
}

// AccessibleConstructors returns constructors that are public or protected.
func (d *Declaration) AccessibleConstructors() []Constructor {
	var out []Constructor

	for _, c := range d.Constructors {
		if c.Visibility == VisibilityPublic || c.Visibility == VisibilityProtected {
			out = append(out, c)
		}
	}

	return out
}

// PublicConstructors returns constructors that are public.
func (d *Declaration) PublicConstructors() []Constructor {
	var out []Constructor

	for _, c := range d.Constructors {
		if c.Visibility == VisibilityPublic {
			out = append(out, c)
		}
	}

	return out
}

// Inherits returns true if c is among the declaration's supertypes.
func (d *Declaration) Inherits(c ClassName) bool {
	if d.Name == c {
		return true
	}

	for _, st := range d.Supertypes {
		if st.Is(c) {
			return true
		}
	}

	return false
}

// FindMethod returns the first public, non-static method called name that
// takes exactly one parameter of class param, or nil.
func (d *Declaration) FindMethod(name string, param ClassName) *Method {
	for i := range d.Methods {
		m := &d.Methods[i]
		if m.Visibility != VisibilityPublic || m.Static || m.Name != name {
			continue
		}

		if common.IsSingle(m.Parameters) && m.Parameters[0].Type.Is(param) {
			return m
		}
	}

	return nil
}

// Alias returns the annotation name, or the simple name when blank.
func (d *Declaration) Alias() string {
	if d.Annotation != nil {
		if name := strings.TrimSpace(d.Annotation.Name); name != "" {
			return name
		}
	}

	return d.Name.SimpleName()
}

// ParserDeclaration is a validated declaration ready for registration.
type ParserDeclaration struct {
	Declaration *Declaration
	Alias       string
	// ResultType is the return type of the response-parsing method, or nil
	// when the declaration has none (no generation possible).
	ResultType *TypeName
}

// NewParserDeclaration resolves alias and result type of a validated declaration.
func NewParserDeclaration(d *Declaration, parseMethod string, response ClassName) *ParserDeclaration {
	pd := &ParserDeclaration{
		Declaration: d,
		Alias:       d.Alias(),
	}

	if m := d.FindMethod(parseMethod, response); m != nil {
		pd.ResultType = m.Returns
	}

	return pd
}
