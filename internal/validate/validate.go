package validate

import (
	"fmt"
	"strings"

	"parser-generator/internal/diagnostic"
	"parser-generator/internal/model"
)

// Violation codes.
const (
	CodeNotPublic         = "not_public"
	CodeAbstract          = "abstract"
	CodeFinalGeneric      = "final_generic"
	CodeMissingNoArg      = "missing_no_arg_constructor"
	CodeNoArgNotProtected = "no_arg_constructor_not_protected"
	CodeMissingTypeCtor   = "missing_type_constructor"
	CodeNotParser         = "not_a_parser"
	CodeDuplicateAlias    = "duplicate_alias"
)

// AnnotationName is how the parser annotation is spelled in messages.
const AnnotationName = "Parser"

// Violation is a StructuralViolation: a declaration failed an acceptance rule.
type Violation struct {
	Code        string
	Declaration *model.Declaration
	Message     string
}

// Error implements error.
func (v *Violation) Error() string {
	return v.Message
}

// Diagnostic converts the violation into an error diagnostic.
func (v *Violation) Diagnostic() diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        v.Code,
		Message:     v.Message,
		Declaration: v.Declaration.Name.Qualified(),
		Location:    v.Declaration.Location,
	}
}

// Options configures the acceptance rules.
type Options struct {
	// RxJava is the capability flag; it enables the Type-constructor rule.
	RxJava bool
	// ParserBase is the supertype every parser must inherit.
	ParserBase model.ClassName
}

// DefaultOptions returns options for a run without the reactive extension.
func DefaultOptions() Options {
	return Options{ParserBase: model.DefaultParserBase}
}

// Engine validates candidate declarations.
type Engine struct {
	opts Options
}

// NewEngine creates a new validation Engine.
func NewEngine(opts Options) *Engine {
	if opts.ParserBase.IsZero() {
		opts.ParserBase = model.DefaultParserBase
	}

	return &Engine{opts: opts}
}

// Validate returns nil if d is acceptable, or the first Violation.
func (e *Engine) Validate(d *model.Declaration) *Violation {
	name := d.Name.Qualified()

	if d.Visibility != model.VisibilityPublic {
		return violation(d, CodeNotPublic, "The class '%s' must be public", name)
	}

	if d.Abstract {
		return violation(d, CodeAbstract,
			"The class '%s' is abstract. You can't annotate abstract classes with @%s", name, AnnotationName)
	}

	if d.IsGeneric() {
		if v := e.validateGeneric(d); v != nil {
			return v
		}
	}

	if !d.Inherits(e.opts.ParserBase) {
		return violation(d, CodeNotParser,
			"The class '%s' annotated with @%s must inherit from %s", name, AnnotationName, e.opts.ParserBase.Qualified())
	}

	return nil
}

func (e *Engine) validateGeneric(d *model.Declaration) *Violation {
	name := d.Name.Qualified()

	if d.Final {
		return violation(d, CodeFinalGeneric, "This class '%s' cannot be declared final", name)
	}

	ctors := d.AccessibleConstructors()

	noArg := findConstructor(ctors, func(c model.Constructor) bool { return len(c.Parameters) == 0 })
	if noArg == nil {
		return violation(d, CodeMissingNoArg,
			"This class '%s' must be declared 'protected %s()' constructor fun", name, name)
	}

	if noArg.Visibility != model.VisibilityProtected {
		return violation(d, CodeNoArgNotProtected,
			"This class '%s' no-argument constructor must be declared protected", name)
	}

	if !e.opts.RxJava {
		return nil
	}

	n := len(d.TypeParameters)

	typeCtor := findConstructor(ctors, func(c model.Constructor) bool {
		if len(c.Parameters) != n {
			return false
		}

		for _, p := range c.Parameters {
			if p.Vararg || !model.IsTypeMarker(p.Type) {
				return false
			}
		}

		return true
	})
	if typeCtor == nil {
		return violation(d, CodeMissingTypeCtor,
			"This class '%s' must declare '%s' constructor fun", name, TypeConstructorSignature(d))
	}

	return nil
}

// TypeConstructorSignature returns the constructor a generic declaration must
// expose when the reactive extension is present, e.g.
// "public Parser(java.lang.reflect.Type,java.lang.reflect.Type)".
func TypeConstructorSignature(d *model.Declaration) string {
	params := make([]string, len(d.TypeParameters))
	for i := range params {
		params[i] = model.TypeMarkerClass.Qualified()
	}

	return fmt.Sprintf("public %s(%s)", d.Name.SimpleName(), strings.Join(params, ","))
}

// DuplicateAlias builds the violation used when alias collisions are errors.
func DuplicateAlias(d *model.Declaration, alias string, first *model.Declaration) *Violation {
	return violation(d, CodeDuplicateAlias,
		"The class '%s' uses parser alias '%s' already taken by '%s'; set a unique @%s(name = \"...\")",
		d.Name.Qualified(), alias, first.Name.Qualified(), AnnotationName)
}

func findConstructor(ctors []model.Constructor, pred func(model.Constructor) bool) *model.Constructor {
	for i := range ctors {
		if pred(ctors[i]) {
			return &ctors[i]
		}
	}

	return nil
}

func violation(d *model.Declaration, code, format string, args ...any) *Violation {
	return &Violation{
		Code:        code,
		Declaration: d,
		Message:     fmt.Sprintf(format, args...),
	}
}
