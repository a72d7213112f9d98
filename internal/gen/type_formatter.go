package gen

import (
	"slices"
	"strings"

	"parser-generator/internal/funcspec"
	"parser-generator/internal/model"
)

// defaultImports are packages Kotlin imports implicitly.
var defaultImports = []string{
	"kotlin",
	"kotlin.annotation",
	"kotlin.collections",
	"kotlin.comparisons",
	"kotlin.io",
	"kotlin.jvm",
	"kotlin.ranges",
	"kotlin.sequences",
	"kotlin.text",
	"java.lang",
}

// nameTable collects the classes a file references and decides how each is
// spelled: by simple name with an import, or fully qualified on a clash.
type nameTable struct {
	pkg string
	// classes maps a qualified top-level name to its class.
	classes map[string]model.ClassName
	extra   map[string]struct{}
	clashes map[string]bool
}

func newNameTable(pkg string) *nameTable {
	return &nameTable{
		pkg:     pkg,
		classes: make(map[string]model.ClassName),
		extra:   make(map[string]struct{}),
	}
}

func topLevel(c model.ClassName) string {
	if c.Package == "" {
		return c.TopLevel()
	}

	return c.Package + "." + c.TopLevel()
}

func (n *nameTable) add(c model.ClassName) {
	if c.IsZero() {
		return
	}

	n.classes[topLevel(c)] = c
}

func (n *nameTable) addType(t *model.TypeName) {
	t.Walk(n.add)
}

// addImport adds a non-class import such as an extension function.
func (n *nameTable) addImport(path string) {
	n.extra[path] = struct{}{}
}

func (n *nameTable) addFunc(f *funcspec.Func) {
	n.addType(f.Receiver)

	for _, tv := range f.TypeVariables {
		for _, b := range tv.Bounds {
			n.addType(b)
		}
	}

	for _, p := range f.Params {
		n.addType(p.Type)
	}

	n.addType(f.Returns)

	for _, s := range f.Body {
		switch s := s.(type) {
		case funcspec.Local:
			n.addExpr(s.Value)
		case funcspec.Return:
			n.addExpr(s.Value)
		}
	}
}

func (n *nameTable) addExpr(e funcspec.Expr) {
	switch e := e.(type) {
	case funcspec.Call:
		n.add(e.Static)

		for _, a := range e.Args {
			n.addExpr(a)
		}
	case funcspec.New:
		n.addType(e.Type)

		for _, a := range e.Args {
			n.addExpr(a)
		}
	case funcspec.Anonymous:
		n.addType(e.Super)
	case funcspec.ArrayOf:
		n.addType(e.Elem)

		for _, a := range e.Elems {
			n.addExpr(a)
		}
	case funcspec.ClassLiteral:
		n.add(e.Class)
	}
}

// resolve marks simple names used by more than one class. It must run after
// every add and before any spelling or import query.
func (n *nameTable) resolve() *nameTable {
	bySimple := make(map[string]int)
	for _, c := range n.classes {
		bySimple[c.TopLevel()]++
	}

	n.clashes = make(map[string]bool)

	for simple, count := range bySimple {
		if count > 1 {
			n.clashes[simple] = true
		}
	}

	return n
}

// spell returns the source spelling of c.
func (n *nameTable) spell(c model.ClassName) string {
	if n.clashes[c.TopLevel()] {
		return c.Qualified()
	}

	return c.Simple
}

// imports returns the sorted import paths.
func (n *nameTable) imports() []string {
	out := make([]string, 0, len(n.classes)+len(n.extra))

	for qualified, c := range n.classes {
		if c.Package == "" || c.Package == n.pkg || n.clashes[c.TopLevel()] {
			continue
		}

		if slices.Contains(defaultImports, c.Package) {
			continue
		}

		out = append(out, qualified)
	}

	for path := range n.extra {
		out = append(out, path)
	}

	slices.Sort(out)

	return slices.Compact(out)
}

// typeName renders t as a Kotlin type.
func (r *renderer) typeName(t *model.TypeName) string {
	if t == nil {
		return "Unit"
	}

	if t.Nullable {
		return r.nonNull(t) + "?"
	}

	return r.nonNull(t)
}

func (r *renderer) nonNull(t *model.TypeName) string {
	switch t.Kind {
	case model.TypeKindClass:
		return r.names.spell(t.Class)
	case model.TypeKindParameterized:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = r.typeName(a)
		}

		return r.names.spell(t.Class) + "<" + strings.Join(args, ", ") + ">"
	case model.TypeKindArray:
		return "Array<" + r.typeName(t.Elem) + ">"
	case model.TypeKindVariable:
		return t.Name
	case model.TypeKindWildcard:
		if t.Elem == nil {
			return "*"
		}

		return string(t.Variance) + " " + r.typeName(t.Elem)
	default:
		return "Any"
	}
}
