// Package registry accumulates validated parser declarations for one
// generation pass. It is written during the scan phase and read during
// synthesis; nothing survives the pass.
package registry

import (
	"slices"

	"parser-generator/internal/common"
	"parser-generator/internal/model"
)

// Registry holds two alias-keyed, insertion-ordered mappings: alias to
// declaration and alias to wrapper list.
//
// Re-registering an alias replaces the stored value in place; the alias
// keeps the position of its first registration.
type Registry struct {
	order    []string
	parsers  map[string]*model.ParserDeclaration
	wrappers map[string][]model.ClassName
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		parsers:  make(map[string]*model.ParserDeclaration),
		wrappers: make(map[string][]model.ClassName),
	}
}

// Register stores pd under its alias. When the declaration carries an
// annotation its wrapper list (possibly empty) replaces the alias' previous
// list. It returns the declaration pd replaced, if any.
func (r *Registry) Register(pd *model.ParserDeclaration) (replaced *model.ParserDeclaration) {
	alias := pd.Alias

	prev, ok := r.parsers[alias]
	if !ok {
		r.order = append(r.order, alias)
	}

	r.parsers[alias] = pd

	if ann := pd.Declaration.Annotation; ann != nil {
		wrappers := slices.Clone(ann.Wrappers)
		for i, w := range wrappers {
			if model.IsListClass(w) {
				wrappers[i] = model.ListClass
			}
		}

		r.wrappers[alias] = common.Dedupe(wrappers)
	}

	return prev
}

// Lookup returns the declaration registered for alias.
func (r *Registry) Lookup(alias string) (*model.ParserDeclaration, bool) {
	pd, ok := r.parsers[alias]
	return pd, ok
}

// Len returns the number of registered aliases.
func (r *Registry) Len() int {
	return len(r.order)
}

// Aliases returns the registered aliases in generation order.
func (r *Registry) Aliases() []string {
	return slices.Clone(r.order)
}

// Entries returns the registered declarations in generation order.
func (r *Registry) Entries() []*model.ParserDeclaration {
	out := make([]*model.ParserDeclaration, 0, len(r.order))
	for _, alias := range r.order {
		out = append(out, r.parsers[alias])
	}

	return out
}

// Wrappers returns the wrapper types to expand alias with: the declared
// wrappers with the default sequence container first unless already present.
// java.util.List is stored as kotlin.collections.List.
func (r *Registry) Wrappers(alias string) []model.ClassName {
	declared := r.wrappers[alias]
	if slices.ContainsFunc(declared, model.IsListClass) {
		return slices.Clone(declared)
	}

	return append([]model.ClassName{model.ListClass}, declared...)
}
