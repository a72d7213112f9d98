// Package resolve maps declared constructor parameters to the parameters of
// generated functions, turning reflective Type markers into Class<T>
// parameters bound to the declaration's type variables.
package resolve

import (
	"strings"

	"github.com/cockroachdb/errors"

	"parser-generator/internal/funcspec"
	"parser-generator/internal/model"
)

// TypeParamSuffix is appended to the lower-cased type variable name of
// parameters expanded from a Type[] marker ("K" -> "kType").
const TypeParamSuffix = "Type"

// Resolved is a generated parameter together with where it came from.
type Resolved struct {
	funcspec.Param
	// Source is the index of the declared parameter it was resolved from.
	Source int
	// FromTypeArray is set for parameters expanded from a Type[] marker.
	FromTypeArray bool
}

// IsClassRef returns true if the parameter is a Class reference.
func (r Resolved) IsClassRef() bool {
	return model.IsClassRef(r.Type)
}

// TypeVariables returns the function-level type variables of a declaration.
func TypeVariables(d *model.Declaration) []funcspec.TypeVariable {
	vars := make([]funcspec.TypeVariable, 0, len(d.TypeParameters))
	for _, tp := range d.TypeParameters {
		vars = append(vars, funcspec.TypeVariable{Name: tp.Name, Bounds: tp.Bounds})
	}

	return vars
}

// Parameters resolves declared parameters against the declaration's type
// variables. Order is preserved; a Type[] marker expands in place to one
// Class<X> parameter per type variable, and each Type marker consumes the
// next unconsumed type variable.
func Parameters(declared []model.Parameter, typeVars []string) []Resolved {
	out := make([]Resolved, 0, len(declared))
	next := 0

	for i, p := range declared {
		switch {
		case model.IsTypeArrayMarker(p.Type):
			for _, tv := range typeVars {
				out = append(out, Resolved{
					Param: funcspec.Param{
						Name: strings.ToLower(tv) + TypeParamSuffix,
						Type: classOf(tv),
					},
					Source:        i,
					FromTypeArray: true,
				})
			}

		case model.IsTypeMarker(p.Type) && next < len(typeVars):
			out = append(out, Resolved{
				Param: funcspec.Param{
					Name: p.Name,
					Type: classOf(typeVars[next]),
				},
				Source: i,
			})
			next++

		default:
			out = append(out, Resolved{
				Param:  funcspec.Param{Name: p.Name, Type: p.Type, Vararg: p.Vararg},
				Source: i,
			})
		}
	}

	return out
}

// Params strips provenance.
func Params(resolved []Resolved) []funcspec.Param {
	out := make([]funcspec.Param, len(resolved))
	for i, r := range resolved {
		out[i] = r.Param
	}

	return out
}

// Binder produces the argument expression for one resolved parameter.
type Binder func(r Resolved) funcspec.Expr

// PassThrough references the parameter by name, spreading varargs.
func PassThrough(r Resolved) funcspec.Expr {
	return funcspec.Ref{Name: r.Name, Spread: r.Vararg}
}

// Arguments rebuilds the positional constructor arguments from resolved
// parameters: parameters expanded from a Type[] marker are re-assembled into
// a single array argument at the marker's position.
func Arguments(declared []model.Parameter, resolved []Resolved, bind Binder) ([]funcspec.Expr, error) {
	args := make([]funcspec.Expr, 0, len(declared))
	j := 0

	for i, p := range declared {
		var group []Resolved
		for j < len(resolved) && resolved[j].Source == i {
			group = append(group, resolved[j])
			j++
		}

		if model.IsTypeArrayMarker(p.Type) {
			elems := make([]funcspec.Expr, 0, len(group))
			for _, r := range group {
				elems = append(elems, bind(r))
			}

			args = append(args, funcspec.ArrayOf{Elem: p.Type.Elem, Elems: elems, Spread: p.Vararg})

			continue
		}

		if len(group) != 1 {
			return nil, errors.AssertionFailedf(
				"parameter %d (%s) resolved to %d generated parameters, want 1", i, p.Name, len(group))
		}

		args = append(args, bind(group[0]))
	}

	if j != len(resolved) {
		return nil, errors.AssertionFailedf(
			"%d of %d generated parameters do not map to a declared parameter", len(resolved)-j, len(resolved))
	}

	return args, nil
}

func classOf(typeVar string) *model.TypeName {
	return model.Parameterized(model.ClassRefClass, model.Var(typeVar))
}
