package synth

import (
	"slices"

	"github.com/cockroachdb/errors"

	"parser-generator/internal/funcspec"
	"parser-generator/internal/model"
	"parser-generator/internal/resolve"
)

// WrapResult re-wraps a result type with w: every type argument of a
// parameterized result is wrapped individually (Pair<K, V> -> Pair<W<K>, W<V>>),
// anything else is wrapped whole (T -> W<T>). Nullability of a parameterized
// result is kept (Pair<K, V>? -> Pair<W<K>, W<V>>?).
func WrapResult(result *model.TypeName, w model.ClassName) *model.TypeName {
	if result.Kind != model.TypeKindParameterized {
		return model.Parameterized(w, result)
	}

	args := make([]*model.TypeName, len(result.Args))
	for i, a := range result.Args {
		args[i] = model.Parameterized(w, a)
	}

	wrapped := model.Parameterized(result.Class, args...)
	if result.Nullable {
		return wrapped.OrNull()
	}

	return wrapped
}

// Expand derives one variant of base per wrapper type. Parameters are those
// of base; every Class parameter is replaced at the call site by a local
// holding the runtime type W<param>.
func Expand(
	pd *model.ParserDeclaration,
	ctor model.Constructor,
	base funcspec.Func,
	resolved []resolve.Resolved,
	wrappers []model.ClassName,
) ([]funcspec.Func, error) {
	out := make([]funcspec.Func, 0, len(wrappers))

	for _, w := range wrappers {
		fn, err := expandOne(pd, ctor, base, resolved, w)
		if err != nil {
			return nil, errors.Wrapf(err, "wrapper %s", w.Qualified())
		}

		out = append(out, fn)
	}

	return out, nil
}

func expandOne(
	pd *model.ParserDeclaration,
	ctor model.Constructor,
	base funcspec.Func,
	resolved []resolve.Resolved,
	w model.ClassName,
) (funcspec.Func, error) {
	simple := w.SimpleName()
	paramNames := base.ParamNames()

	var body []funcspec.Statement

	bindings := make(map[string]string)

	for _, r := range resolved {
		if !r.IsClassRef() {
			continue
		}

		local := r.Name + simple
		if slices.Contains(paramNames, local) {
			return funcspec.Func{}, errors.AssertionFailedf(
				"local %q for parameter %q shadows a parameter", local, r.Name)
		}

		bindings[r.Name] = local
		body = append(body, funcspec.Local{
			Name: local,
			Value: funcspec.Call{
				Static: model.ParameterizedTypeImplClass,
				Func:   TypeFactoryFun,
				Args:   []funcspec.Expr{funcspec.ClassLiteral{Class: w}, funcspec.Ref{Name: r.Name}},
			},
		})
	}

	args, err := resolve.Arguments(ctor.Parameters, resolved, func(r resolve.Resolved) funcspec.Expr {
		if local, ok := bindings[r.Name]; ok {
			return funcspec.Ref{Name: local}
		}

		return resolve.PassThrough(r)
	})
	if err != nil {
		return funcspec.Func{}, err
	}

	body = append(body, returnBoxed(AsParserFunc, pd.Declaration, args))

	return funcspec.Func{
		Name:          base.Name + simple,
		TypeVariables: slices.Clone(base.TypeVariables),
		Params:        slices.Clone(base.Params),
		Returns:       model.Parameterized(model.ObservableClass, WrapResult(pd.ResultType, w)),
		Body:          body,
		Owner:         base.Owner,
	}, nil
}
