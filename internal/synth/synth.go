package synth

import (
	"github.com/cockroachdb/errors"

	"parser-generator/internal/common"
	"parser-generator/internal/funcspec"
	"parser-generator/internal/model"
	"parser-generator/internal/resolve"
)

// Names used in generated code.
const (
	AsPrefix       = "as"
	ToPrefix       = "to"
	AsParserFunc   = "asParser"
	ToAwaitFunc    = "toAwait"
	TypeFactoryFun = "get"
)

// ErrInternal marks InternalSynthesisFailure errors.
var ErrInternal = errors.New("internal synthesis failure")

// AsFunctions returns the as-family for pd: the base function of every public
// constructor, each followed by its wrapper variants when the constructor is
// eligible. Declarations without a parse result type yield nothing.
func AsFunctions(pd *model.ParserDeclaration, wrappers []model.ClassName) ([]funcspec.Func, error) {
	if pd.ResultType == nil {
		return nil, nil
	}

	var out []funcspec.Func

	for _, ctor := range pd.Declaration.PublicConstructors() {
		base, resolved, err := Base(pd, ctor)
		if err != nil {
			return nil, internal(err, pd)
		}

		out = append(out, base)

		if !Gated(pd, resolved) {
			continue
		}

		variants, err := Expand(pd, ctor, base, resolved, wrappers)
		if err != nil {
			return nil, internal(err, pd)
		}

		out = append(out, variants...)
	}

	return out, nil
}

// Base synthesizes the unwrapped as-function for one constructor and returns
// the resolved parameters it was built from.
func Base(pd *model.ParserDeclaration, ctor model.Constructor) (funcspec.Func, []resolve.Resolved, error) {
	d := pd.Declaration
	resolved := resolve.Parameters(ctor.Parameters, typeVarNames(d))

	args, err := resolve.Arguments(ctor.Parameters, resolved, resolve.PassThrough)
	if err != nil {
		return funcspec.Func{}, nil, err
	}

	return funcspec.Func{
		Name:          AsPrefix + pd.Alias,
		TypeVariables: resolve.TypeVariables(d),
		Params:        resolve.Params(resolved),
		Returns:       model.Parameterized(model.ObservableClass, pd.ResultType),
		Body:          []funcspec.Statement{returnBoxed(AsParserFunc, d, args)},
		Owner:         d.Name,
	}, resolved, nil
}

// Gated reports whether wrapper variants are generated for a constructor:
// it needs a Class parameter and the declaration exactly one type variable.
func Gated(pd *model.ParserDeclaration, resolved []resolve.Resolved) bool {
	if !common.IsSingle(pd.Declaration.TypeParameters) {
		return false
	}

	for _, r := range resolved {
		if r.IsClassRef() {
			return true
		}
	}

	return false
}

func returnBoxed(fn string, d *model.Declaration, args []funcspec.Expr) funcspec.Statement {
	return funcspec.Return{Value: funcspec.Call{
		Func: fn,
		Args: []funcspec.Expr{funcspec.New{Type: model.ClassType(d.Name), Args: args}},
	}}
}

func typeVarNames(d *model.Declaration) []string {
	names := make([]string, len(d.TypeParameters))
	for i, tp := range d.TypeParameters {
		names[i] = tp.Name
	}

	return names
}

func internal(err error, pd *model.ParserDeclaration) error {
	return errors.Mark(
		errors.Wrapf(err, "synthesizing %s for %s", pd.Alias, pd.Declaration.Name.Qualified()),
		ErrInternal,
	)
}
