package synth

import (
	"parser-generator/internal/funcspec"
	"parser-generator/internal/model"
	"parser-generator/internal/resolve"
)

// ExtensionsFile is the name of the aggregate extension artifact.
const ExtensionsFile = "RxHttpExtensions"

// Extensions returns the to-family for pd. A generic declaration gets one
// inline function with reified type variables that instantiates an anonymous
// subclass through the protected no-argument constructor; any other
// declaration gets one function per public constructor.
func Extensions(pd *model.ParserDeclaration) ([]funcspec.Func, error) {
	if pd.ResultType == nil {
		return nil, nil
	}

	d := pd.Declaration
	receiver := model.ClassType(model.CallFactoryClass)
	returns := model.Parameterized(model.CallAwaitClass, pd.ResultType)

	if d.IsGeneric() {
		vars := resolve.TypeVariables(d)
		for i := range vars {
			vars[i].Reified = true
		}

		return []funcspec.Func{{
			Name:          ToPrefix + pd.Alias,
			Receiver:      receiver,
			Inline:        true,
			TypeVariables: vars,
			Returns:       returns,
			Body: []funcspec.Statement{funcspec.Return{Value: funcspec.Call{
				Func: ToAwaitFunc,
				Args: []funcspec.Expr{funcspec.Anonymous{Super: d.SelfType()}},
			}}},
			Owner: d.Name,
		}}, nil
	}

	var out []funcspec.Func

	for _, ctor := range d.PublicConstructors() {
		resolved := resolve.Parameters(ctor.Parameters, nil)

		args, err := resolve.Arguments(ctor.Parameters, resolved, resolve.PassThrough)
		if err != nil {
			return nil, internal(err, pd)
		}

		out = append(out, funcspec.Func{
			Name:     ToPrefix + pd.Alias,
			Receiver: receiver,
			Params:   resolve.Params(resolved),
			Returns:  returns,
			Body:     []funcspec.Statement{returnBoxed(ToAwaitFunc, d, args)},
			Owner:    d.Name,
		})
	}

	return out, nil
}
