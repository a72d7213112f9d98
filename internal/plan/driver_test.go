package plan

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"parser-generator/internal/diagnostic"
	"parser-generator/internal/funcspec"
	"parser-generator/internal/logger"
	"parser-generator/internal/model"
	"parser-generator/internal/synth"
	"parser-generator/internal/validate"
)

var (
	typeMarker  = model.ClassType(model.TypeMarkerClass)
	stringClass = model.ClassType(model.NewClassName("kotlin", "String"))
	mapClass    = model.NewClassName("java.util", "Map")
	pairClass   = model.NewClassName("kotlin", "Pair")
	response    = model.ClassType(model.DefaultResponseClass)
)

func parseMethod(returns *model.TypeName) model.Method {
	return model.Method{
		Name:       model.DefaultParseMethod,
		Parameters: []model.Parameter{{Name: "response", Type: response}},
		Returns:    returns,
	}
}

// responseParser is a single-type-variable parser with a (Type) constructor.
func responseParser(alias string, wrappers ...model.ClassName) *model.Declaration {
	return &model.Declaration{
		Name:           model.NewClassName("com.example", "ResponseParser"),
		Location:       model.Location{File: "ResponseParser.kt", Line: 10},
		TypeParameters: []model.TypeParameter{{Name: "T"}},
		Supertypes:     []*model.TypeName{model.Parameterized(model.DefaultParserBase, model.Var("T"))},
		Constructors: []model.Constructor{
			{Visibility: model.VisibilityProtected},
			{Visibility: model.VisibilityPublic, Parameters: []model.Parameter{{Name: "type", Type: typeMarker}}},
		},
		Methods:    []model.Method{parseMethod(model.Var("T"))},
		Annotation: &model.Annotation{Name: alias, Wrappers: wrappers},
	}
}

// simpleParser is a non-generic parser with a (a: String, b: String) constructor.
func simpleParser(qualified, alias string) *model.Declaration {
	name, _ := model.BestGuess(qualified)

	return &model.Declaration{
		Name:       name,
		Supertypes: []*model.TypeName{model.Parameterized(model.DefaultParserBase, stringClass)},
		Constructors: []model.Constructor{{
			Visibility: model.VisibilityPublic,
			Parameters: []model.Parameter{{Name: "a", Type: stringClass}, {Name: "b", Type: stringClass}},
		}},
		Methods:    []model.Method{parseMethod(stringClass)},
		Annotation: &model.Annotation{Name: alias},
	}
}

func funcNames(funcs []funcspec.Func) []string {
	names := make([]string, len(funcs))
	for i, f := range funcs {
		names[i] = f.Name
	}

	return names
}

func TestDriver_NonGenericSingleFunction(t *testing.T) {
	var diags diagnostic.Diagnostics

	p, err := NewDriver(Options{RxJava: true}, &diags).
		Run(slices.Values([]*model.Declaration{simpleParser("com.example.AbcParser", "Abc")}), nil)
	require.NoError(t, err)
	require.True(t, diags.IsValid())

	require.Len(t, p.AsFunctions, 1)
	fn := p.AsFunctions[0]
	assert.Equal(t, "asAbc", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.ParamNames())
	assert.Equal(t, "io.reactivex.rxjava3.core.Observable<kotlin.String>", fn.Returns.String())

	assert.Equal(t, synth.ExtensionsFile, p.Extensions.Name)
	assert.Equal(t, []string{"toAbc"}, funcNames(p.Extensions.Funcs))
}

func TestDriver_WrapperFamilyRequiresCapability(t *testing.T) {
	decls := []*model.Declaration{responseParser("Response")}

	p, err := NewDriver(Options{RxJava: true}, nil).Run(slices.Values(decls), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"asResponse", "asResponseList"}, funcNames(p.AsFunctions))
	assert.Equal(t, "io.reactivex.rxjava3.core.Observable<kotlin.collections.List<T>>", p.AsFunctions[1].Returns.String())

	p, err = NewDriver(Options{RxJava: false}, nil).Run(slices.Values(decls), nil)
	require.NoError(t, err)
	assert.Empty(t, p.AsFunctions)
	assert.Equal(t, []string{"toResponse"}, funcNames(p.Extensions.Funcs))
}

func TestDriver_ExplicitWrappers(t *testing.T) {
	decls := []*model.Declaration{responseParser("Response", mapClass)}

	p, err := NewDriver(Options{RxJava: true}, nil).Run(slices.Values(decls), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"asResponse", "asResponseList", "asResponseMap"}, funcNames(p.AsFunctions))
}

func TestDriver_PairResultWrapsEachArgument(t *testing.T) {
	d := responseParser("Pair", mapClass)
	d.Methods = []model.Method{parseMethod(model.Parameterized(pairClass, model.Var("T"), stringClass))}

	p, err := NewDriver(Options{RxJava: true}, nil).Run(slices.Values([]*model.Declaration{d}), nil)
	require.NoError(t, err)
	require.Len(t, p.AsFunctions, 3)
	assert.Equal(t,
		"io.reactivex.rxjava3.core.Observable<kotlin.Pair<java.util.Map<T>, java.util.Map<kotlin.String>>>",
		p.AsFunctions[2].Returns.String())
}

func TestDriver_RejectionDoesNotAbortPass(t *testing.T) {
	bad := responseParser("Bad")
	bad.Name = model.NewClassName("com.example", "BadParser")
	bad.Constructors = bad.Constructors[1:]

	var diags diagnostic.Diagnostics

	p, err := NewDriver(Options{RxJava: true}, &diags).
		Run(slices.Values([]*model.Declaration{bad, simpleParser("com.example.AbcParser", "Abc")}), nil)
	require.NoError(t, err)

	require.Len(t, diags.Errors, 1)
	diag := diags.Errors[0]
	assert.Equal(t, validate.CodeMissingNoArg, diag.Code)
	assert.Equal(t, "com.example.BadParser", diag.Declaration)
	assert.Contains(t, diag.Message, "'protected com.example.BadParser()'")
	assert.Equal(t, "ResponseParser.kt:10", diag.Location.String())

	assert.Equal(t, []string{"Abc"}, p.Aliases)
}

func TestDriver_UnresolvedResultTypeSilentlySkipped(t *testing.T) {
	d := simpleParser("com.example.AbcParser", "Abc")
	d.Methods = nil

	var diags diagnostic.Diagnostics

	p, err := NewDriver(Options{RxJava: true}, &diags).Run(slices.Values([]*model.Declaration{d}), nil)
	require.NoError(t, err)
	assert.True(t, diags.IsValid())
	assert.Equal(t, []string{"Abc"}, p.Aliases)
	assert.Empty(t, p.AsFunctions)
	assert.Empty(t, p.Extensions.Funcs)
}

func TestDriver_AliasCollisionOverwrite(t *testing.T) {
	first := simpleParser("com.example.FirstParser", "Same")
	other := simpleParser("com.example.OtherParser", "Other")
	second := responseParser("Same", mapClass)

	p, err := NewDriver(Options{RxJava: true}, nil).
		Run(slices.Values([]*model.Declaration{first, other, second}), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Same", "Other"}, p.Aliases)
	assert.Equal(t, []string{"asSame", "asSameList", "asSameMap", "asOther"}, funcNames(p.AsFunctions))
	assert.Equal(t, second.Name, p.AsFunctions[0].Owner)
}

func TestDriver_AliasCollisionError(t *testing.T) {
	first := simpleParser("com.example.FirstParser", "Same")
	second := simpleParser("com.example.SecondParser", "Same")

	var diags diagnostic.Diagnostics

	p, err := NewDriver(Options{RxJava: true, AliasCollision: CollisionError}, &diags).
		Run(slices.Values([]*model.Declaration{first, second}), nil)
	require.NoError(t, err)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, validate.CodeDuplicateAlias, diags.Errors[0].Code)
	require.Len(t, p.AsFunctions, 1)
	assert.Equal(t, first.Name, p.AsFunctions[0].Owner)
}

func TestDriver_Idempotent(t *testing.T) {
	decls := []*model.Declaration{
		responseParser("Response", mapClass),
		simpleParser("com.example.AbcParser", "Abc"),
	}

	d := NewDriver(Options{RxJava: true}, nil)

	first, err := d.Run(slices.Values(decls), nil)
	require.NoError(t, err)

	second, err := d.Run(slices.Values(decls), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDriver_EmitterReceivesPlan(t *testing.T) {
	var got *Plan

	emitter := EmitterFunc(func(p *Plan) error {
		got = p
		return nil
	})

	p, err := NewDriver(Options{RxJava: true}, nil).
		Run(slices.Values([]*model.Declaration{simpleParser("com.example.AbcParser", "Abc")}), emitter)
	require.NoError(t, err)
	assert.Same(t, p, got)
}

func TestDriver_EmitterError(t *testing.T) {
	emitter := EmitterFunc(func(*Plan) error { return errors.New("disk full") })

	_, err := NewDriver(Options{}, nil).
		Run(slices.Values([]*model.Declaration{simpleParser("com.example.AbcParser", "Abc")}), emitter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestDriver_InternalFailureEmitsNothing(t *testing.T) {
	broken := responseParser("Broken")
	broken.Constructors = append(broken.Constructors, model.Constructor{
		Visibility: model.VisibilityPublic,
		Parameters: []model.Parameter{
			{Name: "type", Type: typeMarker},
			{Name: "typeList", Type: stringClass},
		},
	})

	called := false
	emitter := EmitterFunc(func(*Plan) error {
		called = true
		return nil
	})

	p, err := NewDriver(Options{RxJava: true}, nil).
		Run(slices.Values([]*model.Declaration{simpleParser("com.example.AbcParser", "Abc"), broken}), emitter)
	require.Error(t, err)
	assert.Nil(t, p)
	assert.False(t, called)
	assert.True(t, errors.Is(err, synth.ErrInternal))
}

func TestParseCollisionPolicy(t *testing.T) {
	p, err := ParseCollisionPolicy("")
	require.NoError(t, err)
	assert.Equal(t, CollisionOverwrite, p)

	p, err = ParseCollisionPolicy("error")
	require.NoError(t, err)
	assert.Equal(t, CollisionError, p)

	_, err = ParseCollisionPolicy("merge")
	require.Error(t, err)
}

func TestParseCollisionPolicy_Hint(t *testing.T) {
	_, err := ParseCollisionPolicy("errors")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "error"?`)

	_, err = ParseCollisionPolicy("merge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `expected "overwrite" or "error"`)
}

func TestSuggestParseMethod(t *testing.T) {
	d := &model.Declaration{
		Name: model.NewClassName("com.example", "LooseParser"),
		Methods: []model.Method{
			{Name: "toString"},
			{Name: "onParsed", Parameters: []model.Parameter{{Name: "response", Type: response}}},
			{Name: "onParse", Static: true},
		},
	}

	hint, ok := SuggestParseMethod(d, model.DefaultParseMethod)
	assert.True(t, ok)
	assert.Equal(t, "onParsed", hint)

	d.Methods = d.Methods[:1]
	_, ok = SuggestParseMethod(d, model.DefaultParseMethod)
	assert.False(t, ok)
}

func TestDriver_LogsSynthesizedFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	prev := logger.Logger
	logger.Logger = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Logger = prev })

	opts := DefaultOptions()
	opts.RxJava = true

	_, err := NewDriver(opts, nil).Run(slices.Values([]*model.Declaration{responseParser("Response")}), nil)
	require.NoError(t, err)

	var names []string
	for _, e := range logs.FilterMessage("synthesized function").All() {
		assert.Equal(t, "Response", e.ContextMap()[logger.FieldAlias])
		names = append(names, e.ContextMap()[logger.FieldFunction].(string))
	}

	assert.Equal(t, []string{"toResponse", "asResponse", "asResponseList"}, names)
}
