package synth

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"parser-generator/internal/model"
)

var (
	typeMarker  = model.ClassType(model.TypeMarkerClass)
	stringClass = model.ClassType(model.NewClassName("kotlin", "String"))
	intClass    = model.ClassType(model.NewClassName("kotlin", "Int"))
	pairClass   = model.NewClassName("kotlin", "Pair")
	mapClass    = model.NewClassName("java.util", "Map")
)

// declaration builds a parser declaration with a protected no-arg constructor
// plus one public constructor per entry in ctors.
func declaration(name string, typeParams []string, result *model.TypeName, ctors ...[]model.Parameter) *model.ParserDeclaration {
	className, _ := model.BestGuess(name)
	d := &model.Declaration{
		Name:         className,
		Constructors: []model.Constructor{{Visibility: model.VisibilityProtected}},
		Annotation:   &model.Annotation{},
	}

	for _, tp := range typeParams {
		d.TypeParameters = append(d.TypeParameters, model.TypeParameter{Name: tp})
	}

	for _, params := range ctors {
		d.Constructors = append(d.Constructors, model.Constructor{Visibility: model.VisibilityPublic, Parameters: params})
	}

	return &model.ParserDeclaration{Declaration: d, Alias: d.Alias(), ResultType: result}
}

// dumpOnFailure prints v with spew when the test fails.
func dumpOnFailure(t *testing.T, v any) {
	t.Helper()
	t.Cleanup(func() {
		if t.Failed() {
			t.Log(spew.Sdump(v))
		}
	})
}
