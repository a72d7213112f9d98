package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parser-generator/internal/model"
)

var (
	mapClass  = model.NewClassName("java.util", "Map")
	pageClass = model.NewClassName("com.example", "PageList")
)

func parser(qualified, alias string, wrappers ...model.ClassName) *model.ParserDeclaration {
	name, _ := model.BestGuess(qualified)
	d := &model.Declaration{
		Name:       name,
		Annotation: &model.Annotation{Name: alias, Wrappers: wrappers},
	}

	return &model.ParserDeclaration{Declaration: d, Alias: d.Alias()}
}

func TestRegistry_InsertionOrder(t *testing.T) {
	r := New()
	r.Register(parser("a.ResponseParser", "Response"))
	r.Register(parser("a.ListParser", ""))
	r.Register(parser("a.Abc", "Abc"))

	assert.Equal(t, []string{"Response", "ListParser", "Abc"}, r.Aliases())
	assert.Equal(t, 3, r.Len())

	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "a.ListParser", entries[1].Declaration.Name.Qualified())
}

func TestRegistry_AliasCollisionLastWriteWins(t *testing.T) {
	r := New()
	first := parser("a.First", "Same", mapClass)
	second := parser("b.Second", "Same")

	assert.Nil(t, r.Register(first))
	r.Register(parser("a.Other", "Other"))
	replaced := r.Register(second)

	assert.Same(t, first, replaced)
	assert.Equal(t, []string{"Same", "Other"}, r.Aliases(), "alias keeps its first position")

	got, ok := r.Lookup("Same")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, []model.ClassName{model.ListClass}, r.Wrappers("Same"), "wrapper list replaced too")
}

func TestRegistry_CollisionWithoutAnnotationKeepsWrappers(t *testing.T) {
	r := New()
	r.Register(parser("a.First", "First", mapClass))

	second := parser("b.First", "")
	second.Declaration.Annotation = nil
	r.Register(second)

	assert.Equal(t, []model.ClassName{model.ListClass, mapClass}, r.Wrappers("First"))
}

func TestRegistry_Wrappers(t *testing.T) {
	tests := []struct {
		name     string
		declared []model.ClassName
		expected []model.ClassName
	}{
		{"default", nil, []model.ClassName{model.ListClass}},
		{"prepends list", []model.ClassName{mapClass, pageClass}, []model.ClassName{model.ListClass, mapClass, pageClass}},
		{"keeps explicit list position", []model.ClassName{mapClass, model.ListClass}, []model.ClassName{mapClass, model.ListClass}},
		{"dedupes", []model.ClassName{mapClass, mapClass}, []model.ClassName{model.ListClass, mapClass}},
		{"java list is the default list", []model.ClassName{mapClass, model.JavaListClass}, []model.ClassName{mapClass, model.ListClass}},
		{"both list spellings dedupe", []model.ClassName{model.JavaListClass, mapClass, model.ListClass}, []model.ClassName{model.ListClass, mapClass}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			r.Register(parser("a.P", "P", tt.declared...))
			assert.Equal(t, tt.expected, r.Wrappers("P"))
		})
	}
}

func TestRegistry_UnknownAliasWrappers(t *testing.T) {
	r := New()
	assert.Equal(t, []model.ClassName{model.ListClass}, r.Wrappers("missing"))

	_, ok := r.Lookup("missing")
	assert.False(t, ok)
}
