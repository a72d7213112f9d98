package manifest

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"parser-generator/internal/model"
)

// Declarations converts the manifest entries into model declarations.
// source is used as the location of entries that carry none.
func (f *File) Declarations(source string) ([]*model.Declaration, error) {
	out := make([]*model.Declaration, 0, len(f.Parsers))

	for i := range f.Parsers {
		d, err := f.Parsers[i].declaration()
		if err != nil {
			name := f.Parsers[i].Class
			if name == "" {
				name = "#" + strconv.Itoa(i)
			}

			return nil, errors.Wrapf(err, "parser %s", name)
		}

		if d.Location.File == "" {
			d.Location = model.Location{File: source}
		}

		out = append(out, d)
	}

	return out, nil
}

func (p *ParserDef) declaration() (*model.Declaration, error) {
	if p.Class == "" {
		return nil, errors.New("class is required")
	}

	name, err := model.BestGuess(p.Class)
	if err != nil {
		return nil, err
	}

	vis, err := model.ParseVisibility(p.Visibility)
	if err != nil {
		return nil, err
	}

	d := &model.Declaration{
		Name:       name,
		Location:   ParseLocation(p.Location),
		Visibility: vis,
		Abstract:   p.Abstract,
		Final:      p.Final,
	}

	vars := make([]string, 0, len(p.TypeParameters))
	for _, tp := range p.TypeParameters {
		vars = append(vars, tp.Name)
	}

	for _, tp := range p.TypeParameters {
		if tp.Name == "" {
			return nil, errors.New("type parameter without a name")
		}

		bounds, err := parseTypes(tp.Bounds, vars)
		if err != nil {
			return nil, errors.Wrapf(err, "type parameter %s", tp.Name)
		}

		d.TypeParameters = append(d.TypeParameters, model.TypeParameter{Name: tp.Name, Bounds: bounds})
	}

	if d.Supertypes, err = parseTypes(p.Supertypes, vars); err != nil {
		return nil, errors.Wrap(err, "supertypes")
	}

	if p.Annotation != nil {
		ann := &model.Annotation{Name: p.Annotation.Name}

		for _, w := range p.Annotation.Wrappers {
			c, err := model.BestGuess(w)
			if err != nil {
				return nil, errors.Wrap(err, "wrappers")
			}

			ann.Wrappers = append(ann.Wrappers, c)
		}

		d.Annotation = ann
	}

	for i, c := range p.Constructors {
		ctor, err := c.constructor(vars)
		if err != nil {
			return nil, errors.Wrapf(err, "constructor #%d", i)
		}

		d.Constructors = append(d.Constructors, ctor)
	}

	for _, m := range p.Methods {
		method, err := m.method(vars)
		if err != nil {
			return nil, errors.Wrapf(err, "method %s", m.Name)
		}

		d.Methods = append(d.Methods, method)
	}

	return d, nil
}

func (c *ConstructorDef) constructor(vars []string) (model.Constructor, error) {
	vis, err := model.ParseVisibility(c.Visibility)
	if err != nil {
		return model.Constructor{}, err
	}

	params, err := parseParams(c.Parameters, vars)
	if err != nil {
		return model.Constructor{}, err
	}

	return model.Constructor{Visibility: vis, Parameters: params}, nil
}

func (m *MethodDef) method(vars []string) (model.Method, error) {
	if m.Name == "" {
		return model.Method{}, errors.New("method name is required")
	}

	vis, err := model.ParseVisibility(m.Visibility)
	if err != nil {
		return model.Method{}, err
	}

	params, err := parseParams(m.Parameters, vars)
	if err != nil {
		return model.Method{}, err
	}

	method := model.Method{
		Name:       m.Name,
		Visibility: vis,
		Static:     m.Static,
		Parameters: params,
	}

	if m.Returns != "" {
		if method.Returns, err = ParseType(m.Returns, vars); err != nil {
			return model.Method{}, errors.Wrap(err, "returns")
		}
	}

	return method, nil
}

func parseParams(defs []ParamDef, vars []string) ([]model.Parameter, error) {
	out := make([]model.Parameter, 0, len(defs))

	for _, pd := range defs {
		if pd.Name == "" {
			return nil, errors.New("parameter without a name")
		}

		t, err := ParseType(pd.Type, vars)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %s", pd.Name)
		}

		out = append(out, model.Parameter{Name: pd.Name, Type: t, Vararg: pd.Vararg})
	}

	return out, nil
}

func parseTypes(exprs []string, vars []string) ([]*model.TypeName, error) {
	out := make([]*model.TypeName, 0, len(exprs))

	for _, e := range exprs {
		t, err := ParseType(e, vars)
		if err != nil {
			return nil, err
		}

		out = append(out, t)
	}

	return out, nil
}

// ParseLocation parses "file:line" or "file". A trailing segment that is not
// a line number is kept as part of the file name.
func ParseLocation(s string) model.Location {
	s = strings.TrimSpace(s)

	idx := strings.LastIndexByte(s, ':')
	if idx < 0 {
		return model.Location{File: s}
	}

	line, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return model.Location{File: s}
	}

	return model.Location{File: s[:idx], Line: line}
}
