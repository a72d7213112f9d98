package gen

import (
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"parser-generator/internal/funcspec"
	"parser-generator/internal/model"
)

// templateData holds all data needed for one generated file.
type templateData struct {
	PackageName string
	Imports     []string
	// ClassName and AsParserSig are only set for the as-family file.
	ClassName   string
	AsParserSig string
	Funcs       []funcData
}

// funcData is one rendered function.
type funcData struct {
	Signature  string
	Statements []string
}

type renderer struct {
	names *nameTable
}

func (r *renderer) funcData(f *funcspec.Func) (funcData, error) {
	fd := funcData{Signature: r.signature(f)}

	for _, s := range f.Body {
		line, err := r.statement(s)
		if err != nil {
			return funcData{}, errors.Wrapf(err, "function %s", f.Name)
		}

		fd.Statements = append(fd.Statements, line)
	}

	return fd, nil
}

func (r *renderer) signature(f *funcspec.Func) string {
	var sb strings.Builder

	if f.Inline {
		sb.WriteString("inline ")
	}

	sb.WriteString("fun ")

	useWhere := false

	for _, tv := range f.TypeVariables {
		if len(tv.Bounds) > 1 {
			useWhere = true
		}
	}

	if len(f.TypeVariables) > 0 {
		vars := make([]string, len(f.TypeVariables))

		for i, tv := range f.TypeVariables {
			v := tv.Name
			if tv.Reified {
				v = "reified " + v
			}

			if !useWhere && len(tv.Bounds) == 1 {
				v += " : " + r.typeName(tv.Bounds[0])
			}

			vars[i] = v
		}

		sb.WriteString("<" + strings.Join(vars, ", ") + "> ")
	}

	if f.Receiver != nil {
		sb.WriteString(r.typeName(f.Receiver) + ".")
	}

	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = r.param(p)
	}

	sb.WriteString(f.Name + "(" + strings.Join(params, ", ") + "): " + r.typeName(f.Returns))

	if useWhere {
		var constraints []string

		for _, tv := range f.TypeVariables {
			for _, b := range tv.Bounds {
				constraints = append(constraints, tv.Name+" : "+r.typeName(b))
			}
		}

		sb.WriteString(" where " + strings.Join(constraints, ", "))
	}

	return sb.String()
}

// param renders a parameter. A vararg declared with its array type is
// written with the element type.
func (r *renderer) param(p funcspec.Param) string {
	if !p.Vararg {
		return p.Name + ": " + r.typeName(p.Type)
	}

	t := p.Type
	if t != nil && t.Kind == model.TypeKindArray {
		t = t.Elem
	}

	return "vararg " + p.Name + ": " + r.typeName(t)
}

func (r *renderer) statement(s funcspec.Statement) (string, error) {
	switch s := s.(type) {
	case funcspec.Local:
		v, err := r.expr(s.Value)
		if err != nil {
			return "", err
		}

		return "val " + s.Name + " = " + v, nil
	case funcspec.Return:
		v, err := r.expr(s.Value)
		if err != nil {
			return "", err
		}

		return "return " + v, nil
	default:
		return "", errors.AssertionFailedf("unknown statement %T", s)
	}
}

func (r *renderer) expr(e funcspec.Expr) (string, error) {
	switch e := e.(type) {
	case funcspec.Ref:
		if e.Spread {
			return "*" + e.Name, nil
		}

		return e.Name, nil
	case funcspec.Call:
		args, err := r.exprs(e.Args)
		if err != nil {
			return "", err
		}

		call := e.Func + "(" + args + ")"
		if !e.Static.IsZero() {
			call = r.names.spell(e.Static) + "." + call
		}

		return call, nil
	case funcspec.New:
		args, err := r.exprs(e.Args)
		if err != nil {
			return "", err
		}

		return r.typeName(e.Type) + "(" + args + ")", nil
	case funcspec.Anonymous:
		return "object : " + r.typeName(e.Super) + "() {}", nil
	case funcspec.ArrayOf:
		elems, err := r.exprs(e.Elems)
		if err != nil {
			return "", err
		}

		arr := "arrayOf<" + r.typeName(e.Elem) + ">(" + elems + ")"
		if e.Spread {
			arr = "*" + arr
		}

		return arr, nil
	case funcspec.ClassLiteral:
		return r.names.spell(e.Class) + "::class.java", nil
	default:
		return "", errors.AssertionFailedf("unknown expression %T", e)
	}
}

func (r *renderer) exprs(es []funcspec.Expr) (string, error) {
	out := make([]string, len(es))

	for i, e := range es {
		s, err := r.expr(e)
		if err != nil {
			return "", err
		}

		out[i] = s
	}

	return strings.Join(out, ", "), nil
}

var templates = template.Must(template.New("kotlin").Parse(`{{define "header"}}// Code generated by parser-generator. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
{{range .Imports}}import {{.}}
{{end}}{{end}}{{end}}

{{define "asParsers"}}{{template "header" .}}
abstract class {{.ClassName}} {

    {{.AsParserSig}}
{{range .Funcs}}
    {{.Signature}} {
{{range .Statements}}        {{.}}
{{end}}    }
{{end}}}
{{end}}

{{define "extensions"}}{{template "header" .}}{{range .Funcs}}
{{.Signature}} {
{{range .Statements}}    {{.}}
{{end}}}
{{end}}{{end}}`))
