package manifest

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// File is a parsed manifest.
type File struct {
	Version string      `yaml:"version,omitempty" toml:"version,omitempty"`
	Parsers []ParserDef `yaml:"parsers" toml:"parsers"`
}

// ParserDef describes one candidate declaration.
type ParserDef struct {
	Class          string           `yaml:"class" toml:"class"`
	Location       string           `yaml:"location,omitempty" toml:"location,omitempty"`
	Visibility     string           `yaml:"visibility,omitempty" toml:"visibility,omitempty"`
	Abstract       bool             `yaml:"abstract,omitempty" toml:"abstract,omitempty"`
	Final          bool             `yaml:"final,omitempty" toml:"final,omitempty"`
	TypeParameters []TypeParamDef   `yaml:"type_parameters,omitempty" toml:"type_parameters,omitempty"`
	Supertypes     []string         `yaml:"supertypes,omitempty" toml:"supertypes,omitempty"`
	Annotation     *AnnotationDef   `yaml:"annotation,omitempty" toml:"annotation,omitempty"`
	Constructors   []ConstructorDef `yaml:"constructors,omitempty" toml:"constructors,omitempty"`
	Methods        []MethodDef      `yaml:"methods,omitempty" toml:"methods,omitempty"`
}

// TypeParamDef is a formal type parameter.
type TypeParamDef struct {
	Name   string   `yaml:"name" toml:"name"`
	Bounds []string `yaml:"bounds,omitempty" toml:"bounds,omitempty"`
}

// AnnotationDef holds the parser annotation values.
type AnnotationDef struct {
	Name     string   `yaml:"name,omitempty" toml:"name,omitempty"`
	Wrappers []string `yaml:"wrappers,omitempty" toml:"wrappers,omitempty"`
}

// ConstructorDef describes a constructor.
type ConstructorDef struct {
	Visibility string     `yaml:"visibility,omitempty" toml:"visibility,omitempty"`
	Parameters []ParamDef `yaml:"parameters,omitempty" toml:"parameters,omitempty"`
}

// MethodDef describes a member function.
type MethodDef struct {
	Name       string     `yaml:"name" toml:"name"`
	Visibility string     `yaml:"visibility,omitempty" toml:"visibility,omitempty"`
	Static     bool       `yaml:"static,omitempty" toml:"static,omitempty"`
	Parameters []ParamDef `yaml:"parameters,omitempty" toml:"parameters,omitempty"`
	Returns    string     `yaml:"returns,omitempty" toml:"returns,omitempty"`
}

// ParamDef describes a parameter.
type ParamDef struct {
	Name   string `yaml:"name" toml:"name"`
	Type   string `yaml:"type" toml:"type"`
	Vararg bool   `yaml:"vararg,omitempty" toml:"vararg,omitempty"`
}

// UnmarshalYAML accepts either a bare name ("T") or a mapping
// ({name: T, bounds: [...]}).
func (tp *TypeParamDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*tp = TypeParamDef{Name: name}

		return nil

	case yaml.MappingNode:
		type plain TypeParamDef

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*tp = TypeParamDef(p)

		return nil

	default:
		return errors.Newf("line %d: expected type parameter name or mapping", node.Line)
	}
}

// UnmarshalTOML accepts the same two forms as UnmarshalYAML.
func (tp *TypeParamDef) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*tp = TypeParamDef{Name: v}

		return nil

	case map[string]any:
		name, _ := v["name"].(string)
		out := TypeParamDef{Name: name}

		if raw, ok := v["bounds"]; ok {
			list, ok := raw.([]any)
			if !ok {
				return errors.Newf("type parameter %s: bounds must be an array", name)
			}

			for _, b := range list {
				bound, ok := b.(string)
				if !ok {
					return errors.Newf("type parameter %s: bound must be a string", name)
				}

				out.Bounds = append(out.Bounds, bound)
			}
		}

		*tp = out

		return nil

	default:
		return errors.Newf("expected type parameter name or table, got %T", data)
	}
}

// MarshalYAML writes bound-less type parameters as a bare name.
func (tp TypeParamDef) MarshalYAML() (any, error) {
	if len(tp.Bounds) == 0 {
		return tp.Name, nil
	}

	type plain TypeParamDef

	return plain(tp), nil
}
