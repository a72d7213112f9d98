package plan

import (
	"github.com/cockroachdb/errors"

	"parser-generator/internal/funcspec"
	"parser-generator/internal/match"
	"parser-generator/internal/model"
)

// CollisionPolicy decides what happens when two declarations share an alias.
type CollisionPolicy string

const (
	// CollisionOverwrite keeps the later declaration (last write wins).
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionError rejects the later declaration.
	CollisionError CollisionPolicy = "error"
)

// ParseCollisionPolicy parses a policy name. Empty means overwrite.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(s) {
	case "", CollisionOverwrite:
		return CollisionOverwrite, nil
	case CollisionError:
		return CollisionError, nil
	default:
		if hint, ok := match.Closest(s, []string{string(CollisionOverwrite), string(CollisionError)}, match.DefaultThreshold); ok {
			return "", errors.Newf("unknown alias collision policy %q (did you mean %q?)", s, hint)
		}

		return "", errors.Newf("unknown alias collision policy %q (expected %q or %q)",
			s, CollisionOverwrite, CollisionError)
	}
}

// Options configures a generation pass.
type Options struct {
	// RxJava is the capability flag for the optional reactive extension.
	RxJava bool
	// ParserBase is the supertype every parser must inherit.
	ParserBase model.ClassName
	// ParseMethod and ResponseType identify the response-parsing method.
	ParseMethod  string
	ResponseType model.ClassName
	// AliasCollision selects the alias collision policy.
	AliasCollision CollisionPolicy
}

// DefaultOptions returns the default pass options.
func DefaultOptions() Options {
	return Options{
		ParserBase:     model.DefaultParserBase,
		ParseMethod:    model.DefaultParseMethod,
		ResponseType:   model.DefaultResponseClass,
		AliasCollision: CollisionOverwrite,
	}
}

// Plan is the complete output of one pass.
type Plan struct {
	// AsFunctions holds base and wrapper as-functions in generation order.
	// Empty unless the reactive extension is present.
	AsFunctions []funcspec.Func
	// Extensions is the aggregate extension artifact.
	Extensions funcspec.File
	// Aliases lists the registered aliases in generation order.
	Aliases []string
}

// Emitter receives the complete Plan. It is never called with partial output.
type Emitter interface {
	Emit(p *Plan) error
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(p *Plan) error

// Emit calls f(p).
func (f EmitterFunc) Emit(p *Plan) error {
	return f(p)
}
