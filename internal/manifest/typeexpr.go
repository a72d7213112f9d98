package manifest

import (
	"strings"

	"github.com/cockroachdb/errors"

	"parser-generator/internal/model"
)

// ParseType parses a type expression. Bare identifiers listed in typeVars are
// type variables; every other name is a class. A trailing '?' marks a nullable
// type and type arguments may be projected with *, out or in.
func ParseType(expr string, typeVars []string) (*model.TypeName, error) {
	p := &typeParser{src: expr, vars: typeVars}

	t, err := p.parseType()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid type %q", expr)
	}

	p.skipSpace()

	if !p.done() {
		return nil, errors.Newf("invalid type %q: unexpected %q at offset %d", expr, p.src[p.pos:], p.pos)
	}

	return t, nil
}

type typeParser struct {
	src  string
	pos  int
	vars []string
}

func (p *typeParser) parseType() (*model.TypeName, error) {
	p.skipSpace()

	name := p.parseName()
	if name == "" {
		return nil, errors.Newf("expected type name at offset %d", p.pos)
	}

	var args []*model.TypeName

	p.skipSpace()

	if p.peek() == '<' {
		p.pos++

		for {
			arg, err := p.parseArg()
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			p.skipSpace()

			if p.peek() == ',' {
				p.pos++
				continue
			}

			if p.peek() == '>' {
				p.pos++
				break
			}

			return nil, errors.Newf("expected ',' or '>' at offset %d", p.pos)
		}
	}

	t, err := p.named(name, args)
	if err != nil {
		return nil, err
	}

	// Suffixes apply left to right: T?[] is an array of nullable T.
	for {
		p.skipSpace()

		switch {
		case strings.HasPrefix(p.src[p.pos:], "[]"):
			p.pos += 2
			t = model.ArrayOf(t)
		case p.peek() == '?':
			if t.Nullable {
				return nil, errors.Newf("repeated '?' at offset %d", p.pos)
			}

			p.pos++
			t = t.OrNull()
		default:
			return t, nil
		}
	}
}

// parseArg parses one type argument, which may be a projection.
func (p *typeParser) parseArg() (*model.TypeName, error) {
	p.skipSpace()

	if p.peek() == '*' {
		p.pos++
		return model.Star(), nil
	}

	for _, v := range []model.Variance{model.VarianceOut, model.VarianceIn} {
		if !p.keyword(string(v)) {
			continue
		}

		t, err := p.parseType()
		if err != nil {
			return nil, err
		}

		return model.Projection(v, t), nil
	}

	return p.parseType()
}

// keyword consumes kw when it is followed by a space.
func (p *typeParser) keyword(kw string) bool {
	rest := p.src[p.pos:]
	if !strings.HasPrefix(rest, kw) || len(rest) <= len(kw) {
		return false
	}

	if c := rest[len(kw)]; c != ' ' && c != '\t' {
		return false
	}

	p.pos += len(kw)

	return true
}

func (p *typeParser) named(name string, args []*model.TypeName) (*model.TypeName, error) {
	if !strings.Contains(name, ".") {
		for _, v := range p.vars {
			if v != name {
				continue
			}

			if len(args) > 0 {
				return nil, errors.Newf("type variable %s cannot take type arguments", name)
			}

			return model.Var(name), nil
		}
	}

	class, err := model.BestGuess(name)
	if err != nil {
		return nil, err
	}

	return model.Parameterized(class, args...), nil
}

func (p *typeParser) parseName() string {
	start := p.pos

	for !p.done() {
		c := p.src[p.pos]
		if c == '.' || c == '_' || c == '$' || isAlnum(c) {
			p.pos++
			continue
		}

		break
	}

	return p.src[start:p.pos]
}

func (p *typeParser) skipSpace() {
	for !p.done() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *typeParser) peek() byte {
	if p.done() {
		return 0
	}

	return p.src[p.pos]
}

func (p *typeParser) done() bool {
	return p.pos >= len(p.src)
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
