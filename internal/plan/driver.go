package plan

import (
	"iter"

	"github.com/cockroachdb/errors"

	"parser-generator/internal/diagnostic"
	"parser-generator/internal/funcspec"
	"parser-generator/internal/logger"
	"parser-generator/internal/model"
	"parser-generator/internal/registry"
	"parser-generator/internal/synth"
	"parser-generator/internal/validate"
)

// Driver runs generation passes. It holds no state between passes.
type Driver struct {
	opts      Options
	validator *validate.Engine
	diags     diagnostic.Sink
}

// NewDriver creates a Driver reporting rejections to diags.
func NewDriver(opts Options, diags diagnostic.Sink) *Driver {
	defaults := DefaultOptions()
	if opts.ParserBase.IsZero() {
		opts.ParserBase = defaults.ParserBase
	}

	if opts.ParseMethod == "" {
		opts.ParseMethod = defaults.ParseMethod
	}

	if opts.ResponseType.IsZero() {
		opts.ResponseType = defaults.ResponseType
	}

	if opts.AliasCollision == "" {
		opts.AliasCollision = defaults.AliasCollision
	}

	return &Driver{
		opts: opts,
		validator: validate.NewEngine(validate.Options{
			RxJava:     opts.RxJava,
			ParserBase: opts.ParserBase,
		}),
		diags: diags,
	}
}

// Run scans candidates, synthesizes the plan and hands it to emitter (which
// may be nil). On a synthesis failure nothing is emitted.
func (d *Driver) Run(candidates iter.Seq[*model.Declaration], emitter Emitter) (*Plan, error) {
	reg := d.Scan(candidates)

	p, err := d.Synthesize(reg)
	if err != nil {
		return nil, err
	}

	if emitter != nil {
		if err := emitter.Emit(p); err != nil {
			return nil, errors.Wrap(err, "emitting generated code")
		}
	}

	return p, nil
}

// Scan validates and registers every candidate, in order.
func (d *Driver) Scan(candidates iter.Seq[*model.Declaration]) *registry.Registry {
	reg := registry.New()

	for decl := range candidates {
		name := decl.Name.Qualified()

		if v := d.validator.Validate(decl); v != nil {
			d.reject(v)
			continue
		}

		pd := model.NewParserDeclaration(decl, d.opts.ParseMethod, d.opts.ResponseType)

		if d.opts.AliasCollision == CollisionError {
			if first, taken := reg.Lookup(pd.Alias); taken {
				d.reject(validate.DuplicateAlias(decl, pd.Alias, first.Declaration))
				continue
			}
		}

		if replaced := reg.Register(pd); replaced != nil {
			logger.Logger.Warnw("parser alias overwritten by later declaration",
				logger.FieldAlias, pd.Alias,
				logger.FieldDeclaration, name,
				"replaced", replaced.Declaration.Name.Qualified())
		}

		logger.Logger.Debugw("registered parser",
			logger.FieldAlias, pd.Alias,
			logger.FieldDeclaration, name)
	}

	return reg
}

// Synthesize builds the plan from the final registry state.
func (d *Driver) Synthesize(reg *registry.Registry) (*Plan, error) {
	p := &Plan{
		Extensions: funcspec.File{Name: synth.ExtensionsFile},
		Aliases:    reg.Aliases(),
	}

	for _, pd := range reg.Entries() {
		if pd.ResultType == nil {
			hint, _ := SuggestParseMethod(pd.Declaration, d.opts.ParseMethod)
			logger.Logger.Debugw("no parse method, skipping",
				logger.FieldAlias, pd.Alias,
				logger.FieldDeclaration, pd.Declaration.Name.Qualified(),
				"closest", hint)

			continue
		}

		ext, err := synth.Extensions(pd)
		if err != nil {
			return nil, err
		}

		p.Extensions.Funcs = append(p.Extensions.Funcs, ext...)
		logFuncs(pd.Alias, ext)

		if !d.opts.RxJava {
			continue
		}

		funcs, err := synth.AsFunctions(pd, reg.Wrappers(pd.Alias))
		if err != nil {
			return nil, err
		}

		p.AsFunctions = append(p.AsFunctions, funcs...)
		logFuncs(pd.Alias, funcs)
	}

	logger.Logger.Debugw("synthesized",
		logger.FieldCount, len(p.AsFunctions),
		"extensions", len(p.Extensions.Funcs))

	return p, nil
}

func logFuncs(alias string, funcs []funcspec.Func) {
	for _, fn := range funcs {
		logger.Logger.Debugw("synthesized function",
			logger.FieldAlias, alias,
			logger.FieldFunction, fn.Name)
	}
}

func (d *Driver) reject(v *validate.Violation) {
	diag := v.Diagnostic()
	logger.Logger.Debugw("rejected declaration",
		logger.FieldDeclaration, diag.Declaration,
		logger.FieldLocation, diag.Location.String(),
		logger.FieldError, diag.Message)

	if d.diags != nil {
		d.diags.Report(diag)
	}
}
