package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"parser-generator/internal/config"
	"parser-generator/internal/diagnostic"
	"parser-generator/internal/gen"
	"parser-generator/internal/logger"
	"parser-generator/internal/manifest"
	"parser-generator/internal/model"
	"parser-generator/internal/plan"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "parser-generator",
		Short: "Generate RxHttp parser functions from parser declarations",
		Long: `Generate the as-family and to-family functions for annotated RxHttp parsers.

Declarations are read from YAML or TOML manifests in order. Each one is validated;
rejected declarations are reported and skipped, the rest are registered by
alias and synthesized into Kotlin source.

Configuration precedence: defaults < --config file < PARSERGEN_* env < flags.

Examples:
  parser-generator gen -m parsers.yaml -o build/generated --rxjava
  parser-generator check -m a.yaml -m b.yaml
  parser-generator dump --config parsergen.yaml
  parser-generator normalize parsers.toml > parsers.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (yaml, toml or json)")
	flags.StringSliceP("manifest", "m", nil, "Declaration manifest (repeatable, read in order)")
	flags.StringP("output", "o", "", "Output directory for generated files")
	flags.Bool("rxjava", false, "Generate the as-family (reactive extension present)")
	flags.String("package", "", "Kotlin package of the generated files")
	flags.String("alias-collision", "", "Alias collision policy: overwrite or error")
	flags.Bool("log-json", false, "Log as JSON")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	bindings := map[string]string{
		config.KeyManifests:      "manifest",
		config.KeyOutput:         "output",
		config.KeyRxJava:         "rxjava",
		config.KeyPackage:        "package",
		config.KeyAliasCollision: "alias-collision",
		config.KeyLogJSON:        "log-json",
		config.KeyVerbose:        "verbose",
	}

	for key, name := range bindings {
		// BindPFlag only fails on a nil flag.
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(a.genCmd(), a.checkCmd(), a.dumpCmd(), a.normalizeCmd())

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}

	if err := logger.Initialize(cfg.LogJSON, cfg.Verbose); err != nil {
		return errors.Wrap(err, "initializing logger")
	}

	a.cfg = cfg

	return nil
}

func (a *app) genCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen [manifest...]",
		Short: "Validate declarations and write generated Kotlin files",
		Long: `Run a full generation pass and write the generated files.

Rejected declarations do not stop the pass; the files are still written for
the valid ones, and the command exits non-zero after reporting them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, decls, err := a.prepare(args)
			if err != nil {
				return err
			}

			diags := &diagnostic.Diagnostics{}

			p, err := plan.NewDriver(opts, diags).Run(slices.Values(decls), gen.NewGenerator(a.cfg.GeneratorConfig()))
			printDiagnostics(cmd.ErrOrStderr(), diags)

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d parser(s), %d as-function(s), %d extension(s) written to %s\n",
				len(p.Aliases), len(p.AsFunctions), len(p.Extensions.Funcs), a.cfg.Output)

			return diags.Error()
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [manifest...]",
		Short: "Validate declarations and report diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, decls, err := a.prepare(args)
			if err != nil {
				return err
			}

			diags := &diagnostic.Diagnostics{}
			reg := plan.NewDriver(opts, diags).Scan(slices.Values(decls))

			printDiagnostics(cmd.ErrOrStderr(), diags)

			out := cmd.OutOrStdout()
			for _, pd := range reg.Entries() {
				status := "ok"
				if pd.ResultType == nil {
					status = "skipped: no " + opts.ParseMethod + "(" + opts.ResponseType.SimpleName() + ") method"
					if hint, ok := plan.SuggestParseMethod(pd.Declaration, opts.ParseMethod); ok {
						status += ", did you mean " + hint + "?"
					}
				}

				fmt.Fprintf(out, "%s\t%s\t%s\n", pd.Alias, pd.Declaration.Name.Qualified(), status)
			}

			return diags.Error()
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [manifest...]",
		Short: "Print the synthesized function specs",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, decls, err := a.prepare(args)
			if err != nil {
				return err
			}

			diags := &diagnostic.Diagnostics{}

			p, err := plan.NewDriver(opts, diags).Run(slices.Values(decls), nil)
			printDiagnostics(cmd.ErrOrStderr(), diags)

			if err != nil {
				return err
			}

			dumpConfig.Fdump(cmd.OutOrStdout(), p)

			return nil
		},
	}
}

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [manifest...]",
		Short: "Print the manifests merged into one YAML manifest",
		Long: `Load every manifest in order, YAML or TOML, check that each converts, and
print them as a single YAML manifest in delivery order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := a.manifestPaths(args)
			if err != nil {
				return err
			}

			f, err := manifest.LoadMerged(paths...)
			if err != nil {
				return err
			}

			out, err := manifest.Marshal(f)
			if err != nil {
				return errors.Wrap(err, "encoding manifest")
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// prepare resolves pass options and loads the manifests named by args and
// the manifests setting, in that order.
func (a *app) prepare(args []string) (plan.Options, []*model.Declaration, error) {
	opts, err := a.cfg.PlanOptions()
	if err != nil {
		return plan.Options{}, nil, err
	}

	paths, err := a.manifestPaths(args)
	if err != nil {
		return plan.Options{}, nil, err
	}

	decls, err := manifest.LoadDeclarations(paths...)
	if err != nil {
		return plan.Options{}, nil, err
	}

	logger.Logger.Debugw("loaded manifests",
		logger.FieldCount, len(decls),
		logger.FieldFile, paths)

	return opts, decls, nil
}

// manifestPaths returns args followed by the manifests setting.
func (a *app) manifestPaths(args []string) ([]string, error) {
	paths := append(slices.Clone(args), a.cfg.Manifests...)
	if len(paths) == 0 {
		return nil, errors.New("no manifests given (pass them as arguments, with -m, or set manifests in the config)")
	}

	return paths, nil
}

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		fmt.Fprintf(w, "error: %s\n", d.String())
	}

	for _, d := range diags.Warnings {
		fmt.Fprintf(w, "warning: %s\n", d.String())
	}
}
