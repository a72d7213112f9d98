// Package config loads generator settings with Viper.
//
// Precedence (lowest to highest): defaults < config file < PARSERGEN_* env
// vars < bound CLI flags.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"parser-generator/internal/common"
	"parser-generator/internal/gen"
	"parser-generator/internal/model"
	"parser-generator/internal/plan"
)

// EnvPrefix prefixes every environment variable, e.g. PARSERGEN_RXJAVA.
const EnvPrefix = "PARSERGEN"

// Configuration keys.
const (
	KeyRxJava         = "rxjava"
	KeyOutput         = "output"
	KeyPackage        = "package"
	KeyParserBase     = "parser_base"
	KeyParseMethod    = "parse_method"
	KeyResponseType   = "response_type"
	KeyAliasCollision = "alias_collision"
	KeyLogJSON        = "log_json"
	KeyVerbose        = "verbose"
	KeyManifests      = "manifests"
)

// Config holds the generator settings.
type Config struct {
	RxJava         bool     `mapstructure:"rxjava"`
	Output         string   `mapstructure:"output"`
	Package        string   `mapstructure:"package"`
	ParserBase     string   `mapstructure:"parser_base"`
	ParseMethod    string   `mapstructure:"parse_method"`
	ResponseType   string   `mapstructure:"response_type"`
	AliasCollision string   `mapstructure:"alias_collision"`
	LogJSON        bool     `mapstructure:"log_json"`
	Verbose        bool     `mapstructure:"verbose"`
	Manifests      []string `mapstructure:"manifests"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRxJava, false)
	v.SetDefault(KeyOutput, "./generated")
	v.SetDefault(KeyPackage, "rxhttp")
	v.SetDefault(KeyParserBase, model.DefaultParserBase.Qualified())
	v.SetDefault(KeyParseMethod, model.DefaultParseMethod)
	v.SetDefault(KeyResponseType, model.DefaultResponseClass.Qualified())
	v.SetDefault(KeyAliasCollision, string(plan.CollisionOverwrite))
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyManifests, []string{})
}

// New returns a Viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// Load reads configFile (if not empty) into v and unmarshals the result.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that cannot be checked by type alone.
func (c *Config) Validate() error {
	for _, seg := range strings.Split(c.Package, ".") {
		if !common.IsIdent(seg) {
			return errors.Newf("invalid %s %q", KeyPackage, c.Package)
		}
	}

	if !common.IsIdent(c.ParseMethod) {
		return errors.Newf("invalid %s %q", KeyParseMethod, c.ParseMethod)
	}

	if c.Output == "" {
		return errors.Newf("%s must not be empty", KeyOutput)
	}

	_, err := c.PlanOptions()

	return err
}

// PlanOptions converts the settings into pass options.
func (c *Config) PlanOptions() (plan.Options, error) {
	base, err := model.BestGuess(c.ParserBase)
	if err != nil {
		return plan.Options{}, errors.Wrap(err, KeyParserBase)
	}

	response, err := model.BestGuess(c.ResponseType)
	if err != nil {
		return plan.Options{}, errors.Wrap(err, KeyResponseType)
	}

	policy, err := plan.ParseCollisionPolicy(c.AliasCollision)
	if err != nil {
		return plan.Options{}, errors.Wrap(err, KeyAliasCollision)
	}

	return plan.Options{
		RxJava:         c.RxJava,
		ParserBase:     base,
		ParseMethod:    c.ParseMethod,
		ResponseType:   response,
		AliasCollision: policy,
	}, nil
}

// GeneratorConfig converts the settings into emitter configuration.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()
	cfg.PackageName = c.Package
	cfg.OutputDir = c.Output

	if base, err := model.BestGuess(c.ParserBase); err == nil {
		cfg.ParserBase = base
	}

	return cfg
}
