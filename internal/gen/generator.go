package gen

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"parser-generator/internal/common"
	"parser-generator/internal/funcspec"
	"parser-generator/internal/logger"
	"parser-generator/internal/model"
	"parser-generator/internal/plan"
)

// File and class names of the generated artifacts.
const (
	AsParsersFile  = "RxHttpAsParsers"
	AsParsersClass = "BaseRxHttp"
	ExtensionsFile = "RxHttpExtensions"
	fileExt        = ".kt"

	// toAwaitPackage holds the CallFactory.toAwait extension.
	toAwaitPackage = "rxhttp"
	toAwaitFunc    = "toAwait"
	asParserFunc   = "asParser"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the Kotlin package of the generated files.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// ParserBase is the parameter type of the abstract asParser member.
	ParserBase model.ClassName
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName: "rxhttp",
		OutputDir:   "./generated",
		ParserBase:  model.DefaultParserBase,
	}
}

// Generator renders plans into Kotlin files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.ParserBase.IsZero() {
		config.ParserBase = model.DefaultParserBase
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Kotlin source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "RxHttpExtensions.kt").
	Filename string
	// Content is the rendered source.
	Content []byte
}

// Generate renders p. The extensions file is always produced; the as-family
// file only when p carries as-functions.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	var files []GeneratedFile

	if !common.IsEmpty(p.AsFunctions) {
		file, err := g.generateAsParsers(p.AsFunctions)
		if err != nil {
			return nil, errors.Wrap(err, "generating as-functions")
		}

		files = append(files, *file)
	}

	file, err := g.generateExtensions(p.Extensions)
	if err != nil {
		return nil, errors.Wrap(err, "generating extensions")
	}

	files = append(files, *file)

	return files, nil
}

// Emit renders p and writes the files into the configured output directory.
// Nothing is written if rendering fails.
func (g *Generator) Emit(p *plan.Plan) error {
	files, err := g.Generate(p)
	if err != nil {
		return err
	}

	if err := WriteFiles(files, g.config.OutputDir); err != nil {
		return err
	}

	for _, f := range files {
		logger.Logger.Infow("wrote generated file",
			logger.FieldFile, f.Filename,
			logger.FieldCount, len(f.Content))
	}

	return nil
}

var _ plan.Emitter = (*Generator)(nil)

func (g *Generator) generateAsParsers(funcs []funcspec.Func) (*GeneratedFile, error) {
	names := newNameTable(g.config.PackageName)
	names.add(g.config.ParserBase)
	names.add(model.ObservableClass)

	for i := range funcs {
		names.addFunc(&funcs[i])
	}

	r := &renderer{names: names.resolve()}
	t := model.Var("T")

	data := &templateData{
		PackageName: g.config.PackageName,
		Imports:     names.imports(),
		ClassName:   AsParsersClass,
		AsParserSig: "abstract fun <T> " + asParserFunc +
			"(parser: " + r.typeName(model.Parameterized(g.config.ParserBase, t)) + "): " +
			r.typeName(model.Parameterized(model.ObservableClass, t)),
	}

	if err := r.addFuncs(data, funcs); err != nil {
		return nil, err
	}

	return render("asParsers", AsParsersFile+fileExt, data)
}

func (g *Generator) generateExtensions(file funcspec.File) (*GeneratedFile, error) {
	names := newNameTable(g.config.PackageName)

	for i := range file.Funcs {
		names.addFunc(&file.Funcs[i])
	}

	if len(file.Funcs) > 0 && g.config.PackageName != toAwaitPackage {
		names.addImport(toAwaitPackage + "." + toAwaitFunc)
	}

	r := &renderer{names: names.resolve()}

	data := &templateData{
		PackageName: g.config.PackageName,
		Imports:     names.imports(),
	}

	if err := r.addFuncs(data, file.Funcs); err != nil {
		return nil, err
	}

	name := file.Name
	if name == "" {
		name = ExtensionsFile
	}

	return render("extensions", name+fileExt, data)
}

func (r *renderer) addFuncs(data *templateData, funcs []funcspec.Func) error {
	for i := range funcs {
		fd, err := r.funcData(&funcs[i])
		if err != nil {
			return err
		}

		data.Funcs = append(data.Funcs, fd)
	}

	return nil
}

func render(name, filename string, data *templateData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, errors.Wrapf(err, "executing template for %s", filename)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  buf.Bytes(),
	}, nil
}
