package manifest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"parser-generator/internal/model"
)

// LoadFile loads and parses a manifest from the given path. Files ending in
// .toml are read as TOML, anything else as YAML.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}

	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}

	f, err := parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document.
			applyDefaults(&f)
			return &f, nil
		}

		return nil, errors.Wrap(err, "failed to parse manifest YAML")
	}

	applyDefaults(&f)

	return &f, nil
}

func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// ParseTOML parses TOML data into a File. Unknown keys are an error.
func ParseTOML(data []byte) (*File, error) {
	var f File

	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse manifest TOML")
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Newf("failed to parse manifest TOML: unknown key %s", undecoded[0])
	}

	applyDefaults(&f)

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// LoadMerged loads every manifest in order into a single File. Each manifest
// must convert cleanly; parsers without a location get their manifest path.
func LoadMerged(paths ...string) (*File, error) {
	merged := &File{}
	applyDefaults(merged)

	for _, path := range paths {
		f, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		if _, err := f.Declarations(path); err != nil {
			return nil, errors.Wrapf(err, "manifest %s", path)
		}

		for _, p := range f.Parsers {
			if p.Location == "" {
				p.Location = path
			}

			merged.Parsers = append(merged.Parsers, p)
		}
	}

	return merged, nil
}

// LoadDeclarations loads every manifest in order and concatenates their
// declarations, preserving delivery order.
func LoadDeclarations(paths ...string) ([]*model.Declaration, error) {
	var out []*model.Declaration

	for _, path := range paths {
		f, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		decls, err := f.Declarations(path)
		if err != nil {
			return nil, errors.Wrapf(err, "manifest %s", path)
		}

		out = append(out, decls...)
	}

	return out, nil
}
