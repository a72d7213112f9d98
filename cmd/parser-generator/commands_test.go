package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parser-generator/internal/manifest"
)

func examplePath(t *testing.T, name string) string {
	t.Helper()

	p, err := filepath.Abs(filepath.Join("..", "..", "examples", name, "parsers.yaml"))
	require.NoError(t, err)

	return p
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestGen_WritesFiles(t *testing.T) {
	out := t.TempDir()

	stdout, stderr, err := execute(t, "gen", "-m", examplePath(t, "rxhttp"), "-o", out, "--rxjava")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "3 parser(s), 6 as-function(s), 4 extension(s)")

	_, err = os.Stat(filepath.Join(out, "RxHttpAsParsers.kt"))
	require.NoError(t, err)

	ext, err := os.ReadFile(filepath.Join(out, "RxHttpExtensions.kt"))
	require.NoError(t, err)
	assert.Contains(t, string(ext), "toResponse")
}

func TestGen_ReportsRejections(t *testing.T) {
	out := t.TempDir()

	_, stderr, err := execute(t, "gen", examplePath(t, "rejected"), "-o", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5 declaration(s) rejected")
	assert.Contains(t, stderr, "error: Hidden.kt:3: [not_public]")

	_, err = os.Stat(filepath.Join(out, "RxHttpExtensions.kt"))
	require.NoError(t, err)
}

func TestCheck_ListsRegistry(t *testing.T) {
	stdout, _, err := execute(t, "check", "-m", examplePath(t, "collision"))
	require.NoError(t, err)
	assert.Equal(t,
		"Data\tcom.example.v2.DataParser\tok\n"+
			"Other\tcom.example.Other\tok\n",
		stdout)
}

func TestCheck_CollisionPolicyFlag(t *testing.T) {
	_, stderr, err := execute(t, "check", "-m", examplePath(t, "collision"), "--alias-collision", "error")
	require.Error(t, err)
	assert.Contains(t, stderr, "[duplicate_alias]")
}

func TestDump_PrintsPlan(t *testing.T) {
	stdout, _, err := execute(t, "dump", examplePath(t, "rxhttp"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "toSimple")
	assert.Contains(t, stdout, "Aliases")
}

func TestConfigFile(t *testing.T) {
	out := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "parsergen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"rxjava: true\npackage: com.example.net\noutput: "+out+"\nmanifests:\n  - "+examplePath(t, "rxhttp")+"\n"), 0o644))

	_, _, err := execute(t, "gen", "--config", cfgPath)
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(out, "RxHttpAsParsers.kt"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "package com.example.net\n")
}

func TestNoManifests(t *testing.T) {
	_, _, err := execute(t, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no manifests given")
}

func TestCheck_SuggestsParseMethod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parsers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
parsers:
  - class: com.example.LooseParser
    supertypes: [rxhttp.wrapper.parse.Parser<kotlin.String>]
    constructors:
      - {}
    methods:
      - name: onParsed
        parameters: [{name: response, type: okhttp3.Response}]
        returns: kotlin.String
`), 0o644))

	stdout, _, err := execute(t, "check", path)
	require.NoError(t, err)
	assert.Equal(t,
		"LooseParser\tcom.example.LooseParser\tskipped: no onParse(Response) method, did you mean onParsed?\n",
		stdout)
}

func TestGen_ReportsDiagnosticsWhenWriteFails(t *testing.T) {
	blocked := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocked, nil, 0o644))

	_, stderr, err := execute(t, "gen", examplePath(t, "rejected"), "-o", blocked)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emitting generated code")
	assert.Contains(t, stderr, "error: Hidden.kt:3: [not_public]")
}

func TestNormalize_TOMLToYAML(t *testing.T) {
	tomlPath, err := filepath.Abs(filepath.Join("..", "..", "examples", "rxhttp", "parsers.toml"))
	require.NoError(t, err)

	stdout, _, err := execute(t, "normalize", tomlPath)
	require.NoError(t, err)

	f, err := manifest.Parse([]byte(stdout))
	require.NoError(t, err)

	fromTOML, err := f.Declarations("normalized.yaml")
	require.NoError(t, err)

	fromYAML, err := manifest.LoadDeclarations(examplePath(t, "rxhttp"))
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
}
