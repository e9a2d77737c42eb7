package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: basic
description: "one code"
definitions: |
  error_code("Foo", 1)
warnings: []
assertions:
  - type: string
    code: 1
    name: Foo
`))
	require.NoError(t, err)

	assert.Equal(t, "basic", s.Name)
	assert.Equal(t, "error_code(\"Foo\", 1)\n", s.Definitions)
	assert.NotNil(t, s.Warnings, "an empty list means no warnings are expected")
	assert.Empty(t, s.Warnings)
	require.Len(t, s.Assertions, 1)
	require.NotNil(t, s.Assertions[0].Code)
	assert.Equal(t, int64(1), *s.Assertions[0].Code)
}

func TestParseScenarioOmittedWarnings(t *testing.T) {
	s, err := ParseScenario([]byte("name: x\ndefinitions: \"\"\nassertions: []\n"))
	require.NoError(t, err)
	assert.Nil(t, s.Warnings)
}

func TestParseScenarioRejectsUnknownFields(t *testing.T) {
	_, err := ParseScenario([]byte("name: x\nassertion: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenarioValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"missing name", "definitions: ''\n", "name is required"},
		{"expect_error without code", "name: x\nexpect_error:\n  line: 2\n", "expect_error.code is required"},
		{"unknown assertion", "name: x\nassertions:\n  - type: bogus\n", `unknown type "bogus"`},
		{"const_order without names", "name: x\nassertions:\n  - type: const_order\n", "const_order requires names"},
		{"string without code", "name: x\nassertions:\n  - type: string\n    name: Foo\n", "string requires code and name"},
		{"string_panics without code", "name: x\nassertions:\n  - type: string_panics\n", "string_panics requires code"},
		{"member without class", "name: x\nassertions:\n  - type: member\n    name: Foo\n", "member requires class and name"},
		{"output_contains without text", "name: x\nassertions:\n  - type: output_contains\n", "output_contains requires text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scenario")
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenariosSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b", "a"} {
		content := "name: " + name + "\ndefinitions: ''\nassertions: []\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	scenarios, err := LoadScenarios(dir)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "a", scenarios[0].Name)
	assert.Equal(t, "b", scenarios[1].Name)
}

func TestLoadScenariosReportsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("description: no name\n"), 0o644))

	_, err := LoadScenarios(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}
