package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/errcodegen/internal/compiler"
)

func TestLoadDefinitions(t *testing.T) {
	path := writeDefinitions(t, transientDefinitions)
	logBuf := &bytes.Buffer{}

	result, err := LoadDefinitions(path, compiler.ModeLenient, zerolog.New(logBuf).Level(zerolog.DebugLevel))
	require.NoError(t, err)

	assert.Len(t, result.Definitions.Codes, 2)
	assert.Contains(t, logBuf.String(), `"codes":2`)
	assert.Contains(t, logBuf.String(), `"classes":1`)
}

func TestLoadDefinitionsLogsWarnings(t *testing.T) {
	path := writeDefinitions(t, "error_code('Foo', 1)\nerror_code('Bar', 1)\n")
	logBuf := &bytes.Buffer{}

	result, err := LoadDefinitions(path, compiler.ModeLenient, zerolog.New(logBuf).Level(zerolog.WarnLevel))
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, logBuf.String(), `"level":"warn"`)
	assert.Contains(t, logBuf.String(), `"code":"W301"`)
}

func TestConvertCompilerErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantCode string
		wantLine int
	}{
		{"syntax", "error_code('A')\n", ErrCodeSyntax, 1},
		{"capability", "\nexec('x')\n", ErrCodeCapability, 2},
		{"unknown_member", "error_class('C', ['Nope'])\n", ErrCodeUnknownMember, 1},
		{"duplicate_name", "error_code('A', 1)\nerror_code('A', 2)\n", ErrCodeDuplicateName, 2},
		{"duplicate_class", "error_class('C', [])\nerror_class('C', [])\n", ErrCodeDuplicateClass, 2},
		{"duplicate_member", "error_code('A', 1)\nerror_class('C', ['A', 'A'])\n", ErrCodeDuplicateMember, 2},
		{"reserved_name", "error_code('ErrorCode', 1)\n", ErrCodeReservedName, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDefinitions(t, tt.src)

			_, err := LoadDefinitions(path, compiler.ModeLenient, zerolog.Nop())
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.wantCode, loadErr.Code)
			assert.Equal(t, tt.wantLine, loadErr.Pos.Line())
			assert.True(t, IsDefinitionsError(loadErr.Code))
			assert.Contains(t, loadErr.Error(), loadErr.Location()+": "+tt.wantCode+": ")
		})
	}
}

func TestConvertLoadErrors(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "missing.err"), compiler.ModeLenient, zerolog.Nop())
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
	assert.False(t, IsDefinitionsError(loadErr.Code))
	assert.Empty(t, loadErr.Location())

	_, err = LoadDefinitions(t.TempDir(), compiler.ModeLenient, zerolog.Nop())
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeLoadFailed, loadErr.Code)
}

func TestParseDefinitionsSkipsValidation(t *testing.T) {
	path := writeDefinitions(t, "error_class('C', ['Nope'])\n")

	defs, err := ParseDefinitions(path)
	require.NoError(t, err)
	assert.Len(t, defs.Classes, 1)
}
