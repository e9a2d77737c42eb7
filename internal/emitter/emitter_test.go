package emitter

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/errcodegen/internal/ir"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func transientDefinitions() *ir.Definitions {
	return &ir.Definitions{
		Source: "testdata/error_codes.err",
		Codes: []ir.ErrorCode{
			{Name: "Bar", Code: 2},
			{Name: "Foo", Code: 1},
		},
		Classes: []ir.ErrorClass{
			{Name: "Transient", Codes: []string{"Bar"}},
		},
	}
}

// parseGenerated checks the output is valid Go and returns its syntax tree.
func parseGenerated(t *testing.T, src []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "errorgen.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source must parse:\n%s", src)
	return f
}

func TestEmitTransientScenario(t *testing.T) {
	out, err := EmitDefinitions(transientDefinitions(), Options{})
	require.NoError(t, err)

	parseGenerated(t, out)
	newGoldie(t).Assert(t, "transient_scenario", out)
}

func TestEmitSharedValues(t *testing.T) {
	codes := ir.Canonicalize([]ir.ErrorCode{
		{Name: "Zeta", Code: 5},
		{Name: "Alpha", Code: 3},
		{Name: "Beta", Code: 3},
	})
	classes := []ir.ErrorClass{
		{Name: "Retry", Codes: []string{"Alpha", "Beta", "Zeta", "Zeta"}},
		{Name: "Empty", Codes: []string{}},
	}

	out, err := Emit(codes, classes, Options{})
	require.NoError(t, err)

	parseGenerated(t, out)
	newGoldie(t).Assert(t, "shared_values", out)
}

func TestEmitConstantsInCanonicalOrder(t *testing.T) {
	defs := &ir.Definitions{Codes: []ir.ErrorCode{
		{Name: "Third", Code: 300},
		{Name: "First", Code: -1},
		{Name: "Second", Code: 20},
	}}

	out, err := EmitDefinitions(defs, Options{})
	require.NoError(t, err)

	f := parseGenerated(t, out)
	var names []string
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			names = append(names, spec.(*ast.ValueSpec).Names[0].Name)
		}
	}
	assert.Equal(t, []string{"First", "Second", "Third"}, names)
	assert.Contains(t, string(out), "First  ErrorCode = -1")
}

func TestEmitIsDeterministic(t *testing.T) {
	first, err := EmitDefinitions(transientDefinitions(), Options{})
	require.NoError(t, err)

	reordered := transientDefinitions()
	reordered.Codes[0], reordered.Codes[1] = reordered.Codes[1], reordered.Codes[0]
	second, err := EmitDefinitions(reordered, Options{})
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestEmitIgnoresExtra(t *testing.T) {
	defs := transientDefinitions()
	defs.Codes[0].Extra = ir.Dict{"retry": ir.Bool(true)}

	withExtra, err := EmitDefinitions(defs, Options{})
	require.NoError(t, err)
	without, err := EmitDefinitions(transientDefinitions(), Options{})
	require.NoError(t, err)

	assert.Equal(t, string(without), string(withExtra))
}

func TestEmitOptions(t *testing.T) {
	out, err := EmitDefinitions(transientDefinitions(), Options{
		Package:    "wireerr",
		BSONImport: "go.mongodb.org/mongo-driver/v2/bson",
		Source:     "/abs/path/codes.err",
	})
	require.NoError(t, err)

	f := parseGenerated(t, out)
	assert.Equal(t, "wireerr", f.Name.Name)
	require.Len(t, f.Imports, 1)
	assert.Equal(t, `"go.mongodb.org/mongo-driver/v2/bson"`, f.Imports[0].Path.Value)
	require.NotNil(t, f.Imports[0].Name)
	assert.Equal(t, "bson", f.Imports[0].Name.Name)
	assert.True(t, strings.HasPrefix(string(out), "// Code generated by errcodegen from codes.err. DO NOT EDIT.\n"))
}

func TestEmitNamesTheBSONImport(t *testing.T) {
	// The package at the path need not be called bson.
	out, err := EmitDefinitions(transientDefinitions(), Options{BSONImport: "example.com/wire/doccompat"})
	require.NoError(t, err)

	f := parseGenerated(t, out)
	require.Len(t, f.Imports, 1)
	require.NotNil(t, f.Imports[0].Name)
	assert.Equal(t, "bson", f.Imports[0].Name.Name)
	assert.Contains(t, string(out), `import bson "example.com/wire/doccompat"`)
	assert.Contains(t, string(out), "func (c ErrorCode) ErrMessage(msg string) bson.D {")
}

func TestEmitRejectsBadOptions(t *testing.T) {
	_, err := Emit(nil, nil, Options{Package: "not-a-package"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid package name")

	_, err = Emit(nil, nil, Options{BSONImport: `bad"path`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid import path")
}

func TestEmitNoDeclarations(t *testing.T) {
	out, err := Emit(nil, nil, Options{})
	require.NoError(t, err)

	f := parseGenerated(t, out)
	for _, decl := range f.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok {
			assert.NotEqual(t, token.CONST, gen.Tok, "no const block without codes")
		}
	}
	assert.Contains(t, string(out), `panic("unknown ErrorCode")`)
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "// Code generated by errcodegen. DO NOT EDIT.", Header(""))
	assert.Equal(t, "// Code generated by errcodegen from x.err. DO NOT EDIT.", Header("dir/x.err"))
}
