// Package emitter renders canonicalized error-code records as Go source.
package emitter

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"go/token"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/roach88/errcodegen/internal/ir"
)

// Defaults for Options.
const (
	DefaultPackage    = "mongoerror"
	DefaultBSONImport = "go.mongodb.org/mongo-driver/bson"
)

//go:embed errorgen.go.tmpl
var errorgenTemplate string

var tmpl = template.Must(template.New("errorgen").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(errorgenTemplate))

// Options configures the generated file.
type Options struct {
	Package    string // Package clause; DefaultPackage if empty
	BSONImport string // Import path providing bson.D; DefaultBSONImport if empty
	Source     string // Definitions file named in the header; optional
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.BSONImport == "" {
		o.BSONImport = DefaultBSONImport
	}
	return o
}

type classView struct {
	Name    string
	Members []string
}

type templateData struct {
	Header     string
	Package    string
	BSONImport string
	Codes      []ir.ErrorCode
	Named      []ir.ErrorCode // One per distinct value, for String
	Classes    []classView
}

// Header returns the generated-code marker line for a definitions file.
func Header(source string) string {
	if source == "" {
		return "// Code generated by errcodegen. DO NOT EDIT."
	}
	return fmt.Sprintf("// Code generated by errcodegen from %s. DO NOT EDIT.", filepath.Base(source))
}

// Emit renders codes, which must already be in canonical order, and
// classes in declaration order. The result is gofmt-formatted and
// byte-identical for identical inputs.
//
// Records are not re-validated. When several codes share a value, String
// reports the first of them and class predicates list the value once, so
// the output still compiles.
func Emit(codes []ir.ErrorCode, classes []ir.ErrorClass, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("invalid package name %q", opts.Package)
	}
	if strings.ContainsAny(opts.BSONImport, "\"` \t\n") {
		return nil, fmt.Errorf("invalid import path %q", opts.BSONImport)
	}

	data := templateData{
		Header:     Header(opts.Source),
		Package:    opts.Package,
		BSONImport: opts.BSONImport,
		Codes:      codes,
		Named:      firstPerValue(codes),
	}

	values := make(map[string]int64, len(codes))
	for _, c := range codes {
		if _, ok := values[c.Name]; !ok {
			values[c.Name] = c.Code
		}
	}
	for _, cls := range classes {
		data.Classes = append(data.Classes, classView{
			Name:    cls.Name,
			Members: distinctMembers(cls.Codes, values),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return out, nil
}

// EmitDefinitions canonicalizes defs.Codes and emits the result.
func EmitDefinitions(defs *ir.Definitions, opts Options) ([]byte, error) {
	if opts.Source == "" {
		opts.Source = defs.Source
	}
	return Emit(ir.Canonicalize(defs.Codes), defs.Classes, opts)
}

func firstPerValue(codes []ir.ErrorCode) []ir.ErrorCode {
	seen := make(map[int64]bool, len(codes))
	out := make([]ir.ErrorCode, 0, len(codes))
	for _, c := range codes {
		if seen[c.Code] {
			continue
		}
		seen[c.Code] = true
		out = append(out, c)
	}
	return out
}

// distinctMembers drops repeated names and names whose value an earlier
// member already covers. Unknown names are kept as written.
func distinctMembers(names []string, values map[string]int64) []string {
	seenName := make(map[string]bool, len(names))
	seenValue := make(map[int64]bool, len(names))
	var out []string
	for _, name := range names {
		if seenName[name] {
			continue
		}
		seenName[name] = true
		if v, ok := values[name]; ok {
			if seenValue[v] {
				continue
			}
			seenValue[v] = true
		}
		out = append(out, name)
	}
	return out
}
