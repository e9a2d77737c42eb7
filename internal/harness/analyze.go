package harness

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
)

// Analyze parses generated source and recovers its behaviour. It
// understands the shapes the emitter produces; anything else is an error.
func Analyze(src []byte) (*Generated, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "errorgen.go", src, 0)
	if err != nil {
		return nil, fmt.Errorf("generated source does not parse: %w", err)
	}

	g := &Generated{
		Package:    file.Name.Name,
		Names:      make(map[int64]string),
		Predicates: make(map[string][]string),
	}

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			if len(vs.Names) != 1 || len(vs.Values) != 1 {
				return nil, fmt.Errorf("const %s: expected one name and one value", vs.Names[0].Name)
			}
			v, err := evalInt(vs.Values[0])
			if err != nil {
				return nil, fmt.Errorf("const %s: %w", vs.Names[0].Name, err)
			}
			g.Constants = append(g.Constants, Constant{Name: vs.Names[0].Name, Value: v})
		}
	}

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		switch {
		case fn.Recv != nil && fn.Name.Name == "String":
			if err := g.analyzeString(fn); err != nil {
				return nil, err
			}
		case fn.Recv != nil && fn.Name.Name == "ErrMessage":
			g.ReplyFields = replyFields(fn)
		case fn.Recv == nil && strings.HasPrefix(fn.Name.Name, "Is"):
			g.Predicates[strings.TrimPrefix(fn.Name.Name, "Is")] = caseNames(fn)
		}
	}
	return g, nil
}

func evalInt(expr ast.Expr) (int64, error) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.INT {
			return 0, fmt.Errorf("unexpected literal %s", e.Value)
		}
		return strconv.ParseInt(e.Value, 0, 64)
	case *ast.UnaryExpr:
		if e.Op != token.SUB {
			return 0, fmt.Errorf("unexpected operator %s", e.Op)
		}
		v, err := evalInt(e.X)
		return -v, err
	case *ast.ParenExpr:
		return evalInt(e.X)
	}
	return 0, fmt.Errorf("unexpected expression %T", expr)
}

func (g *Generated) analyzeString(fn *ast.FuncDecl) error {
	sw := findSwitch(fn.Body)
	if sw == nil {
		return fmt.Errorf("String: no switch statement")
	}
	for _, stmt := range sw.Body.List {
		clause := stmt.(*ast.CaseClause)
		if clause.List == nil {
			g.PanicsOnUnknown = callsPanic(clause.Body)
			continue
		}
		name, err := returnedString(clause.Body)
		if err != nil {
			return fmt.Errorf("String: %w", err)
		}
		for _, expr := range clause.List {
			ident, ok := expr.(*ast.Ident)
			if !ok {
				return fmt.Errorf("String: case %T is not a constant", expr)
			}
			v, ok := g.Value(ident.Name)
			if !ok {
				return fmt.Errorf("String: case %s is not a declared constant", ident.Name)
			}
			g.Names[v] = name
		}
	}
	return nil
}

func findSwitch(body *ast.BlockStmt) *ast.SwitchStmt {
	for _, stmt := range body.List {
		if sw, ok := stmt.(*ast.SwitchStmt); ok {
			return sw
		}
	}
	return nil
}

func callsPanic(body []ast.Stmt) bool {
	for _, stmt := range body {
		expr, ok := stmt.(*ast.ExprStmt)
		if !ok {
			continue
		}
		if call, ok := expr.X.(*ast.CallExpr); ok {
			if ident, ok := call.Fun.(*ast.Ident); ok && ident.Name == "panic" {
				return true
			}
		}
	}
	return false
}

func returnedString(body []ast.Stmt) (string, error) {
	for _, stmt := range body {
		ret, ok := stmt.(*ast.ReturnStmt)
		if !ok || len(ret.Results) != 1 {
			continue
		}
		if lit, ok := ret.Results[0].(*ast.BasicLit); ok && lit.Kind == token.STRING {
			return strconv.Unquote(lit.Value)
		}
	}
	return "", fmt.Errorf("case does not return a string literal")
}

// replyFields collects the Key of every element of the returned document.
func replyFields(fn *ast.FuncDecl) []string {
	var keys []string
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		kv, ok := n.(*ast.KeyValueExpr)
		if !ok {
			return true
		}
		if ident, ok := kv.Key.(*ast.Ident); ok && ident.Name == "Key" {
			if lit, ok := kv.Value.(*ast.BasicLit); ok && lit.Kind == token.STRING {
				if key, err := strconv.Unquote(lit.Value); err == nil {
					keys = append(keys, key)
				}
			}
		}
		return true
	})
	return keys
}

// caseNames collects the constants listed in a predicate's switch.
func caseNames(fn *ast.FuncDecl) []string {
	names := []string{}
	sw := findSwitch(fn.Body)
	if sw == nil {
		return names
	}
	for _, stmt := range sw.Body.List {
		for _, expr := range stmt.(*ast.CaseClause).List {
			if ident, ok := expr.(*ast.Ident); ok {
				names = append(names, ident.Name)
			}
		}
	}
	return names
}
