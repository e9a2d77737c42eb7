package compiler

import (
	"fmt"
	gotoken "go/token"
	"strconv"

	"cuelang.org/go/cue/token"

	"github.com/roach88/errcodegen/internal/ir"
)

// The only two callables a definitions file can reach.
const (
	FuncErrorCode  = "error_code"
	FuncErrorClass = "error_class"
)

// Literal identifiers. Everything else in value position is a
// CapabilityError.
var constants = map[string]ir.Value{
	"True":  ir.Bool(true),
	"False": ir.Bool(false),
	"None":  ir.Null{},
}

// literal is a parsed value plus the positions diagnostics need.
type literal struct {
	value   ir.Value
	pos     token.Pos
	elemPos []token.Pos // List elements
}

// argument is one call argument; name is empty for positional arguments.
type argument struct {
	name    string
	namePos token.Pos
	lit     literal
}

type parser struct {
	lx   *lexer
	tok  lexToken
	defs *ir.Definitions
}

// Parse compiles definitions source into records, in declaration order.
// It performs no cross-reference validation; see Validate.
func Parse(filename string, src []byte) (*ir.Definitions, error) {
	p := &parser{
		lx:   newLexer(filename, src),
		defs: &ir.Definitions{Source: filename},
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.parseFile(); err != nil {
		return nil, err
	}
	return p.defs, nil
}

func (p *parser) advance() error {
	tok, err := p.lx.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) pos() token.Pos {
	return p.lx.pos(p.tok.offset)
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Code: CodeSyntax, Message: fmt.Sprintf(format, args...), Pos: p.pos()}
}

func errorAt(pos token.Pos, format string, args ...any) error {
	return &SyntaxError{Code: CodeSyntax, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func (p *parser) describe() string {
	switch p.tok.kind {
	case tokIdent, tokInt:
		return fmt.Sprintf("%s %s", p.tok.kind, p.tok.text)
	case tokString:
		return fmt.Sprintf("string %q", p.tok.text)
	}
	return p.tok.kind.String()
}

func (p *parser) expect(kind tokenKind) error {
	if p.tok.kind != kind {
		return p.errorf("expected %s, found %s", kind, p.describe())
	}
	return p.advance()
}

// parseFile parses statements until EOF. Each statement is one call,
// terminated by a newline, a semicolon or the end of the file.
func (p *parser) parseFile() error {
	for {
		switch p.tok.kind {
		case tokEOF:
			return nil
		case tokNewline, tokSemicolon:
			if err := p.advance(); err != nil {
				return err
			}
			continue
		}

		if err := p.parseStatement(); err != nil {
			return err
		}

		switch p.tok.kind {
		case tokEOF:
		case tokNewline, tokSemicolon:
			if err := p.advance(); err != nil {
				return err
			}
		default:
			return p.errorf("expected end of statement, found %s", p.describe())
		}
	}
}

func (p *parser) parseStatement() error {
	if p.tok.kind != tokIdent {
		return p.errorf("expected %s(...) or %s(...), found %s", FuncErrorCode, FuncErrorClass, p.describe())
	}
	name, namePos := p.tok.text, p.pos()
	if name != FuncErrorCode && name != FuncErrorClass {
		if _, ok := constants[name]; ok {
			return p.errorf("expected %s(...) or %s(...), found %s", FuncErrorCode, FuncErrorClass, name)
		}
		return &CapabilityError{Name: name, Pos: namePos}
	}
	if err := p.advance(); err != nil {
		return err
	}

	args, err := p.parseArgs(name)
	if err != nil {
		return err
	}

	if name == FuncErrorCode {
		return p.bindErrorCode(namePos, args)
	}
	return p.bindErrorClass(namePos, args)
}

// parseArgs parses "(" [ arg { "," arg } [ "," ] ] ")".
func (p *parser) parseArgs(fn string) ([]argument, error) {
	if err := p.expect(tokLParen); err != nil {
		return nil, err
	}

	var args []argument
	seenKeyword := false
	for p.tok.kind != tokRParen {
		var arg argument
		if p.tok.kind == tokIdent {
			// Either a keyword argument or a bare identifier value.
			identTok := p.tok
			identPos := p.pos()
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.tok.kind == tokAssign {
				if err := p.advance(); err != nil {
					return nil, err
				}
				arg.name, arg.namePos = identTok.text, identPos
				lit, err := p.parseLiteral()
				if err != nil {
					return nil, err
				}
				arg.lit = lit
			} else {
				lit, err := p.identValue(identTok.text, identPos)
				if err != nil {
					return nil, err
				}
				arg.lit = lit
			}
		} else {
			lit, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			arg.lit = lit
		}

		if arg.name != "" {
			seenKeyword = true
		} else if seenKeyword {
			return nil, errorAt(arg.lit.pos, "positional argument follows keyword argument in %s(...)", fn)
		}
		args = append(args, arg)

		if p.tok.kind == tokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if p.tok.kind != tokRParen {
			return nil, p.errorf("expected ',' or ')' in %s(...), found %s", fn, p.describe())
		}
	}
	return args, p.advance()
}

// identValue resolves a bare identifier in value position.
func (p *parser) identValue(name string, pos token.Pos) (literal, error) {
	if v, ok := constants[name]; ok {
		return literal{value: v, pos: pos}, nil
	}
	if name == FuncErrorCode || name == FuncErrorClass {
		return literal{}, errorAt(pos, "%s can only be called as a statement", name)
	}
	return literal{}, &CapabilityError{Name: name, Pos: pos}
}

// parseLiteral parses a value: strings (adjacent ones concatenate),
// optionally signed integers, True/False/None, lists, tuples and dicts.
func (p *parser) parseLiteral() (literal, error) {
	pos := p.pos()
	switch p.tok.kind {
	case tokString:
		s := p.tok.text
		if err := p.advance(); err != nil {
			return literal{}, err
		}
		for p.tok.kind == tokString {
			s += p.tok.text
			if err := p.advance(); err != nil {
				return literal{}, err
			}
		}
		return literal{value: ir.String(s), pos: pos}, nil

	case tokMinus, tokPlus, tokInt:
		sign := ""
		if p.tok.kind != tokInt {
			if p.tok.kind == tokMinus {
				sign = "-"
			}
			if err := p.advance(); err != nil {
				return literal{}, err
			}
			if p.tok.kind != tokInt {
				return literal{}, p.errorf("expected integer after sign, found %s", p.describe())
			}
		}
		n, err := strconv.ParseInt(sign+p.tok.text, 0, 64)
		if err != nil {
			return literal{}, errorAt(pos, "integer literal %s%s out of range", sign, p.tok.text)
		}
		if err := p.advance(); err != nil {
			return literal{}, err
		}
		return literal{value: ir.Int(n), pos: pos}, nil

	case tokIdent:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return literal{}, err
		}
		return p.identValue(name, pos)

	case tokLBrack:
		return p.parseSequence(tokRBrack, pos)

	case tokLParen:
		return p.parseSequence(tokRParen, pos)

	case tokLBrace:
		return p.parseDict(pos)
	}
	return literal{}, p.errorf("expected a literal value, found %s", p.describe())
}

// parseSequence parses the remainder of a list or tuple literal. A
// parenthesized single value without a trailing comma is just that value.
func (p *parser) parseSequence(closer tokenKind, pos token.Pos) (literal, error) {
	if err := p.advance(); err != nil {
		return literal{}, err
	}
	out := literal{pos: pos}
	list := ir.List{}
	var last literal
	sawComma := false
	for p.tok.kind != closer {
		elem, err := p.parseLiteral()
		if err != nil {
			return literal{}, err
		}
		list = append(list, elem.value)
		out.elemPos = append(out.elemPos, elem.pos)
		last = elem

		if p.tok.kind == tokComma {
			sawComma = true
			if err := p.advance(); err != nil {
				return literal{}, err
			}
			continue
		}
		if p.tok.kind != closer {
			return literal{}, p.errorf("expected ',' or %s, found %s", closer, p.describe())
		}
	}
	if err := p.advance(); err != nil {
		return literal{}, err
	}
	if closer == tokRParen && len(list) == 1 && !sawComma {
		return last, nil
	}
	out.value = list
	return out, nil
}

// parseDict parses the remainder of a dict literal. Keys must be strings.
func (p *parser) parseDict(pos token.Pos) (literal, error) {
	if err := p.advance(); err != nil {
		return literal{}, err
	}
	dict := ir.Dict{}
	for p.tok.kind != tokRBrace {
		keyPos := p.pos()
		key, err := p.parseLiteral()
		if err != nil {
			return literal{}, err
		}
		k, ok := key.value.(ir.String)
		if !ok {
			return literal{}, errorAt(keyPos, "dict keys must be strings, found %s", ir.FormatValue(key.value))
		}
		if err := p.expect(tokColon); err != nil {
			return literal{}, err
		}
		val, err := p.parseLiteral()
		if err != nil {
			return literal{}, err
		}
		dict[string(k)] = val.value

		if p.tok.kind == tokComma {
			if err := p.advance(); err != nil {
				return literal{}, err
			}
			continue
		}
		if p.tok.kind != tokRBrace {
			return literal{}, p.errorf("expected ',' or '}', found %s", p.describe())
		}
	}
	return literal{value: dict, pos: pos}, p.advance()
}

// bindArgs matches arguments to parameter names the way a Python call
// does. Parameters after required are optional.
func bindArgs(fn string, callPos token.Pos, params []string, required int, allowKeywords bool, args []argument) (map[string]literal, error) {
	bound := make(map[string]literal, len(params))
	positional := 0
	for _, arg := range args {
		if arg.name == "" {
			positional++
		}
	}
	if positional > len(params) {
		return nil, errorAt(callPos, "%s() takes %s but %d were given", fn, arity(required, len(params)), positional)
	}

	i := 0
	for _, arg := range args {
		if arg.name == "" {
			bound[params[i]] = arg.lit
			i++
			continue
		}
		if !allowKeywords {
			return nil, errorAt(arg.namePos, "%s() takes no keyword arguments", fn)
		}
		known := false
		for _, param := range params {
			if param == arg.name {
				known = true
				break
			}
		}
		if !known {
			return nil, errorAt(arg.namePos, "%s() got an unexpected keyword argument %q", fn, arg.name)
		}
		if _, dup := bound[arg.name]; dup {
			return nil, errorAt(arg.namePos, "%s() got multiple values for argument %q", fn, arg.name)
		}
		bound[arg.name] = arg.lit
	}

	for _, param := range params[:required] {
		if _, ok := bound[param]; !ok {
			return nil, errorAt(callPos, "%s() missing required argument %q", fn, param)
		}
	}
	return bound, nil
}

func arity(required, total int) string {
	if required == total {
		return fmt.Sprintf("%d positional arguments", total)
	}
	return fmt.Sprintf("from %d to %d positional arguments", required, total)
}

// identifierArg checks that a name argument is a string usable as a Go
// identifier, since it becomes a constant or part of a function name.
func identifierArg(fn, param string, lit literal) (string, error) {
	s, ok := lit.value.(ir.String)
	if !ok {
		return "", errorAt(lit.pos, "%s() argument %q must be a string, found %s", fn, param, ir.FormatValue(lit.value))
	}
	if !gotoken.IsIdentifier(string(s)) || s == "_" {
		return "", errorAt(lit.pos, "%s() argument %q must be a valid identifier, found %q", fn, param, string(s))
	}
	return string(s), nil
}

func (p *parser) bindErrorCode(callPos token.Pos, args []argument) error {
	bound, err := bindArgs(FuncErrorCode, callPos, []string{"name", "code", "extra"}, 2, true, args)
	if err != nil {
		return err
	}

	name, err := identifierArg(FuncErrorCode, "name", bound["name"])
	if err != nil {
		return err
	}
	codeLit := bound["code"]
	code, ok := codeLit.value.(ir.Int)
	if !ok {
		return errorAt(codeLit.pos, "%s() argument \"code\" must be an integer, found %s", FuncErrorCode, ir.FormatValue(codeLit.value))
	}

	var extra ir.Value
	if lit, ok := bound["extra"]; ok {
		if _, isNull := lit.value.(ir.Null); !isNull {
			extra = lit.value
		}
	}

	p.defs.Codes = append(p.defs.Codes, ir.ErrorCode{
		Name:  name,
		Code:  int64(code),
		Extra: extra,
		Pos:   callPos,
	})
	return nil
}

func (p *parser) bindErrorClass(callPos token.Pos, args []argument) error {
	bound, err := bindArgs(FuncErrorClass, callPos, []string{"name", "codes"}, 2, false, args)
	if err != nil {
		return err
	}

	name, err := identifierArg(FuncErrorClass, "name", bound["name"])
	if err != nil {
		return err
	}

	codesLit := bound["codes"]
	list, ok := codesLit.value.(ir.List)
	if !ok {
		return errorAt(codesLit.pos, "%s() argument \"codes\" must be a list of code names, found %s", FuncErrorClass, ir.FormatValue(codesLit.value))
	}
	codes := make([]string, len(list))
	for i, elem := range list {
		s, ok := elem.(ir.String)
		if !ok {
			return errorAt(codesLit.elemPos[i], "%s() code names must be strings, found %s", FuncErrorClass, ir.FormatValue(elem))
		}
		codes[i] = string(s)
	}

	p.defs.Classes = append(p.defs.Classes, ir.ErrorClass{
		Name:    name,
		Codes:   codes,
		Pos:     callPos,
		CodePos: codesLit.elemPos,
	})
	return nil
}
