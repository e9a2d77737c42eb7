package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"cuelang.org/go/cue/token"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNewline
	tokIdent
	tokInt
	tokString
	tokLParen
	tokRParen
	tokLBrack
	tokRBrack
	tokLBrace
	tokRBrace
	tokComma
	tokAssign
	tokColon
	tokSemicolon
	tokMinus
	tokPlus
)

var tokenNames = map[tokenKind]string{
	tokEOF:       "end of file",
	tokNewline:   "newline",
	tokIdent:     "identifier",
	tokInt:       "integer",
	tokString:    "string",
	tokLParen:    "'('",
	tokRParen:    "')'",
	tokLBrack:    "'['",
	tokRBrack:    "']'",
	tokLBrace:    "'{'",
	tokRBrace:    "'}'",
	tokComma:     "','",
	tokAssign:    "'='",
	tokColon:     "':'",
	tokSemicolon: "';'",
	tokMinus:     "'-'",
	tokPlus:      "'+'",
}

var punctuation = map[byte]tokenKind{
	'(': tokLParen,
	')': tokRParen,
	'[': tokLBrack,
	']': tokRBrack,
	'{': tokLBrace,
	'}': tokRBrace,
	',': tokComma,
	'=': tokAssign,
	':': tokColon,
	';': tokSemicolon,
	'-': tokMinus,
	'+': tokPlus,
}

func (k tokenKind) String() string {
	return tokenNames[k]
}

// lexToken is one scanned token. For strings, text holds the decoded value;
// for everything else it holds the source text.
type lexToken struct {
	kind   tokenKind
	text   string
	offset int
}

// lexer scans the Python-call subset definitions files are written in.
// Newlines inside brackets are whitespace, as in Python's implicit line
// joining; at bracket depth zero they end a statement.
type lexer struct {
	file  *token.File
	src   []byte
	off   int
	depth int
}

func newLexer(filename string, src []byte) *lexer {
	file := token.NewFile(filename, 0, len(src))
	file.SetLinesForContent(src)
	return &lexer{file: file, src: src}
}

func (l *lexer) pos(offset int) token.Pos {
	return l.file.Pos(offset, token.NoRelPos)
}

func (l *lexer) errorf(offset int, format string, args ...any) error {
	return &SyntaxError{Code: CodeSyntax, Message: fmt.Sprintf(format, args...), Pos: l.pos(offset)}
}

func (l *lexer) peekByte(n int) byte {
	if l.off+n < len(l.src) {
		return l.src[l.off+n]
	}
	return 0
}

// skip consumes whitespace, comments, line continuations and, inside
// brackets, newlines.
func (l *lexer) skip() error {
	for l.off < len(l.src) {
		switch c := l.src[l.off]; c {
		case ' ', '\t', '\r', '\f':
			l.off++
		case '#':
			for l.off < len(l.src) && l.src[l.off] != '\n' {
				l.off++
			}
		case '\\':
			next := l.peekByte(1)
			switch {
			case next == '\n':
				l.off += 2
			case next == '\r' && l.peekByte(2) == '\n':
				l.off += 3
			default:
				return l.errorf(l.off, "unexpected character after line continuation")
			}
		case '\n':
			if l.depth == 0 {
				return nil
			}
			l.off++
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) next() (lexToken, error) {
	if err := l.skip(); err != nil {
		return lexToken{}, err
	}
	start := l.off
	if l.off >= len(l.src) {
		return lexToken{kind: tokEOF, offset: start}, nil
	}

	c := l.src[l.off]
	switch c {
	case '\n':
		l.off++
		return lexToken{kind: tokNewline, text: "\n", offset: start}, nil
	case '(', '[', '{':
		l.depth++
	case ')', ']', '}':
		if l.depth > 0 {
			l.depth--
		}
	case '"', '\'':
		return l.scanString()
	}
	if kind, ok := punctuation[c]; ok {
		l.off++
		return lexToken{kind: kind, text: string(c), offset: start}, nil
	}

	if c >= '0' && c <= '9' {
		return l.scanNumber()
	}

	r, _ := utf8.DecodeRune(l.src[l.off:])
	if r == '_' || unicode.IsLetter(r) {
		for l.off < len(l.src) {
			r, size := utf8.DecodeRune(l.src[l.off:])
			if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				break
			}
			l.off += size
		}
		return lexToken{kind: tokIdent, text: string(l.src[start:l.off]), offset: start}, nil
	}

	return lexToken{}, l.errorf(start, "invalid character %q", r)
}

func (l *lexer) scanNumber() (lexToken, error) {
	start := l.off
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			l.off++
			continue
		}
		break
	}
	if l.off < len(l.src) && l.src[l.off] == '.' {
		return lexToken{}, l.errorf(start, "float literals are not supported")
	}

	lit := string(l.src[start:l.off])
	// Python rejects leading zeros on decimal literals; strconv would
	// silently read them as octal.
	if len(lit) > 1 && lit[0] == '0' && strings.Trim(lit, "0_") != "" &&
		!strings.ContainsAny(lit[1:2], "xXoObB") {
		return lexToken{}, l.errorf(start, "invalid integer literal %q: leading zeros are not permitted", lit)
	}
	if _, err := strconv.ParseInt(lit, 0, 64); err != nil {
		return lexToken{}, l.errorf(start, "invalid integer literal %q", lit)
	}
	return lexToken{kind: tokInt, text: lit, offset: start}, nil
}

func (l *lexer) scanString() (lexToken, error) {
	start := l.off
	quote := l.src[l.off]
	l.off++

	var sb strings.Builder
	for {
		if l.off >= len(l.src) || l.src[l.off] == '\n' {
			return lexToken{}, l.errorf(start, "unterminated string literal")
		}
		c := l.src[l.off]
		if c == quote {
			l.off++
			return lexToken{kind: tokString, text: sb.String(), offset: start}, nil
		}
		if c != '\\' {
			sb.WriteByte(c)
			l.off++
			continue
		}
		if err := l.scanEscape(&sb); err != nil {
			return lexToken{}, err
		}
	}
}

// scanEscape decodes one backslash escape. Unknown escapes keep the
// backslash, as Python does.
func (l *lexer) scanEscape(sb *strings.Builder) error {
	escStart := l.off
	l.off++ // backslash
	if l.off >= len(l.src) {
		return l.errorf(escStart, "unterminated string literal")
	}
	c := l.src[l.off]
	l.off++
	switch c {
	case '\n':
		// Line continuation inside a string.
	case '\\', '\'', '"':
		sb.WriteByte(c)
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case '0':
		sb.WriteByte(0)
	case 'x', 'u', 'U':
		width := 2
		switch c {
		case 'u':
			width = 4
		case 'U':
			width = 8
		}
		if l.off+width > len(l.src) {
			return l.errorf(escStart, "truncated \\%c escape", c)
		}
		n, err := strconv.ParseUint(string(l.src[l.off:l.off+width]), 16, 32)
		if err != nil || n > unicode.MaxRune {
			return l.errorf(escStart, "invalid \\%c escape", c)
		}
		sb.WriteRune(rune(n))
		l.off += width
	default:
		sb.WriteByte('\\')
		sb.WriteByte(c)
	}
	return nil
}
