package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []lexToken {
	t.Helper()
	lx := newLexer("test.err", []byte(src))
	var toks []lexToken
	for {
		tok, err := lx.next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks
		}
	}
}

func kinds(toks []lexToken) []tokenKind {
	out := make([]tokenKind, len(toks))
	for i, tok := range toks {
		out[i] = tok.kind
	}
	return out
}

func TestLexerCall(t *testing.T) {
	toks := scanAll(t, `error_code("Foo", 1)`)

	assert.Equal(t, []tokenKind{
		tokIdent, tokLParen, tokString, tokComma, tokInt, tokRParen, tokEOF,
	}, kinds(toks))
	assert.Equal(t, "error_code", toks[0].text)
	assert.Equal(t, "Foo", toks[2].text)
	assert.Equal(t, "1", toks[4].text)
}

func TestLexerSkipsComments(t *testing.T) {
	toks := scanAll(t, "# header\nerror_code('A', 1) # trailing\n")

	assert.Equal(t, []tokenKind{
		tokNewline, tokIdent, tokLParen, tokString, tokComma, tokInt, tokRParen, tokNewline, tokEOF,
	}, kinds(toks))
}

func TestLexerJoinsLinesInsideBrackets(t *testing.T) {
	toks := scanAll(t, "error_class('Net', [\n  'A',\n  'B',\n])\n")

	assert.Equal(t, []tokenKind{
		tokIdent, tokLParen, tokString, tokComma, tokLBrack,
		tokString, tokComma, tokString, tokComma, tokRBrack, tokRParen,
		tokNewline, tokEOF,
	}, kinds(toks))
}

func TestLexerLineContinuation(t *testing.T) {
	toks := scanAll(t, "error_code \\\n('A', 1)")

	assert.Equal(t, []tokenKind{
		tokIdent, tokLParen, tokString, tokComma, tokInt, tokRParen, tokEOF,
	}, kinds(toks))
}

func TestLexerStringEscapes(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`"plain"`, "plain"},
		{`'single'`, "single"},
		{`"it\'s"`, "it's"},
		{`"tab\there"`, "tab\there"},
		{`"nl\n"`, "nl\n"},
		{`"\x41é"`, "Aé"},
		{`"\u00e9t\u00e9"`, "\u00e9t\u00e9"},
		{`"\U0001F600"`, "\U0001F600"},
		{`"back\\slash"`, `back\slash`},
		{`"keep\d"`, `keep\d`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := scanAll(t, tt.src)
			require.Equal(t, tokString, toks[0].kind)
			assert.Equal(t, tt.expected, toks[0].text)
		})
	}
}

func TestLexerIntegers(t *testing.T) {
	for _, src := range []string{"0", "00", "42", "1_000", "0x1F", "0o17", "0b101"} {
		t.Run(src, func(t *testing.T) {
			toks := scanAll(t, src)
			assert.Equal(t, tokInt, toks[0].kind)
			assert.Equal(t, src, toks[0].text)
		})
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
	}{
		{"unterminated string", `"abc`, "unterminated string"},
		{"string across newline", "\"abc\ndef\"", "unterminated string"},
		{"float", "1.5", "float literals are not supported"},
		{"leading zero", "017", "leading zeros"},
		{"bad integer", "12abc", "invalid integer literal"},
		{"invalid character", "error_code.x", "invalid character"},
		{"bad continuation", "\\ x", "line continuation"},
		{"truncated escape", `"\u12`, "escape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx := newLexer("test.err", []byte(tt.src))
			var err error
			for i := 0; i < 10 && err == nil; i++ {
				var tok lexToken
				tok, err = lx.next()
				if tok.kind == tokEOF && err == nil {
					break
				}
			}
			require.Error(t, err)
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, CodeSyntax, syntaxErr.Code)
			assert.Contains(t, syntaxErr.Message, tt.message)
		})
	}
}

func TestLexerPositions(t *testing.T) {
	lx := newLexer("defs.err", []byte("\n\n  error_code"))
	tok, err := lx.next()
	require.NoError(t, err)
	require.Equal(t, tokNewline, tok.kind)
	_, err = lx.next()
	require.NoError(t, err)
	tok, err = lx.next()
	require.NoError(t, err)

	pos := lx.pos(tok.offset)
	assert.Equal(t, "defs.err", pos.Filename())
	assert.Equal(t, 3, pos.Line())
	assert.Equal(t, 3, pos.Column())
}
