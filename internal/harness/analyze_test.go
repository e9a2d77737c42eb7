package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handWritten = `package demo

type ErrorCode int

const (
	Neg  ErrorCode = -2
	Hex  ErrorCode = 0x10
	Also ErrorCode = 0x10
)

func (c ErrorCode) String() string {
	switch c {
	case Neg:
		return "Neg"
	case Hex:
		return "Hex"
	default:
		panic("unknown ErrorCode")
	}
}

func (c ErrorCode) ErrMessage(msg string) D {
	return D{{Key: "a", Value: 1}, {Key: "b", Value: msg}}
}

func IsOdd(e ErrorCode) bool {
	switch e {
	case Neg, Hex:
		return true
	}
	return false
}

func IsNone(e ErrorCode) bool {
	return false
}
`

func TestAnalyze(t *testing.T) {
	g, err := Analyze([]byte(handWritten))
	require.NoError(t, err)

	assert.Equal(t, "demo", g.Package)
	assert.Equal(t, []Constant{{"Neg", -2}, {"Hex", 16}, {"Also", 16}}, g.Constants)
	assert.Equal(t, map[int64]string{-2: "Neg", 16: "Hex"}, g.Names)
	assert.True(t, g.PanicsOnUnknown)
	assert.Equal(t, []string{"a", "b"}, g.ReplyFields)
	assert.Equal(t, []string{"Neg", "Hex"}, g.Predicates["Odd"])
	assert.Empty(t, g.Predicates["None"])
}

func TestGeneratedEvaluation(t *testing.T) {
	g, err := Analyze([]byte(handWritten))
	require.NoError(t, err)

	name, ok := g.NameOf(16)
	assert.True(t, ok)
	assert.Equal(t, "Hex", name)

	_, ok = g.NameOf(3)
	assert.False(t, ok)

	is, found := g.InClass("Odd", 16)
	assert.True(t, found)
	assert.True(t, is, "Also shares a value with Hex")

	is, found = g.InClass("None", 16)
	assert.True(t, found)
	assert.False(t, is)

	_, found = g.InClass("Missing", 16)
	assert.False(t, found)
}

func TestAnalyzeRejects(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
	}{
		{"not go", "package", "does not parse"},
		{"computed const", "package p\nconst A = 1 << 2\n", "unexpected expression"},
		{"string const", "package p\nconst A = \"x\"\n", "unexpected literal"},
		{"unknown case", "package p\ntype E int\nfunc (c E) String() string {\n\tswitch c {\n\tcase B:\n\t\treturn \"B\"\n\t}\n\treturn \"\"\n}\n", "not a declared constant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
