package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", String("hello"), `"hello"`},
		{"int", Int(-42), `-42`},
		{"bool", Bool(true), `true`},
		{"null", Null{}, `null`},
		{"empty object", Object{}, `{}`},
		{"empty array", Array{}, `[]`},
		{"go string", "plain", `"plain"`},
		{"go map", map[string]any{"b": int64(1), "a": nil}, `{"a":null,"b":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalCanonical(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestMarshalCanonicalSortsNestedKeys(t *testing.T) {
	obj := Object{
		"z": Object{"y": Int(1), "x": Int(2)},
		"a": Array{Object{"d": Int(1), "c": Int(2)}},
	}
	got, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a":[{"c":2,"d":1}],"z":{"x":2,"y":1}}`, string(got))
}

func TestMarshalCanonicalNoHTMLEscape(t *testing.T) {
	got, err := MarshalCanonical(String("<a & b>"))
	require.NoError(t, err)
	assert.Equal(t, `"<a & b>"`, string(got))
}

func TestMarshalCanonicalRejectsFloats(t *testing.T) {
	_, err := MarshalCanonical(map[string]any{"price": 1.5})
	require.Error(t, err)
}

func TestMarshalCanonicalNFC(t *testing.T) {
	// "e" + combining acute accent normalizes to the single code point U+00E9.
	decomposed, err := MarshalCanonical(String("cafe\u0301"))
	require.NoError(t, err)
	composed, err := MarshalCanonical(String("caf\u00e9"))
	require.NoError(t, err)
	assert.Equal(t, composed, decomposed)
}

func TestMarshalCanonicalLineSeparatorsNotEscaped(t *testing.T) {
	got, err := MarshalCanonical(String("a\u2028b\u2029c"))
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\u2029c\"", string(got))
}

func TestMarshalCanonicalLiteralBackslashU2028(t *testing.T) {
	got, err := MarshalCanonical(String(`x\u2028`))
	require.NoError(t, err)
	assert.Equal(t, `"x\\u2028"`, string(got))
}

func TestMarshalCanonicalControlCharsEscaped(t *testing.T) {
	got, err := MarshalCanonical(String("tab\tquote\"slash\\"))
	require.NoError(t, err)
	assert.Equal(t, `"tab\tquote\"slash\\"`, string(got))
}

func TestMarshalCanonicalIdempotent(t *testing.T) {
	obj := Object{"b": Array{Int(1), Null{}}, "a": String("x")}
	first, err := MarshalCanonical(obj)
	require.NoError(t, err)

	reparsed, err := Parse(first)
	require.NoError(t, err)
	second, err := MarshalCanonical(reparsed)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
