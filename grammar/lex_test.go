package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerCompiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.grammar")
	defer teardown()
	//
	l, err := Lexer()
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.grammar")
	defer teardown()
	//
	for i, test := range []struct {
		input  string
		expect []Token
	}{
		{input: "", expect: []Token{}},
		{input: "  \n\t ", expect: []Token{}},
		{input: "5", expect: []Token{{Number, "5"}}},
		{input: "5f[>]", expect: []Token{
			{Number, "5"}, {Operator, "f"}, {Operator, "["}, {Operator, ">"}, {Operator, "]"},
		}},
		{input: "3(p)3", expect: []Token{
			{Number, "3"}, {Operator, "("}, {Operator, "p"}, {Operator, ")3"},
		}},
		{input: "(p)", expect: []Token{{Operator, "("}, {Operator, "p"}, {Operator, ")"}}},
		{input: "12 34", expect: []Token{{Number, "12"}, {Number, "34"}}},
		{input: `"a b"o`, expect: []Token{{String, `"a b"`}, {Operator, "o"}}},
		{input: `"a"1"b"`, expect: []Token{{String, `"a"1"b"`}}},
		{input: `"open`, expect: []Token{
			{String, `"`}, {Operator, "o"}, {Operator, "p"}, {Operator, "e"}, {Operator, "n"},
		}},
		{input: "\v", expect: []Token{{Operator, "\v"}}},
		{input: "p\v \r\n", expect: []Token{{Operator, "p"}, {Operator, "\v"}}},
		{input: "∞+", expect: []Token{{Operator, "∞"}, {Operator, "+"}}},
		{input: "1→2", expect: []Token{{Number, "1"}, {Operator, "→"}, {Number, "2"}}},
	} {
		tokens, err := Tokenize(test.input)
		require.NoError(t, err, "test %d", i)
		assert.Equal(t, test.expect, tokens, "test %d: input %q", i, test.input)
	}
}

func TestTokenRepeatCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.grammar")
	defer teardown()
	//
	assert.Equal(t, "12", Token{Operator, ")12"}.RepeatCount())
	assert.Equal(t, "1", Token{Operator, ")"}.RepeatCount())
	assert.Equal(t, "1", Token{Number, "12"}.RepeatCount())
	assert.Equal(t, ')', Token{Operator, ")12"}.Symbol())
	assert.Equal(t, '∞', Token{Operator, "∞"}.Symbol())
}
