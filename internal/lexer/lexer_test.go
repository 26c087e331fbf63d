package lexer

import (
	"testing"

	"github.com/loxlang/golox/internal/diagnostics"
	"github.com/loxlang/golox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, source string) ([]token.Token, *diagnostics.Sink) {
	t.Helper()
	errs := diagnostics.NewSink()
	toks := New(source, errs).ScanTokens()
	return toks, errs
}

func TestPunctuationAndOperators(t *testing.T) {
	toks, errs := scanAll(t, "(){},.-+;*!!====<=<>=>/")
	require.False(t, errs.HadError())

	want := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG, token.BANG_EQUAL, token.EQUAL_EQUAL, token.EQUAL,
		token.LESS_EQUAL, token.LESS, token.GREATER_EQUAL, token.GREATER,
		token.SLASH, token.EOF,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, toks[i].Type, "token %d", i)
	}
}

func TestLineCommentIsSkipped(t *testing.T) {
	toks, errs := scanAll(t, "1 // this is a comment\n2")
	require.False(t, errs.HadError())
	require.Len(t, toks, 3) // NUMBER, NUMBER, EOF
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, 1.0, toks[0].Literal)
	assert.Equal(t, 2.0, toks[1].Literal)
	assert.Equal(t, 2, toks[1].Line)
}

func TestStringLiteral(t *testing.T) {
	toks, errs := scanAll(t, `"hello there"`)
	require.False(t, errs.HadError())
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "hello there", toks[0].Literal)
}

func TestUnterminatedString(t *testing.T) {
	_, errs := scanAll(t, `"abc`)
	require.True(t, errs.HadError())
	assert.Contains(t, errs.Reports()[0].Message, "Unterminated string.")
}

func TestNumberLiteral(t *testing.T) {
	toks, errs := scanAll(t, "123 45.67")
	require.False(t, errs.HadError())
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.67, toks[1].Literal)
}

func TestTrailingDotWithoutDigitIsNotConsumed(t *testing.T) {
	// "1." should scan as NUMBER(1) then DOT, not as a single malformed number.
	toks, errs := scanAll(t, "1.")
	require.False(t, errs.HadError())
	require.Len(t, toks, 3)
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, 1.0, toks[0].Literal)
	assert.Equal(t, token.DOT, toks[1].Type)
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks, errs := scanAll(t, "var x = foo; class Bar {}")
	require.False(t, errs.HadError())

	want := []token.Type{
		token.VAR, token.IDENTIFIER, token.EQUAL, token.IDENTIFIER, token.SEMICOLON,
		token.CLASS, token.IDENTIFIER, token.LEFT_BRACE, token.RIGHT_BRACE, token.EOF,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, toks[i].Type, "token %d", i)
	}
}

func TestUnexpectedCharacterReportsAndContinues(t *testing.T) {
	toks, errs := scanAll(t, "1 @ 2")
	require.True(t, errs.HadError())
	assert.Contains(t, errs.Reports()[0].Message, "Unexpected character.")
	// scanning continues past the bad character
	require.Len(t, toks, 3)
	assert.Equal(t, 2.0, toks[1].Literal)
}

func TestLineTrackingAcrossNewlines(t *testing.T) {
	toks, _ := scanAll(t, "1\n2\n\n3")
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 4, toks[2].Line)
}
