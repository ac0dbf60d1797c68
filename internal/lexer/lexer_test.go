package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/lispy/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `(define x "a\nb") ;; comment
['y {1 2}]`

	tests := []struct {
		kind    token.Kind
		literal string
	}{
		{token.LPAREN, "("},
		{token.ATOM, "define"},
		{token.ATOM, "x"},
		{token.STRING, `"a\nb"`},
		{token.RPAREN, ")"},
		{token.LBRACKET, "["},
		{token.ATOM, "'y"},
		{token.LBRACE, "{"},
		{token.ATOM, "1"},
		{token.ATOM, "2"},
		{token.RBRACE, "}"},
		{token.RBRACKET, "]"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		require.Equalf(t, tt.kind, tok.Kind, "token %d", i)
		require.Equalf(t, tt.literal, tok.Literal, "token %d", i)
	}
}

func TestNegativeNumberAtom(t *testing.T) {
	l := New("-5 -x")
	require.Equal(t, "-5", l.NextToken().Literal)
	require.Equal(t, "-x", l.NextToken().Literal)
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`)
	tok := l.NextToken()
	require.Equal(t, token.ILLEGAL, tok.Kind)
}

func TestLoneQuoteToken(t *testing.T) {
	l := New("' x")
	require.Equal(t, "'", l.NextToken().Literal)
	require.Equal(t, "x", l.NextToken().Literal)
}

func TestLineComment(t *testing.T) {
	l := New(";; nothing but a comment\n42")
	tok := l.NextToken()
	require.Equal(t, "42", tok.Literal)
	require.Equal(t, 2, tok.Line)
}
