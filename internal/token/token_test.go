package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindStringKnownValues(t *testing.T) {
	require.Equal(t, "LPAREN", LPAREN.String())
	require.Equal(t, "ATOM", ATOM.String())
}

func TestKindStringUnknownFallsBackToNumeric(t *testing.T) {
	require.Equal(t, "Kind(99)", Kind(99).String())
}

func TestTokenStringIncludesPosition(t *testing.T) {
	tok := Token{Kind: ATOM, Literal: "x", Line: 2, Column: 3}
	require.Equal(t, `ATOM("x")@2:3`, tok.String())
}
