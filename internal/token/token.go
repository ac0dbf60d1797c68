// Package token defines the lexical tokens produced by the Lispy lexer.
//
// Tokens are deliberately opaque: punctuation and string literals are
// classified by Kind, and everything else (numeric atoms, symbols, and the
// quote prefix) is carried as an undifferentiated ATOM Literal for the
// reader to classify.
// This mirrors the "stream of tokens between lexer and reader" split used
// throughout the corpus, but keeps the token set small because Lispy's
// surface grammar has far fewer lexical categories than a language like
// Nix: there are no keywords at the lexer level at all.
package token

import "fmt"

// Kind classifies a single token.
type Kind int

const (
	// ILLEGAL marks a token the lexer could not classify (unterminated string).
	ILLEGAL Kind = iota
	// EOF marks the end of the token stream.
	EOF
	// LPAREN is "(".
	LPAREN
	// RPAREN is ")".
	RPAREN
	// LBRACKET is "[".
	LBRACKET
	// RBRACKET is "]".
	RBRACKET
	// LBRACE is "{".
	LBRACE
	// RBRACE is "}".
	RBRACE
	// STRING is a quoted string literal, including its surrounding quotes.
	STRING
	// ATOM is any other run of non-whitespace, non-separator characters:
	// numbers, symbols, and a quote-prefixed atom ('name).
	ATOM
)

var kindNames = map[Kind]string{
	ILLEGAL:  "ILLEGAL",
	EOF:      "EOF",
	LPAREN:   "LPAREN",
	RPAREN:   "RPAREN",
	LBRACKET: "LBRACKET",
	RBRACKET: "RBRACKET",
	LBRACE:   "LBRACE",
	RBRACE:   "RBRACE",
	STRING:   "STRING",
	ATOM:     "ATOM",
}

// String implements fmt.Stringer for Kind, used in error messages and debug dumps.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical unit with its source position.
type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Column  int
}

// String renders a token for debug traces.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Literal, t.Line, t.Column)
}
