// Package reader turns a Lispy token stream into an expression tree
// (a value.Value), following spec.md §4.B. The reader is the only place
// that decides what an atom token denotes: a number, a string, a quote
// form, or a plain symbol.
package reader

import (
	"strconv"
	"strings"

	"github.com/conneroisu/lispy/internal/lexer"
	"github.com/conneroisu/lispy/internal/token"
	"github.com/conneroisu/lispy/internal/value"
)

// Error reports a malformed read: a missing closing delimiter or an empty
// token stream where a form was expected. The parse built-in reports it
// as an Error value tagged ParserError (spec.md §7).
type Error struct {
	Reason string
	Line   int
	Column int
}

func (e *Error) Error() string {
	return "parse error at " + strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Column) + ": " + e.Reason
}

// Reader consumes a lexer's token stream and produces value.Value forms.
type Reader struct {
	lex  *lexer.Lexer
	cur  token.Token
	peek token.Token
}

// New creates a Reader over the given source text.
func New(source string) *Reader {
	r := &Reader{lex: lexer.New(source)}
	r.advance()
	r.advance()

	return r
}

func (r *Reader) advance() {
	r.cur = r.peek
	r.peek = r.lex.NextToken()
}

// Read parses exactly one top-level form from the input and returns it.
// An input that is only whitespace/comments yields value.Nil{}, per
// spec.md §9's resolution of the "empty program" open question.
func Read(source string) (value.Value, error) {
	r := New(source)
	if r.cur.Kind == token.EOF {
		return value.Nil{}, nil
	}

	form, err := r.readForm()
	if err != nil {
		return nil, err
	}

	return form, nil
}

// readForm reads a single form starting at r.cur, leaving r.cur positioned
// just past the form on return.
func (r *Reader) readForm() (value.Value, error) {
	switch r.cur.Kind {
	case token.EOF:
		return nil, &Error{Reason: "unexpected end of input, expected a form", Line: r.cur.Line, Column: r.cur.Column}

	case token.LPAREN:
		elems, err := r.readElements(token.RPAREN)
		if err != nil {
			return nil, err
		}

		return value.NewList(elems...), nil

	case token.LBRACKET:
		elems, err := r.readElements(token.RBRACKET)
		if err != nil {
			return nil, err
		}

		return value.NewList(append([]value.Value{value.Symbol("list")}, elems...)...), nil

	case token.LBRACE:
		elems, err := r.readElements(token.RBRACE)
		if err != nil {
			return nil, err
		}

		return value.NewList(append([]value.Value{value.Symbol("tuple")}, elems...)...), nil

	case token.RPAREN, token.RBRACKET, token.RBRACE:
		return nil, &Error{Reason: "unexpected '" + r.cur.Literal + "'", Line: r.cur.Line, Column: r.cur.Column}

	case token.STRING:
		s := unescapeString(r.cur.Literal)
		r.advance()

		return value.String(s), nil

	case token.ILLEGAL:
		return nil, &Error{Reason: "unterminated string literal", Line: r.cur.Line, Column: r.cur.Column}

	default: // token.ATOM
		return r.readAtom()
	}
}

// readElements reads the inner forms of a bracketed construct ("(...)",
// "[...]", "{...}"), consuming both the opening delimiter (already current)
// and the matching closing delimiter.
func (r *Reader) readElements(closing token.Kind) ([]value.Value, error) {
	openLine, openCol := r.cur.Line, r.cur.Column
	r.advance()

	return r.readElementsUntil(closing, openLine, openCol)
}

func (r *Reader) readElementsUntil(closing token.Kind, openLine, openCol int) ([]value.Value, error) {
	var elems []value.Value

	for {
		if r.cur.Kind == token.EOF {
			return nil, &Error{
				Reason: "missing closing delimiter for form opened at " +
					strconv.Itoa(openLine) + ":" + strconv.Itoa(openCol),
				Line: r.cur.Line, Column: r.cur.Column,
			}
		}
		if r.cur.Kind == closing {
			r.advance()

			return elems, nil
		}

		form, err := r.readForm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, form)
	}
}

// readAtom classifies and consumes a single ATOM token: the quote prefix,
// a quote-prefixed atom, a number, or a plain symbol.
func (r *Reader) readAtom() (value.Value, error) {
	lit := r.cur.Literal

	if lit == "'" {
		r.advance()

		inner, err := r.readForm()
		if err != nil {
			return nil, err
		}

		return value.NewList(value.Symbol("quote"), inner), nil
	}

	if strings.HasPrefix(lit, "'") {
		r.advance()
		name := lit[1:]

		return value.NewList(value.Symbol("quote"), atomValue(name)), nil
	}

	r.advance()

	return atomValue(lit), nil
}

// atomValue classifies a bare (non-quoted) atom token per spec.md's numeric
// rule: a token beginning with a digit, or "-" followed by a digit, is a
// Number; everything else is a Symbol.
func atomValue(lit string) value.Value {
	if isNumeric(lit) {
		f, err := strconv.ParseFloat(lit, 64)
		if err == nil {
			return value.Number(f)
		}
	}

	return value.Symbol(lit)
}

func isNumeric(lit string) bool {
	if lit == "" {
		return false
	}
	if lit[0] >= '0' && lit[0] <= '9' {
		return true
	}

	return lit[0] == '-' && len(lit) > 1 && lit[1] >= '0' && lit[1] <= '9'
}

// unescapeString strips the surrounding quotes from a STRING token's
// literal and resolves backslash escapes per spec.md §4.B: recognized
// escapes are \t \v \0 \b \f \n \r \' \" \\; any other \X becomes X.
func unescapeString(lit string) string {
	inner := lit
	if len(inner) >= 2 && inner[0] == '"' && inner[len(inner)-1] == '"' {
		inner = inner[1 : len(inner)-1]
	}

	var b strings.Builder
	b.Grow(len(inner))

	for i := 0; i < len(inner); i++ {
		ch := inner[i]
		if ch != '\\' || i == len(inner)-1 {
			b.WriteByte(ch)

			continue
		}
		i++
		next := inner[i]
		switch next {
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(next)
		}
	}

	return b.String()
}
