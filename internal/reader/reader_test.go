package reader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/lispy/internal/value"
)

func mustRead(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := Read(src)
	require.NoError(t, err)

	return v
}

func TestReadAtoms(t *testing.T) {
	require.Equal(t, value.Number(42), mustRead(t, "42"))
	require.Equal(t, value.Number(-3.5), mustRead(t, "-3.5"))
	require.Equal(t, value.Symbol("foo-bar?"), mustRead(t, "foo-bar?"))
}

func TestReadString(t *testing.T) {
	require.Equal(t, value.String("a\nb\t\"c\""), mustRead(t, `"a\nb\t\"c\""`))
}

func TestReadList(t *testing.T) {
	got := mustRead(t, "(+ 1 2)")
	want := value.NewList(value.Symbol("+"), value.Number(1), value.Number(2))
	require.True(t, value.Equal(want, got))
}

func TestReadBracketSugar(t *testing.T) {
	got := mustRead(t, "[1 2 3]")
	want := value.NewList(value.Symbol("list"), value.Number(1), value.Number(2), value.Number(3))
	require.True(t, value.Equal(want, got))
}

func TestReadBraceSugar(t *testing.T) {
	got := mustRead(t, "{1 2}")
	want := value.NewList(value.Symbol("tuple"), value.Number(1), value.Number(2))
	require.True(t, value.Equal(want, got))
}

func TestReadQuote(t *testing.T) {
	got := mustRead(t, "'x")
	want := value.NewList(value.Symbol("quote"), value.Symbol("x"))
	require.True(t, value.Equal(want, got))

	got2 := mustRead(t, "'(1 2)")
	want2 := value.NewList(value.Symbol("quote"), value.NewList(value.Number(1), value.Number(2)))
	require.True(t, value.Equal(want2, got2))
}

func TestReadEmptyIsNil(t *testing.T) {
	got := mustRead(t, "   ;; just a comment\n")
	require.Equal(t, value.Nil{}, got)
}

func TestReadMissingCloseParen(t *testing.T) {
	_, err := Read("(+ 1 2")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
}

func TestReadUnexpectedCloseParen(t *testing.T) {
	_, err := Read(")")
	require.Error(t, err)
}

// TestRoundTrip checks spec.md §8's invariant: to_string(parse(s)) re-parses
// to a structurally equal tree, for the data subset (numbers, strings,
// symbols, lists, tuples).
func TestRoundTrip(t *testing.T) {
	sources := []string{
		"(1 2 3)",
		"(a b (c d))",
		`("x" "y")`,
		"{1 2 3}",
	}

	for _, src := range sources {
		first := mustRead(t, src)
		second := mustRead(t, first.String())
		if diff := cmp.Diff(describe(first), describe(second)); diff != "" {
			t.Errorf("round-trip mismatch for %q (-want +got):\n%s", src, diff)
		}
	}
}

// describe renders a Value into a comparable plain-Go shape for go-cmp,
// since value.Value implementations hold unexported fields.
func describe(v value.Value) any {
	switch t := v.(type) {
	case *value.List:
		elems := t.Elements()
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = describe(e)
		}

		return out
	case *value.Tuple:
		elems := t.Elements()
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = describe(e)
		}

		return map[string]any{"tuple": out}
	default:
		return v.String()
	}
}
