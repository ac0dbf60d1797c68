package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	require.False(t, Truthy(Bool(false)))
	require.True(t, Truthy(Bool(true)))
	require.True(t, Truthy(Nil{}))
	require.True(t, Truthy(Undefined{}))
	require.True(t, Truthy(Number(0)))
	require.True(t, Truthy(String("")))
}

func TestEqualSymbol(t *testing.T) {
	require.True(t, Equal(Symbol("x"), Symbol("x")))
	require.False(t, Equal(Symbol("x"), Symbol("y")))
}

func TestEqualListElementwise(t *testing.T) {
	a := NewList(Number(1), NewList(Number(2), Number(3)))
	b := NewList(Number(1), NewList(Number(2), Number(3)))
	require.True(t, Equal(a, b))
	require.False(t, StrictEqual(a, b))
}

func TestEqualTupleElementwise(t *testing.T) {
	a := NewTuple(Number(1), String("x"))
	b := NewTuple(Number(1), String("x"))
	require.True(t, Equal(a, b))
}

func TestEqualDictByKeyValue(t *testing.T) {
	a := NewDict()
	a.Set("x", Number(1))
	b := NewDict()
	b.Set("x", Number(1))
	require.True(t, Equal(a, b))

	b.Set("y", Number(2))
	require.False(t, Equal(a, b))
}

func TestStrictEqualIdentity(t *testing.T) {
	l := NewList(Number(1))
	require.True(t, StrictEqual(l, l))
	require.False(t, StrictEqual(l, NewList(Number(1))))
}

func TestDictMemberGet(t *testing.T) {
	d := NewDict()
	d.Set("x", Number(1))

	v, err := d.MemberGet("x")
	require.NoError(t, err)
	require.Equal(t, Number(1), v)

	_, err = d.MemberGet("missing")
	require.Error(t, err)

	var knf *KeyNotFoundError
	require.ErrorAs(t, err, &knf)
}

func TestToStringQuoting(t *testing.T) {
	require.Equal(t, "hi", ToString(String("hi"), false))
	require.Equal(t, `"hi"`, ToString(String("hi"), true))
	require.Equal(t, "nil", ToString(Nil{}, false))
	require.Equal(t, "undefined", ToString(Undefined{}, false))
}

func TestToStringListUsesBrackets(t *testing.T) {
	l := NewList(Number(1), Number(2))
	require.Equal(t, "[1 2]", ToString(l, false))
}

func TestToStringTupleUsesBraces(t *testing.T) {
	tup := NewTuple(Number(1), Number(2))
	require.Equal(t, "{1 2}", ToString(tup, false))
}

func TestTypeSymbol(t *testing.T) {
	require.Equal(t, Symbol("number"), TypeSymbol(Number(1)))
	require.Equal(t, Symbol("nil"), TypeSymbol(Nil{}))
	require.Equal(t, Symbol("list"), TypeSymbol(NewList()))
	require.Equal(t, Symbol("object"), TypeSymbol(NewTuple()))
	require.Equal(t, Symbol("object"), TypeSymbol(NewDict()))
}

func TestListStringUsesParens(t *testing.T) {
	l := NewList(Symbol("a"), Symbol("b"))
	require.Equal(t, "(a b)", l.String())
}

func TestParamsString(t *testing.T) {
	rest := Params{IsRest: true, Rest: Symbol("args")}
	require.Equal(t, "args", rest.String())

	positional := Params{Positional: []Symbol{"x", "y"}}
	require.Equal(t, "(x y)", positional.String())
}
