package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/lispy/internal/value"
)

func TestSliceClampsOutOfRangeIndices(t *testing.T) {
	env := stdEnv()
	result := run(t, env, "(slice (list 1 2 3 4 5) -10 2)")
	require.True(t, value.Equal(value.NewList(value.Number(1), value.Number(2)), result))

	result2 := run(t, env, "(slice (list 1 2 3) 1)")
	require.True(t, value.Equal(value.NewList(value.Number(2), value.Number(3)), result2))
}

func TestMapAppliesProcedureElementwise(t *testing.T) {
	env := stdEnv()
	src := `(map (lambda (x) (* x x)) (list 1 2 3))`
	result := run(t, env, src)
	require.True(t, value.Equal(value.NewList(value.Number(1), value.Number(4), value.Number(9)), result))
}

func TestEachVisitsEveryElement(t *testing.T) {
	env := stdEnv()
	src := `
	(begin
	  (define total 0)
	  (each (lambda (x) (set! total (+ total x))) (list 1 2 3))
	  total)`
	require.Equal(t, value.Number(6), run(t, env, src))
}

func TestReduceFoldsWithSeed(t *testing.T) {
	env := stdEnv()
	result := run(t, env, "(reduce + 0 (list 1 2 3 4))")
	require.Equal(t, value.Number(10), result)
}

func TestIndexAndLastOnLists(t *testing.T) {
	env := stdEnv()
	require.Equal(t, value.Number(2), run(t, env, "(index (list 1 2 3) 1)"))
	require.Equal(t, value.Number(3), run(t, env, "(last (list 1 2 3))"))
}

func TestLengthAcrossKinds(t *testing.T) {
	env := stdEnv()
	require.Equal(t, value.Number(3), run(t, env, `(length "abc")`))
	require.Equal(t, value.Number(2), run(t, env, "(length (list 1 2))"))
	require.Equal(t, value.Number(2), run(t, env, "(length {1 2})"))
}

func TestTypePredicates(t *testing.T) {
	env := stdEnv()
	require.Equal(t, value.Bool(true), run(t, env, "(list? (list 1))"))
	require.Equal(t, value.Bool(true), run(t, env, "(null? (list))"))
	require.Equal(t, value.Bool(true), run(t, env, "(null? nil)"))
	require.Equal(t, value.Bool(false), run(t, env, "(null? 0)"))
	require.Equal(t, value.Bool(true), run(t, env, "(number? 5)"))
	require.Equal(t, value.Bool(true), run(t, env, "(symbol? (quote x))"))
	require.Equal(t, value.Bool(true), run(t, env, "(procedure? +)"))
	require.Equal(t, value.Bool(true), run(t, env, "(lambda? (lambda () 1))"))
	require.Equal(t, value.Bool(true), run(t, env, "(macro? when)"))
	require.Equal(t, value.Bool(true), run(t, env, "(env? (env:current))"))
}

func TestTypeofReturnsFixedTagSet(t *testing.T) {
	env := stdEnv()
	require.Equal(t, value.Symbol("number"), run(t, env, "(typeof 1)"))
	require.Equal(t, value.Symbol("string"), run(t, env, `(typeof "x")`))
	require.Equal(t, value.Symbol("list"), run(t, env, "(typeof (list))"))
	require.Equal(t, value.Symbol("nil"), run(t, env, "(typeof nil)"))
}

func TestToStringRespectsWithQuotes(t *testing.T) {
	env := stdEnv()
	require.Equal(t, value.String("hi"), run(t, env, `(to_string "hi")`))
	require.Equal(t, value.String(`"hi"`), run(t, env, `(to_string "hi" true)`))
}

func TestAndOrEagerEvaluation(t *testing.T) {
	env := stdEnv()
	require.Equal(t, value.Number(3), run(t, env, "(and 1 2 3)"))
	require.Equal(t, value.Bool(false), run(t, env, "(and 1 false 3)"))
	require.Equal(t, value.Number(1), run(t, env, "(or 1 2)"))
	require.Equal(t, value.Number(2), run(t, env, "(or false 2)"))
}

func TestDictRoundTrip(t *testing.T) {
	env := stdEnv()
	src := `
	(begin
	  (define d (dict:new))
	  (dict:set d "a" 1)
	  (dict:get d "a"))`
	require.Equal(t, value.Number(1), run(t, env, src))
}

func TestDictKeyPAndKeys(t *testing.T) {
	env := stdEnv()
	src := `
	(begin
	  (define d (dict:new))
	  (dict:set d "a" 1)
	  (dict:key? d "a"))`
	require.Equal(t, value.Bool(true), run(t, env, src))
	require.True(t, value.Equal(value.NewList(value.String("a")), run(t, env, "(dict:keys d)")))

	srcMissing := `(dict:key? (dict:new) "missing")`
	require.Equal(t, value.Bool(false), run(t, env, srcMissing))
}

func TestEnvKeysAndParentChain(t *testing.T) {
	env := stdEnv()
	src := `
	(begin
	  (define root (env:new))
	  (env:define root "x" 1)
	  (define child (env:new root))
	  (env:define child "y" 2)
	  (env:parent? child))`
	require.Equal(t, value.Bool(true), run(t, env, src))
	require.True(t, value.Equal(value.NewList(value.Symbol("y"), value.Symbol("x")), run(t, env, "(env:keys child)")))
	require.Equal(t, value.Bool(false), run(t, env, "(env:parent? (env:new))"))
}

func TestErrorAccessors(t *testing.T) {
	env := stdEnv()
	src := `(define e (error:custom (quote Boom) "bad"))`
	run(t, env, src)
	require.Equal(t, value.Symbol("Boom"), run(t, env, "(error:name e)"))
	require.Equal(t, value.String("bad"), run(t, env, "(error:message e)"))
	require.Equal(t, value.Nil{}, run(t, env, "(error:stack e)"))
	require.Equal(t, value.Nil{}, run(t, env, "(error:code e)"))
}

func TestInspectSurfacesEnvironmentId(t *testing.T) {
	env := stdEnv()
	run(t, env, "(define f (lambda (x) x))")
	result := run(t, env, "(inspect f)")
	s, ok := result.(value.String)
	require.True(t, ok)
	require.Contains(t, string(s), "lambda")
	require.Contains(t, string(s), env.String())
}

func TestLambdaIntrospection(t *testing.T) {
	env := stdEnv()
	run(t, env, "(define f (lambda (x y) (+ x y)))")
	args := run(t, env, "(lambda:args f)")
	require.True(t, value.Equal(value.NewList(value.Symbol("x"), value.Symbol("y")), args))

	evalFn := run(t, env, "(lambda:evaluator f)")
	proc, ok := evalFn.(*value.Procedure)
	require.True(t, ok)
	result, err := ApplyValue(proc, []value.Value{value.Number(2), value.Number(3)})
	require.NoError(t, err)
	require.Equal(t, value.Number(5), result)
}

func TestKernelDebugToggle(t *testing.T) {
	env := stdEnv()
	before := Debug()
	run(t, env, "(kernel:debug true)")
	require.True(t, Debug())
	run(t, env, "(kernel:debug false)")
	require.False(t, Debug())
	SetDebug(before)
}
