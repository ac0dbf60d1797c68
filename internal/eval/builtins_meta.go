package eval

import (
	"fmt"

	"github.com/conneroisu/lispy/internal/reader"
	"github.com/conneroisu/lispy/internal/value"
)

// metaEval is a SpecialProcedure only so it can default to the caller's
// environment when invoked with a single argument; given two it evaluates
// in the explicitly supplied Environment instead.
func metaEval(args []value.Value, callerEnv *value.Environment) (value.Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, newInvalidArgument("eval expects (eval expr [env])")
	}

	target := callerEnv
	if len(args) == 2 {
		e, err := asEnv("eval", args[1])
		if err != nil {
			return nil, err
		}
		target = e
	}

	return Evaluate(args[0], target)
}

func builtinParse(args []value.Value) (value.Value, error) {
	if err := checkArity("parse", args, 1); err != nil {
		return nil, err
	}
	src, ok := args[0].(value.String)
	if !ok {
		return nil, newInvalidArgument("parse expects a String argument")
	}

	expr, err := reader.Read(string(src))
	if err != nil {
		return nil, newParserError(err)
	}

	return expr, nil
}

func builtinInspect(args []value.Value) (value.Value, error) {
	if err := checkArity("inspect", args, 1); err != nil {
		return nil, err
	}

	return value.String(inspect(args[0])), nil
}

// inspect is grounded in the teacher's debug-string style (%T/%+v dumps
// throughout pkg/eval), extended to surface a closure's captured
// environment id so a REPL user can tell otherwise-identical closures
// apart.
func inspect(v value.Value) string {
	switch t := v.(type) {
	case *value.Lambda:
		return fmt.Sprintf("<lambda %s in %s>", t.Params, t.Env)
	case *value.Macro:
		return fmt.Sprintf("<macro %s in %s>", t.Params, t.Env)
	case *value.Environment:
		return t.Dump()
	case *value.Error:
		return fmt.Sprintf("<error %s: %s>", value.ToString(t.Name, false), t.Message)
	default:
		return value.ToString(v, true)
	}
}

func builtinLambdaNew(args []value.Value) (value.Value, error) {
	if err := checkArity("lambda:new", args, 3); err != nil {
		return nil, err
	}
	params, err := parseParams(args[0])
	if err != nil {
		return nil, err
	}
	env, err := asEnv("lambda:new", args[2])
	if err != nil {
		return nil, err
	}

	return &value.Lambda{Params: params, Body: args[1], Env: env}, nil
}

func asLambda(who string, v value.Value) (*value.Lambda, error) {
	l, ok := v.(*value.Lambda)
	if !ok {
		return nil, newInvalidArgument(who + " expects a Lambda argument")
	}

	return l, nil
}

func builtinLambdaArgs(args []value.Value) (value.Value, error) {
	if err := checkArity("lambda:args", args, 1); err != nil {
		return nil, err
	}
	l, err := asLambda("lambda:args", args[0])
	if err != nil {
		return nil, err
	}

	return paramsToValue(l.Params), nil
}

func builtinLambdaBody(args []value.Value) (value.Value, error) {
	if err := checkArity("lambda:body", args, 1); err != nil {
		return nil, err
	}
	l, err := asLambda("lambda:body", args[0])
	if err != nil {
		return nil, err
	}

	return l.Body, nil
}

func builtinLambdaEnv(args []value.Value) (value.Value, error) {
	if err := checkArity("lambda:env", args, 1); err != nil {
		return nil, err
	}
	l, err := asLambda("lambda:env", args[0])
	if err != nil {
		return nil, err
	}

	return l.Env, nil
}

// builtinLambdaEvaluator returns a Procedure closing over l that binds its
// arguments to l's params and evaluates l's body — the
// escape hatch a self-hosted dynamic evaluator uses to re-invoke a
// closure's body under its own dispatch rules (spec.md §4.F).
func builtinLambdaEvaluator(args []value.Value) (value.Value, error) {
	if err := checkArity("lambda:evaluator", args, 1); err != nil {
		return nil, err
	}
	l, err := asLambda("lambda:evaluator", args[0])
	if err != nil {
		return nil, err
	}

	return value.NewProcedure("lambda:evaluator/"+l.Params.String(), func(callArgs []value.Value) (value.Value, error) {
		childEnv := value.NewEnvironment(l.Env)
		bindParams(l.Params, callArgs, childEnv)

		return Evaluate(l.Body, childEnv)
	}), nil
}

func builtinMacroNew(args []value.Value) (value.Value, error) {
	if err := checkArity("macro:new", args, 3); err != nil {
		return nil, err
	}
	params, err := parseParams(args[0])
	if err != nil {
		return nil, err
	}
	env, err := asEnv("macro:new", args[2])
	if err != nil {
		return nil, err
	}

	return &value.Macro{Params: params, Body: args[1], Env: env}, nil
}

func asMacro(who string, v value.Value) (*value.Macro, error) {
	m, ok := v.(*value.Macro)
	if !ok {
		return nil, newInvalidArgument(who + " expects a Macro argument")
	}

	return m, nil
}

func builtinMacroArgs(args []value.Value) (value.Value, error) {
	if err := checkArity("macro:args", args, 1); err != nil {
		return nil, err
	}
	m, err := asMacro("macro:args", args[0])
	if err != nil {
		return nil, err
	}

	return paramsToValue(m.Params), nil
}

func builtinMacroBody(args []value.Value) (value.Value, error) {
	if err := checkArity("macro:body", args, 1); err != nil {
		return nil, err
	}
	m, err := asMacro("macro:body", args[0])
	if err != nil {
		return nil, err
	}

	return m.Body, nil
}

func builtinMacroEnv(args []value.Value) (value.Value, error) {
	if err := checkArity("macro:env", args, 1); err != nil {
		return nil, err
	}
	m, err := asMacro("macro:env", args[0])
	if err != nil {
		return nil, err
	}

	return m.Env, nil
}

func builtinMacroEvaluator(args []value.Value) (value.Value, error) {
	if err := checkArity("macro:evaluator", args, 1); err != nil {
		return nil, err
	}
	m, err := asMacro("macro:evaluator", args[0])
	if err != nil {
		return nil, err
	}

	return value.NewProcedure("macro:evaluator/"+m.Params.String(), func(callArgs []value.Value) (value.Value, error) {
		childEnv := value.NewEnvironment(m.Env)
		bindParams(m.Params, callArgs, childEnv)

		return Evaluate(m.Body, childEnv)
	}), nil
}

func paramsToValue(p value.Params) value.Value {
	if p.IsRest {
		return p.Rest
	}
	elems := make([]value.Value, len(p.Positional))
	for i, s := range p.Positional {
		elems[i] = s
	}

	return value.NewList(elems...)
}
