// Package eval implements the Lispy evaluator (spec.md §4.C): a
// trampolined tree-walker so that tail calls in the documented tail
// positions never grow the Go call stack, plus the standard procedure
// library special forms dispatch to.
package eval

import "github.com/conneroisu/lispy/internal/value"

// Evaluate reduces expr in env to a value, per spec.md §4.C. It is a thin
// tracing wrapper around evaluateLoop: every call here is one level of
// genuine (non-tail) recursion, so the indented debug trace lines up with
// the call depth a naive recursive evaluator would have had.
func Evaluate(expr value.Value, env *value.Environment) (value.Value, error) {
	depth := callDepth.Add(1) - 1
	defer callDepth.Add(-1)

	traceEval(depth, expr)

	result, err := evaluateLoop(expr, env)
	if err == nil {
		traceResult(depth, result)
	}

	return result, err
}

// evaluateLoop is the trampoline: a single Go frame that reassigns
// (expr, env) and loops instead of recursing whenever the next step is in
// a documented tail position. It never recurses into itself directly;
// only Evaluate does, and only for genuinely non-tail subexpressions.
func evaluateLoop(expr value.Value, env *value.Environment) (value.Value, error) {
	for {
		switch e := expr.(type) {
		case value.Symbol:
			v, err := env.Get(string(e))
			if err != nil {
				return nil, newKeyNotFound(string(e), env)
			}

			return v, nil

		case *value.List:
			if e.Len() == 0 {
				return e, nil
			}

			elems := e.Elements()
			head, rest := elems[0], elems[1:]

			if sym, ok := head.(value.Symbol); ok && specialForms[sym] {
				result, tail, err := evalSpecial(sym, rest, env)
				if err != nil {
					return nil, err
				}
				if tail != nil {
					expr, env = tail.expr, tail.env

					continue
				}

				return result, nil
			}

			proc, err := Evaluate(head, env)
			if err != nil {
				return nil, err
			}

			if macro, ok := proc.(*value.Macro); ok {
				childEnv := value.NewEnvironment(macro.Env)
				bindParams(macro.Params, rest, childEnv)

				expanded, err := Evaluate(macro.Body, childEnv)
				if err != nil {
					return nil, err
				}

				expr = expanded

				continue
			}

			args := make([]value.Value, len(rest))
			for i, a := range rest {
				v, err := Evaluate(a, env)
				if err != nil {
					return nil, err
				}
				args[i] = v
			}

			switch p := proc.(type) {
			case *value.Lambda:
				childEnv := value.NewEnvironment(p.Env)
				bindParams(p.Params, args, childEnv)
				expr, env = p.Body, childEnv

				continue
			case *value.SpecialProcedure:
				return p.Fn(args, env)
			case *value.Procedure:
				return p.Fn(args)
			case value.MemberCallable:
				return memberCall(p, args)
			default:
				return nil, newInvalidOperation(proc)
			}

		default:
			// Nil, Undefined, Bool, Number, String, Tuple, Dict, Lambda,
			// Macro, Procedure, SpecialProcedure, Environment, and Error
			// are all self-evaluating.
			return expr, nil
		}
	}
}
