package eval

import "github.com/conneroisu/lispy/internal/value"

// tailStep asks the trampoline in Evaluate to continue with a new
// (expr, env) pair instead of recursing, implementing tail-call
// elimination for if-branches, begin's last form, and a Lambda try
// handler. Lambda application and macro expansion continue the loop
// directly in evaluateLoop without a tailStep.
type tailStep struct {
	expr value.Value
	env  *value.Environment
}

var specialForms = map[value.Symbol]bool{
	"quote":    true,
	"if":       true,
	"define":   true,
	"defined?": true,
	"set!":     true,
	"lambda":   true,
	"macro":    true,
	"begin":    true,
	"try":      true,
}

// evalSpecial dispatches one of the nine special forms named in spec.md
// §4.C. Callers must already know sym is a key of specialForms. It
// returns exactly one of: a final result, a tail step to continue the
// trampoline with, or an error.
func evalSpecial(sym value.Symbol, rest []value.Value, env *value.Environment) (value.Value, *tailStep, error) {
	switch sym {
	case "quote":
		return evalQuote(rest)
	case "if":
		return evalIf(rest, env)
	case "define":
		return evalDefine(rest, env)
	case "defined?":
		return evalDefinedP(rest, env)
	case "set!":
		return evalSetBang(rest, env)
	case "lambda":
		return evalLambda(rest, env)
	case "macro":
		return evalMacro(rest, env)
	case "begin":
		return evalBegin(rest, env)
	case "try":
		return evalTry(rest, env)
	default:
		return nil, nil, newInvalidOperation(value.Symbol(sym))
	}
}

func evalQuote(rest []value.Value) (value.Value, *tailStep, error) {
	if len(rest) != 1 {
		return nil, nil, newInvalidArgument("quote expects exactly 1 operand")
	}

	return rest[0], nil, nil
}

func evalIf(rest []value.Value, env *value.Environment) (value.Value, *tailStep, error) {
	if len(rest) < 2 || len(rest) > 3 {
		return nil, nil, newParserError(&ifArityError{})
	}

	cond, err := Evaluate(rest[0], env)
	if err != nil {
		return nil, nil, err
	}

	if value.Truthy(cond) {
		return nil, &tailStep{rest[1], env}, nil
	}
	if len(rest) == 3 {
		return nil, &tailStep{rest[2], env}, nil
	}

	return value.Nil{}, nil, nil
}

// ifArityError backs the ParserError spec.md §9 mandates for a malformed
// if form: fewer than two operands (e.g. "(if)" or "(if c)"), or more
// than three. It is raised when the form is evaluated, not when it is read.
type ifArityError struct{}

func (*ifArityError) Error() string { return "if requires 2 or 3 operands: (if cond then [else])" }

func evalDefine(rest []value.Value, env *value.Environment) (value.Value, *tailStep, error) {
	if len(rest) != 2 {
		return nil, nil, newInvalidArgument("define expects (define name expr)")
	}

	name, err := nameOperand(rest[0])
	if err != nil {
		return nil, nil, err
	}

	val, err := Evaluate(rest[1], env)
	if err != nil {
		return nil, nil, err
	}

	env.Define(name, val)

	return val, nil, nil
}

func evalDefinedP(rest []value.Value, env *value.Environment) (value.Value, *tailStep, error) {
	if len(rest) != 1 {
		return nil, nil, newInvalidArgument("defined? expects exactly 1 operand")
	}

	name, err := nameOperand(rest[0])
	if err != nil {
		return nil, nil, err
	}

	return value.Bool(env.Present(name)), nil, nil
}

func evalSetBang(rest []value.Value, env *value.Environment) (value.Value, *tailStep, error) {
	if len(rest) != 2 {
		return nil, nil, newInvalidArgument("set! expects (set! name expr)")
	}

	name, err := nameOperand(rest[0])
	if err != nil {
		return nil, nil, err
	}

	val, err := Evaluate(rest[1], env)
	if err != nil {
		return nil, nil, err
	}

	if err := env.Set(name, val); err != nil {
		return nil, nil, newKeyNotFound(name, env)
	}

	return val, nil, nil
}

func evalLambda(rest []value.Value, env *value.Environment) (value.Value, *tailStep, error) {
	if len(rest) != 2 {
		return nil, nil, newInvalidArgument("lambda expects (lambda params body)")
	}

	params, err := parseParams(rest[0])
	if err != nil {
		return nil, nil, err
	}

	return &value.Lambda{Params: params, Body: rest[1], Env: env}, nil, nil
}

func evalMacro(rest []value.Value, env *value.Environment) (value.Value, *tailStep, error) {
	if len(rest) != 2 {
		return nil, nil, newInvalidArgument("macro expects (macro params body)")
	}

	params, err := parseParams(rest[0])
	if err != nil {
		return nil, nil, err
	}

	return &value.Macro{Params: params, Body: rest[1], Env: env}, nil, nil
}

func evalBegin(rest []value.Value, env *value.Environment) (value.Value, *tailStep, error) {
	if len(rest) == 0 {
		return value.Nil{}, nil, nil
	}

	for _, sub := range rest[:len(rest)-1] {
		if _, err := Evaluate(sub, env); err != nil {
			return nil, nil, err
		}
	}

	return nil, &tailStep{rest[len(rest)-1], env}, nil
}

func evalTry(rest []value.Value, env *value.Environment) (value.Value, *tailStep, error) {
	if len(rest) != 2 {
		return nil, nil, newInvalidArgument("try expects (try expr handler)")
	}

	result, err := Evaluate(rest[0], env)
	if err == nil {
		return result, nil, nil
	}

	evalErr, ok := err.(*EvalError)
	if !ok {
		return nil, nil, err
	}

	handler, herr := Evaluate(rest[1], env)
	if herr != nil {
		return nil, nil, herr
	}

	switch h := handler.(type) {
	case *value.Lambda:
		childEnv := value.NewEnvironment(h.Env)
		bindParams(h.Params, []value.Value{evalErr.Payload}, childEnv)

		return nil, &tailStep{h.Body, childEnv}, nil
	case *value.Procedure:
		res, aerr := h.Fn([]value.Value{evalErr.Payload})

		return res, nil, aerr
	case *value.SpecialProcedure:
		res, aerr := h.Fn([]value.Value{evalErr.Payload}, env)

		return res, nil, aerr
	default:
		return nil, nil, newInvalidArgument("try's handler must be callable")
	}
}
