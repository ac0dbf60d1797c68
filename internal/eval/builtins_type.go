package eval

import (
	"fmt"
	"strings"

	"github.com/conneroisu/lispy/internal/value"
)

func builtinListP(args []value.Value) (value.Value, error) {
	if err := checkArity("list?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(*value.List)

	return value.Bool(ok), nil
}

// builtinNullP reports "empty or absent": Nil, Undefined, or an empty
// List/Tuple/String/Dict.
func builtinNullP(args []value.Value) (value.Value, error) {
	if err := checkArity("null?", args, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case value.Nil:
		return value.Bool(true), nil
	case value.Undefined:
		return value.Bool(true), nil
	case *value.List:
		return value.Bool(v.Len() == 0), nil
	case *value.Tuple:
		return value.Bool(v.Len() == 0), nil
	case value.String:
		return value.Bool(len(v) == 0), nil
	case *value.Dict:
		return value.Bool(len(v.Keys()) == 0), nil
	default:
		return value.Bool(false), nil
	}
}

func builtinNumberP(args []value.Value) (value.Value, error) {
	if err := checkArity("number?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(value.Number)

	return value.Bool(ok), nil
}

func builtinProcedureP(args []value.Value) (value.Value, error) {
	if err := checkArity("procedure?", args, 1); err != nil {
		return nil, err
	}

	switch args[0].(type) {
	case *value.Procedure, *value.SpecialProcedure, *value.Lambda:
		return value.Bool(true), nil
	default:
		return value.Bool(false), nil
	}
}

func builtinSymbolP(args []value.Value) (value.Value, error) {
	if err := checkArity("symbol?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(value.Symbol)

	return value.Bool(ok), nil
}

func builtinLambdaP(args []value.Value) (value.Value, error) {
	if err := checkArity("lambda?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(*value.Lambda)

	return value.Bool(ok), nil
}

func builtinMacroP(args []value.Value) (value.Value, error) {
	if err := checkArity("macro?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(*value.Macro)

	return value.Bool(ok), nil
}

func builtinEnvP(args []value.Value) (value.Value, error) {
	if err := checkArity("env?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(*value.Environment)

	return value.Bool(ok), nil
}

func builtinTypeof(args []value.Value) (value.Value, error) {
	if err := checkArity("typeof", args, 1); err != nil {
		return nil, err
	}

	return value.TypeSymbol(args[0]), nil
}

// builtinToString implements to_s/to_string: an optional second argument
// (withquotes) controls whether String values render quoted.
func builtinToString(args []value.Value) (value.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, newInvalidArgument("to_string expects (value [withquotes])")
	}

	withQuotes := false
	if len(args) == 2 {
		withQuotes = value.Truthy(args[1])
	}

	return value.String(value.ToString(args[0], withQuotes)), nil
}

// builtinPrint space-joins the to_string of each argument and terminates
// with a newline, per spec.md §4.E.
func builtinPrint(args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.ToString(a, false)
	}
	fmt.Println(strings.Join(parts, " "))

	return value.Nil{}, nil
}

func builtinNot(args []value.Value) (value.Value, error) {
	if err := checkArity("not", args, 1); err != nil {
		return nil, err
	}

	return value.Bool(!value.Truthy(args[0])), nil
}

// builtinAnd is non-short-circuiting (it is a Procedure, so all args are
// already evaluated by the time it runs): returns the last argument if
// every argument is truthy, else the first falsy one found, Bool(true)
// for zero args.
func builtinAnd(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Bool(true), nil
	}

	var last value.Value = value.Bool(true)
	for _, a := range args {
		if !value.Truthy(a) {
			return a, nil
		}
		last = a
	}

	return last, nil
}

func builtinOr(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Bool(false), nil
	}

	for _, a := range args {
		if value.Truthy(a) {
			return a, nil
		}
	}

	return args[len(args)-1], nil
}

func checkArity(name string, args []value.Value, n int) error {
	if len(args) != n {
		return newInvalidArgument(fmt.Sprintf("%s expects exactly %d argument(s), got %d", name, n, len(args)))
	}

	return nil
}
