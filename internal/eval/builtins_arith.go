package eval

import "github.com/conneroisu/lispy/internal/value"

// builtinAdd implements variadic, left-folding "+": 0 arguments → 0, 1
// argument → itself, 2+ → left fold (spec.md §4.E).
func builtinAdd(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Number(0), nil
	}

	first, err := asNumber("+", args[0])
	if err != nil {
		return nil, err
	}
	acc := first

	for _, a := range args[1:] {
		n, err := asNumber("+", a)
		if err != nil {
			return nil, err
		}
		acc += n
	}

	return acc, nil
}

func builtinMul(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Number(1), nil
	}

	first, err := asNumber("*", args[0])
	if err != nil {
		return nil, err
	}
	acc := first

	for _, a := range args[1:] {
		n, err := asNumber("*", a)
		if err != nil {
			return nil, err
		}
		acc *= n
	}

	return acc, nil
}

// builtinSub implements "-": zero args raises InvalidArgument; one
// argument negates; 2+ left-folds subtraction.
func builtinSub(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, newInvalidArgument("- requires at least 1 argument")
	}

	first, err := asNumber("-", args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return -first, nil
	}

	acc := first
	for _, a := range args[1:] {
		n, err := asNumber("-", a)
		if err != nil {
			return nil, err
		}
		acc -= n
	}

	return acc, nil
}

// builtinDiv implements "/": zero args raises InvalidArgument; one
// argument inverts (1/x); 2+ left-folds division.
func builtinDiv(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, newInvalidArgument("/ requires at least 1 argument")
	}

	first, err := asNumber("/", args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return 1 / first, nil
	}

	acc := first
	for _, a := range args[1:] {
		n, err := asNumber("/", a)
		if err != nil {
			return nil, err
		}
		acc /= n
	}

	return acc, nil
}

func asNumber(who string, v value.Value) (value.Number, error) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, newInvalidArgument(who + " expects Number arguments")
	}

	return n, nil
}

func builtinLt(args []value.Value) (value.Value, error) { return compareNumbers("<", args) }
func builtinLe(args []value.Value) (value.Value, error) { return compareNumbers("<=", args) }
func builtinGt(args []value.Value) (value.Value, error) { return compareNumbers(">", args) }
func builtinGe(args []value.Value) (value.Value, error) { return compareNumbers(">=", args) }

func compareNumbers(op string, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, newInvalidArgument(op + " expects exactly 2 arguments")
	}
	a, err := asNumber(op, args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber(op, args[1])
	if err != nil {
		return nil, err
	}

	switch op {
	case "<":
		return value.Bool(a < b), nil
	case "<=":
		return value.Bool(a <= b), nil
	case ">":
		return value.Bool(a > b), nil
	default:
		return value.Bool(a >= b), nil
	}
}

func builtinValueEqual(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, newInvalidArgument("= expects exactly 2 arguments")
	}

	return value.Bool(value.Equal(args[0], args[1])), nil
}

func builtinValueNotEqual(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, newInvalidArgument("!= expects exactly 2 arguments")
	}

	return value.Bool(!value.Equal(args[0], args[1])), nil
}

func builtinStrictEqual(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, newInvalidArgument("=== expects exactly 2 arguments")
	}

	return value.Bool(value.StrictEqual(args[0], args[1])), nil
}

func builtinStrictNotEqual(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, newInvalidArgument("!== expects exactly 2 arguments")
	}

	return value.Bool(!value.StrictEqual(args[0], args[1])), nil
}
