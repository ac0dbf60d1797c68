package eval

import "github.com/conneroisu/lispy/internal/value"

func asList(who string, v value.Value) (*value.List, error) {
	l, ok := v.(*value.List)
	if !ok {
		return nil, newInvalidArgument(who + " expects a List argument")
	}

	return l, nil
}

func builtinCar(args []value.Value) (value.Value, error) {
	if err := checkArity("car", args, 1); err != nil {
		return nil, err
	}
	l, err := asList("car", args[0])
	if err != nil {
		return nil, err
	}
	if l.Len() == 0 {
		return nil, newInvalidArgument("car called on empty list")
	}

	return l.Get(0), nil
}

func builtinCdr(args []value.Value) (value.Value, error) {
	if err := checkArity("cdr", args, 1); err != nil {
		return nil, err
	}
	l, err := asList("cdr", args[0])
	if err != nil {
		return nil, err
	}
	if l.Len() == 0 {
		return nil, newInvalidArgument("cdr called on empty list")
	}

	return value.NewList(l.Elements()[1:]...), nil
}

func builtinCons(args []value.Value) (value.Value, error) {
	if err := checkArity("cons", args, 2); err != nil {
		return nil, err
	}
	l, err := asList("cons", args[1])
	if err != nil {
		return nil, err
	}

	return value.NewList(append([]value.Value{args[0]}, l.Elements()...)...), nil
}

func builtinConcat(args []value.Value) (value.Value, error) {
	var out []value.Value
	for _, a := range args {
		l, err := asList("concat", a)
		if err != nil {
			return nil, err
		}
		out = append(out, l.Elements()...)
	}

	return value.NewList(out...), nil
}

func builtinLength(args []value.Value) (value.Value, error) {
	if err := checkArity("length", args, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case *value.List:
		return value.Number(v.Len()), nil
	case *value.Tuple:
		return value.Number(v.Len()), nil
	case value.String:
		return value.Number(len(v)), nil
	case *value.Dict:
		return value.Number(len(v.Keys())), nil
	default:
		return nil, newInvalidArgument("length expects a list, tuple, string, or dict")
	}
}

func builtinList(args []value.Value) (value.Value, error) {
	return value.NewList(args...), nil
}

func builtinTuple(args []value.Value) (value.Value, error) {
	return value.NewTuple(args...), nil
}

func builtinIndex(args []value.Value) (value.Value, error) {
	if err := checkArity("index", args, 2); err != nil {
		return nil, err
	}
	l, err := asList("index", args[0])
	if err != nil {
		return nil, err
	}
	idx, err := asNumber("index", args[1])
	if err != nil {
		return nil, err
	}
	i := int(idx)
	if i < 0 || i >= l.Len() {
		return nil, newInvalidArgument("index out of range")
	}

	return l.Get(i), nil
}

func builtinLast(args []value.Value) (value.Value, error) {
	if err := checkArity("last", args, 1); err != nil {
		return nil, err
	}
	l, err := asList("last", args[0])
	if err != nil {
		return nil, err
	}
	if l.Len() == 0 {
		return nil, newInvalidArgument("last called on empty list")
	}

	return l.Get(l.Len() - 1), nil
}

func builtinMap(args []value.Value) (value.Value, error) {
	if err := checkArity("map", args, 2); err != nil {
		return nil, err
	}
	l, err := asList("map", args[1])
	if err != nil {
		return nil, err
	}

	out := make([]value.Value, l.Len())
	for i, e := range l.Elements() {
		v, err := ApplyValue(args[0], []value.Value{e})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return value.NewList(out...), nil
}

func builtinEach(args []value.Value) (value.Value, error) {
	if err := checkArity("each", args, 2); err != nil {
		return nil, err
	}
	l, err := asList("each", args[1])
	if err != nil {
		return nil, err
	}

	for _, e := range l.Elements() {
		if _, err := ApplyValue(args[0], []value.Value{e}); err != nil {
			return nil, err
		}
	}

	return value.Nil{}, nil
}

func builtinReduce(args []value.Value) (value.Value, error) {
	if err := checkArity("reduce", args, 3); err != nil {
		return nil, err
	}
	l, err := asList("reduce", args[2])
	if err != nil {
		return nil, err
	}

	acc := args[1]
	for _, e := range l.Elements() {
		acc, err = ApplyValue(args[0], []value.Value{acc, e})
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func builtinSlice(args []value.Value) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, newInvalidArgument("slice expects (list start [end])")
	}
	l, err := asList("slice", args[0])
	if err != nil {
		return nil, err
	}
	startF, err := asNumber("slice", args[1])
	if err != nil {
		return nil, err
	}

	start := clampIndex(int(startF), l.Len())
	end := l.Len()
	if len(args) == 3 {
		endF, err := asNumber("slice", args[2])
		if err != nil {
			return nil, err
		}
		end = clampIndex(int(endF), l.Len())
	}
	if end < start {
		end = start
	}

	return value.NewList(l.Elements()[start:end]...), nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}

	return i
}
