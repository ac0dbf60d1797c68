package eval

import "github.com/conneroisu/lispy/internal/value"

func asDict(who string, v value.Value) (*value.Dict, error) {
	d, ok := v.(*value.Dict)
	if !ok {
		return nil, newInvalidArgument(who + " expects a Dict argument")
	}

	return d, nil
}

func builtinDictNew(args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return nil, newInvalidArgument("dict:new expects no arguments")
	}

	return value.NewDict(), nil
}

func builtinDictGet(args []value.Value) (value.Value, error) {
	if err := checkArity("dict:get", args, 2); err != nil {
		return nil, err
	}
	d, err := asDict("dict:get", args[0])
	if err != nil {
		return nil, err
	}
	key, err := nameOperand(args[1])
	if err != nil {
		return nil, err
	}
	v, ok := d.Get(key)
	if !ok {
		return nil, newKeyNotFoundMember(key)
	}

	return v, nil
}

func builtinDictSet(args []value.Value) (value.Value, error) {
	if err := checkArity("dict:set", args, 3); err != nil {
		return nil, err
	}
	d, err := asDict("dict:set", args[0])
	if err != nil {
		return nil, err
	}
	key, err := nameOperand(args[1])
	if err != nil {
		return nil, err
	}
	d.Set(key, args[2])

	return args[2], nil
}

func builtinDictUpdate(args []value.Value) (value.Value, error) {
	if err := checkArity("dict:update", args, 2); err != nil {
		return nil, err
	}
	d, err := asDict("dict:update", args[0])
	if err != nil {
		return nil, err
	}
	other, err := asDict("dict:update", args[1])
	if err != nil {
		return nil, err
	}
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		d.Set(k, v)
	}

	return d, nil
}

func builtinDictKeyP(args []value.Value) (value.Value, error) {
	if err := checkArity("dict:key?", args, 2); err != nil {
		return nil, err
	}
	d, err := asDict("dict:key?", args[0])
	if err != nil {
		return nil, err
	}
	key, err := nameOperand(args[1])
	if err != nil {
		return nil, err
	}
	_, ok := d.Get(key)

	return value.Bool(ok), nil
}

func builtinDictKeys(args []value.Value) (value.Value, error) {
	if err := checkArity("dict:keys", args, 1); err != nil {
		return nil, err
	}
	d, err := asDict("dict:keys", args[0])
	if err != nil {
		return nil, err
	}
	keys := d.Keys()
	out := make([]value.Value, len(keys))
	for i, k := range keys {
		out[i] = value.String(k)
	}

	return value.NewList(out...), nil
}
