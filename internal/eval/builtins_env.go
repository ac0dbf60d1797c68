package eval

import "github.com/conneroisu/lispy/internal/value"

// envCurrent is the canonical SpecialProcedure: it has no use for its
// argument list, only the caller's environment, which is exactly the
// extension-surface hook spec.md §4.F calls out.
func envCurrent(_ []value.Value, env *value.Environment) (value.Value, error) {
	return env, nil
}

func asEnv(who string, v value.Value) (*value.Environment, error) {
	e, ok := v.(*value.Environment)
	if !ok {
		return nil, newInvalidArgument(who + " expects an Environment argument")
	}

	return e, nil
}

func builtinEnvNew(args []value.Value) (value.Value, error) {
	if len(args) > 1 {
		return nil, newInvalidArgument("env:new expects (env:new [parent])")
	}

	var parent *value.Environment
	if len(args) == 1 {
		if _, isNil := args[0].(value.Nil); !isNil {
			p, err := asEnv("env:new", args[0])
			if err != nil {
				return nil, err
			}
			parent = p
		}
	}

	return value.NewEnvironment(parent), nil
}

func builtinEnvGet(args []value.Value) (value.Value, error) {
	if err := checkArity("env:get", args, 2); err != nil {
		return nil, err
	}
	e, err := asEnv("env:get", args[0])
	if err != nil {
		return nil, err
	}
	name, err := nameOperand(args[1])
	if err != nil {
		return nil, err
	}

	v, lookupErr := e.Get(name)
	if lookupErr != nil {
		return nil, newKeyNotFound(name, e)
	}

	return v, nil
}

func builtinEnvDefine(args []value.Value) (value.Value, error) {
	if err := checkArity("env:define", args, 3); err != nil {
		return nil, err
	}
	e, err := asEnv("env:define", args[0])
	if err != nil {
		return nil, err
	}
	name, err := nameOperand(args[1])
	if err != nil {
		return nil, err
	}
	e.Define(name, args[2])

	return args[2], nil
}

func builtinEnvDefinedP(args []value.Value) (value.Value, error) {
	if err := checkArity("env:defined?", args, 2); err != nil {
		return nil, err
	}
	e, err := asEnv("env:defined?", args[0])
	if err != nil {
		return nil, err
	}
	name, err := nameOperand(args[1])
	if err != nil {
		return nil, err
	}

	return value.Bool(e.Present(name)), nil
}

func builtinEnvSetBang(args []value.Value) (value.Value, error) {
	if err := checkArity("env:set!", args, 3); err != nil {
		return nil, err
	}
	e, err := asEnv("env:set!", args[0])
	if err != nil {
		return nil, err
	}
	name, err := nameOperand(args[1])
	if err != nil {
		return nil, err
	}
	if err := e.Set(name, args[2]); err != nil {
		return nil, newKeyNotFound(name, e)
	}

	return args[2], nil
}

func builtinEnvUpdate(args []value.Value) (value.Value, error) {
	if err := checkArity("env:update", args, 3); err != nil {
		return nil, err
	}
	e, err := asEnv("env:update", args[0])
	if err != nil {
		return nil, err
	}
	namesList, err := asList("env:update", args[1])
	if err != nil {
		return nil, err
	}
	valuesList, err := asList("env:update", args[2])
	if err != nil {
		return nil, err
	}

	names := make([]string, namesList.Len())
	for i, n := range namesList.Elements() {
		name, err := nameOperand(n)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	e.Update(names, valuesList.Elements())

	return value.Nil{}, nil
}

func builtinEnvParent(args []value.Value) (value.Value, error) {
	if err := checkArity("env:parent", args, 1); err != nil {
		return nil, err
	}
	e, err := asEnv("env:parent", args[0])
	if err != nil {
		return nil, err
	}
	if p := e.Parent(); p != nil {
		return p, nil
	}

	return value.Nil{}, nil
}

func builtinEnvParentP(args []value.Value) (value.Value, error) {
	if err := checkArity("env:parent?", args, 1); err != nil {
		return nil, err
	}
	e, err := asEnv("env:parent?", args[0])
	if err != nil {
		return nil, err
	}

	return value.Bool(e.Parent() != nil), nil
}

func builtinEnvToplevel(args []value.Value) (value.Value, error) {
	if err := checkArity("env:toplevel", args, 1); err != nil {
		return nil, err
	}
	e, err := asEnv("env:toplevel", args[0])
	if err != nil {
		return nil, err
	}

	return e.TopLevel(), nil
}

func builtinEnvKeys(args []value.Value) (value.Value, error) {
	if err := checkArity("env:keys", args, 1); err != nil {
		return nil, err
	}
	e, err := asEnv("env:keys", args[0])
	if err != nil {
		return nil, err
	}

	keys := e.Keys()
	out := make([]value.Value, len(keys))
	for i, k := range keys {
		out[i] = value.Symbol(k)
	}

	return value.NewList(out...), nil
}

func builtinEnvDump(args []value.Value) (value.Value, error) {
	if err := checkArity("env:dump", args, 1); err != nil {
		return nil, err
	}
	e, err := asEnv("env:dump", args[0])
	if err != nil {
		return nil, err
	}

	return value.String(e.Dump()), nil
}
