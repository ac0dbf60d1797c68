package eval

import "github.com/conneroisu/lispy/internal/value"

// parseParams reads the unevaluated params operand of a lambda/macro form:
// either a single Symbol (rest-binding) or a List of Symbols (positional).
func parseParams(operand value.Value) (value.Params, error) {
	if sym, ok := operand.(value.Symbol); ok {
		return value.Params{IsRest: true, Rest: sym}, nil
	}

	list, ok := operand.(*value.List)
	if !ok {
		return value.Params{}, newInvalidArgument("lambda/macro params must be a symbol or a list of symbols")
	}

	names := make([]value.Symbol, 0, list.Len())
	for _, e := range list.Elements() {
		sym, ok := e.(value.Symbol)
		if !ok {
			return value.Params{}, newInvalidArgument("lambda/macro positional params must all be symbols")
		}
		names = append(names, sym)
	}

	return value.Params{Positional: names}, nil
}

// bindParams binds args into env per params: a rest binding collects every
// arg into a single List; positional binding pads missing trailing
// arguments with Undefined and ignores any excess (spec.md §9 resolution
// of the "too few/too many arguments" open question).
func bindParams(params value.Params, args []value.Value, env *value.Environment) {
	if params.IsRest {
		env.Define(string(params.Rest), value.NewList(args...))

		return
	}

	names := make([]string, len(params.Positional))
	for i, s := range params.Positional {
		names[i] = string(s)
	}
	env.Update(names, args)
}

// nameOperand extracts the string name from an unevaluated operand that
// names a binding: a literal Symbol, or a String value naming it directly.
func nameOperand(v value.Value) (string, error) {
	switch t := v.(type) {
	case value.Symbol:
		return string(t), nil
	case value.String:
		return string(t), nil
	default:
		return "", newInvalidArgument("expected a symbol naming a binding")
	}
}
