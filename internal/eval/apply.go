package eval

import "github.com/conneroisu/lispy/internal/value"

// ApplyValue invokes an already-evaluated callable with already-evaluated
// args, outside of tail position. It is exported for the standard
// library's higher-order procedures (map, each, reduce)
// and is what the member-call fallback ultimately dispatches through.
func ApplyValue(proc value.Value, args []value.Value) (value.Value, error) {
	switch p := proc.(type) {
	case *value.Lambda:
		childEnv := value.NewEnvironment(p.Env)
		bindParams(p.Params, args, childEnv)

		return Evaluate(p.Body, childEnv)
	case *value.Procedure:
		return p.Fn(args)
	case *value.SpecialProcedure:
		return nil, newInvalidArgument("cannot call a special procedure outside tail position without a caller environment")
	case *value.Macro:
		return nil, newInvalidArgument("cannot apply a macro to already-evaluated arguments")
	case value.MemberCallable:
		return memberCall(p, args)
	default:
		return nil, newInvalidOperation(proc)
	}
}

// memberCall implements spec.md §9 "Member-call fallback": applying a
// Dict or Environment treats its first argument (stringified) as a
// member name, and invokes whatever is bound there with the rest.
func memberCall(p value.MemberCallable, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, newInvalidArgument("member call requires a member name as the first argument")
	}

	name := value.ToString(args[0], false)

	member, err := p.MemberGet(name)
	if err != nil {
		return nil, newKeyNotFoundMember(name)
	}

	return ApplyValue(member, args[1:])
}
