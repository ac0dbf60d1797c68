package eval

import "github.com/conneroisu/lispy/internal/value"

// builtinError raises its argument exactly as given (spec.md §4.E
// "error (raise its argument as an error)"); the payload need not be a
// value.Error — any Value may be thrown and caught by try.
func builtinError(args []value.Value) (value.Value, error) {
	if err := checkArity("error", args, 1); err != nil {
		return nil, err
	}

	return nil, raise(args[0])
}

// builtinErrorCustom constructs (but does not raise) an Error(name,
// message) value.
func builtinErrorCustom(args []value.Value) (value.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, newInvalidArgument("error:custom expects (name [message])")
	}

	msg := ""
	if len(args) == 2 {
		s, ok := args[1].(value.String)
		if !ok {
			return nil, newInvalidArgument("error:custom message must be a String")
		}
		msg = string(s)
	}

	return &value.Error{Name: args[0], Message: msg}, nil
}

func asErrorValue(who string, v value.Value) (*value.Error, error) {
	e, ok := v.(*value.Error)
	if !ok {
		return nil, newInvalidArgument(who + " expects an Error argument")
	}

	return e, nil
}

func builtinErrorName(args []value.Value) (value.Value, error) {
	if err := checkArity("error:name", args, 1); err != nil {
		return nil, err
	}
	e, err := asErrorValue("error:name", args[0])
	if err != nil {
		return nil, err
	}

	return e.Name, nil
}

func builtinErrorMessage(args []value.Value) (value.Value, error) {
	if err := checkArity("error:message", args, 1); err != nil {
		return nil, err
	}
	e, err := asErrorValue("error:message", args[0])
	if err != nil {
		return nil, err
	}

	return value.String(e.Message), nil
}

func builtinErrorStack(args []value.Value) (value.Value, error) {
	if err := checkArity("error:stack", args, 1); err != nil {
		return nil, err
	}
	e, err := asErrorValue("error:stack", args[0])
	if err != nil {
		return nil, err
	}
	if e.Stack == "" {
		return value.Nil{}, nil
	}

	return value.String(e.Stack), nil
}

func builtinErrorCode(args []value.Value) (value.Value, error) {
	if err := checkArity("error:code", args, 1); err != nil {
		return nil, err
	}
	e, err := asErrorValue("error:code", args[0])
	if err != nil {
		return nil, err
	}
	if e.Code == "" {
		return value.Nil{}, nil
	}

	return value.String(e.Code), nil
}
