package eval

import "github.com/conneroisu/lispy/internal/value"

func builtinKernelDebugP(args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return nil, newInvalidArgument("kernel:debug? expects no arguments")
	}

	return value.Bool(Debug()), nil
}

// builtinKernelDebug toggles trace mode; called with no arguments it
// flips the current setting, called with one Bool it sets it explicitly.
func builtinKernelDebug(args []value.Value) (value.Value, error) {
	switch len(args) {
	case 0:
		SetDebug(!Debug())
	case 1:
		SetDebug(value.Truthy(args[0]))
	default:
		return nil, newInvalidArgument("kernel:debug expects (kernel:debug [flag])")
	}

	return value.Bool(Debug()), nil
}
