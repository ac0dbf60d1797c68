package host

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/conneroisu/lispy/internal/eval"
	"github.com/conneroisu/lispy/internal/value"
)

// NewConsole builds the console handle: `(console 'log "hi" 42)` space-
// joins and prints its arguments' to_string form, like the `print`
// built-in, but scoped under the console object the way a host embedding
// typically separates "language-level I/O" from "console device I/O".
func NewConsole(out io.Writer) *value.Dict {
	d := value.NewDict()

	d.Set("log", value.NewProcedure("console:log", func(args []value.Value) (value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = value.ToString(a, false)
		}
		fmt.Fprintln(out, strings.Join(parts, " "))

		return value.Nil{}, nil
	}))

	return d
}

// ReadLineFunc returns a SpecialFunc suitable for register_special under
// the name "console:read-line": it reads one line from in, discarding
// the trailing newline. It ignores the caller's environment but is
// registered through register_special (rather than register_procedure)
// so the REPL's `(console:read-line)` call sits in the same extension
// category as env:current.
func ReadLineFunc(in io.Reader) value.SpecialFunc {
	reader := bufio.NewReader(in)

	return func(args []value.Value, _ *value.Environment) (value.Value, error) {
		if len(args) != 0 {
			return nil, eval.InvalidArgument("console:read-line expects no arguments")
		}

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil, eval.Raise(eval.HostError("IOError", err))
		}

		return value.String(strings.TrimRight(line, "\r\n")), nil
	}
}
