package host

import (
	"os"

	"github.com/conneroisu/lispy/internal/eval"
	"github.com/conneroisu/lispy/internal/value"
)

// NewFS builds the fs handle: a Dict of Procedures invoked through the
// member-call fallback, e.g. `(fs 'readFileSync "a.lsp")`.
func NewFS(cfg FSConfig) *value.Dict {
	d := value.NewDict()

	d.Set("readFileSync", value.NewProcedure("fs:readFileSync", func(args []value.Value) (value.Value, error) {
		path, err := fsArgString("readFileSync", args, 0)
		if err != nil {
			return nil, err
		}

		data, readErr := os.ReadFile(cfg.resolve(path))
		if readErr != nil {
			return nil, eval.Raise(eval.HostError("FSError", readErr))
		}

		return value.String(data), nil
	}))

	d.Set("writeFileSync", value.NewProcedure("fs:writeFileSync", func(args []value.Value) (value.Value, error) {
		path, err := fsArgString("writeFileSync", args, 0)
		if err != nil {
			return nil, err
		}
		data, err := fsArgString("writeFileSync", args, 1)
		if err != nil {
			return nil, err
		}

		if writeErr := os.WriteFile(cfg.resolve(path), []byte(data), 0o644); writeErr != nil {
			return nil, eval.Raise(eval.HostError("FSError", writeErr))
		}

		return value.Nil{}, nil
	}))

	d.Set("existsSync", value.NewProcedure("fs:existsSync", func(args []value.Value) (value.Value, error) {
		path, err := fsArgString("existsSync", args, 0)
		if err != nil {
			return nil, err
		}
		_, statErr := os.Stat(cfg.resolve(path))

		return value.Bool(statErr == nil), nil
	}))

	d.Set("removeSync", value.NewProcedure("fs:removeSync", func(args []value.Value) (value.Value, error) {
		path, err := fsArgString("removeSync", args, 0)
		if err != nil {
			return nil, err
		}
		if rmErr := os.Remove(cfg.resolve(path)); rmErr != nil {
			return nil, eval.Raise(eval.HostError("FSError", rmErr))
		}

		return value.Nil{}, nil
	}))

	return d
}

func fsArgString(who string, args []value.Value, i int) (string, error) {
	if i >= len(args) {
		return "", eval.InvalidArgument(who + ": missing argument " + indexName(i))
	}
	s, ok := args[i].(value.String)
	if !ok {
		return "", eval.InvalidArgument(who + " expects a String argument")
	}

	return string(s), nil
}

func indexName(i int) string {
	switch i {
	case 0:
		return "1"
	case 1:
		return "2"
	default:
		return "3+"
	}
}
