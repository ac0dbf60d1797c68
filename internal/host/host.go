package host

import (
	"io"
	"os"

	"github.com/conneroisu/lispy/internal/eval"
	"github.com/conneroisu/lispy/internal/value"
)

// Config selects the facilities Install wires into an environment and
// where their I/O goes; the zero value wires everything against the
// process's real stdio with no filesystem jail.
type Config struct {
	FS        FSConfig
	Stdout    io.Writer
	Stdin     io.Reader
	NoFS      bool
	NoClock   bool
	NoConsole bool
}

// Install registers the fs, clock, and console handles (plus the flat
// console:read-line primitive) into env, the way spec.md §6's "Bootstrap
// file (optional)" describes a host populating facilities beyond the
// core standard library.
func Install(env *value.Environment, cfg Config) {
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	if !cfg.NoFS {
		env.Define("fs", NewFS(cfg.FS))
	}
	if !cfg.NoClock {
		env.Define("clock", NewClock())
	}
	if !cfg.NoConsole {
		env.Define("console", NewConsole(stdout))
		eval.RegisterSpecial(env, "console:read-line", ReadLineFunc(stdin))
	}
}
