// Command lispy is a CLI client of the lispy package: it owns no
// interpreter state beyond one root Environment and reaches into no
// evaluator internals, exactly as spec.md's Non-goals describe the REPL
// driver and CLI argument parsing as external collaborators of the core.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/conneroisu/lispy"
	"github.com/conneroisu/lispy/internal/host"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lispy:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "lispy",
		Short: "Lispy: a small embedded Lisp dialect",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "emit an indented evaluator trace")

	root.AddCommand(newEvalCmd(&debug))
	root.AddCommand(newRunCmd(&debug))
	root.AddCommand(newReplCmd(&debug))

	return root
}

func newEvalCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate a single expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newRootEnv(*debug)

			return runSource(env, args[0], cmd.OutOrStdout())
		},
	}
}

func newRunCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Evaluate a Lispy source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			env := newRootEnv(*debug)

			return runSource(env, string(source), cmd.OutOrStdout())
		},
	}
}

func newReplCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Lispy REPL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(newRootEnv(*debug), cmd.OutOrStdout())
		},
	}
}

func newRootEnv(debug bool) *lispy.Environment {
	env := lispy.NewStandardEnvironment()
	host.Install(env, host.Config{})
	lispy.SetDebug(debug)

	return env
}

func runSource(env *lispy.Environment, source string, out io.Writer) error {
	expr, err := lispy.Parse(source)
	if err != nil {
		return err
	}

	result, err := lispy.Evaluate(expr, env)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result.String())

	return nil
}

func runREPL(env *lispy.Environment, out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lispy> ",
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		if err := runSource(env, line, out); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return home + "/.lispy_history"
}
