// Package lispy is the embedding contract spec.md §6 describes: parse
// source text, evaluate the resulting expression tree against an
// environment, and register host primitives into it. Everything here is
// a thin re-export of internal/reader, internal/eval, and internal/value
// so that a host program depends on one import instead of reaching into
// internal packages.
package lispy

import (
	"github.com/conneroisu/lispy/internal/eval"
	"github.com/conneroisu/lispy/internal/reader"
	"github.com/conneroisu/lispy/internal/value"
)

type (
	// Value is the universal Lispy value type (spec.md §3).
	Value = value.Value
	// Environment is a lexically scoped name→value chain (spec.md §4.D).
	Environment = value.Environment
	// ProcedureFunc backs register_procedure: a callable that only sees
	// its evaluated argument list.
	ProcedureFunc = value.ProcedureFunc
	// SpecialFunc backs register_special: a callable that also observes
	// the caller's environment.
	SpecialFunc = value.SpecialFunc
)

// Parse turns source text into an expression tree, per spec.md §6
// "parse(source) → Value". It may return a *reader.Error (ParserError).
func Parse(source string) (Value, error) {
	return reader.Read(source)
}

// Evaluate reduces expr in env to a value, per spec.md §4.C/§6. Errors
// returned are *eval.EvalError carrying the raised Lispy value: an Error
// tagged per §7 for evaluator failures, or whatever value `error` raised.
func Evaluate(expr Value, env *Environment) (Value, error) {
	return eval.Evaluate(expr, env)
}

// NewStandardEnvironment builds a root environment populated with the
// full standard procedure library (spec.md §4.E) plus the bootstrap
// core script (spec.md §6 "Bootstrap file").
func NewStandardEnvironment() *Environment {
	return eval.NewStandardEnvironment()
}

// NewEnvironment creates a child of parent, or a fresh root if parent is
// nil (spec.md §6 "make_environment").
func NewEnvironment(parent *Environment) *Environment {
	return eval.NewEnvironment(parent)
}

// RegisterProcedure installs a host callable under name, visible to
// Lispy code as a Procedure value (spec.md §6 "register_procedure").
func RegisterProcedure(env *Environment, name string, fn ProcedureFunc) {
	eval.RegisterProcedure(env, name, fn)
}

// RegisterSpecial installs a host callable that also observes the
// caller's environment, visible to Lispy code as a SpecialProcedure
// value (spec.md §6 "register_special").
func RegisterSpecial(env *Environment, name string, fn SpecialFunc) {
	eval.RegisterSpecial(env, name, fn)
}

// SetDebug toggles the evaluator's indented trace (spec.md §6
// "set_debug"); it never changes observable evaluation results.
func SetDebug(flag bool) {
	eval.SetDebug(flag)
}
