package eval

import (
	"fmt"

	juju "github.com/juju/errors"

	"github.com/conneroisu/lispy/internal/value"
)

// Taxonomy tags from spec.md §7. Custom(name, message) has no fixed tag —
// its Name is whatever error:custom was given.
const (
	TagParserError      = "ParserError"
	TagKeyNotFound      = "KeyNotFound"
	TagInvalidArgument  = "InvalidArgument"
	TagInvalidOperation = "InvalidOperation"
	TagUnexpectedInput  = "UnexpectedInput"
)

// EvalError is the Go-level error that carries a Lispy exception payload
// as it unwinds through Evaluate until a try form catches it, or it
// escapes to the embedding host.
type EvalError struct {
	Payload value.Value
}

func (e *EvalError) Error() string {
	return e.Payload.String()
}

// raise wraps any Value as the Go error propagated by the error built-in:
// "error" raises its argument exactly as given, unwrapped.
func raise(v value.Value) *EvalError {
	return &EvalError{Payload: v}
}

func newTagged(tag, message string) *EvalError {
	return raise(&value.Error{Name: value.Symbol(tag), Message: message})
}

// newKeyNotFound builds the KeyNotFound error raised on an unbound symbol
// lookup or an unbound set! target, annotated with a fuzzy "did you mean"
// suggestion when the environment chain holds a close-enough name.
func newKeyNotFound(name string, env *value.Environment) *EvalError {
	msg := fmt.Sprintf("undefined variable: %s", name)
	if env != nil {
		if hint := env.SuggestName(name); hint != "" {
			msg = fmt.Sprintf("%s (did you mean %q?)", msg, hint)
		}
	}

	return newTagged(TagKeyNotFound, msg)
}

func newKeyNotFoundMember(name string) *EvalError {
	return newTagged(TagKeyNotFound, fmt.Sprintf("no such member: %s", name))
}

func newInvalidArgument(message string) *EvalError {
	return newTagged(TagInvalidArgument, message)
}

func newInvalidOperation(v value.Value) *EvalError {
	return newTagged(TagInvalidOperation, fmt.Sprintf("cannot apply non-callable value of kind %v", v.Kind()))
}

func newUnexpectedInput(message string) *EvalError {
	return newTagged(TagUnexpectedInput, message)
}

// newParserError wraps a reader error as a Lispy Error value with a real
// stack trace, via juju/errors.Annotate + ErrorStack.
func newParserError(err error) *EvalError {
	wrapped := juju.Annotate(err, "parse error")

	return &EvalError{Payload: &value.Error{
		Name:    value.Symbol(TagParserError),
		Message: err.Error(),
		Stack:   juju.ErrorStack(wrapped),
	}}
}

// Raise wraps any Value as the Go error a host Procedure/SpecialFunc
// returns to throw it as a Lispy exception, catchable by try exactly
// like an evaluator-raised error.
func Raise(v value.Value) error {
	return raise(v)
}

// InvalidArgument builds the InvalidArgument-tagged error a host
// primitive returns for a bad arity or argument type.
func InvalidArgument(message string) error {
	return newInvalidArgument(message)
}

// HostError converts an arbitrary Go error crossing a host-primitive
// boundary (file I/O, timing, console) into a Lispy Error value. It is
// the seam spec.md §6 names for the Error object's optional "stack"
// field to carry real frames from outside the core.
func HostError(tag string, err error) *value.Error {
	wrapped := juju.Annotate(err, "host error")

	return &value.Error{
		Name:    value.Symbol(tag),
		Message: err.Error(),
		Stack:   juju.ErrorStack(wrapped),
	}
}
