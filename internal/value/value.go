// Package value implements the Lispy value universe (spec.md §3): a single
// tagged-union interface with one concrete Go type per variant, an
// exhaustive type switch at every dispatch site, and no separate class
// hierarchies standing in for the tag (spec.md §9 "Dynamic dispatch on
// value tag").
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the universal Lispy value type. Every variant in spec.md §3
// implements it: Nil, Undefined, Bool, Number, String, Symbol, List,
// Tuple, Dict, Lambda, Macro, Procedure, SpecialProcedure, Environment,
// and Error.
type Value interface {
	// Kind identifies which variant this value is, for type predicates,
	// typeof, and evaluator dispatch.
	Kind() Kind
	// String renders the value for display and debug traces. Lists render
	// in parentheses here; ToString gives the to_string form, which
	// renders Lists in brackets.
	String() string
}

// Kind enumerates the Value variants, matching the fixed set typeof returns.
type Kind int

const (
	KindNil Kind = iota
	KindUndefined
	KindBool
	KindNumber
	KindString
	KindSymbol
	KindList
	KindTuple
	KindDict
	KindLambda
	KindMacro
	KindProcedure
	KindSpecialProcedure
	KindEnvironment
	KindError
)

var kindSymbols = map[Kind]string{
	KindNil:              "nil",
	KindUndefined:        "undefined",
	KindBool:             "bool",
	KindNumber:           "number",
	KindString:           "string",
	KindSymbol:           "symbol",
	KindList:             "list",
	KindTuple:            "object",
	KindDict:             "object",
	KindLambda:           "lambda",
	KindMacro:            "macro",
	KindProcedure:        "proc",
	KindSpecialProcedure: "sproc",
	KindEnvironment:      "environment",
	KindError:            "object",
}

// TypeSymbol returns the Symbol typeof(v) evaluates to, from the fixed set
// named in spec.md §4.E: undefined, nil, number, string, symbol, list,
// object, environment, lambda, macro, proc, sproc.
func TypeSymbol(v Value) Symbol {
	if s, ok := kindSymbols[v.Kind()]; ok {
		return Symbol(s)
	}

	return Symbol("object")
}

// Nil is the absence of a value, distinct from Undefined.
type Nil struct{}

func (Nil) Kind() Kind     { return KindNil }
func (Nil) String() string { return "nil" }

// Undefined is the "not applicable" soft-default marker, distinct from Nil.
type Undefined struct{}

func (Undefined) Kind() Kind     { return KindUndefined }
func (Undefined) String() string { return "undefined" }

// Bool is a boolean value. Bool(false) is the only non-truthy value
// (spec.md §4.C "Truth rule").
type Bool bool

func (b Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	if b {
		return "true"
	}

	return "false"
}

// Number is an IEEE-754 double; integer literals become Numbers too.
type Number float64

func (n Number) Kind() Kind { return KindNumber }
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// String is an immutable UTF-8 byte sequence; equality is byte-wise.
type String string

func (s String) Kind() Kind     { return KindString }
func (s String) String() string { return string(s) }

// Symbol is a name, equal to another Symbol iff the names match.
type Symbol string

func (s Symbol) Kind() Kind     { return KindSymbol }
func (s Symbol) String() string { return string(s) }

// List is an ordered, immutable-by-convention sequence of values. A
// non-empty List whose head is a Symbol is what the evaluator treats as
// an application or special form; the standard library never mutates a
// List in place (spec.md §5 "Shared resource policy").
type List struct {
	elems []Value
}

// NewList constructs a List from the given elements, copying the slice so
// later mutation of the caller's backing array cannot alias into the list.
func NewList(elems ...Value) *List {
	return &List{elems: append([]Value(nil), elems...)}
}

func (l *List) Kind() Kind { return KindList }
func (l *List) Len() int   { return len(l.elems) }

// Get returns the element at i, or Nil if i is out of range.
func (l *List) Get(i int) Value {
	if i >= 0 && i < len(l.elems) {
		return l.elems[i]
	}

	return Nil{}
}

// Elements returns a defensive copy of the list's backing slice.
func (l *List) Elements() []Value {
	return append([]Value(nil), l.elems...)
}

func (l *List) String() string {
	parts := make([]string, len(l.elems))
	for i, e := range l.elems {
		parts[i] = e.String()
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// Tuple is a List-shaped sequence produced by "{ ... }" syntax. Unlike
// List, a Tuple is never treated as an application form by the evaluator;
// it is a lightweight tagged record for host extensions.
type Tuple struct {
	elems []Value
}

// NewTuple constructs a Tuple from the given elements.
func NewTuple(elems ...Value) *Tuple {
	return &Tuple{elems: append([]Value(nil), elems...)}
}

func (t *Tuple) Kind() Kind { return KindTuple }
func (t *Tuple) Len() int   { return len(t.elems) }

func (t *Tuple) Get(i int) Value {
	if i >= 0 && i < len(t.elems) {
		return t.elems[i]
	}

	return Nil{}
}

func (t *Tuple) Elements() []Value {
	return append([]Value(nil), t.elems...)
}

func (t *Tuple) String() string {
	parts := make([]string, len(t.elems))
	for i, e := range t.elems {
		parts[i] = e.String()
	}

	return "{" + strings.Join(parts, " ") + "}"
}

// Dict is an unordered String-keyed mapping; insertion order is not
// guaranteed significant, matching spec.md §3.
type Dict struct {
	entries map[string]Value
}

// NewDict creates an empty Dict.
func NewDict() *Dict {
	return &Dict{entries: make(map[string]Value)}
}

func (d *Dict) Kind() Kind { return KindDict }

// Get looks up key, returning (value, true) if present.
func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.entries[key]

	return v, ok
}

// Set stores value under key, mutating the Dict in place — the one
// sanctioned mutation point for Dict values (spec.md §5).
func (d *Dict) Set(key string, v Value) {
	d.entries[key] = v
}

// Keys returns the Dict's keys; order is unspecified.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}

	return keys
}

// MemberCallable is implemented by the value kinds that support the
// member-call fallback described in spec.md §9 "Member-call fallback":
// applying one of these as an operator treats its first (stringified)
// argument as a member name and invokes whatever is bound there with the
// remaining arguments.
type MemberCallable interface {
	MemberGet(name string) (Value, error)
}

// MemberGet looks up key as a Dict entry, reporting KeyNotFoundError (the
// same tag the evaluator uses for unbound symbols) when absent.
func (d *Dict) MemberGet(name string) (Value, error) {
	if v, ok := d.entries[name]; ok {
		return v, nil
	}

	return nil, &KeyNotFoundError{Name: name}
}

func (d *Dict) String() string {
	parts := make([]string, 0, len(d.entries))
	for k, v := range d.entries {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.String()))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Params is the parameter-binding shape for Lambda and Macro: either a
// single rest-binding Symbol or a positional list of Symbols.
type Params struct {
	// Rest is non-empty when params is a single Symbol (variadic binding).
	Rest Symbol
	// IsRest reports whether Rest applies; otherwise Positional applies.
	IsRest     bool
	Positional []Symbol
}

func (p Params) String() string {
	if p.IsRest {
		return string(p.Rest)
	}
	names := make([]string, len(p.Positional))
	for i, s := range p.Positional {
		names[i] = string(s)
	}

	return "(" + strings.Join(names, " ") + ")"
}

// Lambda is a user-defined procedure: arguments are evaluated by the
// caller, then bound to params in a fresh child of captured_env before
// body runs in tail position.
type Lambda struct {
	Params Params
	Body   Value
	Env    *Environment
}

func (l *Lambda) Kind() Kind { return KindLambda }
func (l *Lambda) String() string {
	return fmt.Sprintf("<lambda %s>", l.Params)
}

// Macro is shaped like Lambda, but its arguments are passed unevaluated
// and the body's value is evaluated again in the caller's environment.
type Macro struct {
	Params Params
	Body   Value
	Env    *Environment
}

func (m *Macro) Kind() Kind { return KindMacro }
func (m *Macro) String() string {
	return fmt.Sprintf("<macro %s>", m.Params)
}

// ProcedureFunc is a host-provided callable that only sees its arguments.
type ProcedureFunc func(args []Value) (Value, error)

// Procedure wraps a host ProcedureFunc as a callable Lispy value.
type Procedure struct {
	Name string
	Fn   ProcedureFunc
}

// NewProcedure wraps fn as a named Procedure value.
func NewProcedure(name string, fn ProcedureFunc) *Procedure {
	return &Procedure{Name: name, Fn: fn}
}

func (p *Procedure) Kind() Kind     { return KindProcedure }
func (p *Procedure) String() string { return fmt.Sprintf("<proc %s>", p.Name) }

// SpecialFunc is a host-provided callable that also observes the caller's
// environment — the hook that lets primitives like env:current work.
type SpecialFunc func(args []Value, env *Environment) (Value, error)

// SpecialProcedure wraps a host SpecialFunc as a callable Lispy value.
type SpecialProcedure struct {
	Name string
	Fn   SpecialFunc
}

// NewSpecialProcedure wraps fn as a named SpecialProcedure value.
func NewSpecialProcedure(name string, fn SpecialFunc) *SpecialProcedure {
	return &SpecialProcedure{Name: name, Fn: fn}
}

func (p *SpecialProcedure) Kind() Kind     { return KindSpecialProcedure }
func (p *SpecialProcedure) String() string { return fmt.Sprintf("<sproc %s>", p.Name) }

// Error is the exception payload raised by the evaluator and by
// error/error:custom (spec.md §7). Stack is populated by host boundaries
// that wrap a Go error with github.com/juju/errors before converting it.
type Error struct {
	Name    Value
	Message string
	Stack   string
	Code    string
}

func (e *Error) Kind() Kind { return KindError }
func (e *Error) String() string {
	if e.Message == "" {
		return fmt.Sprintf("Error: %s", e.Name)
	}

	return fmt.Sprintf("Error: %s: %s", e.Name, e.Message)
}

// Truthy implements the truth rule from spec.md §4.C: every value is
// truthy except Bool(false).
func Truthy(v Value) bool {
	b, ok := v.(Bool)

	return !ok || bool(b)
}

// Equal implements the "=" value-equality comparison: two Symbols compare
// equal iff their names match; Lists/Tuples compare element-wise; Dicts
// compare by key/value; everything else falls back to Go equality of the
// concrete, comparable representation.
func Equal(a, b Value) bool {
	if sa, ok := a.(Symbol); ok {
		sb, ok := b.(Symbol)

		return ok && sa == sb
	}
	if la, ok := a.(*List); ok {
		lb, ok := b.(*List)
		if !ok || la.Len() != lb.Len() {
			return false
		}
		for i := range la.elems {
			if !Equal(la.elems[i], lb.elems[i]) {
				return false
			}
		}

		return true
	}
	if ta, ok := a.(*Tuple); ok {
		tb, ok := b.(*Tuple)
		if !ok || ta.Len() != tb.Len() {
			return false
		}
		for i := range ta.elems {
			if !Equal(ta.elems[i], tb.elems[i]) {
				return false
			}
		}

		return true
	}
	if da, ok := a.(*Dict); ok {
		db, ok := b.(*Dict)
		if !ok || len(da.entries) != len(db.entries) {
			return false
		}
		for k, v := range da.entries {
			ov, ok := db.entries[k]
			if !ok || !Equal(v, ov) {
				return false
			}
		}

		return true
	}

	return StrictEqual(a, b)
}

// StrictEqual implements "===": identity-like comparison suitable for the
// host's exact equality — same concrete type and same comparable value,
// with pointer identity for the reference-typed variants.
func StrictEqual(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)

		return ok
	case Undefined:
		_, ok := b.(Undefined)

		return ok
	case Bool:
		bv, ok := b.(Bool)

		return ok && av == bv
	case Number:
		bv, ok := b.(Number)

		return ok && av == bv
	case String:
		bv, ok := b.(String)

		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)

		return ok && av == bv
	case *List:
		bv, ok := b.(*List)

		return ok && av == bv
	case *Tuple:
		bv, ok := b.(*Tuple)

		return ok && av == bv
	case *Dict:
		bv, ok := b.(*Dict)

		return ok && av == bv
	case *Lambda:
		bv, ok := b.(*Lambda)

		return ok && av == bv
	case *Macro:
		bv, ok := b.(*Macro)

		return ok && av == bv
	case *Procedure:
		bv, ok := b.(*Procedure)

		return ok && av == bv
	case *SpecialProcedure:
		bv, ok := b.(*SpecialProcedure)

		return ok && av == bv
	case *Environment:
		bv, ok := b.(*Environment)

		return ok && av == bv
	case *Error:
		bv, ok := b.(*Error)

		return ok && av == bv
	default:
		return false
	}
}

// ToString renders v the way to_s/to_string do: strings get quoted when
// withQuotes is set, Nil/Undefined/Symbol render with their canonical
// tags, Lists render as "[ ... ]" and Tuples as "{ ... }".
func ToString(v Value, withQuotes bool) string {
	switch vv := v.(type) {
	case String:
		if withQuotes {
			return strconv.Quote(string(vv))
		}

		return string(vv)
	case Nil:
		return "nil"
	case Undefined:
		return "undefined"
	case Symbol:
		return string(vv)
	case *List:
		parts := make([]string, vv.Len())
		for i, e := range vv.elems {
			parts[i] = ToString(e, withQuotes)
		}

		return "[" + strings.Join(parts, " ") + "]"
	case *Tuple:
		parts := make([]string, vv.Len())
		for i, e := range vv.elems {
			parts[i] = ToString(e, withQuotes)
		}

		return "{" + strings.Join(parts, " ") + "}"
	default:
		return v.String()
	}
}
