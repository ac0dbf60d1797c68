package value

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/gofrs/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// envCounter is the process-wide environment creation counter spec.md
// §4.D says "may be exposed" for debugging.
var envCounter atomic.Int64

// EnvironmentsCreated returns how many Environment nodes this process has
// constructed since startup.
func EnvironmentsCreated() int64 {
	return envCounter.Load()
}

// Environment is a node in a lexically scoped name→value chain (spec.md
// §3 "Environment" and §4.D). Lookup walks the parent chain; define
// always writes locally; set! writes to the nearest ancestor that already
// binds the name.
type Environment struct {
	id      string
	members map[string]Value
	parent  *Environment
}

// NewEnvironment creates a child of parent (nil for a root environment).
func NewEnvironment(parent *Environment) *Environment {
	envCounter.Add(1)

	id := ""
	if generated, err := uuid.NewV4(); err == nil {
		id = generated.String()[:8]
	}

	return &Environment{id: id, members: make(map[string]Value), parent: parent}
}

func (e *Environment) Kind() Kind     { return KindEnvironment }
func (e *Environment) String() string { return fmt.Sprintf("<environment %s>", e.id) }

// MemberGet satisfies MemberCallable: a member-call into an Environment is
// just Get, so (env "x") reads the binding named "x".
func (e *Environment) MemberGet(name string) (Value, error) {
	return e.Get(name)
}

// Present reports whether name is bound in e or any ancestor.
func (e *Environment) Present(name string) bool {
	for cur := e; cur != nil; cur = cur.parent {
		if _, ok := cur.members[name]; ok {
			return true
		}
	}

	return false
}

// KeyNotFoundError is raised by Get/Set when name is unbound anywhere on
// the chain (spec.md §7 taxonomy tag "KeyNotFound").
type KeyNotFoundError struct {
	Name string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found: %s", e.Name)
}

// Get resolves name by walking the parent chain, or raises
// *KeyNotFoundError.
func (e *Environment) Get(name string) (Value, error) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.members[name]; ok {
			return v, nil
		}
	}

	return nil, &KeyNotFoundError{Name: name}
}

// Define always writes to the local node, shadowing any ancestor binding.
func (e *Environment) Define(name string, v Value) {
	e.members[name] = v
}

// Set assigns to the nearest enclosing binding of name, or raises
// *KeyNotFoundError if name is unbound anywhere on the chain. Set never
// creates a new binding (spec.md §8 invariant).
func (e *Environment) Set(name string, v Value) error {
	for cur := e; cur != nil; cur = cur.parent {
		if _, ok := cur.members[name]; ok {
			cur.members[name] = v

			return nil
		}
	}

	return &KeyNotFoundError{Name: name}
}

// Update performs a bulk local define of names to values, pairwise.
func (e *Environment) Update(names []string, values []Value) {
	for i, n := range names {
		if i < len(values) {
			e.Define(n, values[i])
		} else {
			e.Define(n, Undefined{})
		}
	}
}

// Keys returns every name bound from e up through its ancestors,
// innermost first; duplicates are not removed (spec.md §4.D).
func (e *Environment) Keys() []string {
	var keys []string
	for cur := e; cur != nil; cur = cur.parent {
		names := make([]string, 0, len(cur.members))
		for k := range cur.members {
			names = append(names, k)
		}
		sort.Strings(names)
		keys = append(keys, names...)
	}

	return keys
}

// TopLevel walks to and returns the root environment.
func (e *Environment) TopLevel() *Environment {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}

	return cur
}

// Parent returns e's parent, or nil for a root environment.
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Dump renders the full chain from e to the root on a single line, each
// frame's sorted binding names joined to its parent's by " -> ", for
// inspect and env:dump.
func (e *Environment) Dump() string {
	var b strings.Builder
	for cur := e; cur != nil; cur = cur.parent {
		names := make([]string, 0, len(cur.members))
		for k := range cur.members {
			names = append(names, k)
		}
		sort.Strings(names)
		fmt.Fprintf(&b, "env#%s {%s}", cur.id, strings.Join(names, ", "))
		if cur.parent != nil {
			b.WriteString(" -> ")
		}
	}

	return b.String()
}

// SuggestName returns the closest binding name to typo on the chain, or
// "" if none is close enough to be worth suggesting. Used to annotate
// KeyNotFound errors with a "did you mean" hint, ranked by
// fuzzysearch's Levenshtein distance (at most 2 edits away).
func (e *Environment) SuggestName(typo string) string {
	best, bestDist := "", 3
	for _, k := range e.Keys() {
		if d := fuzzy.LevenshteinDistance(typo, k); d < bestDist {
			best, bestDist = k, d
		}
	}

	return best
}
