// Package host implements the ambient host facilities an embedding
// program wires into a Lispy standard environment: filesystem, clock,
// and console access, exposed as member-callable Dict values per
// spec.md §9 "Member-call fallback" (e.g. `(fs 'readFileSync path)`).
//
// None of this is part of the core (spec.md §1 Non-goals name file-system
// and readline primitives as out-of-core); it is ordinary registration
// through the extension surface, exactly as the core allows.
package host

import (
	"path/filepath"

	"github.com/gobuffalo/nulls"
)

// FSConfig configures an fs handle. Root is optional: nulls.String
// distinguishes "no jail configured" from "jailed to the empty/root
// path", the same Valid/absent distinction spec.md §3 draws between
// value.Undefined and a present-but-zero value.
type FSConfig struct {
	Root nulls.String
}

func (c FSConfig) resolve(path string) string {
	if !c.Root.Valid || c.Root.String == "" {
		return path
	}

	return filepath.Join(c.Root.String, path)
}
