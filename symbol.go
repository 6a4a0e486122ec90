// Package symbols provides named symbols: small, cheap-to-copy handles
// for interned strings. Names are stored once in a process-wide
// registry, so symbols can be compared, ordered, hashed and copied in
// constant time without touching the underlying text.
//
//	x := symbols.New("x")
//	y := symbols.New("y")
//
//	x == symbols.New("x") // true: same name, same symbol
//	x.Less(y)             // true: x was interned first
//	x.Name()              // "x"
//
// Symbols are ordered by creation time, not alphabetically. The
// ordering and the numeric IDs behind it are only meaningful within a
// single process run; anything crossing a process boundary must go
// through the name-based encodings (see MarshalText and friends).
package symbols

import "cmp"

// register backs the package-level API. It lives for the whole process
// and only grows; names are never evicted.
var register = NewRegistry()

// Default returns the process-wide registry that Symbol values refer
// into. Exposed for introspection (Len, All); most callers never need
// it.
func Default() *Registry {
	return register
}

// Symbol is a handle for a name interned in the process-wide registry.
//
// Symbols are comparable with ==, usable as map keys, and O(1) to copy;
// they hold an index into the registry rather than the name itself.
//
// The zero Symbol aliases whatever name happens to be interned first
// (ID 0), and calling Name on it panics before anything has been
// interned at all. Always obtain symbols through New, NewAll, Lookup or
// one of the Unmarshal methods rather than relying on the zero value.
type Symbol struct {
	id int
}

// New returns the symbol for name, interning it if it has not been seen
// before. Two calls with equal names always return equal symbols.
func New(name string) Symbol {
	return Symbol{id: register.Intern(name)}
}

// Lookup returns the symbol for name if it has already been interned.
// Unlike New it never creates new entries.
func Lookup(name string) (Symbol, bool) {
	id, ok := register.Lookup(name)
	return Symbol{id: id}, ok
}

// NewAll interns multiple names and returns one symbol per name.
// Sugar for calling New in a loop; handy for declaring a vocabulary up
// front:
//
//	syms := symbols.NewAll("x", "y", "z")
func NewAll(names ...string) []Symbol {
	syms := make([]Symbol, len(names))
	for i, name := range names {
		syms[i] = New(name)
	}
	return syms
}

// Name returns the symbol's name.
func (s Symbol) Name() string {
	return register.Name(s.id)
}

// String returns the symbol's name, implementing fmt.Stringer.
func (s Symbol) String() string {
	return register.Name(s.id)
}

// ID returns the symbol's numeric ID. IDs are process-local: they
// depend on interning order and must never be persisted or sent to
// another process. Use the name-based encodings for that.
func (s Symbol) ID() int {
	return s.id
}

// Compare orders symbols by creation time: the symbol whose name was
// interned first is smaller. Returns -1, 0 or 1 in the cmp convention,
// for use with slices.SortFunc and friends.
func (s Symbol) Compare(o Symbol) int {
	return cmp.Compare(s.id, o.id)
}

// Less reports whether s was created before o.
func (s Symbol) Less(o Symbol) bool {
	return s.id < o.id
}
