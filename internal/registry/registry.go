// Package registry implements the "tagged descriptor table keyed by
// formula identity" the core design notes call for as the idiomatic
// stand-in, in a language without monomorphizable trait resolution, for
// compile-time-resolved Serialize/Deserialize trait implementations: a
// name-hashed table that hand-written Formula/codec pairs register into
// exactly once, with a collision between two distinct Go types claiming
// the same formula name caught at registration time rather than silently
// shadowing one another.
//
// The same hash-keyed bookkeeping a metric-name collision tracker uses is
// repurposed here from "two metrics hashing to the same ID" to "two Go
// types registering under the same formula name".
package registry

import (
	"sync"

	"github.com/zakarumych/alkahest/errs"
	"github.com/zakarumych/alkahest/internal/hash"
)

// Entry describes one registered formula identity.
type Entry struct {
	Name     string
	Hash     uint64
	TypeName string
}

// Registry tracks formula-name -> implementing-type bindings and flags a
// collision when two different type names claim the same formula name (or,
// vanishingly unlikely, two different names hash to the same 64-bit ID).
type Registry struct {
	mu      sync.Mutex
	entries map[uint64]Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[uint64]Entry)}
}

// Register binds formula name to typeName. Calling Register again with the
// same (name, typeName) pair is idempotent and returns nil, matching the
// "package init runs codec construction more than once under test" case.
// Any other reuse of the same name, or a 64-bit hash collision between two
// distinct names, returns errs.ErrFormulaCollision.
func (r *Registry) Register(name, typeName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := hash.ID(name)
	existing, ok := r.entries[h]
	if !ok {
		r.entries[h] = Entry{Name: name, Hash: h, TypeName: typeName}
		return nil
	}
	if existing.Name == name && existing.TypeName == typeName {
		return nil
	}
	return errs.ErrFormulaCollision
}

// Lookup returns the entry registered under name, if any.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[hash.ID(name)]
	return e, ok
}

// Count returns the number of distinct formula identities registered.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
