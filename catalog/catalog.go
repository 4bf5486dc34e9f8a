// Package catalog stands in for the macro/reflection derivation layer a
// code-generated implementation would use as an external collaborator:
// rather than deriving Formula/Serialize/Deserialize from declared record
// fields at compile time, implementers hand-write a
// wire.Codec[T] for their type and register it here under a stable name.
// Registration is the one runtime check standing in for what a macro
// system would otherwise guarantee at compile time: that no two types
// silently claim the same formula identity.
package catalog

import (
	"fmt"

	"github.com/zakarumych/alkahest/internal/registry"
	"github.com/zakarumych/alkahest/wire"
)

var defaultRegistry = registry.New()

// MustRegister binds name to codec's concrete Go type in the default
// registry and returns codec unchanged, so it can be used directly in a
// package-level var declaration:
//
//	var PointCodec = catalog.MustRegister("geo.Point", pointCodec{})
//
// It panics if name collides with a different type, since this runs at
// package init time and a collision there is a programmer error the macro
// layer this replaces would have caught at compile time.
func MustRegister[T any](name string, codec wire.Codec[T]) wire.Codec[T] {
	typeName := fmt.Sprintf("%T", codec)
	if err := defaultRegistry.Register(name, typeName); err != nil {
		panic(fmt.Sprintf("catalog: %v: name %q, type %s", err, name, typeName))
	}
	return codec
}

// Lookup reports whether name is registered and, if so, which concrete Go
// type implements it. It does not reconstruct a usable wire.Codec[T] since
// Go erases T from the registry entry; callers that need the codec back
// should keep their own name->codec map alongside MustRegister.
func Lookup(name string) (registry.Entry, bool) {
	return defaultRegistry.Lookup(name)
}

// Count returns the number of distinct formula identities registered so
// far.
func Count() int {
	return defaultRegistry.Count()
}
