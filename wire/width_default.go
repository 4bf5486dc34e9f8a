//go:build !fixed8 && !fixed16 && !fixed64

// Package wire implements the Formula/Serializer/Deserializer core: the
// two-cursor inline/heap buffer layout and the little-endian
// address word used for lengths and tail-relative offsets.
//
// The address-word width W is a build-time choice, one file per width
// selected by build tag, the same pattern bufcodec uses to pick its cgo
// vs pure-Go zstd backend. This file provides the default, 32-bit width,
// active whenever none of fixed8/fixed16/fixed64 is given.
package wire

// AddressWidth is the byte width of every length and tail-relative offset
// word in the wire format.
const AddressWidth = 4

// MaxAddress is the largest value representable in AddressWidth bytes.
const MaxAddress = uint64(1<<32) - 1
