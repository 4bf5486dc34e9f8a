//go:build fixed16

package wire

// AddressWidth is the byte width of every length and tail-relative offset
// word in the wire format.
const AddressWidth = 2

// MaxAddress is the largest value representable in AddressWidth bytes.
const MaxAddress = uint64(1<<16) - 1
