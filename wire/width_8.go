//go:build fixed8

package wire

// AddressWidth is the byte width of every length and tail-relative offset
// word in the wire format.
const AddressWidth = 1

// MaxAddress is the largest value representable in AddressWidth bytes.
const MaxAddress = uint64(1<<8) - 1
