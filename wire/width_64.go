//go:build fixed64

package wire

// AddressWidth is the byte width of every length and tail-relative offset
// word in the wire format.
const AddressWidth = 8

// MaxAddress is the largest value representable in AddressWidth bytes.
// 8-byte addresses span the full uint64 range, so this is ^uint64(0)
// rather than an overflowing 1<<64.
const MaxAddress = ^uint64(0)
